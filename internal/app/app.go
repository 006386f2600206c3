// Package app exposes the application facade the CLI talks to. It owns
// the catalog, the semester loader and the query session, and hands the
// presentation layer plain data to render.
package app

import (
	"context"
	"sync"

	"github.com/itzMRZ/usisportal/internal/core/domain"
	"github.com/itzMRZ/usisportal/internal/core/ports"
	"github.com/itzMRZ/usisportal/internal/engine/loader"
	"github.com/itzMRZ/usisportal/internal/engine/match"
	"github.com/itzMRZ/usisportal/internal/engine/query"
)

// sourceFactory builds the course source for a loaded catalog. Injected
// so tests can substitute a stub without standing up an HTTP server.
type sourceFactory func(catalog *domain.Catalog) ports.CourseSource

// App is the application facade. It bootstraps lazily on first use:
// the catalog is read, then the feed client, loader and query session
// are built from it.
type App struct {
	catalogLoader ports.CatalogLoader
	cache         ports.CacheStore
	log           ports.Logger
	newSource     sourceFactory

	configPath string

	mu      sync.Mutex
	catalog *domain.Catalog
	loader  *loader.Loader
	session *query.Session
	active  string
}

// New creates the facade over the injected adapters.
func New(catalogLoader ports.CatalogLoader, cache ports.CacheStore, log ports.Logger, newSource sourceFactory) *App {
	return &App{
		catalogLoader: catalogLoader,
		cache:         cache,
		log:           log,
		newSource:     newSource,
		configPath:    domain.DefaultCatalogPath(),
	}
}

// SetConfigPath overrides the catalog file location. Must be called
// before the first operation; later calls have no effect.
func (a *App) SetConfigPath(path string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if path != "" && a.catalog == nil {
		a.configPath = path
	}
}

// bootstrap loads the catalog and builds the loader and session behind
// it. Callers must hold a.mu.
func (a *App) bootstrap() error {
	if a.catalog != nil {
		return nil
	}

	catalog, err := a.catalogLoader.Load(a.configPath)
	if err != nil {
		return err
	}

	a.catalog = catalog
	a.loader = loader.New(catalog, a.newSource(catalog), a.cache, a.log)
	a.session = query.NewSession(catalog.PageSize)
	return nil
}

// Catalog returns the loaded semester catalog.
func (a *App) Catalog() (*domain.Catalog, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.bootstrap(); err != nil {
		return nil, err
	}
	return a.catalog, nil
}

// LoadAll preloads every configured semester, returning one Outcome per
// semester. The error is non-nil only when no semester loaded at all.
func (a *App) LoadAll(ctx context.Context) ([]loader.Outcome, error) {
	a.mu.Lock()
	if err := a.bootstrap(); err != nil {
		a.mu.Unlock()
		return nil, err
	}
	ld := a.loader
	a.mu.Unlock()

	return ld.LoadAll(ctx)
}

// SelectSemester loads the semester (if not already in memory), makes it
// the active dataset of the query session and returns its courses in
// canonical order.
func (a *App) SelectSemester(ctx context.Context, semesterID string) ([]domain.Course, error) {
	a.mu.Lock()
	if err := a.bootstrap(); err != nil {
		a.mu.Unlock()
		return nil, err
	}
	ld := a.loader
	a.mu.Unlock()

	dataset, err := ld.Load(ctx, semesterID)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	a.active = semesterID
	a.session.SetDataset(dataset.Courses)
	a.mu.Unlock()

	return dataset.Courses, nil
}

// Filter narrows the active dataset and resets to the first page.
func (a *App) Filter(text string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.session != nil {
		a.session.Filter(text)
	}
}

// Sort orders the active dataset by key and direction.
func (a *App) Sort(key string, dir query.Direction) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.session != nil {
		a.session.Sort(key, dir)
	}
}

// CurrentPage returns the courses of the session's current page.
func (a *App) CurrentPage() []domain.Course {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.session == nil {
		return nil
	}
	return a.session.CurrentPage()
}

// Filtered returns the whole filtered dataset in its current order.
func (a *App) Filtered() []domain.Course {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.session == nil {
		return nil
	}
	return a.session.Filtered()
}

// PaginationInfo returns the session's pagination position.
func (a *App) PaginationInfo() query.Info {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.session == nil {
		return query.Info{}
	}
	return a.session.Info()
}

// NextPage advances one page, reporting whether the page changed.
func (a *App) NextPage() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session != nil && a.session.NextPage()
}

// PrevPage steps back one page, reporting whether the page changed.
func (a *App) PrevPage() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session != nil && a.session.PrevPage()
}

// SetPage jumps to the given 1-indexed page of the session.
func (a *App) SetPage(page int) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.session == nil {
		return domain.ErrSemesterNotLoaded
	}
	return a.session.SetPage(page)
}

// MatchesFor returns cross-semester instructor hints for one course of
// the active semester. Only datasets already in memory are scanned.
func (a *App) MatchesFor(course domain.Course) match.Result {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.loader == nil || a.active == "" {
		return match.Result{}
	}
	return match.Find(course, a.active, a.loader.Datasets())
}

// Provenance reports how a loaded semester's data was obtained.
func (a *App) Provenance(semesterID string) (domain.Provenance, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.loader == nil {
		return "", false
	}
	return a.loader.ProvenanceOf(semesterID)
}

// StateOf reports a semester's load state.
func (a *App) StateOf(semesterID string) loader.State {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.loader == nil {
		return loader.StateUninitialized
	}
	return a.loader.StateOf(semesterID)
}
