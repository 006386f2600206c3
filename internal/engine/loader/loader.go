// Package loader orchestrates per-semester data loading: live feed for
// the current term, cache and bundled files for the rest, with a linear
// fallback pipeline and provenance tracking.
package loader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/itzMRZ/usisportal/internal/core/domain"
	"github.com/itzMRZ/usisportal/internal/core/ports"
	"github.com/itzMRZ/usisportal/internal/engine/normalize"
)

// State represents the load state of one semester.
type State string

const (
	// StateUninitialized indicates no load has been attempted.
	StateUninitialized State = "Uninitialized"
	// StateLoading indicates a load is in flight.
	StateLoading State = "Loading"
	// StateReady indicates the semester's dataset is in memory.
	StateReady State = "Ready"
	// StateFailed indicates every fallback path was exhausted.
	StateFailed State = "Failed"
)

// Outcome is the per-semester result of a preload.
type Outcome struct {
	SemesterID string
	Provenance domain.Provenance
	Count      int
	Err        error
}

// Loader loads semester datasets and retains them in memory for the
// session so the matcher can read across semesters.
type Loader struct {
	catalog *domain.Catalog
	source  ports.CourseSource
	cache   ports.CacheStore
	log     ports.Logger

	mu       sync.RWMutex
	states   map[string]State
	datasets map[string]domain.SemesterDataset
}

// New creates a Loader over the given catalog and adapters.
func New(catalog *domain.Catalog, source ports.CourseSource, cache ports.CacheStore, log ports.Logger) *Loader {
	return &Loader{
		catalog:  catalog,
		source:   source,
		cache:    cache,
		log:      log,
		states:   make(map[string]State),
		datasets: make(map[string]domain.SemesterDataset),
	}
}

// strategy is one step of the fallback pipeline. Strategies are tried
// in order; the first success wins.
type strategy struct {
	name string
	run  func(ctx context.Context) (domain.SemesterDataset, error)
}

// Load returns the semester's dataset, loading it on first use. A
// semester already in memory is returned as-is with its original
// provenance; use Refresh to force a reload.
func (l *Loader) Load(ctx context.Context, semesterID string) (domain.SemesterDataset, error) {
	sem, err := l.catalog.Semester(semesterID)
	if err != nil {
		return domain.SemesterDataset{}, err
	}

	l.mu.RLock()
	dataset, ok := l.datasets[sem.ID]
	l.mu.RUnlock()
	if ok {
		return dataset, nil
	}

	return l.load(ctx, sem)
}

// Refresh reloads the semester through its full fallback pipeline,
// replacing any in-memory dataset.
func (l *Loader) Refresh(ctx context.Context, semesterID string) (domain.SemesterDataset, error) {
	sem, err := l.catalog.Semester(semesterID)
	if err != nil {
		return domain.SemesterDataset{}, err
	}
	return l.load(ctx, sem)
}

func (l *Loader) load(ctx context.Context, sem domain.Semester) (domain.SemesterDataset, error) {
	l.setState(sem.ID, StateLoading)

	var failures []error
	for _, strat := range l.strategiesFor(sem) {
		dataset, err := strat.run(ctx)
		if err != nil {
			failures = append(failures, fmt.Errorf("%s: %w", strat.name, err))
			l.log.Warn(fmt.Sprintf("semester %s: %s source failed, falling back", sem.ID, strat.name))
			continue
		}

		l.mu.Lock()
		l.datasets[sem.ID] = dataset
		l.states[sem.ID] = StateReady
		l.mu.Unlock()

		l.log.Info(fmt.Sprintf("semester %s loaded via %s (%d courses)", sem.ID, strat.name, len(dataset.Courses)))
		return dataset, nil
	}

	l.setState(sem.ID, StateFailed)

	loadErr := zerr.With(domain.ErrSemesterLoadFailed, "semester", sem.ID)
	return domain.SemesterDataset{}, zerr.Wrap(errors.Join(failures...), loadErr.Error())
}

// strategiesFor builds the fallback pipeline for one semester. The
// current semester bypasses the cache and goes live first; historical
// semesters prefer the cache and never touch the network feed.
func (l *Loader) strategiesFor(sem domain.Semester) []strategy {
	if sem.Current {
		return []strategy{
			{name: "feed", run: func(ctx context.Context) (domain.SemesterDataset, error) {
				records, err := l.source.FetchFeed(ctx)
				if err != nil {
					return domain.SemesterDataset{}, err
				}
				return l.buildDataset(sem, records, domain.ProvenanceLive)
			}},
			{name: "file", run: func(ctx context.Context) (domain.SemesterDataset, error) {
				records, err := l.source.FetchStatic(ctx, sem.File)
				if err != nil {
					return domain.SemesterDataset{}, err
				}
				return l.buildDataset(sem, records, domain.ProvenanceOffline)
			}},
		}
	}

	return []strategy{
		{name: "cache", run: func(_ context.Context) (domain.SemesterDataset, error) {
			return l.fromCache(sem)
		}},
		{name: "file", run: func(ctx context.Context) (domain.SemesterDataset, error) {
			records, err := l.source.FetchStatic(ctx, sem.File)
			if err != nil {
				return domain.SemesterDataset{}, err
			}
			return l.buildDataset(sem, records, domain.ProvenanceArchived)
		}},
	}
}

// fromCache serves a historical semester from the cache store. Cache
// read failures are recovered as a miss, never surfaced.
func (l *Loader) fromCache(sem domain.Semester) (domain.SemesterDataset, error) {
	courses, err := l.cache.Get(domain.CacheKey(sem.ID))
	if err != nil {
		l.log.Warn(fmt.Sprintf("semester %s: cache read failed, treating as miss", sem.ID))
		return domain.SemesterDataset{}, domain.ErrCacheMiss
	}
	if courses == nil {
		return domain.SemesterDataset{}, domain.ErrCacheMiss
	}

	// Only non-current semesters consult the cache, so a hit is always
	// an archived dataset; the payload was sorted before it was saved.
	return domain.SemesterDataset{
		SemesterID: sem.ID,
		Courses:    courses,
		Provenance: domain.ProvenanceArchived,
		LoadedAt:   time.Now(),
	}, nil
}

// buildDataset normalizes raw records into the canonical baseline
// dataset and writes it through to the cache.
func (l *Loader) buildDataset(sem domain.Semester, records []json.RawMessage, prov domain.Provenance) (domain.SemesterDataset, error) {
	courses, skipped, err := normalize.Courses(records, sem.Format)
	if err != nil {
		return domain.SemesterDataset{}, err
	}

	for _, skip := range skipped {
		l.log.Warn(fmt.Sprintf("semester %s: %s schedule line %q skipped: %s", sem.ID, skip.Course, skip.Line, skip.Reason))
	}

	sort.SliceStable(courses, func(i, j int) bool {
		return domain.Collate(courses[i].Code, courses[j].Code) < 0
	})

	dataset := domain.SemesterDataset{
		SemesterID: sem.ID,
		Courses:    courses,
		Provenance: prov,
		LoadedAt:   time.Now(),
	}

	// Cache write failures are non-fatal: log and proceed uncached.
	if err := l.cache.Save(domain.CacheKey(sem.ID), courses, l.catalog.CacheTTL); err != nil {
		l.log.Warn(fmt.Sprintf("semester %s: cache write failed: %v", sem.ID, err))
	}

	return dataset, nil
}

// LoadAll loads every configured semester concurrently. One semester's
// failure never cancels the others; each gets its own Outcome. The
// returned error is non-nil only when not a single semester loaded.
func (l *Loader) LoadAll(ctx context.Context) ([]Outcome, error) {
	semesters := l.catalog.Semesters
	outcomes := make([]Outcome, len(semesters))

	var g errgroup.Group
	for i, sem := range semesters {
		g.Go(func() error {
			dataset, err := l.Load(ctx, sem.ID)
			if err != nil {
				outcomes[i] = Outcome{SemesterID: sem.ID, Err: err}
				return nil
			}
			outcomes[i] = Outcome{
				SemesterID: sem.ID,
				Provenance: dataset.Provenance,
				Count:      len(dataset.Courses),
			}
			return nil
		})
	}
	_ = g.Wait()

	for _, outcome := range outcomes {
		if outcome.Err == nil {
			return outcomes, nil
		}
	}
	return outcomes, domain.ErrAllSemestersFailed
}

// Dataset returns the in-memory dataset of a loaded semester.
func (l *Loader) Dataset(semesterID string) (domain.SemesterDataset, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	dataset, ok := l.datasets[semesterID]
	if !ok {
		return domain.SemesterDataset{}, zerr.With(domain.ErrSemesterNotLoaded, "semester", semesterID)
	}
	return dataset, nil
}

// Datasets returns every loaded dataset in catalog order.
func (l *Loader) Datasets() []domain.SemesterDataset {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.SemesterDataset, 0, len(l.datasets))
	for _, sem := range l.catalog.Semesters {
		if dataset, ok := l.datasets[sem.ID]; ok {
			out = append(out, dataset)
		}
	}
	return out
}

// StateOf reports a semester's load state.
func (l *Loader) StateOf(semesterID string) State {
	l.mu.RLock()
	defer l.mu.RUnlock()

	state, ok := l.states[semesterID]
	if !ok {
		return StateUninitialized
	}
	return state
}

// ProvenanceOf reports how a loaded semester's data was obtained.
func (l *Loader) ProvenanceOf(semesterID string) (domain.Provenance, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	dataset, ok := l.datasets[semesterID]
	if !ok {
		return "", false
	}
	return dataset.Provenance, true
}

func (l *Loader) setState(semesterID string, state State) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.states[semesterID] = state
}
