// Package config provides the semester catalog loader for usis.
package config

import (
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/itzMRZ/usisportal/internal/core/domain"
	"github.com/itzMRZ/usisportal/internal/core/ports"
)

const (
	defaultPageSize   = 50
	defaultTTLMinutes = 60
)

// Loader implements ports.CatalogLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads and validates the catalog file at the given path.
func (l *Loader) Load(path string) (*domain.Catalog, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	return l.toCatalog(&file)
}

func (l *Loader) toCatalog(file *catalogFile) (*domain.Catalog, error) {
	catalog := &domain.Catalog{
		FeedURL:  file.FeedURL,
		DataDir:  file.DataDir,
		PageSize: file.PageSize,
		CacheTTL: time.Duration(file.CacheTTL) * time.Minute,
	}

	if catalog.PageSize <= 0 {
		catalog.PageSize = defaultPageSize
	}
	if catalog.CacheTTL <= 0 {
		catalog.CacheTTL = defaultTTLMinutes * time.Minute
	}
	if catalog.DataDir == "" {
		catalog.DataDir = "data"
	}

	seen := make(map[string]bool, len(file.Semesters))
	currentSeen := false

	for _, dto := range file.Semesters {
		if dto.ID == "" {
			return nil, zerr.With(domain.ErrMissingSemesterID, "name", dto.Name)
		}
		if seen[dto.ID] {
			return nil, zerr.With(domain.ErrDuplicateSemester, "semester", dto.ID)
		}
		seen[dto.ID] = true

		format := domain.SchemaFormat(dto.Format)
		if !format.Valid() {
			formatErr := zerr.With(domain.ErrUnknownSchemaFormat, "semester", dto.ID)
			return nil, zerr.With(formatErr, "format", dto.Format)
		}

		if dto.Current {
			if currentSeen {
				return nil, zerr.With(domain.ErrMultipleCurrent, "semester", dto.ID)
			}
			currentSeen = true
		}

		catalog.Semesters = append(catalog.Semesters, domain.Semester{
			ID:      dto.ID,
			Name:    dto.Name,
			File:    dto.File,
			Year:    dto.Year,
			Format:  format,
			Current: dto.Current,
		})
	}

	if len(catalog.Semesters) > 0 && !currentSeen {
		l.Logger.Warn("no semester flagged current; the live feed will never be consulted")
	}

	return catalog, nil
}
