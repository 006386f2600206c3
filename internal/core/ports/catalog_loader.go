package ports

import "github.com/itzMRZ/usisportal/internal/core/domain"

// CatalogLoader defines the interface for loading the semester catalog.
type CatalogLoader interface {
	// Load reads and validates the catalog file at the given path.
	Load(path string) (*domain.Catalog, error)
}
