package ports

import (
	"time"

	"github.com/itzMRZ/usisportal/internal/core/domain"
)

// CacheStore defines the interface for the expiring semester-data cache.
type CacheStore interface {
	// Save stores courses under key with the given time-to-live.
	Save(key string, courses []domain.Course, ttl time.Duration) error

	// Get retrieves the courses stored under key.
	// Returns nil, nil when no entry exists or the entry has expired;
	// expired entries are evicted as a side effect.
	Get(key string) ([]domain.Course, error)
}
