package ports

import (
	"context"
	"encoding/json"
)

// CourseSource defines the interface for obtaining raw course records.
// Records are returned undecoded; the normalizer owns schema handling.
type CourseSource interface {
	// FetchFeed retrieves the current semester's records from the live feed.
	FetchFeed(ctx context.Context) ([]json.RawMessage, error)

	// FetchStatic reads the records of a bundled semester data file.
	FetchStatic(ctx context.Context, fileName string) ([]json.RawMessage, error)
}
