package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownSemester is returned when a requested semester id is not in the catalog.
	ErrUnknownSemester = zerr.New("unknown semester")

	// ErrFeedRequestFailed is returned when the remote feed request fails or returns a non-2xx status.
	ErrFeedRequestFailed = zerr.New("feed request failed")

	// ErrStaticFileUnavailable is returned when a semester's static data file cannot be read.
	ErrStaticFileUnavailable = zerr.New("static data file unavailable")

	// ErrPayloadFormat is returned when a payload is neither a course array nor an
	// object carrying a recognized array property.
	ErrPayloadFormat = zerr.New("payload is not in a recognized format")

	// ErrUnknownSchemaFormat is returned when a semester is tagged with an unknown schema variant.
	ErrUnknownSchemaFormat = zerr.New("unknown schema format")

	// ErrClockParse is returned when a clock string cannot be parsed.
	ErrClockParse = zerr.New("malformed clock text")

	// ErrScheduleLine is returned when a free-text schedule line does not match
	// the Day(H:MM AM) pattern.
	ErrScheduleLine = zerr.New("unparseable schedule line")

	// ErrCacheDirCreateFailed is returned when the cache directory cannot be created.
	ErrCacheDirCreateFailed = zerr.New("failed to create cache directory")

	// ErrCacheReadFailed is returned when a cache entry cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read cache entry")

	// ErrCacheWriteFailed is returned when a cache entry cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write cache entry")

	// ErrCacheMarshalFailed is returned when marshaling a cache entry fails.
	ErrCacheMarshalFailed = zerr.New("failed to marshal cache entry")

	// ErrCacheMiss is returned when no valid cache entry exists for a key.
	ErrCacheMiss = zerr.New("cache miss")

	// ErrSemesterLoadFailed is returned when every fallback path for a semester
	// has been exhausted.
	ErrSemesterLoadFailed = zerr.New("failed to load semester data")

	// ErrSemesterNotLoaded is returned when a dataset is requested for a
	// semester that has not been loaded.
	ErrSemesterNotLoaded = zerr.New("semester not loaded")

	// ErrAllSemestersFailed is returned when a preload could not load a single semester.
	ErrAllSemestersFailed = zerr.New("no semester could be loaded")

	// ErrConfigReadFailed is returned when the catalog file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read catalog file")

	// ErrConfigParseFailed is returned when the catalog file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse catalog file")

	// ErrMissingSemesterID is returned when a catalog entry has no id.
	ErrMissingSemesterID = zerr.New("semester entry is missing an id")

	// ErrDuplicateSemester is returned when two catalog entries share an id.
	ErrDuplicateSemester = zerr.New("duplicate semester id")

	// ErrMultipleCurrent is returned when more than one semester is flagged as current.
	ErrMultipleCurrent = zerr.New("more than one semester flagged as current")

	// ErrPageOutOfRange is returned when a requested page is outside the valid range.
	ErrPageOutOfRange = zerr.New("page out of range")

	// ErrUnknownSortDirection is returned when a sort direction is neither asc nor desc.
	ErrUnknownSortDirection = zerr.New("unknown sort direction")
)
