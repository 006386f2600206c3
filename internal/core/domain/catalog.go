package domain

import (
	"time"

	"go.trai.ch/zerr"
)

// SchemaFormat tags which upstream schema variant a semester's raw
// records use. The two values are the tags the upstream dumps carry.
type SchemaFormat string

const (
	// FormatSpring25 is the newer nested schema (sectionSchedule objects).
	FormatSpring25 SchemaFormat = "spring25"
	// FormatOld is the legacy flat schema (free-text schedule fields).
	FormatOld SchemaFormat = "old"
)

// Valid reports whether the format is one of the known schema variants.
func (f SchemaFormat) Valid() bool {
	return f == FormatSpring25 || f == FormatOld
}

// Semester describes one configured academic term and its data source.
type Semester struct {
	ID      string
	Name    string
	File    string
	Year    string
	Format  SchemaFormat
	Current bool
}

// Catalog is the validated semester configuration plus the shared data
// source settings.
type Catalog struct {
	FeedURL   string
	DataDir   string
	PageSize  int
	CacheTTL  time.Duration
	Semesters []Semester
}

// Semester looks up a configured semester by id.
func (c *Catalog) Semester(id string) (Semester, error) {
	for _, sem := range c.Semesters {
		if sem.ID == id {
			return sem, nil
		}
	}
	return Semester{}, zerr.With(ErrUnknownSemester, "semester", id)
}

// Current returns the semester flagged as current, if any. The config
// loader guarantees at most one such flag.
func (c *Catalog) Current() (Semester, bool) {
	for _, sem := range c.Semesters {
		if sem.Current {
			return sem, true
		}
	}
	return Semester{}, false
}
