// Package domain contains the canonical course-catalog types shared by
// the engine, adapters and application layers.
package domain

import "time"

// TBA is the upstream sentinel for a field that has not been announced yet.
const TBA = "TBA"

// TimeSlot is one class meeting. Start and End are minutes since
// midnight; End is nil when the source format does not carry a duration.
type TimeSlot struct {
	Day   string `json:"day"`
	Start int    `json:"start"`
	End   *int   `json:"end,omitempty"`
}

// SeatInfo is the capacity accounting for a section. Available is derived
// independently per source schema and is not guaranteed to equal
// Capacity-Booked.
type SeatInfo struct {
	Available int `json:"available"`
	Booked    int `json:"booked"`
	Capacity  int `json:"capacity"`
	Waitlist  int `json:"waitlist"`
}

// Course is one normalized section record. It is immutable once produced
// by the normalizer; consumers receive copies, never shared slices they
// may mutate.
type Course struct {
	Code           string     `json:"code"`
	Section        string     `json:"section"`
	Faculty        string     `json:"faculty"`
	FacultyInitial string     `json:"facultyInitial"`
	Schedule       []TimeSlot `json:"schedule"`
	LabSchedule    []TimeSlot `json:"labSchedule,omitempty"`
	Seats          *SeatInfo  `json:"seats,omitempty"`
	ExamDate       string     `json:"examDate"`
	Room           string     `json:"room"`
	LabRoom        string     `json:"labRoom,omitempty"`
}

// Provenance records how a semester dataset was obtained.
type Provenance string

const (
	// ProvenanceLive means the dataset came fresh from the remote feed.
	ProvenanceLive Provenance = "live"
	// ProvenanceOffline means the feed failed and a local file stood in.
	ProvenanceOffline Provenance = "offline"
	// ProvenanceArchived means a historical semester served from cache or file.
	ProvenanceArchived Provenance = "archived"
)

// SemesterDataset is one loaded semester: its courses in canonical
// code-ascending order plus load metadata. Datasets are replaced
// wholesale on refresh, never mutated in place.
type SemesterDataset struct {
	SemesterID string
	Courses    []Course
	Provenance Provenance
	LoadedAt   time.Time
}

// CacheKey derives the cache-store key for a semester. The namespace is
// fixed so keys never collide across app versions.
func CacheKey(semesterID string) string {
	return "coursePortalData_" + semesterID
}
