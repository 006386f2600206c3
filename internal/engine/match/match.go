// Package match finds cross-semester instructor hints for courses whose
// faculty is still unannounced.
package match

import (
	"github.com/itzMRZ/usisportal/internal/core/domain"
)

// proximityMinutes is the start-time window for the time heuristic.
// Deliberately coarse: it catches same-slot, different-section patterns.
const proximityMinutes = 90

// Entry is one advisory hint pointing at a prior term's instructor.
type Entry struct {
	Faculty    string
	Section    string
	SemesterID string
	Schedule   []domain.TimeSlot
	Room       string
}

// Result holds the three independent hint categories. They are display
// hints only; the target course's own fields are never touched.
type Result struct {
	SectionHistory []Entry
	TimeMatches    []Entry
	RoomMatches    []Entry
}

// Empty reports whether no category produced a hint.
func (r Result) Empty() bool {
	return len(r.SectionHistory) == 0 && len(r.TimeMatches) == 0 && len(r.RoomMatches) == 0
}

// Find scans every loaded semester other than the target's own for
// instructor correlations with the target course. Room matches are only
// collected while the target's own room is unannounced.
func Find(target domain.Course, targetSemesterID string, datasets []domain.SemesterDataset) Result {
	var result Result

	seenTime := map[string]bool{}
	seenRoom := map[string]bool{}

	for _, dataset := range datasets {
		if dataset.SemesterID == targetSemesterID {
			continue
		}

		for _, prior := range dataset.Courses {
			if prior.Code != target.Code {
				continue
			}

			if prior.Section == target.Section && prior.FacultyInitial != domain.TBA {
				result.SectionHistory = append(result.SectionHistory, entry(prior, dataset.SemesterID))
			}

			if prior.FacultyInitial != domain.TBA && !seenTime[prior.FacultyInitial] &&
				slotsNearby(target.Schedule, prior.Schedule) {
				seenTime[prior.FacultyInitial] = true
				result.TimeMatches = append(result.TimeMatches, entry(prior, dataset.SemesterID))
			}

			if target.Room == domain.TBA && prior.Room != domain.TBA &&
				prior.FacultyInitial != domain.TBA && !seenRoom[prior.FacultyInitial] {
				seenRoom[prior.FacultyInitial] = true
				result.RoomMatches = append(result.RoomMatches, entry(prior, dataset.SemesterID))
			}
		}
	}

	return result
}

func entry(c domain.Course, semesterID string) Entry {
	return Entry{
		Faculty:    c.FacultyInitial,
		Section:    c.Section,
		SemesterID: semesterID,
		Schedule:   c.Schedule,
		Room:       c.Room,
	}
}

// slotsNearby reports whether any pair of slots shares a day with start
// times fewer than proximityMinutes apart.
func slotsNearby(a, b []domain.TimeSlot) bool {
	for _, sa := range a {
		for _, sb := range b {
			if sa.Day != sb.Day {
				continue
			}
			delta := sa.Start - sb.Start
			if delta < 0 {
				delta = -delta
			}
			if delta < proximityMinutes {
				return true
			}
		}
	}
	return false
}
