// Package query implements filtering, multi-key sorting and pagination
// over a semester's normalized course list.
package query

import (
	"sort"
	"strconv"
	"strings"

	"github.com/itzMRZ/usisportal/internal/core/domain"
	"github.com/itzMRZ/usisportal/internal/engine/timecodec"
)

// Direction selects a sort direction.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Sortable column keys. Seat keys compare numerically, the rest by
// locale-aware string order.
const (
	KeyCode           = "code"
	KeySection        = "section"
	KeyFaculty        = "faculty"
	KeyFacultyInitial = "facultyInitial"
	KeyExamDate       = "examDate"
	KeyRoom           = "room"
	KeyAvailable      = "available"
	KeyBooked         = "booked"
	KeyCapacity       = "capacity"
	KeyWaitlist       = "waitlist"
)

// Filter returns the courses matching the search text: a
// case-insensitive substring match against code, section, faculty, or
// any rendered "DAY H:MM AM" schedule entry. Blank text returns a copy
// of the full input in its original order.
func Filter(courses []domain.Course, text string) []domain.Course {
	needle := strings.ToUpper(strings.TrimSpace(text))
	if needle == "" {
		out := make([]domain.Course, len(courses))
		copy(out, courses)
		return out
	}

	out := make([]domain.Course, 0, len(courses))
	for _, c := range courses {
		if matches(c, needle) {
			out = append(out, c)
		}
	}
	return out
}

func matches(c domain.Course, needle string) bool {
	if strings.Contains(strings.ToUpper(c.Code), needle) ||
		strings.Contains(strings.ToUpper(c.Section), needle) ||
		strings.Contains(strings.ToUpper(c.Faculty), needle) {
		return true
	}
	for _, slot := range c.Schedule {
		rendered := slot.Day + " " + timecodec.Format(slot.Start)
		if strings.Contains(strings.ToUpper(rendered), needle) {
			return true
		}
	}
	return false
}

// Sort returns a new slice sorted by the requested key and direction.
// The ordering is a stable total order with a fixed tie-break chain:
// a non-code, non-section key compares first, then code ascending, then
// section ascending; section as primary key ties to code ascending; and
// code honors the direction only when it is itself the primary key.
func Sort(courses []domain.Course, key string, dir Direction) []domain.Course {
	out := make([]domain.Course, len(courses))
	copy(out, courses)

	sort.SliceStable(out, func(i, j int) bool {
		return compare(out[i], out[j], key, dir) < 0
	})
	return out
}

func compare(a, b domain.Course, key string, dir Direction) int {
	switch key {
	case KeySection:
		if c := directed(compareValues(a.Section, b.Section), dir); c != 0 {
			return c
		}
		return domain.Collate(a.Code, b.Code)

	case KeyCode:
		if c := directed(domain.Collate(a.Code, b.Code), dir); c != 0 {
			return c
		}
		return compareValues(a.Section, b.Section)

	default:
		if c := directed(compareValues(sortValue(a, key), sortValue(b, key)), dir); c != 0 {
			return c
		}
		// Code is a forced ascending tiebreaker when it is not the
		// primary key, regardless of direction.
		if c := domain.Collate(a.Code, b.Code); c != 0 {
			return c
		}
		return compareValues(a.Section, b.Section)
	}
}

func directed(cmp int, dir Direction) int {
	if dir == Descending {
		return -cmp
	}
	return cmp
}

// compareValues compares numerically when both operands parse as
// numbers, falling back to locale-aware string comparison.
func compareValues(a, b string) int {
	na, errA := strconv.ParseFloat(a, 64)
	nb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		default:
			return 0
		}
	}
	return domain.Collate(a, b)
}

// sortValue extracts the comparable value for a non-code, non-section
// key. Seat keys default to "0" when the course has no seat data; other
// keys default to the empty string.
func sortValue(c domain.Course, key string) string {
	switch key {
	case KeyFaculty:
		return c.Faculty
	case KeyFacultyInitial:
		return c.FacultyInitial
	case KeyExamDate:
		return c.ExamDate
	case KeyRoom:
		return c.Room
	case KeyAvailable, KeyBooked, KeyCapacity, KeyWaitlist:
		if c.Seats == nil {
			return "0"
		}
		switch key {
		case KeyAvailable:
			return strconv.Itoa(c.Seats.Available)
		case KeyBooked:
			return strconv.Itoa(c.Seats.Booked)
		case KeyCapacity:
			return strconv.Itoa(c.Seats.Capacity)
		default:
			return strconv.Itoa(c.Seats.Waitlist)
		}
	default:
		return ""
	}
}

// Info describes the pagination position over a filtered dataset.
type Info struct {
	Page       int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

// Paginate returns the 1-indexed page of the given size. Bounds are the
// caller's responsibility; out-of-range pages return an empty slice.
func Paginate(courses []domain.Course, pageSize, page int) []domain.Course {
	if pageSize < 1 || page < 1 {
		return nil
	}

	start := (page - 1) * pageSize
	if start >= len(courses) {
		return nil
	}

	end := start + pageSize
	if end > len(courses) {
		end = len(courses)
	}

	out := make([]domain.Course, end-start)
	copy(out, courses[start:end])
	return out
}

// PageCount returns ceil(len/pageSize).
func PageCount(total, pageSize int) int {
	if pageSize < 1 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
