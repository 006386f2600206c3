// Package timecodec converts the portal's 12-hour clock strings to and
// from minutes since midnight, and parses free-text schedule lines.
package timecodec

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.trai.ch/zerr"

	"github.com/itzMRZ/usisportal/internal/core/domain"
)

var (
	// clockPattern accepts "8:00 AM", "08:00AM" and meridiem-less "8:00".
	clockPattern = regexp.MustCompile(`(?i)^\s*(\d{1,2}):(\d{2})\s*([AP]M)?\s*$`)

	// scheduleLinePattern matches lines like "Sunday(8:00 AM-9:20 AM-CSE Lab)".
	scheduleLinePattern = regexp.MustCompile(`(?i)(\w+)\((\d+:\d+ [AP]M)`)
)

// ToMinutes parses a 12-hour clock string into minutes since midnight.
// An empty string maps to 0, the value upstream uses for unset times.
func ToMinutes(text string) (int, error) {
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}

	m := clockPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, zerr.With(domain.ErrClockParse, "clock", text)
	}

	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, zerr.With(domain.ErrClockParse, "clock", text)
	}
	minutes, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, zerr.With(domain.ErrClockParse, "clock", text)
	}

	total := hours*60 + minutes

	// A missing meridiem is accepted as-is; only hour 1-12 inputs carry one
	// upstream, and the 24h reading is then already correct.
	switch strings.ToUpper(m[3]) {
	case "PM":
		if hours < 12 {
			total += 12 * 60
		}
	case "AM":
		if hours == 12 {
			total -= 12 * 60
		}
	}

	return total, nil
}

// Format renders minutes since midnight as a 12-hour clock string,
// e.g. 480 becomes "8:00 AM".
func Format(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60

	meridiem := "AM"
	if hours >= 12 {
		meridiem = "PM"
	}

	display := hours % 12
	if display == 0 {
		display = 12
	}

	return fmt.Sprintf("%d:%02d %s", display, mins, meridiem)
}

// ParseScheduleLine parses one free-text schedule line of the legacy
// schema, e.g. "Sunday(8:00 AM-9:20 AM-FT-401)". The day is reduced to
// its three-letter code; the line format carries no usable end time.
func ParseScheduleLine(line string) (domain.TimeSlot, error) {
	m := scheduleLinePattern.FindStringSubmatch(line)
	if m == nil {
		return domain.TimeSlot{}, zerr.With(domain.ErrScheduleLine, "line", line)
	}

	start, err := ToMinutes(m[2])
	if err != nil {
		return domain.TimeSlot{}, zerr.With(err, "line", line)
	}

	return domain.TimeSlot{
		Day:   DayCode(m[1]),
		Start: start,
	}, nil
}

// DayCode reduces a day name to its canonical three-letter uppercase code.
func DayCode(day string) string {
	if len(day) > 3 {
		day = day[:3]
	}
	return strings.ToUpper(day)
}

// RenderSlot renders a time slot for display, e.g. "SUN 8:00 AM" or
// "SUN 8:00 AM - 9:20 AM" when an end time is known.
func RenderSlot(slot domain.TimeSlot) string {
	if slot.End == nil {
		return fmt.Sprintf("%s %s", slot.Day, Format(slot.Start))
	}
	return fmt.Sprintf("%s %s - %s", slot.Day, Format(slot.Start), Format(*slot.End))
}
