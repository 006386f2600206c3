// Package render turns query results into terminal output. It is the
// only place that formats courses for humans; the engine hands it plain
// data and never renders anything itself.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/itzMRZ/usisportal/internal/core/domain"
	"github.com/itzMRZ/usisportal/internal/engine/loader"
	"github.com/itzMRZ/usisportal/internal/engine/match"
	"github.com/itzMRZ/usisportal/internal/engine/query"
	"github.com/itzMRZ/usisportal/internal/engine/timecodec"
	"github.com/itzMRZ/usisportal/internal/ui/style"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(style.Iris)
	dimStyle    = lipgloss.NewStyle().Foreground(style.Slate)
	tbaStyle    = lipgloss.NewStyle().Foreground(style.Yellow)
	okStyle     = lipgloss.NewStyle().Foreground(style.Green)
	failStyle   = lipgloss.NewStyle().Foreground(style.Red)
)

const rowFormat = "%-10s %-8s %-10s %-30s %-10s %-14s %-10s"

// CourseTable renders one page of courses as a fixed-width table. The
// faculty column shows the initial, the way the portal's table did.
func CourseTable(courses []domain.Course) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf(rowFormat, "CODE", "SECTION", "FACULTY", "SCHEDULE", "SEATS", "EXAM", "ROOM")))
	b.WriteString("\n")

	for _, c := range courses {
		faculty := c.FacultyInitial
		if faculty == domain.TBA {
			faculty = tbaStyle.Render(domain.TBA)
		}
		b.WriteString(fmt.Sprintf(rowFormat, c.Code, c.Section, faculty, scheduleCell(c), seatsCell(c.Seats), c.ExamDate, c.Room))
		b.WriteString("\n")
	}

	return b.String()
}

func scheduleCell(c domain.Course) string {
	if len(c.Schedule) == 0 {
		return domain.TBA
	}

	parts := make([]string, 0, len(c.Schedule))
	for _, slot := range c.Schedule {
		parts = append(parts, timecodec.RenderSlot(slot))
	}
	return strings.Join(parts, ", ")
}

// seatsCell renders available/booked/capacity, with the waitlist tacked
// on when one exists.
func seatsCell(seats *domain.SeatInfo) string {
	if seats == nil {
		return "-"
	}
	cell := fmt.Sprintf("%d/%d/%d", seats.Available, seats.Booked, seats.Capacity)
	if seats.Waitlist > 0 {
		cell += fmt.Sprintf("+%d", seats.Waitlist)
	}
	return cell
}

// PaginationLine renders the page position under a table.
func PaginationLine(info query.Info) string {
	if info.TotalPages == 0 {
		return dimStyle.Render("no matching courses")
	}
	return dimStyle.Render(fmt.Sprintf("page %d of %d", info.Page, info.TotalPages))
}

// OutcomeLines renders the per-semester result of a preload.
func OutcomeLines(outcomes []loader.Outcome) string {
	var b strings.Builder

	for _, outcome := range outcomes {
		if outcome.Err != nil {
			b.WriteString(failStyle.Render(fmt.Sprintf("%s %s: load failed", style.Cross, outcome.SemesterID)))
		} else {
			b.WriteString(okStyle.Render(fmt.Sprintf("%s %s: %d courses (%s)",
				style.Check, outcome.SemesterID, outcome.Count, outcome.Provenance)))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// ProvenanceLine renders the data-origin badge for a semester.
func ProvenanceLine(semesterID string, prov domain.Provenance) string {
	var badge string
	switch prov {
	case domain.ProvenanceLive:
		badge = okStyle.Render(style.Dot + " live")
	case domain.ProvenanceOffline:
		badge = tbaStyle.Render(style.Dot + " offline")
	case domain.ProvenanceArchived:
		badge = dimStyle.Render(style.Circle + " archived")
	}
	return fmt.Sprintf("%s %s", semesterID, badge)
}

// MatchHints renders the matcher's advisory hints for one TBA course.
func MatchHints(result match.Result) string {
	if result.Empty() {
		return dimStyle.Render("no cross-semester hints")
	}

	var b strings.Builder

	writeCategory := func(title string, entries []match.Entry) {
		if len(entries) == 0 {
			return
		}
		b.WriteString(headerStyle.Render(title))
		b.WriteString("\n")
		for _, e := range entries {
			b.WriteString(fmt.Sprintf("  %s [%s] %s", e.Faculty, e.SemesterID, hintDetail(e)))
			b.WriteString("\n")
		}
	}

	writeCategory("Section history", result.SectionHistory)
	writeCategory("Similar time slots", result.TimeMatches)
	writeCategory("Known rooms", result.RoomMatches)

	return b.String()
}

func hintDetail(e match.Entry) string {
	parts := []string{"section " + e.Section}
	if len(e.Schedule) > 0 {
		parts = append(parts, timecodec.RenderSlot(e.Schedule[0]))
	}
	if e.Room != "" && e.Room != domain.TBA {
		parts = append(parts, e.Room)
	}
	return dimStyle.Render(strings.Join(parts, ", "))
}
