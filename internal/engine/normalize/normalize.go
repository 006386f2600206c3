// Package normalize maps the two raw upstream schema variants into the
// canonical Course record.
package normalize

import (
	"encoding/json"
	"regexp"
	"strings"

	"go.trai.ch/zerr"

	"github.com/itzMRZ/usisportal/internal/core/domain"
	"github.com/itzMRZ/usisportal/internal/engine/timecodec"
)

// sectionToken extracts the bracketed section label from the legacy
// free-text courseDetails field, e.g. "Intro to Sociology [7]".
var sectionToken = regexp.MustCompile(`\[(.*?)\]`)

// Skipped reports one schedule line that could not be parsed. The owning
// course is still emitted; only the line is dropped.
type Skipped struct {
	Course string
	Line   string
	Reason string
}

// Courses decodes raw records of the given schema variant into canonical
// courses, in input order. One record in, one course out: missing fields
// degrade to sentinels, never drop the record. Unparseable schedule
// lines are collected as Skipped instead of failing the course.
func Courses(records []json.RawMessage, format domain.SchemaFormat) ([]domain.Course, []Skipped, error) {
	courses := make([]domain.Course, 0, len(records))
	var skipped []Skipped

	for _, raw := range records {
		var (
			course domain.Course
			err    error
		)

		switch format {
		case domain.FormatSpring25:
			course, err = connectCourse(raw, &skipped)
		case domain.FormatOld:
			course, err = legacyCourse(raw, &skipped)
		default:
			return nil, nil, zerr.With(domain.ErrUnknownSchemaFormat, "format", string(format))
		}
		if err != nil {
			return nil, nil, err
		}

		courses = append(courses, course)
	}

	return courses, skipped, nil
}

func connectCourse(raw json.RawMessage, skipped *[]Skipped) (domain.Course, error) {
	var rec connectRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return domain.Course{}, zerr.Wrap(err, domain.ErrPayloadFormat.Error())
	}

	course := domain.Course{
		Code:           rec.CourseCode,
		Section:        rec.SectionName,
		Faculty:        orTBA(rec.Faculties),
		FacultyInitial: orTBA(rec.Faculties),
		ExamDate:       domain.TBA,
		Room:           domain.TBA,
		Seats: &domain.SeatInfo{
			Available: int(rec.Capacity) - int(rec.ConsumedSeat),
			Booked:    int(rec.ConsumedSeat),
			Capacity:  int(rec.Capacity),
			Waitlist:  int(rec.WaitlistSeats),
		},
	}

	if rec.SectionSchedule != nil && rec.SectionSchedule.FinalExamDetail != "" {
		course.ExamDate = rec.SectionSchedule.FinalExamDetail
	} else if rec.ExamDate != "" {
		course.ExamDate = rec.ExamDate
	}

	if rec.SectionSchedule != nil {
		for _, meeting := range rec.SectionSchedule.ClassSchedules {
			slot, err := meetingSlot(meeting)
			if err != nil {
				*skipped = append(*skipped, Skipped{
					Course: rec.CourseCode,
					Line:   meeting.Day + " " + meeting.StartTime,
					Reason: err.Error(),
				})
				continue
			}
			course.Schedule = append(course.Schedule, slot)
		}

		if len(rec.SectionSchedule.ClassSchedules) > 0 {
			first := rec.SectionSchedule.ClassSchedules[0]
			switch {
			case first.Room != "":
				course.Room = first.Room
			case first.RoomNo != "":
				course.Room = first.RoomNo
			}
		}
	}

	return course, nil
}

func legacyCourse(raw json.RawMessage, skipped *[]Skipped) (domain.Course, error) {
	var rec legacyRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return domain.Course{}, zerr.Wrap(err, domain.ErrPayloadFormat.Error())
	}

	course := domain.Course{
		Code:           rec.CourseCode,
		Faculty:        orTBA(rec.EmpName),
		FacultyInitial: orTBA(rec.EmpShortName),
		ExamDate:       domain.TBA,
		Room:           orTBA(rec.RoomNo),
		LabRoom:        rec.LabRoomNo,
	}

	if m := sectionToken.FindStringSubmatch(rec.CourseDetails); m != nil {
		course.Section = m[1]
	}

	switch {
	case rec.ExamDate != "":
		course.ExamDate = rec.ExamDate
	case rec.DayNo != "":
		course.ExamDate = string(rec.DayNo)
	}

	// Legacy dumps only carry seat data on some semesters; a partial
	// triple means the dump predates seat tracking, not zero seats.
	if rec.DefaultSeatCapacity != nil && rec.TotalFillupSeat != nil && rec.AvailableSeat != nil {
		course.Seats = &domain.SeatInfo{
			Available: int(*rec.AvailableSeat),
			Booked:    int(*rec.TotalFillupSeat),
			Capacity:  int(*rec.DefaultSeatCapacity),
		}
	}

	course.Schedule = scheduleLines(rec.CourseCode, rec.ClassSchedule, skipped)
	course.LabSchedule = scheduleLines(rec.CourseCode, rec.LabSchedule, skipped)

	return course, nil
}

// meetingSlot converts one nested class meeting into a TimeSlot.
func meetingSlot(meeting classMeeting) (domain.TimeSlot, error) {
	start, err := timecodec.ToMinutes(meeting.StartTime)
	if err != nil {
		return domain.TimeSlot{}, err
	}
	end, err := timecodec.ToMinutes(meeting.EndTime)
	if err != nil {
		return domain.TimeSlot{}, err
	}

	return domain.TimeSlot{
		Day:   timecodec.DayCode(meeting.Day),
		Start: start,
		End:   &end,
	}, nil
}

// scheduleLines parses a newline-separated legacy schedule field,
// collecting unparseable lines rather than failing the course.
func scheduleLines(code, field string, skipped *[]Skipped) []domain.TimeSlot {
	if strings.TrimSpace(field) == "" {
		return nil
	}

	var slots []domain.TimeSlot
	for _, line := range strings.Split(field, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		slot, err := timecodec.ParseScheduleLine(line)
		if err != nil {
			*skipped = append(*skipped, Skipped{Course: code, Line: line, Reason: err.Error()})
			continue
		}
		slots = append(slots, slot)
	}
	return slots
}

func orTBA(s string) string {
	if s == "" {
		return domain.TBA
	}
	return s
}
