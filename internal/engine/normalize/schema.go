package normalize

import (
	"encoding/json"
	"strconv"
	"strings"
)

// flexInt decodes an integer the way the upstream feed delivers it:
// sometimes a JSON number, sometimes a numeric string, sometimes junk.
// Junk and null decode to zero, matching the portal's parseInt usage.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	text := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if text == "" || text == "null" {
		*f = 0
		return nil
	}

	// parseInt semantics: consume the leading integer prefix, zero otherwise.
	end := 0
	if end < len(text) && (text[end] == '-' || text[end] == '+') {
		end++
	}
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}

	n, err := strconv.Atoi(text[:end])
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexInt(n)
	return nil
}

// flexString decodes a field that is sometimes a string and sometimes a
// bare number (the legacy dayNo field does both).
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// connectRecord is the newer nested schema served by the live feed.
type connectRecord struct {
	CourseCode      string           `json:"courseCode"`
	SectionName     string           `json:"sectionName"`
	Faculties       string           `json:"faculties"`
	Capacity        flexInt          `json:"capacity"`
	ConsumedSeat    flexInt          `json:"consumedSeat"`
	WaitlistSeats   flexInt          `json:"waitlistSeats"`
	ExamDate        string           `json:"examDate"`
	SectionSchedule *sectionSchedule `json:"sectionSchedule"`
}

type sectionSchedule struct {
	FinalExamDetail string         `json:"finalExamDetail"`
	ClassSchedules  []classMeeting `json:"classSchedules"`
}

type classMeeting struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Room      string `json:"room"`
	RoomNo    string `json:"roomNo"`
}

// legacyRecord is the flat schema of the older semester dumps. The
// LabSchedule casing is the upstream's, not ours.
type legacyRecord struct {
	CourseCode          string     `json:"courseCode"`
	CourseDetails       string     `json:"courseDetails"`
	EmpName             string     `json:"empName"`
	EmpShortName        string     `json:"empShortName"`
	ClassSchedule       string     `json:"classSchedule"`
	LabSchedule         string     `json:"LabSchedule"`
	RoomNo              string     `json:"roomNo"`
	LabRoomNo           string     `json:"labRoomNo"`
	ExamDate            string     `json:"examDate"`
	DayNo               flexString `json:"dayNo"`
	DefaultSeatCapacity *flexInt   `json:"defaultSeatCapacity"`
	TotalFillupSeat     *flexInt   `json:"totalFillupSeat"`
	AvailableSeat       *flexInt   `json:"availableSeat"`
}
