// Package validate turns raw form input into valid events. Every rule is
// all-or-nothing: a call either returns a complete event or a *Error and
// leaves nothing half built.
package validate

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"studycal/pkg/models"
)

// Code names the rule that rejected the input.
type Code string

const (
	EmptyTitle             Code = "empty_title"
	InvalidTitleChars      Code = "invalid_title_chars"
	BadTimeFormat          Code = "bad_time_format"
	EndBeforeStart         Code = "end_before_start"
	EmptyDescription       Code = "empty_description"
	InvalidParticipantName Code = "invalid_participant_name"
)

// Error is a validation failure suitable for direct display.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func fail(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// clockLayout is the only accepted time format, a 24-hour HH:MM clock.
const clockLayout = "15:04"

// RawFields carries the unvalidated form input. Each category reads only
// the fields its builder needs; the rest are ignored.
type RawFields struct {
	Title        string
	Time         string
	Description  string
	StartTime    string
	EndTime      string
	Participants string // comma-separated names
}

// Record validates the fields required by category and builds the event.
func Record(category models.Category, fields RawFields) (models.Event, error) {
	switch category {
	case models.CategoryAssignment:
		return Assignment(fields.Title, fields.Time, fields.Description)
	case models.CategoryTimetable:
		return Timetable(fields.Title, fields.StartTime, fields.EndTime)
	case models.CategoryCollab:
		return Collab(fields.Title, fields.Time, fields.Participants)
	}
	return models.Event{}, fmt.Errorf("unknown event category %q", category)
}

// Assignment validates and builds an assignment event.
func Assignment(title, clock, description string) (models.Event, error) {
	title, err := checkTitle(title)
	if err != nil {
		return models.Event{}, err
	}
	clock, err = checkClock(clock)
	if err != nil {
		return models.Event{}, err
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return models.Event{}, fail(EmptyDescription, "description cannot be empty")
	}
	return models.NewAssignment(title, clock, description), nil
}

// Timetable validates and builds a timetable slot. The end clock must be
// strictly later than the start clock within the same day.
func Timetable(title, startClock, endClock string) (models.Event, error) {
	title, err := checkTitle(title)
	if err != nil {
		return models.Event{}, err
	}
	startClock, err = checkClock(startClock)
	if err != nil {
		return models.Event{}, err
	}
	endClock, err = checkClock(endClock)
	if err != nil {
		return models.Event{}, err
	}

	start, _ := time.Parse(clockLayout, startClock)
	end, _ := time.Parse(clockLayout, endClock)
	if !end.After(start) {
		return models.Event{}, fail(EndBeforeStart, "end time must be later than start time")
	}

	return models.NewTimetable(title, startClock, endClock), nil
}

// Collab validates and builds a collaborative session. Blank entries
// between commas are dropped silently; a name containing a digit rejects
// the whole call.
func Collab(title, clock, participants string) (models.Event, error) {
	title, err := checkTitle(title)
	if err != nil {
		return models.Event{}, err
	}
	clock, err = checkClock(clock)
	if err != nil {
		return models.Event{}, err
	}
	names, err := Participants(participants)
	if err != nil {
		return models.Event{}, err
	}
	return models.NewCollab(title, clock, names), nil
}

// Participants splits a comma-separated participant list, trimming each
// name and preserving order and duplicates.
func Participants(raw string) ([]string, error) {
	names := []string{}
	for _, part := range strings.Split(raw, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		if strings.ContainsFunc(name, unicode.IsDigit) {
			return nil, fail(InvalidParticipantName, "participant name %q cannot contain numbers", name)
		}
		names = append(names, name)
	}
	return names, nil
}

// checkTitle trims the title and ensures it is non-empty and made of
// letters and spaces only.
func checkTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", fail(EmptyTitle, "title cannot be empty")
	}
	for _, r := range title {
		if !unicode.IsLetter(r) && r != ' ' {
			return "", fail(InvalidTitleChars, "title cannot contain numbers or symbols")
		}
	}
	return title, nil
}

// checkClock trims and parses an HH:MM 24-hour clock, returning the
// trimmed text on success.
func checkClock(clock string) (string, error) {
	clock = strings.TrimSpace(clock)
	if _, err := time.Parse(clockLayout, clock); err != nil {
		return "", fail(BadTimeFormat, "invalid time format, use HH:MM")
	}
	return clock, nil
}
