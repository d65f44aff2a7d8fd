package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Category identifies one of the fixed event kinds. The set is closed:
// serialization and display switch over it exhaustively.
type Category string

const (
	CategoryAssignment Category = "Assignment"
	CategoryTimetable  Category = "Timetable"
	CategoryCollab     Category = "Collab"
)

// Categories returns the closed category set in display order.
func Categories() []Category {
	return []Category{CategoryAssignment, CategoryTimetable, CategoryCollab}
}

// Event is one validated calendar entry. It is a tagged variant: Category
// selects which of the optional fields are meaningful. Callers construct
// events through the per-category constructors and never set variant
// fields directly.
type Event struct {
	Title    string
	Category Category

	// Assignment and Collab
	Time string // HH:MM

	// Assignment only
	Description string

	// Timetable only; the display time is derived, never stored
	StartTime string // HH:MM
	EndTime   string // HH:MM

	// Collab only; insertion order preserved, duplicates allowed
	Participants []string
}

// NewAssignment builds an assignment event.
func NewAssignment(title, clock, description string) Event {
	return Event{
		Title:       title,
		Category:    CategoryAssignment,
		Time:        clock,
		Description: description,
	}
}

// NewTimetable builds a fixed timetable slot.
func NewTimetable(title, startClock, endClock string) Event {
	return Event{
		Title:     title,
		Category:  CategoryTimetable,
		StartTime: startClock,
		EndTime:   endClock,
	}
}

// NewCollab builds a collaborative session event.
func NewCollab(title, clock string, participants []string) Event {
	return Event{
		Title:        title,
		Category:     CategoryCollab,
		Time:         clock,
		Participants: participants,
	}
}

// DisplayTime returns the time shown next to the event. For timetable
// slots it is computed from the start and end clocks on demand so there
// is a single source of truth.
func (e Event) DisplayTime() string {
	if e.Category == CategoryTimetable {
		return e.StartTime + "-" + e.EndTime
	}
	return e.Time
}

// DisplayLine renders the one-line form used by the calendar grid and the
// delete picker.
func (e Event) DisplayLine() string {
	switch e.Category {
	case CategoryAssignment:
		return fmt.Sprintf("%s %s (%s)", e.Time, e.Title, e.Description)
	case CategoryTimetable:
		return fmt.Sprintf("%s-%s %s", e.StartTime, e.EndTime, e.Title)
	case CategoryCollab:
		return fmt.Sprintf("%s %s [%s]", e.Time, e.Title, strings.Join(e.Participants, ", "))
	}
	return e.Title
}

// Per-category document shapes. Timetable carries an explicit null time so
// the stored document never duplicates the derived display time.
type assignmentDoc struct {
	Title       string   `json:"title"`
	Category    Category `json:"category"`
	Time        string   `json:"time"`
	Description string   `json:"description"`
}

type timetableDoc struct {
	Title     string   `json:"title"`
	Category  Category `json:"category"`
	Time      *string  `json:"time"`
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
}

type collabDoc struct {
	Title        string   `json:"title"`
	Category     Category `json:"category"`
	Time         string   `json:"time"`
	Participants []string `json:"participants"`
}

// eventDoc is the superset shape used when reading the durable document.
type eventDoc struct {
	Title        string   `json:"title"`
	Category     Category `json:"category"`
	Time         *string  `json:"time"`
	Description  string   `json:"description"`
	StartTime    string   `json:"startTime"`
	EndTime      string   `json:"endTime"`
	Participants []string `json:"participants"`
}

// MarshalJSON writes the category-specific document shape.
func (e Event) MarshalJSON() ([]byte, error) {
	switch e.Category {
	case CategoryAssignment:
		return json.Marshal(assignmentDoc{
			Title:       e.Title,
			Category:    e.Category,
			Time:        e.Time,
			Description: e.Description,
		})
	case CategoryTimetable:
		return json.Marshal(timetableDoc{
			Title:     e.Title,
			Category:  e.Category,
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
		})
	case CategoryCollab:
		participants := e.Participants
		if participants == nil {
			participants = []string{}
		}
		return json.Marshal(collabDoc{
			Title:        e.Title,
			Category:     e.Category,
			Time:         e.Time,
			Participants: participants,
		})
	}
	return nil, fmt.Errorf("unknown event category %q", e.Category)
}

// UnmarshalJSON reads any of the category shapes and rejects categories
// outside the closed set.
func (e *Event) UnmarshalJSON(data []byte) error {
	var doc eventDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	clock := ""
	if doc.Time != nil {
		clock = *doc.Time
	}

	switch doc.Category {
	case CategoryAssignment:
		*e = NewAssignment(doc.Title, clock, doc.Description)
	case CategoryTimetable:
		*e = NewTimetable(doc.Title, doc.StartTime, doc.EndTime)
	case CategoryCollab:
		participants := doc.Participants
		if participants == nil {
			participants = []string{}
		}
		*e = NewCollab(doc.Title, clock, participants)
	default:
		return fmt.Errorf("unknown event category %q", doc.Category)
	}

	return nil
}
