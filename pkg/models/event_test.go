package models

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestDisplayTime(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  string
	}{
		{name: "assignment", event: NewAssignment("Homework", "09:00", "read"), want: "09:00"},
		{name: "collab", event: NewCollab("Standup", "08:45", []string{"gan"}), want: "08:45"},
		{name: "timetable derives", event: NewTimetable("Math", "09:00", "10:30"), want: "09:00-10:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.DisplayTime(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDisplayLine(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  string
	}{
		{
			name:  "assignment",
			event: NewAssignment("Homework", "09:00", "Finish reading"),
			want:  "09:00 Homework (Finish reading)",
		},
		{
			name:  "timetable",
			event: NewTimetable("Math", "09:00", "10:30"),
			want:  "09:00-10:30 Math",
		},
		{
			name:  "collab",
			event: NewCollab("Standup", "08:45", []string{"john", "mary"}),
			want:  "08:45 Standup [john, mary]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.DisplayLine(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMarshalShapes(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  string
	}{
		{
			name:  "assignment",
			event: NewAssignment("Homework", "09:00", "Finish reading"),
			want:  `{"title":"Homework","category":"Assignment","time":"09:00","description":"Finish reading"}`,
		},
		{
			name:  "timetable stores null time",
			event: NewTimetable("Math", "09:00", "10:30"),
			want:  `{"title":"Math","category":"Timetable","time":null,"startTime":"09:00","endTime":"10:30"}`,
		},
		{
			name:  "collab",
			event: NewCollab("Standup", "08:45", []string{"john", "mary"}),
			want:  `{"title":"Standup","category":"Collab","time":"08:45","participants":["john","mary"]}`,
		},
		{
			name:  "collab without participants",
			event: NewCollab("Standup", "08:45", nil),
			want:  `{"title":"Standup","category":"Collab","time":"08:45","participants":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.event)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("got %s, want %s", data, tt.want)
			}
		})
	}
}

func TestMarshalRejectsUnknownCategory(t *testing.T) {
	_, err := json.Marshal(Event{Title: "Party", Category: "Birthday"})
	if err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestRoundTrip(t *testing.T) {
	events := []Event{
		NewAssignment("Homework", "09:00", "Finish reading"),
		NewTimetable("Math", "09:00", "10:30"),
		NewCollab("Standup", "08:45", []string{"john", "john", "mary"}),
	}

	for _, event := range events {
		data, err := json.Marshal(event)
		if err != nil {
			t.Fatalf("marshal %s: %v", event.Category, err)
		}

		var got Event
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("unmarshal %s: %v", event.Category, err)
		}

		want := event
		if want.Category == CategoryCollab && want.Participants == nil {
			want.Participants = []string{}
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("round trip changed event: got %+v, want %+v", got, want)
		}
	}
}

func TestUnmarshalRejectsUnknownCategory(t *testing.T) {
	err := json.Unmarshal([]byte(`{"title":"Party","category":"Birthday","time":"09:00"}`), &Event{})
	if err == nil || !strings.Contains(err.Error(), "Birthday") {
		t.Fatalf("expected unknown category error, got %v", err)
	}
}
