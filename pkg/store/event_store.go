// Package store holds the date-indexed event collection and its persistence
// boundary. The store is driven by a single caller (the UI event loop) and
// is not safe for concurrent use.
package store

import (
	"errors"
	"sort"

	"studycal/pkg/models"
)

var (
	// ErrNotFound means the date has no bucket; the caller holds a stale date.
	ErrNotFound = errors.New("no events on that date")
	// ErrIndexOutOfRange means the index is outside the bucket; the caller
	// holds a stale index.
	ErrIndexOutOfRange = errors.New("event index out of range")
)

// EventStore maps date keys (YYYY-MM-DD) to ordered event buckets. A date
// key exists only while its bucket is non-empty. Every successful mutation
// writes the whole mapping through to the calendar file before returning;
// a failed write is reported but the in-memory mutation stands.
type EventStore struct {
	events Mapping
	file   *CalendarFile
}

// NewEventStore loads the durable document into a fresh store. On a load
// failure the returned store is still usable, starting empty, and the
// error is surfaced so the caller can report it.
func NewEventStore(file *CalendarFile) (*EventStore, error) {
	events, err := file.Load()
	if events == nil {
		events = Mapping{}
	}
	return &EventStore{events: events, file: file}, err
}

// Add appends the event to the date's bucket, creating the bucket if
// absent. The only possible failure is the persistence flush.
func (s *EventStore) Add(date string, event models.Event) error {
	s.events[date] = append(s.events[date], event)
	return s.file.Save(s.events)
}

// Edit replaces the event at index in the date's bucket.
func (s *EventStore) Edit(date string, index int, event models.Event) error {
	bucket, ok := s.events[date]
	if !ok {
		return ErrNotFound
	}
	if index < 0 || index >= len(bucket) {
		return ErrIndexOutOfRange
	}
	bucket[index] = event
	return s.file.Save(s.events)
}

// Delete removes the event at index in the date's bucket. Deleting the
// last event of a date removes the date key entirely.
func (s *EventStore) Delete(date string, index int) error {
	bucket, ok := s.events[date]
	if !ok {
		return ErrNotFound
	}
	if index < 0 || index >= len(bucket) {
		return ErrIndexOutOfRange
	}

	bucket = append(bucket[:index], bucket[index+1:]...)
	if len(bucket) == 0 {
		delete(s.events, date)
	} else {
		s.events[date] = bucket
	}

	return s.file.Save(s.events)
}

// Events returns a copy of the date's bucket in entry order, empty if the
// date is absent. It never fails.
func (s *EventStore) Events(date string) []models.Event {
	bucket := s.events[date]
	out := make([]models.Event, len(bucket))
	copy(out, bucket)
	return out
}

// All returns a copy of the full mapping for callers that enumerate events
// across dates, such as the delete picker and the export.
func (s *EventStore) All() Mapping {
	out := make(Mapping, len(s.events))
	for date, bucket := range s.events {
		events := make([]models.Event, len(bucket))
		copy(events, bucket)
		out[date] = events
	}
	return out
}

// Dates returns the date keys in ascending order.
func (s *EventStore) Dates() []string {
	dates := make([]string, 0, len(s.events))
	for date := range s.events {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// Empty reports whether the store holds no events at all.
func (s *EventStore) Empty() bool {
	return len(s.events) == 0
}
