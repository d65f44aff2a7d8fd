// Package ics renders the full event mapping as an iCalendar document so
// the planner can be imported into other calendar apps.
package ics

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"

	"studycal/pkg/models"
	"studycal/pkg/store"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"

	// Assignments and collab sessions have a start time but no duration in
	// the store; the exported VEVENT blocks out one hour.
	defaultDuration = time.Hour
)

// Write encodes the mapping as a VCALENDAR on w. Dates are emitted in
// ascending order so the output is deterministic.
func Write(w io.Writer, mapping store.Mapping) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//studycal//studycal//EN")

	dates := make([]string, 0, len(mapping))
	for date := range mapping {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	now := time.Now()
	for _, date := range dates {
		for _, event := range mapping[date] {
			comp, err := buildEvent(date, event, now)
			if err != nil {
				return err
			}
			cal.Children = append(cal.Children, comp)
		}
	}

	return ical.NewEncoder(w).Encode(cal)
}

func buildEvent(date string, event models.Event, stamp time.Time) (*ical.Component, error) {
	out := ical.NewEvent()
	out.Props.SetText(ical.PropUID, uuid.New().String())
	out.Props.SetDateTime(ical.PropDateTimeStamp, stamp)
	out.Props.SetText(ical.PropSummary, event.Title)

	switch event.Category {
	case models.CategoryAssignment:
		start, err := atClock(date, event.Time)
		if err != nil {
			return nil, err
		}
		out.Props.SetDateTime(ical.PropDateTimeStart, start)
		out.Props.SetDateTime(ical.PropDateTimeEnd, start.Add(defaultDuration))
		out.Props.SetText(ical.PropDescription, event.Description)
	case models.CategoryTimetable:
		start, err := atClock(date, event.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := atClock(date, event.EndTime)
		if err != nil {
			return nil, err
		}
		out.Props.SetDateTime(ical.PropDateTimeStart, start)
		out.Props.SetDateTime(ical.PropDateTimeEnd, end)
	case models.CategoryCollab:
		start, err := atClock(date, event.Time)
		if err != nil {
			return nil, err
		}
		out.Props.SetDateTime(ical.PropDateTimeStart, start)
		out.Props.SetDateTime(ical.PropDateTimeEnd, start.Add(defaultDuration))
		if len(event.Participants) > 0 {
			out.Props.SetText(ical.PropDescription, "Participants: "+strings.Join(event.Participants, ", "))
		}
	default:
		return nil, fmt.Errorf("unknown event category %q", event.Category)
	}

	return out.Component, nil
}

// atClock combines a date key and an HH:MM clock into a local time.
func atClock(date, clock string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout+" "+clockLayout, date+" "+clock, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("cannot export event at %s %s: %w", date, clock, err)
	}
	return t, nil
}
