package main

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"studycal/pkg/models"
)

const firstYear, lastYear = 2000, 2100

func yearOptions() []string {
	years := make([]string, 0, lastYear-firstYear+1)
	for y := firstYear; y <= lastYear; y++ {
		years = append(years, yearLabel(y))
	}
	return years
}

func yearLabel(year int) string {
	return strconv.Itoa(year)
}

func parseYear(label string) (int, bool) {
	year, err := strconv.Atoi(label)
	return year, err == nil
}

func monthOptions() []string {
	months := make([]string, 0, 12)
	for m := time.January; m <= time.December; m++ {
		months = append(months, m.String())
	}
	return months
}

func parseMonth(label string) (time.Month, bool) {
	for m := time.January; m <= time.December; m++ {
		if m.String() == label {
			return m, true
		}
	}
	return 0, false
}

// redrawCalendar rebuilds the month grid from the store. The UI never
// caches events; every redraw re-queries.
func (p *Planner) redrawCalendar() {
	header := widget.NewLabel(fmt.Sprintf("%s %d", p.month, p.year))
	header.TextStyle.Bold = true
	header.Alignment = fyne.TextAlignCenter

	cells := []fyne.CanvasObject{}
	for _, day := range []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"} {
		label := widget.NewLabel(day)
		label.TextStyle.Bold = true
		label.Alignment = fyne.TextAlignCenter
		cells = append(cells, label)
	}

	first := time.Date(p.year, p.month, 1, 0, 0, 0, 0, time.Local)
	// Monday-first grid
	for i := 0; i < (int(first.Weekday())+6)%7; i++ {
		cells = append(cells, layout.NewSpacer())
	}

	today := time.Now()
	lastDay := time.Date(p.year, p.month+1, 0, 0, 0, 0, 0, time.Local).Day()
	for day := 1; day <= lastDay; day++ {
		cells = append(cells, p.buildDayCell(day, today))
	}
	for (len(cells)-7)%7 != 0 {
		cells = append(cells, layout.NewSpacer())
	}

	grid := container.NewGridWithColumns(7, cells...)
	p.content.Objects = []fyne.CanvasObject{
		container.NewBorder(header, nil, nil, nil, container.NewVScroll(grid)),
	}
	p.content.Refresh()
}

func (p *Planner) buildDayCell(day int, today time.Time) fyne.CanvasObject {
	date := fmt.Sprintf("%04d-%02d-%02d", p.year, int(p.month), day)

	dayButton := widget.NewButton(strconv.Itoa(day), func() {
		p.openEventForm(date, -1)
	})
	if today.Year() == p.year && today.Month() == p.month && today.Day() == day {
		dayButton.Importance = widget.HighImportance
	}

	items := []fyne.CanvasObject{dayButton}
	for i, event := range p.store.Events(date) {
		index := i
		entry := widget.NewButton(event.DisplayLine(), func() {
			p.openEventForm(date, index)
		})
		entry.Alignment = widget.ButtonAlignLeading
		entry.Importance = categoryImportance(event.Category)
		items = append(items, entry)
	}

	return container.NewVBox(items...)
}

// categoryImportance color-codes events the way the category legend reads:
// assignments red, timetable slots green, collab sessions blue.
func categoryImportance(category models.Category) widget.Importance {
	switch category {
	case models.CategoryAssignment:
		return widget.DangerImportance
	case models.CategoryTimetable:
		return widget.SuccessImportance
	case models.CategoryCollab:
		return widget.HighImportance
	}
	return widget.MediumImportance
}
