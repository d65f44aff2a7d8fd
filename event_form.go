package main

import (
	"errors"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"studycal/pkg/models"
	"studycal/pkg/store"
	"studycal/pkg/validate"
)

// openEventForm opens the add/edit popup for one date. index < 0 means a
// new event; otherwise the record at index is edited in place. Only one
// popup may be open at a time.
func (p *Planner) openEventForm(date string, index int) {
	if p.activeForm != nil {
		p.activeForm.RequestFocus()
		return
	}

	editing := index >= 0
	var existing models.Event
	if editing {
		bucket := p.store.Events(date)
		if index >= len(bucket) {
			return
		}
		existing = bucket[index]
	}

	title := "Add Event"
	if editing {
		title = "Edit Event"
	}
	form := p.app.NewWindow(title + " - " + date)
	p.activeForm = form
	form.SetOnClosed(func() {
		p.activeForm = nil
	})

	titleEntry := widget.NewEntry()
	titleEntry.SetPlaceHolder("Letters and spaces only")

	timeEntry := widget.NewEntry()
	timeEntry.SetPlaceHolder("HH:MM")
	descEntry := widget.NewMultiLineEntry()
	descEntry.SetPlaceHolder("What needs doing")
	startEntry := widget.NewEntry()
	startEntry.SetPlaceHolder("HH:MM")
	endEntry := widget.NewEntry()
	endEntry.SetPlaceHolder("HH:MM")
	participantsEntry := widget.NewEntry()
	participantsEntry.SetPlaceHolder("e.g. gan, ash")

	// Extra fields swap with the chosen category; the core never branches
	// on which fields exist, only this form does.
	extra := container.NewVBox()
	selected := models.CategoryAssignment
	rebuild := func(category models.Category) {
		selected = category
		switch category {
		case models.CategoryAssignment:
			extra.Objects = []fyne.CanvasObject{
				widget.NewLabel("Time (HH:MM):"), timeEntry,
				widget.NewLabel("Description:"), descEntry,
			}
		case models.CategoryTimetable:
			extra.Objects = []fyne.CanvasObject{
				widget.NewLabel("Start Time (HH:MM):"), startEntry,
				widget.NewLabel("End Time (HH:MM):"), endEntry,
			}
		case models.CategoryCollab:
			extra.Objects = []fyne.CanvasObject{
				widget.NewLabel("Time (HH:MM):"), timeEntry,
				widget.NewLabel("Participants:"), participantsEntry,
			}
		}
		extra.Refresh()
	}

	categoryNames := []string{}
	for _, category := range models.Categories() {
		categoryNames = append(categoryNames, string(category))
	}
	categorySelect := widget.NewSelect(categoryNames, func(name string) {
		rebuild(models.Category(name))
	})

	if editing {
		titleEntry.SetText(existing.Title)
		switch existing.Category {
		case models.CategoryAssignment:
			timeEntry.SetText(existing.Time)
			descEntry.SetText(existing.Description)
		case models.CategoryTimetable:
			startEntry.SetText(existing.StartTime)
			endEntry.SetText(existing.EndTime)
		case models.CategoryCollab:
			timeEntry.SetText(existing.Time)
			participantsEntry.SetText(strings.Join(existing.Participants, ", "))
		}
		categorySelect.SetSelected(string(existing.Category))
	} else {
		categorySelect.SetSelected(string(models.CategoryAssignment))
	}

	saveButton := widget.NewButton("Save Event", func() {
		event, err := validate.Record(selected, validate.RawFields{
			Title:        titleEntry.Text,
			Time:         timeEntry.Text,
			Description:  descEntry.Text,
			StartTime:    startEntry.Text,
			EndTime:      endEntry.Text,
			Participants: participantsEntry.Text,
		})
		if err != nil {
			dialog.ShowError(err, form)
			return
		}

		if editing {
			err = p.store.Edit(date, index, event)
		} else {
			err = p.store.Add(date, event)
		}

		switch {
		case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrIndexOutOfRange):
			// Stale date or index: nothing was changed.
			dialog.ShowError(err, form)
			return
		case err != nil:
			// The in-memory mutation stands; only the flush failed.
			p.log.Error().Err(err).Str("date", date).Msg("failed to save calendar")
			dialog.ShowError(err, p.window)
		default:
			p.log.Info().Str("date", date).Str("category", string(event.Category)).
				Bool("edit", editing).Msg("event saved")
		}

		p.redrawCalendar()
		form.Close()
	})
	saveButton.Importance = widget.SuccessImportance

	form.SetContent(container.NewVBox(
		widget.NewLabel("Title:"),
		titleEntry,
		widget.NewLabel("Category:"),
		categorySelect,
		extra,
		container.NewCenter(saveButton),
	))
	form.Resize(fyne.NewSize(350, 420))
	form.Show()
}
