package main

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"studycal/pkg/models"
	"studycal/pkg/store"
)

type pickerEntry struct {
	date  string
	index int
	line  string
}

// showDeletePicker opens the deletion window: one list per category, all
// dates flattened, the selected row deleted through the store.
func (p *Planner) showDeletePicker() {
	if p.activeForm != nil {
		p.activeForm.RequestFocus()
		return
	}
	if p.store.Empty() {
		dialog.ShowInformation("No Events", "There are no events to delete.", p.window)
		return
	}

	form := p.app.NewWindow("Delete Event")
	p.activeForm = form
	form.SetOnClosed(func() {
		p.activeForm = nil
	})

	entries := map[models.Category][]pickerEntry{}
	for _, date := range p.store.Dates() {
		for i, event := range p.store.Events(date) {
			entries[event.Category] = append(entries[event.Category], pickerEntry{
				date:  date,
				index: i,
				line:  date + " | " + event.DisplayLine(),
			})
		}
	}

	selected := map[models.Category]int{}
	lists := map[models.Category]*widget.List{}
	columns := []fyne.CanvasObject{}
	for _, category := range models.Categories() {
		category := category
		selected[category] = -1
		rows := entries[category]

		list := widget.NewList(
			func() int {
				return len(rows)
			},
			func() fyne.CanvasObject {
				label := widget.NewLabel("")
				label.Truncation = fyne.TextTruncateEllipsis
				return label
			},
			func(id widget.ListItemID, obj fyne.CanvasObject) {
				obj.(*widget.Label).SetText(rows[id].line)
			},
		)
		list.OnSelected = func(id widget.ListItemID) {
			selected[category] = id
			// Keep at most one row selected across the three lists.
			for other, otherList := range lists {
				if other != category {
					selected[other] = -1
					otherList.UnselectAll()
				}
			}
		}
		lists[category] = list

		header := widget.NewLabel(string(category))
		header.TextStyle.Bold = true
		header.Alignment = fyne.TextAlignCenter
		columns = append(columns, container.NewBorder(header, nil, nil, nil, list))
	}

	deleteButton := widget.NewButton("Delete Selected", func() {
		for _, category := range models.Categories() {
			id := selected[category]
			if id < 0 || id >= len(entries[category]) {
				continue
			}
			entry := entries[category][id]

			err := p.store.Delete(entry.date, entry.index)
			switch {
			case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrIndexOutOfRange):
				dialog.ShowError(err, form)
				return
			case err != nil:
				p.log.Error().Err(err).Str("date", entry.date).Msg("failed to save calendar")
				dialog.ShowError(err, p.window)
			default:
				p.log.Info().Str("date", entry.date).Int("index", entry.index).Msg("event deleted")
			}

			p.redrawCalendar()
			form.Close()
			dialog.ShowInformation("Deleted", "Event deleted successfully.", p.window)
			return
		}
		dialog.ShowInformation("No Selection", "Please select an event to delete.", form)
	})
	deleteButton.Importance = widget.DangerImportance

	hint := widget.NewLabel("Select an event to delete (grouped by category):")
	form.SetContent(container.NewBorder(
		hint,
		container.NewPadded(container.NewCenter(deleteButton)),
		nil,
		nil,
		container.NewGridWithColumns(len(columns), columns...),
	))
	form.Resize(fyne.NewSize(750, 400))
	form.Show()
}
