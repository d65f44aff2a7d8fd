package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"studycal/pkg/ics"
)

// exportCalendar writes the whole store as an iCalendar file chosen by the
// user. The export is a read-only view; the durable document is untouched.
func (p *Planner) exportCalendar() {
	if p.store.Empty() {
		dialog.ShowInformation("Nothing to Export", "There are no events to export.", p.window)
		return
	}

	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, p.window)
			return
		}
		if writer == nil {
			return // cancelled
		}
		defer writer.Close()

		if err := ics.Write(writer, p.store.All()); err != nil {
			p.log.Error().Err(err).Msg("export failed")
			dialog.ShowError(err, p.window)
			return
		}
		p.log.Info().Str("target", writer.URI().String()).Msg("calendar exported")
	}, p.window)
	saveDialog.SetFileName("calendar.ics")
	saveDialog.Show()
}
