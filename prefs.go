package main

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"studycal/pkg/store"
)

const defaultDataFile = "calendar_data.json"

// Preferences are UI-session settings kept in Fyne preferences, separate
// from the event data itself.
type Preferences struct {
	LaunchAtLogin bool
	DataFile      string
}

func loadPreferences(app fyne.App) *Preferences {
	prefs := app.Preferences()

	return &Preferences{
		LaunchAtLogin: prefs.BoolWithFallback("launch_at_login", false),
		DataFile:      prefs.StringWithFallback("data_file", defaultDataFile),
	}
}

func savePreferences(app fyne.App, p *Preferences) {
	prefs := app.Preferences()

	prefs.SetBool("launch_at_login", p.LaunchAtLogin)
	prefs.SetString("data_file", p.DataFile)
}

func (p *Planner) showSettings() {
	launchCheck := widget.NewCheck("Launch at login", nil)
	launchCheck.SetChecked(p.prefs.LaunchAtLogin)

	fileEntry := widget.NewEntry()
	fileEntry.SetText(p.prefs.DataFile)

	items := []*widget.FormItem{
		widget.NewFormItem("Startup", launchCheck),
		widget.NewFormItem("Data file", fileEntry),
	}

	dialog.ShowForm("Settings", "Save", "Cancel", items, func(confirmed bool) {
		if !confirmed {
			return
		}

		p.prefs.LaunchAtLogin = launchCheck.Checked
		path := strings.TrimSpace(fileEntry.Text)
		if path == "" {
			path = defaultDataFile
		}
		pathChanged := path != p.prefs.DataFile
		p.prefs.DataFile = path
		savePreferences(p.app, p.prefs)

		if err := setupAutostart(p.prefs.LaunchAtLogin); err != nil {
			p.log.Warn().Err(err).Msg("failed to sync launch-at-login setting")
			dialog.ShowError(err, p.window)
		}

		if pathChanged {
			p.reopenStore()
		}
	}, p.window)
}

// reopenStore swaps the store to the newly configured document path.
func (p *Planner) reopenStore() {
	st, err := store.NewEventStore(store.NewCalendarFile(p.prefs.DataFile))
	p.store = st
	if err != nil {
		p.log.Error().Err(err).Str("path", p.prefs.DataFile).
			Msg("failed to load calendar, starting empty")
		dialog.ShowError(err, p.window)
	} else {
		p.log.Info().Str("path", p.prefs.DataFile).Msg("calendar loaded")
	}
	p.redrawCalendar()
}
