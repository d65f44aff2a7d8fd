package main

import (
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"studycal/pkg/store"
)

// Planner is the UI collaborator. It collects raw input, hands it to the
// validation engine and the event store, and redraws from the store's
// results; it holds no domain state of its own.
type Planner struct {
	app    fyne.App
	window fyne.Window
	log    zerolog.Logger

	prefs *Preferences
	store *store.EventStore

	year  int
	month time.Month

	yearSelect  *widget.Select
	monthSelect *widget.Select
	content     *fyne.Container

	// One popup (event form or delete picker) at a time.
	activeForm fyne.Window

	loadErr error
}

func main() {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	logger := zerolog.New(output).With().
		Timestamp().
		Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	p := &Planner{
		app: app.NewWithID("io.studycal.planner"),
		log: logger,
	}

	p.initialize()
	p.window.ShowAndRun()
}

func (p *Planner) initialize() {
	p.prefs = loadPreferences(p.app)

	if err := setupAutostart(p.prefs.LaunchAtLogin); err != nil {
		p.log.Warn().Err(err).Msg("failed to sync launch-at-login setting")
	}

	p.store, p.loadErr = store.NewEventStore(store.NewCalendarFile(p.prefs.DataFile))
	if p.loadErr != nil {
		p.log.Error().Err(p.loadErr).Str("path", p.prefs.DataFile).
			Msg("failed to load calendar, starting empty")
	} else {
		p.log.Info().Str("path", p.prefs.DataFile).Msg("calendar loaded")
	}

	now := time.Now()
	p.year = now.Year()
	p.month = now.Month()

	p.window = p.app.NewWindow("Calendar Planner")
	p.window.Resize(fyne.NewSize(950, 700))
	p.window.CenterOnScreen()
	p.window.SetContent(p.buildMainUI())
	p.redrawCalendar()

	// The store already fell back to empty; the prior on-disk state stays
	// lost from the in-memory view until the next successful save.
	if p.loadErr != nil {
		dialog.ShowError(p.loadErr, p.window)
	}
}

func (p *Planner) buildMainUI() fyne.CanvasObject {
	p.yearSelect = widget.NewSelect(yearOptions(), func(selected string) {
		if year, ok := parseYear(selected); ok && year != p.year {
			p.year = year
			p.redrawCalendar()
		}
	})
	p.monthSelect = widget.NewSelect(monthOptions(), func(selected string) {
		if month, ok := parseMonth(selected); ok && month != p.month {
			p.month = month
			p.redrawCalendar()
		}
	})
	p.yearSelect.Selected = yearLabel(p.year)
	p.monthSelect.Selected = p.month.String()

	topBar := container.NewHBox(
		widget.NewLabel("Year:"),
		p.yearSelect,
		widget.NewLabel("Month:"),
		p.monthSelect,
	)

	deleteButton := widget.NewButton("Delete Event", p.showDeletePicker)
	deleteButton.Importance = widget.DangerImportance

	exportButton := widget.NewButton("Export .ics", p.exportCalendar)
	settingsButton := widget.NewButton("Settings", p.showSettings)

	bottomBar := container.NewHBox(deleteButton, exportButton, settingsButton)

	p.content = container.NewStack()

	return container.NewBorder(
		container.NewPadded(container.NewCenter(topBar)),
		container.NewPadded(container.NewCenter(bottomBar)),
		nil,
		nil,
		p.content,
	)
}
