package main

import (
	"os"
	"path/filepath"

	"github.com/emersion/go-autostart"
)

// setupAutostart brings the OS launch-at-login entry in line with the
// preference. Callers report failures; nothing here is fatal.
func setupAutostart(enable bool) error {
	execPath, err := os.Executable()
	if err != nil {
		return err
	}

	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return err
	}

	app := &autostart.App{
		Name:        "studycal",
		DisplayName: "Calendar Planner",
		Exec:        []string{execPath},
	}

	if enable {
		if !app.IsEnabled() {
			return app.Enable()
		}
		return nil
	}

	if app.IsEnabled() {
		return app.Disable()
	}
	return nil
}
