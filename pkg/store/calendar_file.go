package store

import (
	"encoding/json"
	"fmt"
	"os"

	"studycal/pkg/models"
)

// Mapping is the full store content: date key (YYYY-MM-DD) to the ordered
// events of that day.
type Mapping = map[string][]models.Event

// PersistenceKind tells a parse failure apart from an I/O failure.
type PersistenceKind string

const (
	KindIO    PersistenceKind = "io"
	KindParse PersistenceKind = "parse"
)

// PersistenceError is a failed load or save of the durable document.
type PersistenceError struct {
	Kind PersistenceKind
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("calendar file %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// CalendarFile persists the whole mapping to a single JSON document. Every
// save is a plain whole-file overwrite: no temp file, no rename, no backup
// of the previous version.
type CalendarFile struct {
	Path string
}

// NewCalendarFile creates a persistence adapter for the document at path.
func NewCalendarFile(path string) *CalendarFile {
	return &CalendarFile{Path: path}
}

// Load reads the durable document. A missing file is a normal first-run
// state and yields an empty mapping with no error; an unreadable or
// unparsable file yields an empty mapping and a *PersistenceError.
func (cf *CalendarFile) Load() (Mapping, error) {
	data, err := os.ReadFile(cf.Path)
	if os.IsNotExist(err) {
		return Mapping{}, nil
	}
	if err != nil {
		return Mapping{}, &PersistenceError{Kind: KindIO, Path: cf.Path, Err: err}
	}

	mapping := Mapping{}
	if err := json.Unmarshal(data, &mapping); err != nil {
		return Mapping{}, &PersistenceError{Kind: KindParse, Path: cf.Path, Err: err}
	}

	return mapping, nil
}

// Save overwrites the durable document with the full mapping.
func (cf *CalendarFile) Save(mapping Mapping) error {
	data, err := json.MarshalIndent(mapping, "", "  ")
	if err != nil {
		return &PersistenceError{Kind: KindParse, Path: cf.Path, Err: err}
	}

	if err := os.WriteFile(cf.Path, data, 0644); err != nil {
		return &PersistenceError{Kind: KindIO, Path: cf.Path, Err: err}
	}

	return nil
}
