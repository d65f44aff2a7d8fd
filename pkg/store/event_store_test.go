package store

import (
	"errors"
	"reflect"
	"testing"

	"studycal/pkg/models"
)

func testStore(t *testing.T) *EventStore {
	t.Helper()
	s, err := NewEventStore(testFile(t))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return s
}

func TestAddEditDeleteScenario(t *testing.T) {
	s := testStore(t)
	date := "2024-05-01"

	if err := s.Add(date, models.NewAssignment("Homework", "09:00", "Finish reading")); err != nil {
		t.Fatalf("add: %v", err)
	}
	bucket := s.Events(date)
	want := []models.Event{models.NewAssignment("Homework", "09:00", "Finish reading")}
	if !reflect.DeepEqual(bucket, want) {
		t.Fatalf("after add: got %+v, want %+v", bucket, want)
	}

	if err := s.Edit(date, 0, models.NewAssignment("Homework", "10:00", "Finish reading")); err != nil {
		t.Fatalf("edit: %v", err)
	}
	bucket = s.Events(date)
	if len(bucket) != 1 || bucket[0].Time != "10:00" {
		t.Fatalf("after edit: got %+v", bucket)
	}

	if err := s.Delete(date, 0); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := s.All()[date]; ok {
		t.Error("deleting the sole event must remove the date key")
	}
}

func TestDeleteKeepsRelativeOrder(t *testing.T) {
	s := testStore(t)
	date := "2024-05-01"

	for _, title := range []string{"First", "Second", "Third"} {
		if err := s.Add(date, models.NewAssignment(title, "09:00", "x")); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	if err := s.Delete(date, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}

	bucket := s.Events(date)
	if len(bucket) != 2 || bucket[0].Title != "First" || bucket[1].Title != "Third" {
		t.Errorf("relative order lost: %+v", bucket)
	}
}

func TestInsertionOrderNotSortedByTime(t *testing.T) {
	s := testStore(t)
	date := "2024-05-01"

	if err := s.Add(date, models.NewAssignment("Late", "22:00", "x")); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(date, models.NewAssignment("Early", "06:00", "x")); err != nil {
		t.Fatal(err)
	}

	bucket := s.Events(date)
	if bucket[0].Title != "Late" || bucket[1].Title != "Early" {
		t.Errorf("bucket must reflect entry order, got %+v", bucket)
	}
}

func TestStaleDateAndIndexErrors(t *testing.T) {
	s := testStore(t)
	date := "2024-05-01"
	if err := s.Add(date, models.NewAssignment("Homework", "09:00", "x")); err != nil {
		t.Fatal(err)
	}

	replacement := models.NewAssignment("Other", "10:00", "y")

	if err := s.Edit("2024-05-02", 0, replacement); !errors.Is(err, ErrNotFound) {
		t.Errorf("edit on absent date: got %v, want ErrNotFound", err)
	}
	if err := s.Edit(date, 1, replacement); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("edit past end: got %v, want ErrIndexOutOfRange", err)
	}
	if err := s.Edit(date, -1, replacement); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("edit negative index: got %v, want ErrIndexOutOfRange", err)
	}
	if err := s.Delete("2024-05-02", 0); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete on absent date: got %v, want ErrNotFound", err)
	}
	if err := s.Delete(date, 5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("delete past end: got %v, want ErrIndexOutOfRange", err)
	}

	// Failed calls leave the bucket untouched.
	if got := s.Events(date); len(got) != 1 || got[0].Title != "Homework" {
		t.Errorf("bucket changed by failed calls: %+v", got)
	}
}

func TestMutationsWriteThrough(t *testing.T) {
	file := testFile(t)
	s, err := NewEventStore(file)
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Add("2024-05-01", models.NewTimetable("Math", "09:00", "10:30")); err != nil {
		t.Fatal(err)
	}
	if err := s.Add("2024-05-03", models.NewCollab("Standup", "08:45", []string{"john"})); err != nil {
		t.Fatal(err)
	}

	// A second store on the same document sees every mutation.
	reloaded, err := NewEventStore(file)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !reflect.DeepEqual(reloaded.All(), s.All()) {
		t.Errorf("document behind memory:\ndisk   %+v\nmemory %+v", reloaded.All(), s.All())
	}

	if err := s.Delete("2024-05-03", 0); err != nil {
		t.Fatal(err)
	}
	reloaded, err = NewEventStore(file)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := reloaded.All()["2024-05-03"]; ok {
		t.Error("delete not flushed to document")
	}
}

func TestFailedSaveKeepsMutation(t *testing.T) {
	// The document path is a directory: loads and saves fail, the store
	// stays usable and in-memory mutations are not rolled back.
	file := NewCalendarFile(t.TempDir())
	s, err := NewEventStore(file)
	if err == nil {
		t.Fatal("expected load error for unreadable document")
	}

	err = s.Add("2024-05-01", models.NewAssignment("Homework", "09:00", "x"))
	var perr *PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *PersistenceError from flush, got %v", err)
	}

	if got := s.Events("2024-05-01"); len(got) != 1 {
		t.Errorf("failed flush must not roll back memory, got %+v", got)
	}
}

func TestQueryAbsentDate(t *testing.T) {
	s := testStore(t)
	if got := s.Events("2024-01-01"); len(got) != 0 {
		t.Errorf("absent date must query empty, got %+v", got)
	}
}

func TestDatesSorted(t *testing.T) {
	s := testStore(t)
	for _, date := range []string{"2024-05-03", "2024-01-15", "2024-05-01"} {
		if err := s.Add(date, models.NewAssignment("Homework", "09:00", "x")); err != nil {
			t.Fatal(err)
		}
	}
	want := []string{"2024-01-15", "2024-05-01", "2024-05-03"}
	if got := s.Dates(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	s := testStore(t)
	if err := s.Add("2024-05-01", models.NewAssignment("Homework", "09:00", "x")); err != nil {
		t.Fatal(err)
	}

	all := s.All()
	all["2024-05-01"][0].Title = "Tampered"
	delete(all, "2024-05-01")

	if got := s.Events("2024-05-01"); len(got) != 1 || got[0].Title != "Homework" {
		t.Errorf("All must hand out a copy, store now holds %+v", got)
	}
}
