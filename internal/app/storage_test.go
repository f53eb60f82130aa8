package app

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/klabast/wb-services/abfall-grid/internal/grid"
)

const testCalendar = `{
  "year": 2025,
  "districts": {
    "Winterberg": {
      "events": [
        {"date": "2025-01-20", "type": "biotonne", "description": "Biotonne"},
        {"date": "2025-01-15", "type": "restmuell", "description": ""},
        {"date": "2025-03-29", "type": "sondermuell", "description": "Schadstoffmobil", "location": "Info: Marktplatz"}
      ]
    },
    "Züschen": {
      "events": [
        {"date": "2025-01-16", "type": "papiertonne", "description": "Papiertonne"}
      ]
    }
  },
  "metadata": {"created_at": "2024-11-30"}
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), FilePermissions); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadCalendarEvents(t *testing.T) {
	path := writeFile(t, DefaultCalendarFile, testCalendar)

	events, err := LoadCalendarEvents(path, "winterberg")
	if err != nil {
		t.Fatalf("LoadCalendarEvents failed: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(events))
	}

	first := events[0]
	if !first.Date.Equal(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Expected events sorted by date, first is %v", first.Date)
	}
	if first.Summary != "Restmüll" {
		t.Errorf("Expected waste type name as summary, got %q", first.Summary)
	}
	if first.Location != "Winterberg" {
		t.Errorf("Expected district as location, got %q", first.Location)
	}
	if events[2].Location != "Info: Marktplatz" {
		t.Errorf("Expected stored location to be kept, got %q", events[2].Location)
	}
}

func TestLoadCalendarEventsDistrictSelection(t *testing.T) {
	path := writeFile(t, DefaultCalendarFile, testCalendar)

	if _, err := LoadCalendarEvents(path, ""); err == nil {
		t.Error("Expected error when no district is given for a multi-district calendar")
	}

	_, err := LoadCalendarEvents(path, "Hildfeld")
	if err == nil || !strings.Contains(err.Error(), "Winterberg, Züschen") {
		t.Errorf("Expected error listing districts, got %v", err)
	}

	single := writeFile(t, "single.json", `{"year": 2025, "districts": {"Silbach": {"events": [{"date": "2025-02-03", "type": "biotonne"}]}}}`)
	events, err := LoadCalendarEvents(single, "")
	if err != nil {
		t.Fatalf("Expected single district to be picked, got %v", err)
	}
	if len(events) != 1 || events[0].Location != "Silbach" {
		t.Errorf("Unexpected events: %+v", events)
	}
}

func TestLoadCalendarErrors(t *testing.T) {
	_, err := LoadCalendar(filepath.Join(t.TempDir(), "missing.json"))
	var ioErr *grid.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("Expected IOError, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected IOError to unwrap to ErrNotExist, got %v", err)
	}

	broken := writeFile(t, "broken.json", `{"year": 2025, "districts": {"Silbach": {"events": [{"date": "3.2.2025"}]}}}`)
	if _, err := LoadCalendarEvents(broken, "Silbach"); err == nil {
		t.Error("Expected error for invalid event date")
	}
}

func TestSaveOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Abfallkalender 2025.xlsx")
	write := func(content string) func(io.Writer) error {
		return func(w io.Writer) error {
			_, err := io.WriteString(w, content)
			return err
		}
	}

	if err := SaveOutput(path, write("first")); err != nil {
		t.Fatalf("SaveOutput failed: %v", err)
	}
	if err := SaveOutput(path, write("second")); err != nil {
		t.Fatalf("SaveOutput failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil || string(data) != "second" {
		t.Errorf("Expected new content, got %q (%v)", data, err)
	}
	backup, err := os.ReadFile(path + BackupSuffix)
	if err != nil || string(backup) != "first" {
		t.Errorf("Expected previous content in backup, got %q (%v)", backup, err)
	}
	if _, err := os.Stat(path + TmpSuffix); !os.IsNotExist(err) {
		t.Error("Temp file should not remain after save")
	}
}

func TestSaveOutputWriteFailureKeepsExisting(t *testing.T) {
	path := writeFile(t, "out.xlsx", "existing")

	err := SaveOutput(path, func(io.Writer) error { return errors.New("render failed") })
	if err == nil {
		t.Fatal("Expected error from failing writer")
	}

	data, _ := os.ReadFile(path)
	if string(data) != "existing" {
		t.Errorf("Existing output must not change, got %q", data)
	}
	if _, err := os.Stat(path + TmpSuffix); !os.IsNotExist(err) {
		t.Error("Temp file should be removed after failure")
	}
}
