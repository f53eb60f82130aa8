package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/klabast/wb-services/abfall-grid/internal/grid"
	"github.com/klabast/wb-services/abfall-grid/internal/logger"
)

// LoadCalendar loads the calendar store from path
func LoadCalendar(path string) (*CalendarData, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &grid.IOError{Op: "open calendar", Path: path, Err: err}
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.Warn("Error closing calendar file", "path", path, "error", err)
		}
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, &grid.IOError{Op: "read calendar", Path: path, Err: err}
	}

	var calendar CalendarData
	if err := json.Unmarshal(data, &calendar); err != nil {
		return nil, &grid.IOError{Op: "decode calendar", Path: path, Err: err}
	}
	return &calendar, nil
}

// LoadCalendarEvents loads the events of one district of the calendar store. The
// district name becomes the event location.
func LoadCalendarEvents(path, district string) ([]grid.Event, error) {
	calendar, err := LoadCalendar(path)
	if err != nil {
		return nil, err
	}

	name, d, err := calendar.ResolveDistrict(district)
	if err != nil {
		return nil, fmt.Errorf("failed to select district in %s: %w", path, err)
	}
	if !IsKnownDistrict(name) {
		logger.Warn("District is not a Winterberg district", "district", name)
	}

	stored := append([]Event(nil), d.Events...)
	SortEventsByDate(stored)

	events := make([]grid.Event, 0, len(stored))
	for _, e := range stored {
		date, err := time.Parse(DateLayout, e.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q in district %s: %w", e.Date, name, err)
		}

		location := e.Location
		if location == "" {
			location = name
		}
		events = append(events, grid.Event{Date: date, Summary: e.Summary(), Location: location})
	}

	logger.Debug("Loaded calendar store", "path", path, "district", name, "events", len(events))
	return events, nil
}

// SaveOutput writes a file atomically: write produces the content into a temp file,
// an existing file is kept with BackupSuffix and the temp file takes its place
func SaveOutput(path string, write func(w io.Writer) error) error {
	tmpFile := path + TmpSuffix
	file, err := os.OpenFile(tmpFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, FilePermissions)
	if err != nil {
		return &grid.IOError{Op: "create", Path: tmpFile, Err: err}
	}

	if err := write(file); err != nil {
		_ = file.Close()
		_ = os.Remove(tmpFile)
		return &grid.IOError{Op: "write", Path: tmpFile, Err: err}
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(tmpFile)
		return &grid.IOError{Op: "close", Path: tmpFile, Err: err}
	}

	// Create backup
	if _, err := os.Stat(path); err == nil {
		backupFile := path + BackupSuffix
		if err := os.Rename(path, backupFile); err != nil {
			logger.Warn("Failed to create backup", "path", backupFile, "error", err)
		}
	}

	if err := os.Rename(tmpFile, path); err != nil {
		return &grid.IOError{Op: "rename", Path: path, Err: err}
	}
	return nil
}
