// Package ics reads collection events from iCalendar files.
package ics

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	ical "github.com/arran4/golang-ical"

	"github.com/klabast/wb-services/abfall-grid/internal/app"
	"github.com/klabast/wb-services/abfall-grid/internal/grid"
	"github.com/klabast/wb-services/abfall-grid/internal/logger"
)

// ReadFile parses the VEVENTs of an .ics file
func ReadFile(path string) ([]grid.Event, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &grid.IOError{Op: "open calendar", Path: path, Err: err}
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.Warn("Error closing calendar file", "path", path, "error", err)
		}
	}()

	events, err := Read(file)
	if err != nil {
		return nil, &grid.IOError{Op: "parse calendar", Path: path, Err: err}
	}
	logger.Debug("Read calendar", "path", path, "events", len(events))
	return events, nil
}

// Read parses the VEVENTs of an iCalendar stream. The start date of every event is
// taken as its collection day. Timed starts with a zone are read in local time of
// the collection area, floating starts keep their wall clock date.
func Read(r io.Reader) ([]grid.Event, error) {
	zone, err := time.LoadLocation(app.ICSTimezone)
	if err != nil {
		return nil, err
	}
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, err
	}

	var events []grid.Event
	for _, ev := range cal.Events() {
		start, err := startDate(ev, zone)
		if err != nil {
			return nil, fmt.Errorf("event %q: %w", ev.Id(), err)
		}
		events = append(events, grid.Event{
			Date:     start,
			Summary:  propertyValue(ev, ical.ComponentPropertySummary),
			Location: propertyValue(ev, ical.ComponentPropertyLocation),
		})
	}
	return events, nil
}

func startDate(ev *ical.VEvent, zone *time.Location) (time.Time, error) {
	prop := ev.GetProperty(ical.ComponentPropertyDtStart)
	if prop == nil {
		return time.Time{}, fmt.Errorf("missing DTSTART")
	}

	var start time.Time
	var err error
	if strings.Contains(prop.Value, "T") {
		start, err = ev.GetStartAt()
		if err == nil && isZoned(prop) {
			start = start.In(zone)
		}
	} else {
		start, err = ev.GetAllDayStartAt()
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid DTSTART: %w", err)
	}
	return time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC), nil
}

// isZoned reports whether a date-time property is in UTC or carries a TZID
func isZoned(prop *ical.IANAProperty) bool {
	if strings.HasSuffix(prop.Value, "Z") {
		return true
	}
	_, ok := prop.ICalParameters[string(ical.ParameterTzid)]
	return ok
}

func propertyValue(ev *ical.VEvent, p ical.ComponentProperty) string {
	prop := ev.GetProperty(p)
	if prop == nil {
		return ""
	}
	return strings.TrimSpace(prop.Value)
}
