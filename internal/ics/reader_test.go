package ics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klabast/wb-services/abfall-grid/internal/grid"
)

const sample = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//Winterberg//Abfallkalender//DE\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:2025-01-15-restmuell@abfallkalender.winterberg.de\r\n" +
	"DTSTAMP:20241201T080000Z\r\n" +
	"DTSTART;VALUE=DATE:20250115\r\n" +
	"DTEND;VALUE=DATE:20250116\r\n" +
	"SUMMARY:Restmüll\r\n" +
	"LOCATION:Winterberg\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:2025-03-29-sondermuell@abfallkalender.winterberg.de\r\n" +
	"DTSTAMP:20241201T080000Z\r\n" +
	"DTSTART:20250329T090000Z\r\n" +
	"DTEND:20250329T120000Z\r\n" +
	"SUMMARY:Schadstoffmobil\r\n" +
	"LOCATION:Info: Marktplatz\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:2025-02-03-biotonne@abfallkalender.winterberg.de\r\n" +
	"DTSTAMP:20241201T080000Z\r\n" +
	"DTSTART;VALUE=DATE:20250203\r\n" +
	"SUMMARY:Biotonne\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestRead(t *testing.T) {
	events, err := Read(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, events, 3)

	assert.Equal(t, grid.Event{
		Date:     time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		Summary:  "Restmüll",
		Location: "Winterberg",
	}, events[0])

	assert.Equal(t, time.Date(2025, time.March, 29, 0, 0, 0, 0, time.UTC), events[1].Date)
	assert.Equal(t, "Info: Marktplatz", events[1].Location)

	assert.Equal(t, "Biotonne", events[2].Summary)
	assert.Empty(t, events[2].Location)
}

func TestReadTimedStartsUseLocalDay(t *testing.T) {
	cal := "BEGIN:VCALENDAR\r\n" +
		"VERSION:2.0\r\n" +
		"PRODID:-//Winterberg//Abfallkalender//DE\r\n" +
		"BEGIN:VEVENT\r\n" +
		"UID:utc@test\r\n" +
		"DTSTART:20250106T230000Z\r\n" +
		"SUMMARY:Restmüll\r\n" +
		"END:VEVENT\r\n" +
		"BEGIN:VEVENT\r\n" +
		"UID:berlin@test\r\n" +
		"DTSTART;TZID=Europe/Berlin:20250107T000000\r\n" +
		"SUMMARY:Biotonne\r\n" +
		"END:VEVENT\r\n" +
		"BEGIN:VEVENT\r\n" +
		"UID:summer@test\r\n" +
		"DTSTART:20250714T223000Z\r\n" +
		"SUMMARY:Papiertonne\r\n" +
		"END:VEVENT\r\n" +
		"BEGIN:VEVENT\r\n" +
		"UID:floating@test\r\n" +
		"DTSTART:20250301T233000\r\n" +
		"SUMMARY:Gelber Sack\r\n" +
		"END:VEVENT\r\n" +
		"END:VCALENDAR\r\n"

	events, err := Read(strings.NewReader(cal))
	require.NoError(t, err)
	require.Len(t, events, 4)

	jan7 := time.Date(2025, time.January, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, jan7, events[0].Date, "23:00 UTC is midnight in Winterberg")
	assert.Equal(t, jan7, events[1].Date)
	assert.Equal(t, time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC), events[2].Date)
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), events[3].Date)
}

func TestReadFeedsClassifier(t *testing.T) {
	events, err := Read(strings.NewReader(sample))
	require.NoError(t, err)

	sched, err := grid.NewClassifier(2025, nil, nil).Group(events)
	require.NoError(t, err)

	assert.Equal(t, []grid.Category{grid.Residual}, sched.Get(time.January, 15).Categories())
	assert.Equal(t, []grid.Category{grid.Hazard2}, sched.Get(time.March, 29).Categories())
	assert.Equal(t, []grid.Category{grid.Bio}, sched.Get(time.February, 3).Categories())
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abfall.ics")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))

	events, err := ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, events, 3)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.ics"))

	var ioErr *grid.IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "open calendar", ioErr.Op)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
