package app

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/klabast/wb-services/abfall-grid/internal/grid"
)

// ScheduleEntry is one classified collection day
type ScheduleEntry struct {
	Date       string   `json:"date"`
	Categories []string `json:"categories"`
	Labels     []string `json:"labels"`
}

// ScheduleEntries lists a schedule in calendar order
func ScheduleEntries(year int, sched grid.Schedule) []ScheduleEntry {
	days := sched.Days()
	entries := make([]ScheduleEntry, 0, len(days))
	for _, day := range days {
		set := sched[day]
		entry := ScheduleEntry{Date: dateOf(year, day).Format(DateLayout)}
		for _, c := range set.Categories() {
			entry.Categories = append(entry.Categories, c.String())
			entry.Labels = append(entry.Labels, c.Abbrev())
		}
		entries = append(entries, entry)
	}
	return entries
}

// WriteScheduleCSV writes one row per collection day
func WriteScheduleCSV(w io.Writer, year int, sched grid.Schedule) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Datum", "Kategorien", "Kürzel"}); err != nil {
		return err
	}
	for _, e := range ScheduleEntries(year, sched) {
		row := []string{e.Date, strings.Join(e.Categories, " "), strings.Join(e.Labels, " ")}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteScheduleJSON writes the schedule as one JSON document
func WriteScheduleJSON(w io.Writer, district string, year int, sched grid.Schedule) error {
	data := map[string]interface{}{
		"district": district,
		"year":     year,
		"days":     ScheduleEntries(year, sched),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("failed to encode schedule: %w", err)
	}
	return nil
}

// WriteScheduleICS writes the schedule as a calendar feed with one all-day event per
// category and day. stamp is used as DTSTAMP of every event.
func WriteScheduleICS(w io.Writer, district string, year int, sched grid.Schedule, stamp time.Time) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(ICSProductID)
	cal.SetXWRCalName(fmt.Sprintf("Abfallkalender %s %d", district, year))
	cal.SetXWRTimezone(ICSTimezone)

	for _, day := range sched.Days() {
		date := dateOf(year, day)
		for _, c := range sched[day].Categories() {
			// UID must be stable for proper calendar updates
			uid := fmt.Sprintf("%s-%s-%s@abfallkalender.winterberg.de", date.Format(DateLayout), c, district)

			event := cal.AddEvent(uid)
			event.SetDtStampTime(stamp.UTC())
			event.SetAllDayStartAt(date)
			event.SetAllDayEndAt(date.AddDate(0, 0, 1))
			event.SetSummary(c.DisplayName())
			event.SetDescription(fmt.Sprintf("Abfuhr %s in %s", c.DisplayName(), district))
			if district != "" {
				event.SetLocation(district)
			}
		}
	}

	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return fmt.Errorf("failed to write calendar: %w", err)
	}
	return nil
}

func dateOf(year int, day grid.DayKey) time.Time {
	return time.Date(year, day.Month, day.Day, 0, 0, 0, 0, time.UTC)
}
