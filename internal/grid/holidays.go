package grid

import "time"

// HolidayLookup tells whether a day of the rendered year is a public holiday
type HolidayLookup interface {
	IsHoliday(month time.Month, day int) bool
}

// HolidayTable is an in-memory holiday table keyed by day, with holiday names as values
type HolidayTable map[DayKey]string

// IsHoliday implements HolidayLookup
func (t HolidayTable) IsHoliday(month time.Month, day int) bool {
	_, ok := t[DayKey{Month: month, Day: day}]
	return ok
}

// Name returns the holiday name of the given day, if any
func (t HolidayTable) Name(month time.Month, day int) (string, bool) {
	name, ok := t[DayKey{Month: month, Day: day}]
	return name, ok
}

// NoHolidays is a lookup without any holidays
var NoHolidays HolidayLookup = HolidayTable(nil)
