package grid

import "time"

// RowsPerDay is the number of sheet rows that make up one day (heading + data rows)
const RowsPerDay = 3

// DaysPerRow is the number of day columns of the grid
const DaysPerRow = 31

// Position describes one cell of the grid. Day runs 1..31 even in shorter months.
type Position struct {
	Year       int
	Month      time.Month
	Day        int
	SubRow     int
	RowsPerDay int
}

// NewPosition returns the position of a cell using the default RowsPerDay
func NewPosition(year int, month time.Month, day, subRow int) Position {
	return Position{Year: year, Month: month, Day: day, SubRow: subRow, RowsPerDay: RowsPerDay}
}

// IsLeapYear applies the Gregorian leap year rule
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// MonthLength returns the number of days of month in year
func MonthLength(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// DayExists reports whether the calendar has this day in this month
func (p Position) DayExists() bool {
	return p.Day >= 1 && p.Day <= MonthLength(p.Year, p.Month)
}

// Weekday returns the day of week; ok is false when the day does not exist
func (p Position) Weekday() (wd time.Weekday, ok bool) {
	if !p.DayExists() {
		return 0, false
	}
	return time.Date(p.Year, p.Month, p.Day, 12, 0, 0, 0, time.UTC).Weekday(), true
}

// Key returns the day key of the cell
func (p Position) Key() DayKey {
	return DayKey{Month: p.Month, Day: p.Day}
}

func (p Position) IsFirstRowOfDay() bool { return p.SubRow == 0 }

func (p Position) IsLastRowOfDay() bool { return p.SubRow == p.RowsPerDay-1 }

func (p Position) IsJanuary() bool { return p.Month == time.January }

func (p Position) IsDecember() bool { return p.Month == time.December }

func (p Position) IsOddMonth() bool { return int(p.Month)%2 == 1 }

func (p Position) IsDay1() bool { return p.Day == 1 }

func (p Position) IsDay31() bool { return p.Day == 31 }

// IsSunday is false for days that do not exist
func (p Position) IsSunday() bool {
	wd, ok := p.Weekday()
	return ok && wd == time.Sunday
}
