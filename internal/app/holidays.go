package app

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/magiconair/properties"

	"github.com/klabast/wb-services/abfall-grid/internal/grid"
	"github.com/klabast/wb-services/abfall-grid/internal/logger"
)

// holidayDate is the value format of a holiday file entry: yyyy-m-d
var holidayDate = regexp.MustCompile(`^(\d{4})-(\d\d?)-(\d\d?)$`)

// Holiday is one named day of a holiday table
type Holiday struct {
	Day  grid.DayKey
	Name string
}

// NRWHolidays returns all public holidays in NRW for the given year
func NRWHolidays(year int) grid.HolidayTable {
	holidays := make(grid.HolidayTable)

	// Fixed holidays
	holidays[dayKey(year, 1, 1)] = "Neujahr"
	holidays[dayKey(year, 5, 1)] = "Tag der Arbeit"
	holidays[dayKey(year, 10, 3)] = "Tag der Deutschen Einheit"
	holidays[dayKey(year, 11, 1)] = "Allerheiligen"
	holidays[dayKey(year, 12, 25)] = "1. Weihnachtstag"
	holidays[dayKey(year, 12, 26)] = "2. Weihnachtstag"

	// Easter-based holidays (movable)
	easter := calculateEaster(year)

	// Karfreitag (Good Friday): Easter - 2 days
	holidays[dayKeyFromTime(easter.AddDate(0, 0, -2))] = "Karfreitag"

	// Ostermontag (Easter Monday): Easter + 1 day
	holidays[dayKeyFromTime(easter.AddDate(0, 0, 1))] = "Ostermontag"

	// Christi Himmelfahrt (Ascension Day): Easter + 39 days
	holidays[dayKeyFromTime(easter.AddDate(0, 0, 39))] = "Christi Himmelfahrt"

	// Pfingstmontag (Whit Monday): Easter + 50 days
	holidays[dayKeyFromTime(easter.AddDate(0, 0, 50))] = "Pfingstmontag"

	// Fronleichnam (Corpus Christi): Easter + 60 days
	holidays[dayKeyFromTime(easter.AddDate(0, 0, 60))] = "Fronleichnam"

	return holidays
}

// LoadHolidayFile reads a holiday file of `name = yyyy-m-d` lines and returns the
// holidays that fall into year
func LoadHolidayFile(path string, year int) (grid.HolidayTable, error) {
	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return nil, &grid.IOError{Op: "read holidays", Path: path, Err: err}
	}
	return ParseHolidays(p, path, year)
}

// ParseHolidays converts holiday properties into a table. A value that is not a valid
// yyyy-m-d date fails with a *grid.ConfigurationError; other years are skipped.
func ParseHolidays(p *properties.Properties, source string, year int) (grid.HolidayTable, error) {
	holidays := make(grid.HolidayTable)
	skipped := 0

	for _, name := range p.Keys() {
		value, _ := p.Get(name)
		value = strings.TrimSpace(value)

		m := holidayDate.FindStringSubmatch(value)
		if m == nil {
			return nil, &grid.ConfigurationError{Source: source, Key: name, Value: value}
		}
		y, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if month < 1 || month > 12 || day < 1 || day > grid.MonthLength(y, time.Month(month)) {
			return nil, &grid.ConfigurationError{Source: source, Key: name, Value: value}
		}

		if y != year {
			skipped++
			continue
		}

		key := grid.DayKey{Month: time.Month(month), Day: day}
		if existing, ok := holidays[key]; ok {
			holidays[key] = existing + ", " + name
			continue
		}
		holidays[key] = name
	}

	logger.Debug("Loaded holidays", "source", source, "year", year, "holidays", len(holidays), "skipped", skipped)
	return holidays, nil
}

// SortedHolidays lists a holiday table in calendar order
func SortedHolidays(t grid.HolidayTable) []Holiday {
	list := make([]Holiday, 0, len(t))
	for day, name := range t {
		list = append(list, Holiday{Day: day, Name: name})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Day.Less(list[j].Day) })
	return list
}

// calculateEaster calculates Easter Sunday using the Meeus/Jones/Butcher algorithm
func calculateEaster(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.UTC)
}

func dayKey(year, month, day int) grid.DayKey {
	return dayKeyFromTime(time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.UTC))
}

func dayKeyFromTime(t time.Time) grid.DayKey {
	return grid.DayKey{Month: t.Month(), Day: t.Day()}
}
