package grid

import "time"

// ContentKind tells the sink what to write into a cell
type ContentKind uint8

const (
	Blank ContentKind = iota
	WeekdayLabel
	CategoryAbbrev
	MonthLabel
	CategoryName
	Text
	Number
)

// Content is the value of a cell. Only the field matching Kind is set.
type Content struct {
	Kind     ContentKind
	Weekday  time.Weekday
	Month    time.Month
	Category Category
	Text     string
	Number   int
}

// MergeHint asks the sink to merge rows RowStart..RowEnd of column Col
type MergeHint struct {
	RowStart int
	RowEnd   int
	Col      int
}

// CellDecision is the complete outcome for one cell
type CellDecision struct {
	Content Content
	Style   Style
	Merge   *MergeHint
}

// MonthLabelColumn is the sheet column holding the month names
const MonthLabelColumn = 0

// DayColumn returns the sheet column of a day
func DayColumn(day int) int {
	return MonthLabelColumn + day
}

// Engine decides content and style of grid cells
type Engine struct {
	holidays HolidayLookup
}

// NewEngine creates a layout engine. A nil lookup means no holidays.
func NewEngine(holidays HolidayLookup) *Engine {
	if holidays == nil {
		holidays = NoHolidays
	}
	return &Engine{holidays: holidays}
}

// DayCell decides the cell of pos, which is written to sheet row row
func (e *Engine) DayCell(pos Position, cats CategorySet, row int) CellDecision {
	if !pos.DayExists() {
		return CellDecision{Style: EmptyDayStyle(pos)}
	}

	wd, _ := pos.Weekday()
	var d CellDecision
	switch {
	case cats.IsEmpty():
		if pos.IsFirstRowOfDay() {
			d.Content = Content{Kind: WeekdayLabel, Weekday: wd}
		}
		if pos.IsSunday() {
			d.Style = SundayStyle(pos)
		} else {
			d.Style = EmptyDayStyle(pos)
		}

	case pos.IsFirstRowOfDay():
		d.Content = Content{Kind: WeekdayLabel, Weekday: wd}
		d.Style = DayHeadingStyle(pos, cats.First())

	default:
		if cats.Len() >= pos.SubRow {
			cat := cats.Last()
			if pos.SubRow == 1 {
				cat = cats.First()
			}
			d.Content = Content{Kind: CategoryAbbrev, Category: cat}
			d.Style = DataCellStyle(pos, cat)
		} else {
			d.Style = CenteredStyle(pos)
		}
		if pos.SubRow == 2 && cats.Len() == 1 {
			col := DayColumn(pos.Day)
			d.Merge = &MergeHint{RowStart: row - 1, RowEnd: row, Col: col}
		}
	}

	if pos.IsFirstRowOfDay() && e.holidays.IsHoliday(pos.Month, pos.Day) {
		d.Style = WithUnderline(d.Style)
	}
	return d
}

// MonthLabelCell decides the month name cell of a grid row. The name is only written on
// the first row of the month; the rows are merged separately.
func (e *Engine) MonthLabelCell(pos Position) CellDecision {
	d := CellDecision{Style: MonthLabelStyle(pos)}
	if pos.IsFirstRowOfDay() {
		d.Content = Content{Kind: MonthLabel, Month: pos.Month}
	}
	return d
}
