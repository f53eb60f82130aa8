package grid

import (
	"fmt"
	"time"
)

// Sheet rows of the fixed headings
const (
	TitleRow     = 0
	HeadingRow   = 1
	FirstGridRow = 2
)

// LastColumn is the rightmost column of the sheet (day 31)
const LastColumn = MonthLabelColumn + DaysPerRow

// legendStride is the number of columns used by one legend entry
const legendStride = 6

// DefaultTitle is the sheet heading
const DefaultTitle = "Abholtermine"

// Area is a rectangular cell range, 0-based and inclusive
type Area struct {
	FirstRow, LastRow int
	FirstCol, LastCol int
}

// Sink consumes the decided cells of one sheet in traversal order
type Sink interface {
	Cell(row, col int, d CellDecision) error
	Merge(m MergeHint) error
	PrintArea(a Area) error
}

// Note is one piece of footer text
type Note struct {
	Col   int    `yaml:"col"`
	Text  string `yaml:"text"`
	Small bool   `yaml:"small"`
}

// NoteLine is one footer row
type NoteLine []Note

// Options controls the sheet furniture around the grid
type Options struct {
	Title  string
	Legend bool
	Notes  []NoteLine
}

// Renderer walks the whole sheet once and streams every decision to a Sink
type Renderer struct {
	engine *Engine
	opts   Options
}

// NewRenderer creates a renderer using the given engine
func NewRenderer(engine *Engine, opts Options) *Renderer {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	return &Renderer{engine: engine, opts: opts}
}

// Render writes the sheet of year to sink and returns the print area
func (r *Renderer) Render(year int, sched Schedule, sink Sink) (Area, error) {
	if err := r.headings(year, sink); err != nil {
		return Area{}, err
	}

	row, err := r.grid(year, sched, sink, FirstGridRow)
	if err != nil {
		return Area{}, err
	}

	row, err = r.footer(sched, sink, row)
	if err != nil {
		return Area{}, err
	}

	area := Area{FirstRow: TitleRow, LastRow: row - 1, FirstCol: MonthLabelColumn, LastCol: LastColumn}
	if err := sink.PrintArea(area); err != nil {
		return Area{}, fmt.Errorf("failed to set print area: %w", err)
	}
	return area, nil
}

func (r *Renderer) headings(year int, sink Sink) error {
	title := CellDecision{Content: Content{Kind: Text, Text: r.opts.Title}, Style: TitleStyle()}
	if err := sink.Cell(TitleRow, MonthLabelColumn+1, title); err != nil {
		return err
	}

	yearCell := CellDecision{Content: Content{Kind: Number, Number: year}, Style: YearHeadingStyle()}
	if err := sink.Cell(HeadingRow, MonthLabelColumn, yearCell); err != nil {
		return err
	}
	for day := 1; day <= DaysPerRow; day++ {
		d := CellDecision{Content: Content{Kind: Number, Number: day}, Style: ColumnHeadingStyle(day)}
		if err := sink.Cell(HeadingRow, DayColumn(day), d); err != nil {
			return err
		}
	}
	return nil
}

// grid emits month-major, then sub-row, then day. Merge rows refer to the row counter
// threaded through this loop.
func (r *Renderer) grid(year int, sched Schedule, sink Sink, row int) (int, error) {
	for month := time.January; month <= time.December; month++ {
		monthStart := row
		for subRow := 0; subRow < RowsPerDay; subRow++ {
			label := r.engine.MonthLabelCell(NewPosition(year, month, 1, subRow))
			if err := sink.Cell(row, MonthLabelColumn, label); err != nil {
				return row, err
			}

			for day := 1; day <= DaysPerRow; day++ {
				pos := NewPosition(year, month, day, subRow)
				var cats CategorySet
				if pos.DayExists() {
					cats = sched.Get(month, day)
				}

				d := r.engine.DayCell(pos, cats, row)
				if err := sink.Cell(row, DayColumn(day), d); err != nil {
					return row, err
				}
				if d.Merge != nil {
					if err := sink.Merge(*d.Merge); err != nil {
						return row, err
					}
				}
			}
			row++
		}

		monthMerge := MergeHint{RowStart: monthStart, RowEnd: row - 1, Col: MonthLabelColumn}
		if err := sink.Merge(monthMerge); err != nil {
			return row, err
		}
	}
	return row, nil
}

// footer emits a spacer row, the legend, the note lines and a closing spacer row
func (r *Renderer) footer(sched Schedule, sink Sink, row int) (int, error) {
	row++

	if r.opts.Legend {
		var err error
		if row, err = r.legend(sched, sink, row); err != nil {
			return row, err
		}
	}

	for _, line := range r.opts.Notes {
		for _, note := range line {
			if note.Col < MonthLabelColumn || note.Col > LastColumn {
				return row, fmt.Errorf("note %q: column %d outside of sheet", note.Text, note.Col)
			}
			d := CellDecision{Content: Content{Kind: Text, Text: note.Text}, Style: NoteStyle(note.Small)}
			if err := sink.Cell(row, note.Col, d); err != nil {
				return row, err
			}
		}
		row++
	}

	return row + 1, nil
}

// legend lists the categories used in the schedule, wrapping after a full row
func (r *Renderer) legend(sched Schedule, sink Sink, row int) (int, error) {
	used := usedCategories(sched)
	if len(used) == 0 {
		return row, nil
	}

	perRow := DaysPerRow / legendStride
	for i, c := range used {
		if i > 0 && i%perRow == 0 {
			row++
		}
		col := MonthLabelColumn + 1 + (i%perRow)*legendStride

		sample := CellDecision{Content: Content{Kind: CategoryAbbrev, Category: c}, Style: LegendStyle(c)}
		if err := sink.Cell(row, col, sample); err != nil {
			return row, err
		}
		name := CellDecision{Content: Content{Kind: CategoryName, Category: c}, Style: NoteStyle(true)}
		if err := sink.Cell(row, col+1, name); err != nil {
			return row, err
		}
	}
	return row + 1, nil
}

func usedCategories(sched Schedule) []Category {
	var used []Category
	for _, c := range AllCategories() {
		for _, set := range sched {
			if set.Contains(c) {
				used = append(used, c)
				break
			}
		}
	}
	return used
}
