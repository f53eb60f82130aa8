// Package xlsx writes the rendered grid into an excelize workbook.
package xlsx

import (
	"fmt"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/klabast/wb-services/abfall-grid/internal/app"
	"github.com/klabast/wb-services/abfall-grid/internal/grid"
	"github.com/klabast/wb-services/abfall-grid/internal/locale"
	"github.com/klabast/wb-services/abfall-grid/internal/logger"
)

// SheetName is the name of the only sheet of the workbook
const SheetName = grid.DefaultTitle

// Sheet geometry
const (
	monthColumnWidth = 13.86
	dayColumnWidth   = 4.57
	titleRowHeight   = 35.25
	headingRowHeight = 29.25

	paperA4       = 9
	defaultAuthor = "abfall"

	// the logo covers the last footer rows at the right edge of the grid
	logoColumn = 30
	logoRows   = 3
	logoScaleX = 0.88
)

// Options describes the document around the sheet
type Options struct {
	Year        int
	Names       locale.Names
	Creator     string
	Description string
	// Identifier is stored in the document properties, usually the input fingerprint
	Identifier string
	// Logo is an optional PNG or JPEG placed at the bottom right of the footer
	Logo string
}

// Workbook is a grid.Sink backed by an excelize file
type Workbook struct {
	f      *excelize.File
	sheet  string
	names  locale.Names
	logo   string
	styles map[grid.Style]int
}

// New creates a workbook with a single, prepared sheet
func New(opts Options) (*Workbook, error) {
	if opts.Names == nil {
		names, err := locale.Lookup(locale.Default)
		if err != nil {
			return nil, err
		}
		opts.Names = names
	}

	w := &Workbook{
		f:      excelize.NewFile(),
		sheet:  SheetName,
		names:  opts.Names,
		logo:   opts.Logo,
		styles: make(map[grid.Style]int),
	}

	if err := w.f.SetSheetName(w.f.GetSheetName(0), w.sheet); err != nil {
		return nil, w.fail("failed to name sheet", err)
	}
	if err := w.setup(opts); err != nil {
		return nil, w.fail("failed to prepare sheet", err)
	}
	return w, nil
}

func (w *Workbook) fail(msg string, err error) error {
	if cerr := w.f.Close(); cerr != nil {
		logger.Warn("Error closing workbook", "error", cerr)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func (w *Workbook) setup(opts Options) error {
	lastCol, err := excelize.ColumnNumberToName(grid.LastColumn + 1)
	if err != nil {
		return err
	}
	if err := w.f.SetColWidth(w.sheet, "A", "A", monthColumnWidth); err != nil {
		return err
	}
	if err := w.f.SetColWidth(w.sheet, "B", lastCol, dayColumnWidth); err != nil {
		return err
	}
	if err := w.f.SetRowHeight(w.sheet, grid.TitleRow+1, titleRowHeight); err != nil {
		return err
	}
	if err := w.f.SetRowHeight(w.sheet, grid.HeadingRow+1, headingRowHeight); err != nil {
		return err
	}

	size, orientation, fit := paperA4, "landscape", 1
	if err := w.f.SetPageLayout(w.sheet, &excelize.PageLayoutOptions{
		Size:        &size,
		Orientation: &orientation,
		FitToWidth:  &fit,
		FitToHeight: &fit,
	}); err != nil {
		return err
	}
	fitToPage := true
	if err := w.f.SetSheetProps(w.sheet, &excelize.SheetPropsOptions{FitToPage: &fitToPage}); err != nil {
		return err
	}

	creator := opts.Creator
	if creator == "" {
		creator = defaultAuthor
	}
	return w.f.SetDocProps(&excelize.DocProperties{
		Title:          fmt.Sprintf("Abfallkalender %d", opts.Year),
		Subject:        "Abholtermine",
		Creator:        creator,
		LastModifiedBy: creator,
		Description:    opts.Description,
		Identifier:     opts.Identifier,
		Language:       opts.Names.Code(),
	})
}

// Cell implements grid.Sink
func (w *Workbook) Cell(row, col int, d grid.CellDecision) error {
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return err
	}

	if value, ok := w.value(d.Content); ok {
		if err := w.f.SetCellValue(w.sheet, cell, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", cell, err)
		}
	}

	id, err := w.styleID(d.Style)
	if err != nil {
		return fmt.Errorf("failed to create style for %s: %w", cell, err)
	}
	return w.f.SetCellStyle(w.sheet, cell, cell, id)
}

// value renders the content of a cell, ok is false for blank cells
func (w *Workbook) value(c grid.Content) (interface{}, bool) {
	switch c.Kind {
	case grid.WeekdayLabel:
		return w.names.Weekday(c.Weekday), true
	case grid.CategoryAbbrev:
		return c.Category.Abbrev(), true
	case grid.MonthLabel:
		return " " + w.names.Month(c.Month), true
	case grid.CategoryName:
		return c.Category.DisplayName(), true
	case grid.Text:
		return c.Text, true
	case grid.Number:
		return c.Number, true
	}
	return nil, false
}

// Merge implements grid.Sink
func (w *Workbook) Merge(m grid.MergeHint) error {
	top, err := excelize.CoordinatesToCellName(m.Col+1, m.RowStart+1)
	if err != nil {
		return err
	}
	bottom, err := excelize.CoordinatesToCellName(m.Col+1, m.RowEnd+1)
	if err != nil {
		return err
	}
	return w.f.MergeCell(w.sheet, top, bottom)
}

// PrintArea implements grid.Sink
func (w *Workbook) PrintArea(a grid.Area) error {
	first, err := excelize.CoordinatesToCellName(a.FirstCol+1, a.FirstRow+1, true)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(a.LastCol+1, a.LastRow+1, true)
	if err != nil {
		return err
	}
	if err := w.f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: fmt.Sprintf("%s!%s:%s", w.sheet, first, last),
		Scope:    w.sheet,
	}); err != nil {
		return err
	}
	return w.addLogo(a)
}

// addLogo anchors the logo over the last rows of the print area
func (w *Workbook) addLogo(a grid.Area) error {
	if w.logo == "" {
		return nil
	}
	row := a.LastRow + 1 - logoRows
	if row < a.FirstRow {
		row = a.FirstRow
	}
	cell, err := excelize.CoordinatesToCellName(logoColumn+1, row+1)
	if err != nil {
		return err
	}
	if err := w.f.AddPicture(w.sheet, cell, w.logo, &excelize.GraphicOptions{
		ScaleX:      logoScaleX,
		ScaleY:      1,
		Positioning: "absolute",
	}); err != nil {
		return &grid.IOError{Op: "add logo", Path: w.logo, Err: err}
	}
	return nil
}

// StyleCount returns the number of distinct cell styles registered so far
func (w *Workbook) StyleCount() int {
	return len(w.styles)
}

// WriteTo writes the workbook in xlsx format
func (w *Workbook) WriteTo(out io.Writer) (int64, error) {
	return w.f.WriteTo(out)
}

// Save writes the workbook to path, keeping a previous file as backup
func (w *Workbook) Save(path string) error {
	return app.SaveOutput(path, func(out io.Writer) error {
		_, err := w.WriteTo(out)
		return err
	})
}

// Close releases the resources of the workbook
func (w *Workbook) Close() error {
	return w.f.Close()
}
