package grid

import "github.com/lucasb-eyer/go-colorful"

// BorderStyle is the line weight of one cell edge
type BorderStyle uint8

const (
	BorderNone BorderStyle = iota
	BorderThin
	BorderMedium
)

// Borders describes the four edges of a cell. A zero colour is black.
type Borders struct {
	Top, Bottom, Left, Right BorderStyle
	LeftColor                colorful.Color
}

// FillKind selects how a cell background is painted
type FillKind uint8

const (
	FillNone FillKind = iota
	FillSolid
	// FillHatch is a thin forward-diagonal pattern in Color on white
	FillHatch
	// FillGradient is a two-stop gradient from Inner at the centre to Color at the edges
	FillGradient
)

// Fill describes a cell background
type Fill struct {
	Kind  FillKind
	Color colorful.Color
	Inner colorful.Color
}

// Font describes text decoration. Size 0 means the workbook default. Color is only
// applied when Colored is set.
type Font struct {
	Bold      bool
	Size      float64
	Underline bool
	Colored   bool
	Color     colorful.Color
}

// HAlign is the horizontal text alignment
type HAlign uint8

const (
	AlignGeneral HAlign = iota
	AlignLeft
	AlignCenter
)

// Style is the complete, comparable visual description of one cell
type Style struct {
	Borders Borders
	Fill    Fill
	Font    Font
	Align   HAlign
	VCenter bool
}

const (
	monthLabelFontSize = 14
	titleFontSize      = 24
	yearFontSize       = 20
	columnHeadingSize  = 14
	noteFontSize       = 14
	noteSmallFontSize  = 11
)

// FontFamily is the font of headings and footer text
const FontFamily = "Calibri"

var (
	separatorColor  = rgb(128, 128, 128)
	oddMonthColor   = rgb(221, 221, 221)
	sundayFillColor = rgb(191, 191, 191)
)

// cellBorders applies the grid border rules of a day cell
func cellBorders(p Position) Borders {
	var b Borders
	if p.IsFirstRowOfDay() {
		b.Top = BorderThin
		if p.IsJanuary() {
			b.Top = BorderMedium
		}
	}
	if p.IsLastRowOfDay() {
		b.Bottom = BorderThin
		if p.IsDecember() {
			b.Bottom = BorderMedium
		}
	}
	b.Left, b.LeftColor = dayColumnLeft(p.Day)
	if p.IsDay31() {
		b.Right = BorderMedium
	}
	return b
}

// dayColumnLeft returns the left rule of a day column
func dayColumnLeft(day int) (BorderStyle, colorful.Color) {
	if day == 1 {
		return BorderMedium, colorful.Color{}
	}
	return BorderThin, separatorColor
}

// oddMonthFill shades every other month
func oddMonthFill(p Position) Fill {
	if p.IsOddMonth() {
		return Fill{Kind: FillSolid, Color: oddMonthColor}
	}
	return Fill{}
}

func centered(s Style) Style {
	s.Align = AlignCenter
	s.VCenter = true
	return s
}

// MonthLabelStyle styles the month name column
func MonthLabelStyle(p Position) Style {
	b := cellBorders(p)
	b.Left, b.LeftColor = BorderMedium, colorful.Color{}
	b.Right = BorderMedium
	return Style{
		Borders: b,
		Fill:    oddMonthFill(p),
		Font:    Font{Bold: true, Size: monthLabelFontSize},
		Align:   AlignLeft,
		VCenter: true,
	}
}

// EmptyDayStyle styles cells of days without collections and of non-existent days
func EmptyDayStyle(p Position) Style {
	return centered(Style{Borders: cellBorders(p), Fill: oddMonthFill(p)})
}

// SundayStyle styles every row of a Sunday without collections
func SundayStyle(p Position) Style {
	return centered(Style{
		Borders: cellBorders(p),
		Fill:    Fill{Kind: FillSolid, Color: sundayFillColor},
		Font:    Font{Colored: true, Color: white},
	})
}

// CenteredStyle styles an unused data row of a collection day
func CenteredStyle(p Position) Style {
	return centered(Style{Borders: cellBorders(p)})
}

// DayHeadingStyle styles the weekday label of a collection day
func DayHeadingStyle(p Position, c Category) Style {
	fill := Fill{Kind: FillSolid, Color: c.BaseColor()}
	if c == GardenWaste {
		fill.Kind = FillHatch
	}
	return centered(Style{Borders: cellBorders(p), Fill: fill})
}

// DataCellStyle styles a data row showing the abbreviation of c
func DataCellStyle(p Position, c Category) Style {
	return centered(Style{Borders: cellBorders(p), Fill: dataFill(c)})
}

func dataFill(c Category) Fill {
	tint, ok := c.TintColor()
	if c == GardenWaste || !ok {
		return Fill{Kind: FillHatch, Color: c.BaseColor()}
	}
	return Fill{Kind: FillGradient, Color: c.BaseColor(), Inner: tint}
}

// WithUnderline returns s with an underlined font
func WithUnderline(s Style) Style {
	s.Font.Underline = true
	return s
}

// TitleStyle styles the sheet title
func TitleStyle() Style {
	return Style{Font: Font{Bold: true, Size: titleFontSize}}
}

// YearHeadingStyle styles the year cell above the month column
func YearHeadingStyle() Style {
	return centered(Style{
		Borders: Borders{Bottom: BorderMedium},
		Font:    Font{Bold: true, Size: yearFontSize},
	})
}

// ColumnHeadingStyle styles the day number above a day column
func ColumnHeadingStyle(day int) Style {
	b := Borders{Top: BorderMedium, Bottom: BorderMedium}
	b.Left, b.LeftColor = dayColumnLeft(day)
	if day == DaysPerRow {
		b.Right = BorderMedium
	}
	return centered(Style{Borders: b, Font: Font{Bold: true, Size: columnHeadingSize}})
}

// NoteStyle styles footer text
func NoteStyle(small bool) Style {
	if small {
		return Style{Font: Font{Size: noteSmallFontSize}}
	}
	return Style{Font: Font{Size: noteFontSize}}
}

// LegendStyle styles the abbreviation sample of c in the footer legend
func LegendStyle(c Category) Style {
	b := Borders{Top: BorderThin, Bottom: BorderThin, Left: BorderThin, Right: BorderThin}
	return centered(Style{Borders: b, Fill: dataFill(c)})
}
