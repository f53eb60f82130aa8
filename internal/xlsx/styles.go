package xlsx

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/xuri/excelize/v2"

	"github.com/klabast/wb-services/abfall-grid/internal/grid"
)

// excelize fill pattern and gradient indexes
const (
	patternSolid      = 1
	patternLightUp    = 14
	shadingFromCentre = 5
	borderStyleThin   = 1
	borderStyleMedium = 2
	underlineSingle   = "single"
	alignLeft         = "left"
	alignCenter       = "center"
	gradientFill      = "gradient"
	patternFill       = "pattern"
)

// styleID returns the excelize style of s, registering it on first use
func (w *Workbook) styleID(s grid.Style) (int, error) {
	if id, ok := w.styles[s]; ok {
		return id, nil
	}
	id, err := w.f.NewStyle(toExcelStyle(s))
	if err != nil {
		return 0, err
	}
	w.styles[s] = id
	return id, nil
}

func toExcelStyle(s grid.Style) *excelize.Style {
	style := &excelize.Style{
		Border: toBorders(s.Borders),
		Fill:   toFill(s.Fill),
		Font:   toFont(s.Font),
	}

	var align excelize.Alignment
	switch s.Align {
	case grid.AlignLeft:
		align.Horizontal = alignLeft
	case grid.AlignCenter:
		align.Horizontal = alignCenter
	}
	if s.VCenter {
		align.Vertical = alignCenter
	}
	if align != (excelize.Alignment{}) {
		style.Alignment = &align
	}
	return style
}

func toBorders(b grid.Borders) []excelize.Border {
	var borders []excelize.Border
	add := func(side string, bs grid.BorderStyle, c colorful.Color) {
		switch bs {
		case grid.BorderThin:
			borders = append(borders, excelize.Border{Type: side, Color: c.Hex(), Style: borderStyleThin})
		case grid.BorderMedium:
			borders = append(borders, excelize.Border{Type: side, Color: c.Hex(), Style: borderStyleMedium})
		}
	}

	black := colorful.Color{}
	add("left", b.Left, b.LeftColor)
	add("right", b.Right, black)
	add("top", b.Top, black)
	add("bottom", b.Bottom, black)
	return borders
}

func toFill(f grid.Fill) excelize.Fill {
	switch f.Kind {
	case grid.FillSolid:
		return excelize.Fill{Type: patternFill, Pattern: patternSolid, Color: []string{f.Color.Hex()}}
	case grid.FillHatch:
		return excelize.Fill{Type: patternFill, Pattern: patternLightUp, Color: []string{f.Color.Hex()}}
	case grid.FillGradient:
		return excelize.Fill{Type: gradientFill, Shading: shadingFromCentre, Color: []string{f.Inner.Hex(), f.Color.Hex()}}
	}
	return excelize.Fill{}
}

func toFont(f grid.Font) *excelize.Font {
	if f == (grid.Font{}) {
		return nil
	}
	font := &excelize.Font{Bold: f.Bold, Size: f.Size}
	if f.Bold || f.Size > 0 {
		font.Family = grid.FontFamily
	}
	if f.Underline {
		font.Underline = underlineSingle
	}
	if f.Colored {
		font.Color = f.Color.Hex()
	}
	return font
}
