package xlsx

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/klabast/wb-services/abfall-grid/internal/app"
	"github.com/klabast/wb-services/abfall-grid/internal/grid"
	"github.com/klabast/wb-services/abfall-grid/internal/locale"
)

func renderWorkbook(t *testing.T, year int, events []grid.Event, opts grid.Options) string {
	t.Helper()

	sched, err := grid.NewClassifier(year, nil, nil).Group(events)
	require.NoError(t, err)

	names, err := locale.Lookup("de")
	require.NoError(t, err)

	wb, err := New(Options{Year: year, Names: names, Identifier: "abc123"})
	require.NoError(t, err)
	defer wb.Close()

	renderer := grid.NewRenderer(grid.NewEngine(app.NRWHolidays(year)), opts)
	_, err = renderer.Render(year, sched, wb)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "Abfallkalender.xlsx")
	require.NoError(t, wb.Save(path))
	return path
}

func TestWorkbookRoundTrip(t *testing.T) {
	events := []grid.Event{
		{Date: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), Summary: "Biotonne"},
		{Date: time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), Summary: "Restmüll"},
		{Date: time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), Summary: "Papiertonne"},
	}
	path := renderWorkbook(t, 2024, events, grid.Options{Legend: true})

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	cell := func(name string) string {
		t.Helper()
		v, err := f.GetCellValue(SheetName, name)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, []string{SheetName}, f.GetSheetList())
	assert.Equal(t, grid.DefaultTitle, cell("B1"))
	assert.Equal(t, "2024", cell("A2"))
	assert.Equal(t, "31", cell("AF2"))
	assert.Equal(t, " Januar", cell("A3"))
	assert.Equal(t, " Februar", cell("A6"))

	// 2024-02-29 is a Thursday; February starts at sheet row 6
	assert.Equal(t, "Do", cell("AD6"))
	assert.Equal(t, "Bio", cell("AD7"))
	assert.Empty(t, cell("AE6"))
	assert.Empty(t, cell("AF7"))

	// March 5 has two categories, one per data row
	assert.Equal(t, "P", cell("F10"))
	assert.Equal(t, "Rest", cell("F11"))

	merges, err := f.GetMergeCells(SheetName)
	require.NoError(t, err)
	var refs []string
	for _, m := range merges {
		refs = append(refs, m.GetStartAxis()+":"+m.GetEndAxis())
	}
	assert.Contains(t, refs, "A3:A5")
	assert.Contains(t, refs, "A36:A38")
	assert.Contains(t, refs, "AD7:AD8")
	assert.NotContains(t, refs, "F10:F11")
	assert.Len(t, refs, 13)

	// legend below the grid
	assert.Equal(t, "P", cell("B40"))
	assert.Equal(t, "Papier", cell("C40"))
	assert.Equal(t, "Rest", cell("H40"))
	assert.Equal(t, "Bio", cell("N40"))

	var printArea string
	for _, dn := range f.GetDefinedName() {
		if dn.Name == "_xlnm.Print_Area" {
			printArea = dn.RefersTo
		}
	}
	assert.True(t, strings.HasSuffix(printArea, "$A$1:$AF$41"), "print area %q", printArea)

	props, err := f.GetDocProps()
	require.NoError(t, err)
	assert.Equal(t, "Abfallkalender 2024", props.Title)
	assert.Equal(t, "abfall", props.Creator)
	assert.Equal(t, "abc123", props.Identifier)
}

func TestWorkbookSharesStyles(t *testing.T) {
	names, err := locale.Lookup("de")
	require.NoError(t, err)

	wb, err := New(Options{Year: 2025, Names: names})
	require.NoError(t, err)
	defer wb.Close()

	_, err = grid.NewRenderer(grid.NewEngine(nil), grid.Options{}).Render(2025, grid.Schedule{}, wb)
	require.NoError(t, err)

	// one style per distinct combination of position flags, not per cell
	assert.Less(t, wb.StyleCount(), 100)

	a, err := wb.f.GetCellStyle(SheetName, "C4")
	require.NoError(t, err)
	b, err := wb.f.GetCellStyle(SheetName, "D4")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestWorkbookLogoInFooter(t *testing.T) {
	logo := filepath.Join(t.TempDir(), "qrcode.png")
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	img.Set(2, 2, color.Black)
	file, err := os.Create(logo)
	require.NoError(t, err)
	require.NoError(t, png.Encode(file, img))
	require.NoError(t, file.Close())

	wb, err := New(Options{Year: 2025, Logo: logo})
	require.NoError(t, err)
	defer wb.Close()

	area, err := grid.NewRenderer(grid.NewEngine(nil), grid.Options{}).Render(2025, grid.Schedule{}, wb)
	require.NoError(t, err)

	cell, err := excelize.CoordinatesToCellName(logoColumn+1, area.LastRow+2-logoRows)
	require.NoError(t, err)
	assert.Equal(t, "AE38", cell)

	pics, err := wb.f.GetPictures(SheetName, cell)
	require.NoError(t, err)
	assert.Len(t, pics, 1)

	pics, err = wb.f.GetPictures(SheetName, "AA1")
	require.NoError(t, err)
	assert.Empty(t, pics)
}

func TestToExcelStyle(t *testing.T) {
	pos := grid.NewPosition(2025, time.May, 13, 1)

	gradient := toExcelStyle(grid.DataCellStyle(pos, grid.Bio))
	assert.Equal(t, gradientFill, gradient.Fill.Type)
	assert.Equal(t, []string{"#ebf1de", "#c4d79b"}, gradient.Fill.Color)
	require.NotNil(t, gradient.Alignment)
	assert.Equal(t, alignCenter, gradient.Alignment.Horizontal)

	hatch := toExcelStyle(grid.DayHeadingStyle(grid.NewPosition(2025, time.May, 13, 0), grid.GardenWaste))
	assert.Equal(t, patternLightUp, hatch.Fill.Pattern)
	assert.Equal(t, []string{"#00b050"}, hatch.Fill.Color)

	title := toExcelStyle(grid.TitleStyle())
	require.NotNil(t, title.Font)
	assert.True(t, title.Font.Bold)
	assert.Equal(t, float64(24), title.Font.Size)
	assert.Equal(t, grid.FontFamily, title.Font.Family)
	assert.Nil(t, title.Alignment)

	for _, small := range []bool{false, true} {
		note := toExcelStyle(grid.NoteStyle(small))
		require.NotNil(t, note.Font)
		assert.False(t, note.Font.Bold)
		assert.Equal(t, grid.FontFamily, note.Font.Family, "small=%v", small)
	}

	underlined := toExcelStyle(grid.WithUnderline(grid.EmptyDayStyle(pos)))
	assert.Equal(t, underlineSingle, underlined.Font.Underline)

	assert.Nil(t, toExcelStyle(grid.EmptyDayStyle(pos)).Font)
}

func TestFingerprint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abfall.ics")
	require.NoError(t, os.WriteFile(path, []byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"), 0644))

	a, err := Fingerprint(path)
	require.NoError(t, err)
	assert.Len(t, a, 64)

	b, err := Fingerprint(path)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	require.NoError(t, os.WriteFile(path, []byte("BEGIN:VCALENDAR\r\n"), 0644))
	c, err := Fingerprint(path)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	_, err = Fingerprint(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
