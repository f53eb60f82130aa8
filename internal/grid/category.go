package grid

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Category is a waste collection category
type Category uint8

// Categories. The numeric values are identifiers only, ordering comes from the priority
// column of the category table.
const (
	GardenWaste Category = iota + 1
	Paper
	YellowBag
	Residual
	Bio
	Hazard1
	Hazard2
	Hazard3
	Hazard4
)

// categoryInfo holds the fixed display data of one category
type categoryInfo struct {
	name     string
	abbrev   string
	display  string
	base     colorful.Color
	tint     colorful.Color
	hasTint  bool
	priority int
}

var (
	hazardBase = rgb(250, 192, 146)
	white      = rgb(255, 255, 255)
)

var categoryTable = map[Category]categoryInfo{
	GardenWaste: {name: "garden", abbrev: "GA", display: "Gartenabfall", base: rgb(0, 176, 80), priority: 1},
	Paper:       {name: "paper", abbrev: "P", display: "Papier", base: rgb(149, 179, 215), tint: rgb(221, 231, 242), hasTint: true, priority: 2},
	YellowBag:   {name: "yellowbag", abbrev: "GS", display: "Gelber Sack", base: rgb(255, 255, 102), tint: rgb(255, 255, 204), hasTint: true, priority: 3},
	Residual:    {name: "residual", abbrev: "Rest", display: "Restmüll", base: rgb(207, 121, 119), tint: white, hasTint: true, priority: 4},
	Bio:         {name: "bio", abbrev: "Bio", display: "Biomüll", base: rgb(196, 215, 155), tint: rgb(235, 241, 222), hasTint: true, priority: 5},
	Hazard1:     {name: "hazard1", abbrev: "SM1", display: "Schadstoffmobil 1", base: hazardBase, tint: white, hasTint: true, priority: 6},
	Hazard2:     {name: "hazard2", abbrev: "SM2", display: "Schadstoffmobil 2", base: hazardBase, tint: white, hasTint: true, priority: 7},
	Hazard3:     {name: "hazard3", abbrev: "SM3", display: "Schadstoffmobil 3", base: hazardBase, tint: white, hasTint: true, priority: 8},
	Hazard4:     {name: "hazard4", abbrev: "SM4", display: "Schadstoffmobil 4", base: hazardBase, tint: white, hasTint: true, priority: 9},
}

// AllCategories lists every category in priority order
func AllCategories() []Category {
	return []Category{GardenWaste, Paper, YellowBag, Residual, Bio, Hazard1, Hazard2, Hazard3, Hazard4}
}

// ParseCategory resolves a category by its identifier name (e.g. "bio", "hazard2")
func ParseCategory(name string) (Category, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for c, info := range categoryTable {
		if info.name == want {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", name)
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	_, ok := categoryTable[c]
	return ok
}

func (c Category) String() string {
	if info, ok := categoryTable[c]; ok {
		return info.name
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

// Abbrev returns the short label printed in data cells
func (c Category) Abbrev() string { return categoryTable[c].abbrev }

// DisplayName returns the legend text of the category
func (c Category) DisplayName() string { return categoryTable[c].display }

// Priority returns the sort rank of the category; lower ranks sort first
func (c Category) Priority() int { return categoryTable[c].priority }

// BaseColor returns the main fill colour of the category
func (c Category) BaseColor() colorful.Color { return categoryTable[c].base }

// TintColor returns the inner gradient colour, if the category has one
func (c Category) TintColor() (colorful.Color, bool) {
	info := categoryTable[c]
	return info.tint, info.hasTint
}

// IsHazard reports whether c is one of the hazardous waste collection sites
func (c Category) IsHazard() bool {
	switch c {
	case Hazard1, Hazard2, Hazard3, Hazard4:
		return true
	}
	return false
}

// rgb builds a colour from 8-bit channels
func rgb(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}
