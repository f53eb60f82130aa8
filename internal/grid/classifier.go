package grid

import (
	"sort"
	"strings"
	"time"

	"github.com/klabast/wb-services/abfall-grid/internal/logger"
)

// Event is one raw collection record as delivered by an event source
type Event struct {
	Date     time.Time
	Summary  string
	Location string
}

// Rule maps summary keywords to a category. A hazard rule resolves the concrete
// category from the event location instead.
type Rule struct {
	Keywords []string
	Category Category
	Hazard   bool
}

// HazardSite maps a location substring to one of the hazard categories
type HazardSite struct {
	Match    string
	Category Category
}

// locationInfoPrefix precedes the address part of location texts in the source feed
const locationInfoPrefix = "info: "

// DefaultRules is the ordered keyword table; the first matching rule wins
var DefaultRules = []Rule{
	{Keywords: []string{"bio"}, Category: Bio},
	{Keywords: []string{"papier", "paper"}, Category: Paper},
	{Keywords: []string{"rest", "residual"}, Category: Residual},
	{Keywords: []string{"sack"}, Category: YellowBag},
	{Keywords: []string{"garten", "garden"}, Category: GardenWaste},
	{Keywords: []string{"schadstoff", "sondermüll", "hazard"}, Hazard: true},
}

// DefaultHazardSites are the known collection sites of the hazardous waste truck
var DefaultHazardSites = []HazardSite{
	{Match: "hafen", Category: Hazard1},
	{Match: "marktplatz", Category: Hazard2},
	{Match: "wertstoffhof", Category: Hazard4},
}

// DefaultHazardSite is used when the location matches no known site
const DefaultHazardSite = Hazard3

// Classifier turns raw events into a Schedule for one year
type Classifier struct {
	year  int
	rules []Rule
	sites []HazardSite
}

// NewClassifier creates a classifier for the given year. Nil rules or sites select the
// defaults.
func NewClassifier(year int, rules []Rule, sites []HazardSite) *Classifier {
	if rules == nil {
		rules = DefaultRules
	}
	if sites == nil {
		sites = DefaultHazardSites
	}
	return &Classifier{year: year, rules: rules, sites: sites}
}

// Classify resolves the category of a single event
func (c *Classifier) Classify(ev Event) (Category, error) {
	desc := strings.ToLower(ev.Summary)
	for _, rule := range c.rules {
		if !containsAny(desc, rule.Keywords) {
			continue
		}
		if rule.Hazard {
			return c.hazardSite(ev.Location), nil
		}
		return rule.Category, nil
	}
	return 0, &ClassificationError{Date: ev.Date, Summary: ev.Summary}
}

// hazardSite picks the hazard category from the location text
func (c *Classifier) hazardSite(location string) Category {
	loc := strings.ToLower(location)
	if idx := strings.Index(loc, locationInfoPrefix); idx >= 0 {
		loc = loc[idx+len(locationInfoPrefix):]
	}
	for _, site := range c.sites {
		if site.Match != "" && strings.Contains(loc, strings.ToLower(site.Match)) {
			return site.Category
		}
	}
	return DefaultHazardSite
}

// Group classifies all events and folds them into a Schedule. Events outside the
// classifier's year are skipped, but at least one event must remain when events are
// given. The result does not depend on the order of events.
func (c *Classifier) Group(events []Event) (Schedule, error) {
	sorted := make([]Event, len(events))
	copy(sorted, events)
	SortEvents(sorted)

	result := make(Schedule)
	skipped := 0
	for _, ev := range sorted {
		if ev.Date.Year() != c.year {
			skipped++
			continue
		}

		cat, err := c.Classify(ev)
		if err != nil {
			return nil, err
		}

		key := DayKey{Month: ev.Date.Month(), Day: ev.Date.Day()}
		existing := result[key]
		next, ok := existing.With(cat)
		if !ok {
			return nil, &ValidationError{Day: key, Existing: existing, Added: cat}
		}
		result[key] = next
	}

	if len(sorted) > 0 && skipped == len(sorted) {
		return nil, &EmptyYearError{
			Year:   c.year,
			Events: len(sorted),
			First:  sorted[0].Date,
			Last:   sorted[len(sorted)-1].Date,
		}
	}
	if skipped > 0 {
		logger.Warn("Skipped events outside of year", "year", c.year, "count", skipped)
	}
	for _, day := range result.Days() {
		logger.Debug("Collection day", "day", day.String(), "categories", result[day].String())
	}
	return result, nil
}

// SortEvents sorts events by date, summary and location
func SortEvents(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.Summary != b.Summary {
			return a.Summary < b.Summary
		}
		return a.Location < b.Location
	})
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(s, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
