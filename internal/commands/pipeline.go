package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/klabast/wb-services/abfall-grid/internal/app"
	"github.com/klabast/wb-services/abfall-grid/internal/config"
	"github.com/klabast/wb-services/abfall-grid/internal/grid"
	"github.com/klabast/wb-services/abfall-grid/internal/ics"
	"github.com/klabast/wb-services/abfall-grid/internal/logger"
)

// loadEvents reads the input, picking the reader by file extension
func loadEvents(cfg *config.Config) ([]grid.Event, error) {
	if cfg.Input == "" {
		return nil, fmt.Errorf("no input file given")
	}

	switch strings.ToLower(filepath.Ext(cfg.Input)) {
	case ".ics", ".ical", ".ifb", ".icalendar":
		return ics.ReadFile(cfg.Input)
	case ".json":
		return app.LoadCalendarEvents(cfg.Input, cfg.District)
	}
	return nil, fmt.Errorf("unsupported input %s: expected an .ics file or a calendar store .json", cfg.Input)
}

// loadHolidays returns the holiday table of the configured year
func loadHolidays(cfg *config.Config) (grid.HolidayTable, error) {
	if cfg.Holidays == "" {
		return app.NRWHolidays(cfg.Year), nil
	}
	return app.LoadHolidayFile(cfg.Holidays, cfg.Year)
}

// buildSchedule reads and classifies the input events
func buildSchedule(cfg *config.Config) (grid.Schedule, error) {
	events, err := loadEvents(cfg)
	if err != nil {
		return nil, err
	}

	rules, err := cfg.ClassifierRules()
	if err != nil {
		return nil, err
	}
	sites, err := cfg.ClassifierSites()
	if err != nil {
		return nil, err
	}

	sched, err := grid.NewClassifier(cfg.Year, rules, sites).Group(events)
	if err != nil {
		return nil, err
	}
	logger.Info("Classified events", "input", cfg.Input, "events", len(events), "days", len(sched))
	return sched, nil
}
