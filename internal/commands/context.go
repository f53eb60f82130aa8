package commands

import (
	"io"

	"github.com/klabast/wb-services/abfall-grid/internal/config"
	"github.com/klabast/wb-services/abfall-grid/internal/logger"
)

// Context carries the global flags to every command
type Context struct {
	ConfigFile string
	LogLevel   string
	LogFile    string
	Stdout     io.Writer
}

// RunFlags are the settings shared by all commands. Zero values keep the value from
// the config file or environment.
type RunFlags struct {
	Year     int    `short:"y" help:"Year of the calendar."`
	Locale   string `short:"l" help:"Locale of month and weekday names (da, de, en, es, fr, it, nl, pl)."`
	District string `short:"d" help:"District to read from a calendar store (.json) input."`
	Holidays string `help:"Holiday file with 'name = yyyy-m-d' lines. Default: computed NRW holidays." type:"path"`
}

func (f RunFlags) apply(cfg *config.Config) {
	if f.Year != 0 {
		cfg.Year = f.Year
	}
	if f.Locale != "" {
		cfg.Locale = f.Locale
	}
	if f.District != "" {
		cfg.District = f.District
	}
	if f.Holidays != "" {
		cfg.Holidays = f.Holidays
	}
}

// Config loads the layered configuration, applies the command line on top, validates
// the result and initializes logging from it
func (c *Context) Config(flags func(cfg *config.Config)) (*config.Config, error) {
	cfg, err := config.Load(c.ConfigFile)
	if err != nil {
		return nil, err
	}

	if c.LogLevel != "" {
		cfg.Logging.Level = c.LogLevel
	}
	if c.LogFile != "" {
		cfg.Logging.File = c.LogFile
	}
	if flags != nil {
		flags(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := logger.Init(logger.Config{Level: cfg.Logging.Level, File: cfg.Logging.File}); err != nil {
		return nil, err
	}
	return cfg, nil
}
