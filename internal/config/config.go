// Package config loads the settings of a grid run.
//
// Values are layered: built-in defaults, then the YAML file, then ABFALL_* environment
// variables. Command line flags are applied by the commands before Validate is called.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/klabast/wb-services/abfall-grid/internal/grid"
	"github.com/klabast/wb-services/abfall-grid/internal/locale"
)

// EnvPrefix is the prefix of all environment variables
const EnvPrefix = "ABFALL"

// Config represents the complete run configuration
type Config struct {
	Year     int    `yaml:"year" envconfig:"YEAR" validate:"min=2000,max=9999"`
	Locale   string `yaml:"locale" envconfig:"LOCALE" validate:"required,locale"`
	Input    string `yaml:"input" envconfig:"INPUT"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	District string `yaml:"district" envconfig:"DISTRICT"`
	Holidays string `yaml:"holidays" envconfig:"HOLIDAYS"`

	Sheet       SheetConfig   `yaml:"sheet" envconfig:"SHEET"`
	Rules       []RuleConfig  `yaml:"rules" ignored:"true" validate:"dive"`
	HazardSites []HazardSite  `yaml:"hazard_sites" ignored:"true" validate:"dive"`
	Logging     LoggingConfig `yaml:"logging" envconfig:"LOG"`
}

// SheetConfig contains the furniture around the grid
type SheetConfig struct {
	Title   string          `yaml:"title" envconfig:"TITLE"`
	Creator string          `yaml:"creator" envconfig:"CREATOR"`
	Logo    string          `yaml:"logo" envconfig:"LOGO" validate:"omitempty,file"`
	Legend  bool            `yaml:"legend" envconfig:"LEGEND"`
	Notes   []grid.NoteLine `yaml:"notes" ignored:"true"`
}

// RuleConfig is one keyword rule of the classifier. Category "hazard" selects the
// hazard site lookup.
type RuleConfig struct {
	Keywords []string `yaml:"keywords" validate:"min=1,dive,required"`
	Category string   `yaml:"category" validate:"required,category"`
}

// HazardSite maps a location substring to a hazard category
type HazardSite struct {
	Match    string `yaml:"match" validate:"required"`
	Category string `yaml:"category" validate:"required,oneof=hazard1 hazard2 hazard3 hazard4"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `yaml:"level" envconfig:"LEVEL" validate:"omitempty,oneof=debug info warn error"`
	File  string `yaml:"file" envconfig:"FILE"`
}

// hazardRule is the category name of rules that resolve the hazard site
const hazardRule = "hazard"

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Year:   time.Now().Year(),
		Locale: locale.Default,
		Sheet: SheetConfig{
			Title:  grid.DefaultTitle,
			Legend: true,
		},
		Logging: LoggingConfig{Level: "warn"},
	}
}

// Load builds the configuration from defaults, the optional YAML file at path and the
// environment. The result is not validated yet.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	dec := yaml.NewDecoder(file)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Validate checks the configuration after all layers have been applied
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.RegisterValidation("locale", func(fl validator.FieldLevel) bool {
		_, err := locale.Lookup(fl.Field().String())
		return err == nil
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		name := fl.Field().String()
		if strings.EqualFold(name, hazardRule) {
			return true
		}
		_, err := grid.ParseCategory(name)
		return err == nil
	}); err != nil {
		return err
	}

	if err := v.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}

	for _, line := range c.Sheet.Notes {
		for _, note := range line {
			if note.Col < grid.MonthLabelColumn || note.Col > grid.LastColumn {
				return fmt.Errorf("invalid configuration: note %q: column %d outside 0..%d", note.Text, note.Col, grid.LastColumn)
			}
		}
	}
	return nil
}

// OutputPath returns the configured output file or the default name for the year
func (c *Config) OutputPath() string {
	if c.Output != "" {
		return c.Output
	}
	return fmt.Sprintf("Abfallkalender %d.xlsx", c.Year)
}

// ClassifierRules converts the configured rules. Nil means the built-in rules.
func (c *Config) ClassifierRules() ([]grid.Rule, error) {
	if len(c.Rules) == 0 {
		return nil, nil
	}
	rules := make([]grid.Rule, 0, len(c.Rules))
	for _, r := range c.Rules {
		if strings.EqualFold(r.Category, hazardRule) {
			rules = append(rules, grid.Rule{Keywords: r.Keywords, Hazard: true})
			continue
		}
		cat, err := grid.ParseCategory(r.Category)
		if err != nil {
			return nil, err
		}
		rules = append(rules, grid.Rule{Keywords: r.Keywords, Category: cat})
	}
	return rules, nil
}

// ClassifierSites converts the configured hazard sites. Nil means the built-in sites.
func (c *Config) ClassifierSites() ([]grid.HazardSite, error) {
	if len(c.HazardSites) == 0 {
		return nil, nil
	}
	sites := make([]grid.HazardSite, 0, len(c.HazardSites))
	for _, s := range c.HazardSites {
		cat, err := grid.ParseCategory(s.Category)
		if err != nil {
			return nil, err
		}
		if !cat.IsHazard() {
			return nil, fmt.Errorf("hazard site %q: %s is not a hazard category", s.Match, s.Category)
		}
		sites = append(sites, grid.HazardSite{Match: s.Match, Category: cat})
	}
	return sites, nil
}

// RenderOptions returns the sheet options for the renderer
func (c *Config) RenderOptions() grid.Options {
	return grid.Options{
		Title:  c.Sheet.Title,
		Legend: c.Sheet.Legend,
		Notes:  c.Sheet.Notes,
	}
}
