package commands

import (
	"fmt"

	"github.com/klabast/wb-services/abfall-grid/internal/config"
	"github.com/klabast/wb-services/abfall-grid/internal/grid"
	"github.com/klabast/wb-services/abfall-grid/internal/locale"
	"github.com/klabast/wb-services/abfall-grid/internal/logger"
	"github.com/klabast/wb-services/abfall-grid/internal/xlsx"
)

// RenderCmd writes the annual grid workbook
type RenderCmd struct {
	Input    string `arg:"" optional:"" help:"Calendar input: .ics file or calendar store .json." type:"path"`
	Output   string `short:"o" help:"Output workbook. Default: 'Abfallkalender <year>.xlsx'." type:"path"`
	Title    string `help:"Sheet title."`
	Logo     string `help:"PNG or JPEG placed at the bottom right of the footer." type:"path"`
	NoLegend bool   `help:"Leave out the category legend below the grid."`

	RunFlags `embed:""`
}

func (c *RenderCmd) apply(cfg *config.Config) {
	c.RunFlags.apply(cfg)
	if c.Input != "" {
		cfg.Input = c.Input
	}
	if c.Output != "" {
		cfg.Output = c.Output
	}
	if c.Title != "" {
		cfg.Sheet.Title = c.Title
	}
	if c.Logo != "" {
		cfg.Sheet.Logo = c.Logo
	}
	if c.NoLegend {
		cfg.Sheet.Legend = false
	}
}

// Run executes the render command
func (c *RenderCmd) Run(ctx *Context) error {
	cfg, err := ctx.Config(c.apply)
	if err != nil {
		return err
	}

	sched, err := buildSchedule(cfg)
	if err != nil {
		return err
	}
	holidays, err := loadHolidays(cfg)
	if err != nil {
		return err
	}
	names, err := locale.Lookup(cfg.Locale)
	if err != nil {
		return err
	}
	fingerprint, err := xlsx.Fingerprint(cfg.Input)
	if err != nil {
		return err
	}

	wb, err := xlsx.New(xlsx.Options{
		Year:        cfg.Year,
		Names:       names,
		Creator:     cfg.Sheet.Creator,
		Description: fmt.Sprintf("Abholtermine %d aus %s", cfg.Year, cfg.Input),
		Identifier:  fingerprint,
		Logo:        cfg.Sheet.Logo,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := wb.Close(); err != nil {
			logger.Warn("Error closing workbook", "error", err)
		}
	}()

	area, err := grid.NewRenderer(grid.NewEngine(holidays), cfg.RenderOptions()).Render(cfg.Year, sched, wb)
	if err != nil {
		return fmt.Errorf("failed to render sheet: %w", err)
	}

	output := cfg.OutputPath()
	if err := wb.Save(output); err != nil {
		return err
	}

	logger.Info("Rendered sheet", "year", cfg.Year, "output", output, "rows", area.LastRow+1, "styles", wb.StyleCount())
	fmt.Fprintf(ctx.Stdout, "✅ Abfallkalender %d written to %s\n", cfg.Year, output)
	return nil
}
