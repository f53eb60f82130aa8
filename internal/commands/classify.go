package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/klabast/wb-services/abfall-grid/internal/app"
	"github.com/klabast/wb-services/abfall-grid/internal/config"
)

// ClassifyCmd prints the classified collection days without rendering a sheet
type ClassifyCmd struct {
	Input  string `arg:"" optional:"" help:"Calendar input: .ics file or calendar store .json." type:"path"`
	Format string `short:"f" help:"Output format." enum:"csv,json,ics" default:"csv"`
	Output string `short:"o" help:"Write to file instead of stdout." type:"path"`

	RunFlags `embed:""`
}

func (c *ClassifyCmd) apply(cfg *config.Config) {
	c.RunFlags.apply(cfg)
	if c.Input != "" {
		cfg.Input = c.Input
	}
}

// Run executes the classify command
func (c *ClassifyCmd) Run(ctx *Context) error {
	cfg, err := ctx.Config(c.apply)
	if err != nil {
		return err
	}

	sched, err := buildSchedule(cfg)
	if err != nil {
		return err
	}

	write := func(w io.Writer) error {
		switch c.Format {
		case "json":
			return app.WriteScheduleJSON(w, cfg.District, cfg.Year, sched)
		case "ics":
			return app.WriteScheduleICS(w, cfg.District, cfg.Year, sched, time.Now())
		}
		return app.WriteScheduleCSV(w, cfg.Year, sched)
	}

	if c.Output == "" || c.Output == "-" {
		return write(ctx.Stdout)
	}
	if err := app.SaveOutput(c.Output, write); err != nil {
		return err
	}
	fmt.Fprintf(ctx.Stdout, "✅ %d collection days written to %s\n", len(sched), c.Output)
	return nil
}
