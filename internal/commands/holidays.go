package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/klabast/wb-services/abfall-grid/internal/app"
	"github.com/klabast/wb-services/abfall-grid/internal/locale"
)

// HolidaysCmd lists the holidays that are underlined on the sheet
type HolidaysCmd struct {
	RunFlags `embed:""`
}

// Run executes the holidays command
func (c *HolidaysCmd) Run(ctx *Context) error {
	cfg, err := ctx.Config(c.RunFlags.apply)
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

	tw := tabwriter.NewWriter(ctx.Stdout, 0, 4, 2, ' ', 0)
	for _, h := range app.SortedHolidays(holidays) {
		date := time.Date(cfg.Year, h.Day.Month, h.Day.Day, 12, 0, 0, 0, time.UTC)
		fmt.Fprintf(tw, "%s\t%s\t%s\n", date.Format("02.01.2006"), names.Weekday(date.Weekday()), h.Name)
	}
	return tw.Flush()
}
