package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/klabast/wb-services/abfall-grid/internal/commands"
	"github.com/klabast/wb-services/abfall-grid/internal/logger"
)

var CLI struct {
	Version  kong.VersionFlag
	Config   string `short:"c" help:"YAML config file." type:"path"`
	LogLevel string `help:"Log level (debug, info, warn, error)."`
	LogFile  string `help:"Also write the log to this file (rotated)." type:"path"`

	Render   commands.RenderCmd   `cmd:"" help:"Render the annual collection grid into an xlsx workbook." default:"withargs"`
	Classify commands.ClassifyCmd `cmd:"" help:"Print the classified collection days."`
	Holidays commands.HolidaysCmd `cmd:"" help:"List the holidays of a year."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("abfall-grid"),
		kong.Description("Annual waste collection grid for the Winterberg districts"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{"version": "v1.0.0"},
	)

	err := ctx.Run(&commands.Context{
		ConfigFile: CLI.Config,
		LogLevel:   CLI.LogLevel,
		LogFile:    CLI.LogFile,
		Stdout:     os.Stdout,
	})
	if err != nil {
		logger.Error("Command execution failed", "error", err)
	}
	if cerr := logger.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		os.Exit(1)
	}
}
