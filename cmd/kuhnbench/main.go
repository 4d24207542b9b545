package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version    kong.VersionFlag `short:"v" help:"Show version"`
	Run        RunCmd           `cmd:"" help:"Run a single tournament between two strategies"`
	Experiment ExperimentCmd    `cmd:"" help:"Run a set of matchups, optionally from an HCL config"`
	Analyze    AnalyzeCmd       `cmd:"" help:"Analyze a saved tournament result file"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("kuhnbench"),
		kong.Description("Kuhn poker test bench for equilibrium vs exploitative play"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
