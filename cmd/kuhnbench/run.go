package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/kuhnlab/kuhnbench/cmd/kuhnbench/shared"
	"github.com/kuhnlab/kuhnbench/internal/analysis"
	"github.com/kuhnlab/kuhnbench/internal/fileutil"
	"github.com/kuhnlab/kuhnbench/internal/tournament"
)

// RunCmd runs one tournament between two named strategies.
type RunCmd struct {
	A          string `default:"gto" help:"First strategy: gto, exploit, caller, aggressor, random"`
	B          string `default:"exploit" help:"Second strategy"`
	Hands      int    `default:"1000" help:"Number of hands to play"`
	Seed       int64  `default:"1" help:"RNG seed for the deal and sampling"`
	MinSamples int    `default:"8" help:"Observations before the opponent model trusts its estimates"`
	Output     string `help:"Write the full tournament result as JSON to this file"`
	Debug      bool   `help:"Enable debug logging"`
	LogJSON    bool   `help:"Emit structured JSON logs instead of console output"`
}

func (c *RunCmd) Run() error {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	if c.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	ctx, stop := shared.SignalContext()
	defer stop()

	result, err := runMatchup(ctx, matchupSpec{
		A:          c.A,
		B:          c.B,
		LabelA:     c.A,
		LabelB:     c.B,
		Hands:      c.Hands,
		Seed:       c.Seed,
		MinSamples: c.MinSamples,
		Debug:      c.Debug,
		LogJSON:    c.LogJSON,
	})
	if err != nil {
		return err
	}

	report := analysis.Analyze(result)
	fmt.Print(report.String())

	if c.Output != "" {
		if err := writeResult(c.Output, result); err != nil {
			return err
		}
		logger.Info("Tournament result saved", "path", c.Output)
	}
	return nil
}

// matchupSpec is the resolved configuration for one tournament. Label names
// the matchup itself; it distinguishes result files when an experiment pits
// the same strategy kinds against each other more than once.
type matchupSpec struct {
	A, B           string
	Label          string
	LabelA, LabelB string
	Hands          int
	Seed           int64
	MinSamples     int
	Debug          bool
	LogJSON        bool
}

// runMatchup builds both strategies and plays one tournament. Strategy RNGs
// derive from offsets of the tournament seed so that engine and strategies
// draw from independent streams.
func runMatchup(ctx context.Context, spec matchupSpec) (*tournament.Result, error) {
	labelA, labelB := spec.LabelA, spec.LabelB
	if labelA == labelB {
		labelA += "-a"
		labelB += "-b"
	}

	a, err := newStrategy(spec.A, labelA, spec.Seed+1, spec.MinSamples)
	if err != nil {
		return nil, err
	}
	b, err := newStrategy(spec.B, labelB, spec.Seed+2, spec.MinSamples)
	if err != nil {
		return nil, err
	}

	config := tournament.NewConfig()
	config.HandsTotal = spec.Hands
	config.Seed = spec.Seed
	config.Matchup = spec.Label
	if spec.LogJSON {
		config.Logger = shared.SetupStructuredLogger(spec.Debug)
	} else {
		config.Logger = shared.SetupLogger(spec.Debug)
	}

	return tournament.NewRunner(config).Run(ctx, a, b)
}

// writeResult persists a tournament result as indented JSON, atomically so
// the analyze command never reads a torn file.
func writeResult(path string, result *tournament.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return fileutil.WriteFileAtomic(path, data, 0o644)
}
