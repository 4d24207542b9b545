package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/kuhnlab/kuhnbench/cmd/kuhnbench/shared"
	"github.com/kuhnlab/kuhnbench/internal/analysis"
)

// ExperimentCmd runs a set of independent matchups. Matchups run
// concurrently: each has its own engine, strategies and opponent models, so
// nothing is shared between them. Hands within each matchup stay sequential.
type ExperimentCmd struct {
	Config     string `type:"existingfile" help:"HCL file of matchup blocks; omit for the default matchup set"`
	Hands      int    `default:"1000" help:"Hands per matchup when not set in the config"`
	Seed       int64  `default:"1" help:"Base seed; matchup i uses seed+100*i when not set in the config"`
	MinSamples int    `default:"8" help:"Observations before the opponent model trusts its estimates"`
	OutputDir  string `help:"Write each tournament result as JSON into this directory"`
	Debug      bool   `help:"Enable debug logging"`
	LogJSON    bool   `help:"Emit structured JSON logs instead of console output"`
}

func (c *ExperimentCmd) Run() error {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	if c.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	matchups, err := c.matchups()
	if err != nil {
		return err
	}
	if c.OutputDir != "" {
		if err := os.MkdirAll(c.OutputDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	logger.Info("Starting experiment", "matchups", len(matchups))

	var mu sync.Mutex
	reports := make([]string, len(matchups))

	root, stop := shared.SignalContext()
	defer stop()

	g, ctx := errgroup.WithContext(root)
	for i, spec := range matchups {
		g.Go(func() error {
			result, err := runMatchup(ctx, spec)
			if err != nil {
				return fmt.Errorf("matchup %s vs %s: %w", spec.LabelA, spec.LabelB, err)
			}

			report := analysis.Analyze(result)
			mu.Lock()
			reports[i] = report.String()
			mu.Unlock()

			if c.OutputDir != "" {
				path := filepath.Join(c.OutputDir, result.Summary.Matchup+".json")
				if err := writeResult(path, result); err != nil {
					return err
				}
				logger.Info("Saved tournament result", "path", path)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, report := range reports {
		fmt.Print(report)
	}
	return nil
}

// matchups resolves the experiment's matchup list, either from an HCL config
// or the built-in default set.
func (c *ExperimentCmd) matchups() ([]matchupSpec, error) {
	if c.Config != "" {
		cfg, err := LoadExperimentConfig(c.Config)
		if err != nil {
			return nil, err
		}
		specs := cfg.Specs(c.Hands, c.Seed, c.MinSamples)
		for i := range specs {
			specs[i].Debug = c.Debug
			specs[i].LogJSON = c.LogJSON
		}
		return specs, nil
	}

	// Default: the equilibrium against each opponent type, plus the
	// exploiter against the baselines it should beat.
	pairs := [][2]string{
		{"gto", "exploit"},
		{"gto", "caller"},
		{"gto", "aggressor"},
		{"exploit", "caller"},
		{"exploit", "aggressor"},
		{"exploit", "random"},
	}
	specs := make([]matchupSpec, 0, len(pairs))
	for i, pair := range pairs {
		specs = append(specs, matchupSpec{
			A:          pair[0],
			B:          pair[1],
			LabelA:     pair[0],
			LabelB:     pair[1],
			Hands:      c.Hands,
			Seed:       c.Seed + 100*int64(i),
			MinSamples: c.MinSamples,
			Debug:      c.Debug,
			LogJSON:    c.LogJSON,
		})
	}
	return specs, nil
}
