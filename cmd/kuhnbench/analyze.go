package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kuhnlab/kuhnbench/internal/analysis"
	"github.com/kuhnlab/kuhnbench/internal/tournament"
)

// AnalyzeCmd recomputes the full analysis report from a saved tournament
// result file.
type AnalyzeCmd struct {
	File string `arg:"" type:"existingfile" help:"Tournament result JSON file"`
}

func (c *AnalyzeCmd) Run() error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.File, err)
	}

	var result tournament.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return fmt.Errorf("failed to decode %s: %w", c.File, err)
	}

	report := analysis.Analyze(&result)
	fmt.Print(report.String())
	return nil
}
