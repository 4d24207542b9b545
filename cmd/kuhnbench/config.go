package main

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// ExperimentConfig is the HCL shape of an experiment definition:
//
//	matchup "gto_vs_exploit" {
//	  a     = "gto"
//	  b     = "exploit"
//	  hands = 10000
//	  seed  = 7
//	}
type ExperimentConfig struct {
	Matchups []MatchupConfig `hcl:"matchup,block"`
}

// MatchupConfig defines one tournament in an experiment file. The block
// label names the matchup; result files are keyed by it, so two blocks may
// pair the same strategies at different seeds or hand counts. Seed is a
// pointer so an explicit seed = 0 is distinguishable from an unset one.
type MatchupConfig struct {
	Label      string `hcl:"label,label"`
	A          string `hcl:"a"`
	B          string `hcl:"b"`
	Hands      int    `hcl:"hands,optional"`
	Seed       *int64 `hcl:"seed,optional"`
	MinSamples int    `hcl:"min_samples,optional"`
}

// LoadExperimentConfig parses an experiment definition from an HCL file.
func LoadExperimentConfig(filename string) (*ExperimentConfig, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config ExperimentConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL config: %s", diags.Error())
	}
	if len(config.Matchups) == 0 {
		return nil, fmt.Errorf("config %s defines no matchup blocks", filename)
	}
	return &config, nil
}

// Specs converts the config into matchup specs, filling unset fields from
// the command-line defaults. Matchup i defaults to seed+100*i so matchups
// never share a deal sequence.
func (c *ExperimentConfig) Specs(defaultHands int, baseSeed int64, defaultMinSamples int) []matchupSpec {
	specs := make([]matchupSpec, 0, len(c.Matchups))
	for i, m := range c.Matchups {
		spec := matchupSpec{
			A:          m.A,
			B:          m.B,
			Label:      m.Label,
			LabelA:     m.A,
			LabelB:     m.B,
			Hands:      m.Hands,
			MinSamples: m.MinSamples,
		}
		if spec.Hands <= 0 {
			spec.Hands = defaultHands
		}
		if m.Seed != nil {
			spec.Seed = *m.Seed
		} else {
			spec.Seed = baseSeed + 100*int64(i)
		}
		if spec.MinSamples <= 0 {
			spec.MinSamples = defaultMinSamples
		}
		specs = append(specs, spec)
	}
	return specs
}
