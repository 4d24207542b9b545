package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "experiment.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func seedPtr(v int64) *int64 { return &v }

func TestLoadExperimentConfig(t *testing.T) {
	path := writeConfig(t, `
matchup "gto_vs_exploit" {
  a     = "gto"
  b     = "exploit"
  hands = 5000
  seed  = 7
}

matchup "exploit_vs_caller" {
  a           = "exploit"
  b           = "caller"
  min_samples = 16
}
`)

	config, err := LoadExperimentConfig(path)
	require.NoError(t, err)
	require.Len(t, config.Matchups, 2)

	first := config.Matchups[0]
	assert.Equal(t, "gto_vs_exploit", first.Label)
	assert.Equal(t, "gto", first.A)
	assert.Equal(t, "exploit", first.B)
	assert.Equal(t, 5000, first.Hands)
	require.NotNil(t, first.Seed)
	assert.Equal(t, int64(7), *first.Seed)

	second := config.Matchups[1]
	assert.Equal(t, 16, second.MinSamples)
	assert.Zero(t, second.Hands)
	assert.Nil(t, second.Seed, "unset seed stays nil so the default applies")
}

func TestLoadExperimentConfig_Errors(t *testing.T) {
	_, err := LoadExperimentConfig(filepath.Join(t.TempDir(), "missing.hcl"))
	assert.Error(t, err)

	_, err = LoadExperimentConfig(writeConfig(t, `matchup "broken" {`))
	assert.Error(t, err)

	_, err = LoadExperimentConfig(writeConfig(t, `# empty file`))
	assert.Error(t, err, "a config with no matchups is rejected")
}

func TestExperimentConfig_Specs(t *testing.T) {
	config := &ExperimentConfig{
		Matchups: []MatchupConfig{
			{Label: "custom", A: "gto", B: "exploit", Hands: 2000, Seed: seedPtr(99), MinSamples: 4},
			{Label: "defaulted", A: "exploit", B: "caller"},
		},
	}

	specs := config.Specs(1000, 10, 8)
	require.Len(t, specs, 2)

	assert.Equal(t, "custom", specs[0].Label)
	assert.Equal(t, 2000, specs[0].Hands)
	assert.Equal(t, int64(99), specs[0].Seed)
	assert.Equal(t, 4, specs[0].MinSamples)

	assert.Equal(t, "defaulted", specs[1].Label)
	assert.Equal(t, 1000, specs[1].Hands)
	assert.Equal(t, int64(110), specs[1].Seed, "matchup 1 offsets the base seed by 100")
	assert.Equal(t, 8, specs[1].MinSamples)
}

func TestExperimentConfig_Specs_ExplicitZeroSeed(t *testing.T) {
	config := &ExperimentConfig{
		Matchups: []MatchupConfig{
			{Label: "zero", A: "gto", B: "caller", Seed: seedPtr(0)},
		},
	}

	specs := config.Specs(1000, 10, 8)
	require.Len(t, specs, 1)
	assert.Equal(t, int64(0), specs[0].Seed, "an explicit seed = 0 must not be replaced by the default")
}

// TestExperimentConfig_Specs_RepeatedPairing runs the same strategy pairing
// in two blocks. The block labels must survive into the specs, because the
// labels are what keeps the two result files from overwriting each other.
func TestExperimentConfig_Specs_RepeatedPairing(t *testing.T) {
	path := writeConfig(t, `
matchup "gto_vs_exploit_seed1" {
  a    = "gto"
  b    = "exploit"
  seed = 1
}

matchup "gto_vs_exploit_seed2" {
  a    = "gto"
  b    = "exploit"
  seed = 2
}
`)

	config, err := LoadExperimentConfig(path)
	require.NoError(t, err)

	specs := config.Specs(1000, 10, 8)
	require.Len(t, specs, 2)
	assert.Equal(t, "gto_vs_exploit_seed1", specs[0].Label)
	assert.Equal(t, "gto_vs_exploit_seed2", specs[1].Label)
	assert.NotEqual(t, specs[0].Label, specs[1].Label)
	assert.NotEqual(t, specs[0].Seed, specs[1].Seed)
}

func TestNewStrategy(t *testing.T) {
	for _, kind := range strategyNames {
		s, err := newStrategy(kind, "", 1, 8)
		require.NoError(t, err, kind)
		assert.Equal(t, kind, s.Name(), "default label is the type name")
	}

	s, err := newStrategy("gto", "hero", 1, 8)
	require.NoError(t, err)
	assert.Equal(t, "hero", s.Name())

	_, err = newStrategy("martingale", "", 1, 8)
	assert.Error(t, err)
}
