package main

import (
	"fmt"
	"strings"

	"github.com/kuhnlab/kuhnbench/internal/randutil"
	"github.com/kuhnlab/kuhnbench/internal/strategy"
)

// strategyNames lists the selectable strategy types.
var strategyNames = []string{"gto", "exploit", "caller", "aggressor", "random"}

// newStrategy builds a strategy by type name. Each strategy gets its own RNG
// derived from the base seed and its seat slot, so the engine and the two
// strategies never share a random stream.
func newStrategy(kind string, label string, seed int64, minSamples int) (strategy.Strategy, error) {
	if label == "" {
		label = kind
	}
	switch kind {
	case "gto":
		return strategy.NewEquilibrium(label, randutil.New(seed)), nil
	case "exploit":
		model := strategy.NewOpponentModel(minSamples)
		return strategy.NewExploitative(label, model, randutil.New(seed)), nil
	case "caller":
		return strategy.NewCaller(label), nil
	case "aggressor":
		return strategy.NewAggressor(label), nil
	case "random":
		return strategy.NewRandom(label, randutil.New(seed)), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want one of %s)", kind, strings.Join(strategyNames, ", "))
	}
}
