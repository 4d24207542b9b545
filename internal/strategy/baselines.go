package strategy

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/kuhnlab/kuhnbench/internal/kuhn"
)

// Caller never puts chips in voluntarily but never folds either: it checks
// when it can and calls when it must. A pure calling station, useful as a
// baseline the exploiter should learn to value-bet against.
type Caller struct {
	name string
}

// NewCaller creates a calling-station baseline.
func NewCaller(name string) *Caller { return &Caller{name: name} }

// Name implements Strategy.
func (c *Caller) Name() string { return c.name }

// ChooseAction implements Strategy.
func (c *Caller) ChooseAction(state kuhn.GameState, legal []kuhn.Action, seat int) (kuhn.Action, error) {
	return preferred(legal, kuhn.Check, kuhn.Call)
}

// ObserveOpponentAction implements Strategy.
func (c *Caller) ObserveOpponentAction(kuhn.GameState, kuhn.Action, int) {}

// ObserveResult implements Strategy.
func (c *Caller) ObserveResult(kuhn.GameState, kuhn.Action, kuhn.GameState, int) {}

// Reset implements Strategy.
func (c *Caller) Reset() {}

// Aggressor bets at every opportunity and calls any bet, regardless of card.
// Maximally exploitable by folding nothing, useful for exploitation tests.
type Aggressor struct {
	name string
}

// NewAggressor creates an always-betting baseline.
func NewAggressor(name string) *Aggressor { return &Aggressor{name: name} }

// Name implements Strategy.
func (a *Aggressor) Name() string { return a.name }

// ChooseAction implements Strategy.
func (a *Aggressor) ChooseAction(state kuhn.GameState, legal []kuhn.Action, seat int) (kuhn.Action, error) {
	return preferred(legal, kuhn.Bet, kuhn.Call)
}

// ObserveOpponentAction implements Strategy.
func (a *Aggressor) ObserveOpponentAction(kuhn.GameState, kuhn.Action, int) {}

// ObserveResult implements Strategy.
func (a *Aggressor) ObserveResult(kuhn.GameState, kuhn.Action, kuhn.GameState, int) {}

// Reset implements Strategy.
func (a *Aggressor) Reset() {}

// Random picks uniformly from the legal actions.
type Random struct {
	name string
	rng  *rand.Rand
}

// NewRandom creates a uniform-random baseline.
func NewRandom(name string, rng *rand.Rand) *Random {
	return &Random{name: name, rng: rng}
}

// Name implements Strategy.
func (r *Random) Name() string { return r.name }

// ChooseAction implements Strategy.
func (r *Random) ChooseAction(state kuhn.GameState, legal []kuhn.Action, seat int) (kuhn.Action, error) {
	if len(legal) == 0 {
		return 0, fmt.Errorf("no legal actions at %s", state.HistoryString())
	}
	return legal[r.rng.IntN(len(legal))], nil
}

// ObserveOpponentAction implements Strategy.
func (r *Random) ObserveOpponentAction(kuhn.GameState, kuhn.Action, int) {}

// ObserveResult implements Strategy.
func (r *Random) ObserveResult(kuhn.GameState, kuhn.Action, kuhn.GameState, int) {}

// Reset implements Strategy.
func (r *Random) Reset() {}

// preferred returns the first of the candidates present in legal.
func preferred(legal []kuhn.Action, candidates ...kuhn.Action) (kuhn.Action, error) {
	for _, want := range candidates {
		for _, a := range legal {
			if a == want {
				return a, nil
			}
		}
	}
	return 0, fmt.Errorf("none of %v legal in %v", candidates, legal)
}
