// Package strategy provides decision-making for Kuhn poker seats: the
// closed-form equilibrium, an opponent-modelling exploitative player, simple
// baselines, and a fallback wrapper for unreliable external deciders.
package strategy

import (
	"fmt"
	rand "math/rand/v2"
	"sort"

	"github.com/kuhnlab/kuhnbench/internal/kuhn"
)

// Strategy is the capability a tournament seat must provide. ChooseAction is
// a synchronous call that must return a member of legal or fail; the observe
// hooks are optional learning inputs that the tournament runner drives.
type Strategy interface {
	// Name identifies the strategy for profit accounting. Profit is keyed
	// by name, not seat, so seat alternation cancels positional bias.
	Name() string

	// ChooseAction picks one of the legal actions for the given seat.
	ChooseAction(state kuhn.GameState, legal []kuhn.Action, seat int) (kuhn.Action, error)

	// ObserveOpponentAction is called with the pre-action state whenever the
	// other seat acts, before the action is applied.
	ObserveOpponentAction(state kuhn.GameState, action kuhn.Action, seat int)

	// ObserveResult is called after this seat's own action has been applied.
	ObserveResult(state kuhn.GameState, action kuhn.Action, next kuhn.GameState, seat int)

	// Reset clears any accumulated state so the strategy can start an
	// unrelated matchup with no carry-over.
	Reset()
}

// Distribution maps legal actions to probabilities summing to one.
type Distribution map[kuhn.Action]float64

// Sample draws an action from the distribution. Iteration follows the
// canonical action order so the draw is reproducible under a seeded RNG.
func (d Distribution) Sample(rng *rand.Rand) kuhn.Action {
	r := rng.Float64()
	cumulative := 0.0
	last := kuhn.Check
	for _, action := range kuhn.Actions {
		p, ok := d[action]
		if !ok {
			continue
		}
		last = action
		cumulative += p
		if r < cumulative {
			return action
		}
	}
	// Float64 rounding can leave cumulative fractionally short of 1.
	return last
}

// Restrict renormalises the distribution over the legal action set. An empty
// intersection is a protocol violation.
func (d Distribution) Restrict(legal []kuhn.Action) (Distribution, error) {
	out := make(Distribution, len(legal))
	total := 0.0
	for _, action := range legal {
		if p, ok := d[action]; ok && p > 0 {
			out[action] = p
			total += p
		}
	}
	if total <= 0 {
		return nil, fmt.Errorf("distribution has no mass on legal actions %v", legal)
	}
	for action := range out {
		out[action] /= total
	}
	return out, nil
}

// Sum returns the total probability mass; a well-formed distribution sums to
// one within floating tolerance.
func (d Distribution) Sum() float64 {
	total := 0.0
	for _, p := range d {
		total += p
	}
	return total
}

// String renders the distribution in canonical action order.
func (d Distribution) String() string {
	keys := make([]kuhn.Action, 0, len(d))
	for action := range d {
		keys = append(keys, action)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	s := ""
	for i, action := range keys {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%s:%.3f", action, d[action])
	}
	return s
}
