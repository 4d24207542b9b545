package strategy

import (
	"errors"
	"fmt"
	rand "math/rand/v2"

	"github.com/kuhnlab/kuhnbench/internal/kuhn"
)

// Alpha is the equilibrium bluffing frequency: the probability of betting the
// Jack after the opponent checks. Every other node in the equilibrium is
// pure. The Queen's call facing a bet and the King's 3*alpha value bet both
// collapse to probability 1 at alpha = 1/3.
const Alpha = 1.0 / 3.0

// ErrUnknownInfoSet is returned when a lookup key falls outside the game's
// nine information sets.
var ErrUnknownInfoSet = errors.New("unknown information set")

// Oracle is the table-driven equilibrium strategy for the game. The table is
// keyed by InfoSet, so the BET and CHECK-BET histories share the facing-bet
// row by construction rather than by string coincidence.
type Oracle struct {
	table map[kuhn.InfoSet]Distribution
}

// NewOracle builds the nine-row equilibrium table.
func NewOracle() *Oracle {
	table := map[kuhn.InfoSet]Distribution{
		// First to act: only the King bets for value. The Jack's bluff
		// waits for the opponent to check.
		{Card: kuhn.Jack, Situation: kuhn.FirstToAct}:  {kuhn.Check: 1},
		{Card: kuhn.Queen, Situation: kuhn.FirstToAct}: {kuhn.Check: 1},
		{Card: kuhn.King, Situation: kuhn.FirstToAct}:  {kuhn.Bet: 1},

		// Facing a bet: the Jack never wins a showdown, the Queen must call
		// to keep bluffs honest, the King always calls.
		{Card: kuhn.Jack, Situation: kuhn.FacingBet}:  {kuhn.Fold: 1},
		{Card: kuhn.Queen, Situation: kuhn.FacingBet}: {kuhn.Call: 1},
		{Card: kuhn.King, Situation: kuhn.FacingBet}:  {kuhn.Call: 1},

		// After the opponent checks: the Jack bluffs with frequency alpha,
		// the Queen never builds the pot, the King always value bets.
		{Card: kuhn.Jack, Situation: kuhn.AfterCheck}:  {kuhn.Check: 1 - Alpha, kuhn.Bet: Alpha},
		{Card: kuhn.Queen, Situation: kuhn.AfterCheck}: {kuhn.Check: 1},
		{Card: kuhn.King, Situation: kuhn.AfterCheck}:  {kuhn.Bet: 1},
	}
	return &Oracle{table: table}
}

// Lookup returns the equilibrium distribution for an information set.
func (o *Oracle) Lookup(is kuhn.InfoSet) (Distribution, error) {
	dist, ok := o.table[is]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownInfoSet, is)
	}
	return dist, nil
}

// Equilibrium plays the oracle's unexploitable mixed strategy, sampling mixed
// nodes with its own seeded RNG.
type Equilibrium struct {
	name   string
	oracle *Oracle
	rng    *rand.Rand
}

// NewEquilibrium creates an equilibrium strategy.
func NewEquilibrium(name string, rng *rand.Rand) *Equilibrium {
	return &Equilibrium{name: name, oracle: NewOracle(), rng: rng}
}

// Name implements Strategy.
func (e *Equilibrium) Name() string { return e.name }

// ChooseAction samples from the oracle distribution restricted to the legal
// action set.
func (e *Equilibrium) ChooseAction(state kuhn.GameState, legal []kuhn.Action, seat int) (kuhn.Action, error) {
	is, err := kuhn.NewInfoSet(state, seat)
	if err != nil {
		return 0, err
	}
	dist, err := e.oracle.Lookup(is)
	if err != nil {
		return 0, err
	}
	restricted, err := dist.Restrict(legal)
	if err != nil {
		return 0, err
	}
	return restricted.Sample(e.rng), nil
}

// ObserveOpponentAction implements Strategy. The equilibrium ignores the
// opponent entirely; that is what makes it unexploitable.
func (e *Equilibrium) ObserveOpponentAction(kuhn.GameState, kuhn.Action, int) {}

// ObserveResult implements Strategy.
func (e *Equilibrium) ObserveResult(kuhn.GameState, kuhn.Action, kuhn.GameState, int) {}

// Reset implements Strategy.
func (e *Equilibrium) Reset() {}
