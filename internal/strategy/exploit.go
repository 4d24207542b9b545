package strategy

import (
	rand "math/rand/v2"

	"github.com/kuhnlab/kuhnbench/internal/kuhn"
)

// equilibriumFoldRate is how often an equilibrium opponent folds when facing
// a bet: always with the Jack, never otherwise, so one hand in three.
const equilibriumFoldRate = 1.0 / 3.0

const (
	// defaultExploitSlope scales how far the bluff frequency moves per unit
	// of deviation in the opponent's observed fold rate.
	defaultExploitSlope = 1.5

	// defaultConfidenceRamp is the observation count at which the model's
	// estimate is trusted in full. Below it the shift is scaled down
	// proportionally, so one extra observation never jumps the strategy.
	defaultConfidenceRamp = 50
)

// Exploitative deviates from the equilibrium where the opponent's observed
// tendencies leave value on the table. In this reduced game the only mixed
// equilibrium node is the Jack's bluff after a check, so that is the only
// node with room to exploit: against frequent folders bluffs are cheap, so
// the bluff frequency rises above Alpha; against stations it falls. All pure
// equilibrium nodes pass through unchanged; exploiting those would require
// modelling the opponent's own deviations, which this strategy does not
// attempt.
type Exploitative struct {
	name   string
	oracle *Oracle
	model  *OpponentModel
	rng    *rand.Rand

	slope float64
	ramp  int
}

// NewExploitative creates an exploitative strategy backed by the given
// opponent model.
func NewExploitative(name string, model *OpponentModel, rng *rand.Rand) *Exploitative {
	return &Exploitative{
		name:   name,
		oracle: NewOracle(),
		model:  model,
		rng:    rng,
		slope:  defaultExploitSlope,
		ramp:   defaultConfidenceRamp,
	}
}

// Name implements Strategy.
func (x *Exploitative) Name() string { return x.name }

// Model exposes the opponent model, mainly for tests and reporting.
func (x *Exploitative) Model() *OpponentModel { return x.model }

// Distribution returns the action distribution this strategy would play at
// the given information set. When the opponent model has too little data the
// result is exactly the oracle's equilibrium distribution.
func (x *Exploitative) Distribution(is kuhn.InfoSet) (Distribution, error) {
	base, err := x.oracle.Lookup(is)
	if err != nil {
		return nil, err
	}

	// Only the Jack-after-check node is mixed under equilibrium.
	if is.Card != kuhn.Jack || is.Situation != kuhn.AfterCheck {
		return base, nil
	}

	bluff := x.BluffProbability()
	return Distribution{kuhn.Check: 1 - bluff, kuhn.Bet: bluff}, nil
}

// BluffProbability computes the current bluff frequency for the Jack after
// the opponent checks. The shift away from Alpha is linear in the estimated
// fold-to-bet rate around its equilibrium value, confidence-weighted by
// sample size and clamped to [0,1].
func (x *Exploitative) BluffProbability() float64 {
	foldRate, ok := x.model.Estimate(kuhn.FacingBet, kuhn.Fold)
	if !ok {
		return Alpha
	}

	target := clamp01(Alpha + x.slope*(foldRate-equilibriumFoldRate))

	n := x.model.Opportunities(kuhn.FacingBet)
	weight := float64(n) / float64(x.ramp)
	if weight > 1 {
		weight = 1
	}

	return clamp01(Alpha + weight*(target-Alpha))
}

// ChooseAction implements Strategy.
func (x *Exploitative) ChooseAction(state kuhn.GameState, legal []kuhn.Action, seat int) (kuhn.Action, error) {
	is, err := kuhn.NewInfoSet(state, seat)
	if err != nil {
		return 0, err
	}
	dist, err := x.Distribution(is)
	if err != nil {
		return 0, err
	}
	restricted, err := dist.Restrict(legal)
	if err != nil {
		return 0, err
	}
	return restricted.Sample(x.rng), nil
}

// ObserveOpponentAction feeds the opponent model. The state is the
// pre-action state, so its acting seat is the opponent and Classify yields
// the opponent's decision situation. An opponent call guarantees a showdown,
// so the card it is about to reveal is correlated with the calling decision.
func (x *Exploitative) ObserveOpponentAction(state kuhn.GameState, action kuhn.Action, seat int) {
	situation, err := kuhn.Classify(state)
	if err != nil {
		return
	}
	x.model.Observe(situation, action)

	if situation == kuhn.FacingBet && action == kuhn.Call {
		x.model.ObserveShowdown(situation, action, state.Cards[1-seat])
	}
}

// ObserveResult correlates showdown reveals with the opponent's betting
// decision: when our own call closes the hand, the opponent's revealed card
// tells us what it bet with.
func (x *Exploitative) ObserveResult(state kuhn.GameState, action kuhn.Action, next kuhn.GameState, seat int) {
	if !next.Terminal || action != kuhn.Call {
		return
	}
	history := next.History
	betIndex := len(history) - 2
	if betIndex < 0 || history[betIndex] != kuhn.Bet {
		return
	}
	situation := kuhn.FirstToAct
	if betIndex == 1 {
		situation = kuhn.AfterCheck
	}
	x.model.ObserveShowdown(situation, kuhn.Bet, next.Cards[1-seat])
}

// Reset clears the opponent model.
func (x *Exploitative) Reset() {
	x.model.Reset()
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
