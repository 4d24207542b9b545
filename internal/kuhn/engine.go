// Package kuhn implements the two-player, three-card Kuhn poker game tree as
// an immutable state machine. The Engine is a pure transition function over
// GameState values; the only mutable piece is the seeded RNG used to deal.
package kuhn

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

const (
	// Ante is the mandatory chip each seat posts before the deal.
	Ante = 1

	// BetSize is the single fixed bet unit for BET and CALL.
	BetSize = 1
)

var (
	// ErrIllegalAction is returned when an action outside LegalActions is
	// applied. Conforming strategies never trigger this; an occurrence is a
	// caller bug and must propagate.
	ErrIllegalAction = errors.New("illegal action for state")

	// ErrInvalidState is returned when a betting history has a shape that
	// cannot occur under conforming play.
	ErrInvalidState = errors.New("invalid betting history")

	// ErrNotTerminal is returned when payoffs are requested before the hand
	// has ended.
	ErrNotTerminal = errors.New("state is not terminal")
)

// Engine deals hands and applies actions. It owns its RNG so that two engines
// never share hidden seed state; construct with an explicit *rand.Rand for
// reproducible deals.
type Engine struct {
	rng *rand.Rand
}

// NewEngine creates an engine that deals using the provided RNG.
func NewEngine(rng *rand.Rand) *Engine {
	return &Engine{rng: rng}
}

// StartHand deals two distinct cards uniformly without replacement and
// returns the initial state: pot of two antes, seat 0 to act, empty history.
func (e *Engine) StartHand() GameState {
	deck := Deck()
	perm := e.rng.Perm(len(deck))
	return GameState{
		Cards:         [2]Card{deck[perm[0]], deck[perm[1]]},
		History:       nil,
		Pot:           2 * Ante,
		CurrentPlayer: 0,
	}
}

// LegalActions enumerates the actions available to the acting seat. A
// terminal state has none. Every reachable decision point in this variant
// offers exactly two actions.
func (e *Engine) LegalActions(state GameState) ([]Action, error) {
	if state.Terminal {
		return nil, nil
	}

	history := state.History
	switch {
	case len(history) == 0:
		return []Action{Check, Bet}, nil
	case len(history) == 1 && history[0] == Check:
		return []Action{Check, Bet}, nil
	case history[len(history)-1] == Bet:
		return []Action{Call, Fold}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidState, state.HistoryString())
	}
}

// Apply validates action against LegalActions and returns the successor
// state. BET and CALL each add one unit to the pot. FOLD ends the hand
// immediately in the other seat's favour; CHECK-CHECK and BET-CALL end at
// showdown. CHECK-BET is not terminal: the original checker faces the bet.
func (e *Engine) Apply(state GameState, action Action) (GameState, error) {
	legal, err := e.LegalActions(state)
	if err != nil {
		return GameState{}, err
	}
	if !containsAction(legal, action) {
		return GameState{}, fmt.Errorf("%w: %s after %s", ErrIllegalAction, action, state.HistoryString())
	}

	next := state.withAction(action)
	if action == Bet || action == Call {
		next.Pot += BetSize
	}

	switch {
	case action == Fold:
		next.Terminal = true
		next.Payoffs = foldPayoffs(state.CurrentPlayer, next.Pot)
	case action == Call:
		next.Terminal = true
		next.Payoffs = showdownPayoffs(next.Cards, next.Pot)
	case len(next.History) == 2 && next.History[0] == Check && next.History[1] == Check:
		next.Terminal = true
		next.Payoffs = showdownPayoffs(next.Cards, next.Pot)
	default:
		next.CurrentPlayer = 1 - state.CurrentPlayer
	}

	return next, nil
}

// Payoff returns the signed chip result for a seat in a terminal state.
func (e *Engine) Payoff(state GameState, seat int) (int, error) {
	if !state.Terminal {
		return 0, ErrNotTerminal
	}
	return state.Payoffs[seat], nil
}

// foldPayoffs awards the pot to the non-folding seat. Fold pots are odd (the
// folder never matched the outstanding bet), but pot/2 is still exact: the
// floored chip is the bettor's own returned bet, so the winner nets exactly
// what the folder loses.
func foldPayoffs(folder, pot int) [2]int {
	var payoffs [2]int
	payoffs[1-folder] = pot / 2
	payoffs[folder] = -(pot / 2)
	return payoffs
}

// showdownPayoffs awards the pot to the strictly higher card.
func showdownPayoffs(cards [2]Card, pot int) [2]int {
	winner := 0
	if cards[1].Beats(cards[0]) {
		winner = 1
	}
	var payoffs [2]int
	payoffs[winner] = pot / 2
	payoffs[1-winner] = -(pot / 2)
	return payoffs
}

func containsAction(actions []Action, action Action) bool {
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}
