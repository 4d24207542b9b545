package strategy

import (
	"github.com/rs/zerolog"

	"github.com/kuhnlab/kuhnbench/internal/kuhn"
)

// Decider is a decision source that may fail or return an out-of-protocol
// action, such as a bridge to an external reasoning service. It is the
// minimal surface a Fallback wrapper needs; observation hooks are optional
// via the Observer interface.
type Decider interface {
	Name() string
	Decide(state kuhn.GameState, legal []kuhn.Action, seat int) (kuhn.Action, error)
}

// Observer is optionally implemented by Deciders that want the tournament's
// observation hooks forwarded to them.
type Observer interface {
	ObserveOpponentAction(state kuhn.GameState, action kuhn.Action, seat int)
	ObserveResult(state kuhn.GameState, action kuhn.Action, next kuhn.GameState, seat int)
	Reset()
}

// Fallback adapts an unreliable Decider into a conforming Strategy. A failed
// or illegal decision is replaced by the first legal action and logged as a
// warning; the failure never reaches the engine or the tournament aggregate.
// Retrying a failed decision, if wanted, belongs inside the Decider.
type Fallback struct {
	decider Decider
	logger  zerolog.Logger
}

// NewFallback wraps decider. Pass zerolog.Nop() to silence warnings.
func NewFallback(decider Decider, logger zerolog.Logger) *Fallback {
	return &Fallback{decider: decider, logger: logger}
}

// Name implements Strategy.
func (f *Fallback) Name() string { return f.decider.Name() }

// ChooseAction implements Strategy. It never returns an error for decider
// failures; by the tournament's contract the legal set at any decision point
// is non-empty, so a default action always exists.
func (f *Fallback) ChooseAction(state kuhn.GameState, legal []kuhn.Action, seat int) (kuhn.Action, error) {
	action, err := f.decider.Decide(state, legal, seat)
	if err != nil {
		f.logger.Warn().
			Err(err).
			Str("decider", f.decider.Name()).
			Str("history", state.HistoryString()).
			Msg("decision source failed, substituting default action")
		return legal[0], nil
	}
	for _, a := range legal {
		if a == action {
			return action, nil
		}
	}
	f.logger.Warn().
		Str("decider", f.decider.Name()).
		Str("action", action.String()).
		Str("history", state.HistoryString()).
		Msg("decision source returned illegal action, substituting default")
	return legal[0], nil
}

// ObserveOpponentAction implements Strategy.
func (f *Fallback) ObserveOpponentAction(state kuhn.GameState, action kuhn.Action, seat int) {
	if o, ok := f.decider.(Observer); ok {
		o.ObserveOpponentAction(state, action, seat)
	}
}

// ObserveResult implements Strategy.
func (f *Fallback) ObserveResult(state kuhn.GameState, action kuhn.Action, next kuhn.GameState, seat int) {
	if o, ok := f.decider.(Observer); ok {
		o.ObserveResult(state, action, next, seat)
	}
}

// Reset implements Strategy.
func (f *Fallback) Reset() {
	if o, ok := f.decider.(Observer); ok {
		o.Reset()
	}
}
