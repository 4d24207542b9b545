package kuhn

import "strings"

// GameState is an immutable snapshot of one hand in progress. States are
// created only by the Engine; Apply returns a fresh value and never mutates
// its input. History is append-only and owned by the state it belongs to.
type GameState struct {
	// Cards holds each seat's card. The two cards are always distinct.
	Cards [2]Card

	// History is the ordered sequence of actions taken so far this hand.
	History []Action

	// Pot is the total chips committed: 2*ante plus one unit for each BET
	// and CALL.
	Pot int

	// CurrentPlayer is the seat to act next. Meaningless once Terminal.
	CurrentPlayer int

	// Terminal reports whether the hand has ended.
	Terminal bool

	// Payoffs holds each seat's signed result net of antes. Valid only when
	// Terminal; the two entries always sum to zero.
	Payoffs [2]int
}

// HistoryString renders the betting history as "CHECK->BET" style text, or
// "START" before any action.
func (s GameState) HistoryString() string {
	if len(s.History) == 0 {
		return "START"
	}
	parts := make([]string, len(s.History))
	for i, a := range s.History {
		parts[i] = a.String()
	}
	return strings.Join(parts, "->")
}

// Actor returns the seat that took the action at history index i. Seat 0
// always opens, seat 1 responds, and a CHECK-BET sequence returns the action
// to seat 0.
func Actor(i int) int {
	return i % 2
}

// withAction returns a copy of s with action appended to a freshly allocated
// history slice, so the original state's history can never be aliased.
func (s GameState) withAction(action Action) GameState {
	history := make([]Action, len(s.History), len(s.History)+1)
	copy(history, s.History)
	next := s
	next.History = append(history, action)
	return next
}
