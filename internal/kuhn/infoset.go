package kuhn

import "fmt"

// Situation is the decision-equivalence class of a betting history as seen by
// the acting seat. There are only three: open the betting, act after the
// opponent checked, or respond to one outstanding bet.
//
// FacingBet deliberately collapses two raw histories onto one class: the
// opponent's immediate BET, and the opponent's BET after our own CHECK. In
// both the remaining decision is identical (call one unit or fold), so
// strategies keyed on Situation cannot accidentally split them the way
// history-string keys would.
type Situation int8

const (
	FirstToAct Situation = iota
	AfterCheck
	FacingBet
)

// Situations lists every situation in canonical order.
var Situations = []Situation{FirstToAct, AfterCheck, FacingBet}

// String returns the string representation of a situation
func (s Situation) String() string {
	switch s {
	case FirstToAct:
		return "first-to-act"
	case AfterCheck:
		return "after-check"
	case FacingBet:
		return "facing-bet"
	default:
		return "?"
	}
}

// Classify maps a non-terminal state's betting history to the acting seat's
// Situation.
func Classify(state GameState) (Situation, error) {
	if state.Terminal {
		return 0, fmt.Errorf("%w: terminal state has no decision point", ErrInvalidState)
	}

	history := state.History
	switch {
	case len(history) == 0:
		return FirstToAct, nil
	case len(history) == 1 && history[0] == Check:
		return AfterCheck, nil
	case history[len(history)-1] == Bet:
		return FacingBet, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrInvalidState, state.HistoryString())
	}
}

// InfoSet identifies a decision point as the acting seat sees it: its own
// card plus the situation class. It is computed on demand, never stored.
type InfoSet struct {
	Card      Card
	Situation Situation
}

// NewInfoSet derives the information set for a seat about to act in state.
// The seat must be the acting seat; hidden opponent information never enters
// the key.
func NewInfoSet(state GameState, seat int) (InfoSet, error) {
	if !state.Terminal && seat != state.CurrentPlayer {
		return InfoSet{}, fmt.Errorf("%w: seat %d is not the acting seat", ErrInvalidState, seat)
	}
	situation, err := Classify(state)
	if err != nil {
		return InfoSet{}, err
	}
	return InfoSet{Card: state.Cards[seat], Situation: situation}, nil
}

// String renders the info set as e.g. "K/facing-bet".
func (is InfoSet) String() string {
	return fmt.Sprintf("%s/%s", is.Card, is.Situation)
}

// AllInfoSets enumerates the nine reachable information sets of the game.
func AllInfoSets() []InfoSet {
	sets := make([]InfoSet, 0, 9)
	for _, card := range Deck() {
		for _, situation := range Situations {
			sets = append(sets, InfoSet{Card: card, Situation: situation})
		}
	}
	return sets
}
