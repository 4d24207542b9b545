package kuhn

import (
	"errors"
	"testing"

	"github.com/kuhnlab/kuhnbench/internal/randutil"
)

func TestStartHand_DealsDistinctCards(t *testing.T) {
	engine := NewEngine(randutil.New(42))

	for i := 0; i < 100; i++ {
		state := engine.StartHand()

		if state.Cards[0] == state.Cards[1] {
			t.Fatalf("deal %d: both seats got %s", i, state.Cards[0])
		}
		if !state.Cards[0].Valid() || !state.Cards[1].Valid() {
			t.Fatalf("deal %d: invalid cards %v", i, state.Cards)
		}
		if state.Pot != 2*Ante {
			t.Errorf("deal %d: pot = %d, want %d", i, state.Pot, 2*Ante)
		}
		if state.CurrentPlayer != 0 {
			t.Errorf("deal %d: current player = %d, want 0", i, state.CurrentPlayer)
		}
		if state.Terminal {
			t.Errorf("deal %d: fresh hand is terminal", i)
		}
		if len(state.History) != 0 {
			t.Errorf("deal %d: fresh hand has history %v", i, state.History)
		}
	}
}

func TestStartHand_SameSeedSameDeals(t *testing.T) {
	engineA := NewEngine(randutil.New(7))
	engineB := NewEngine(randutil.New(7))

	for i := 0; i < 50; i++ {
		a := engineA.StartHand()
		b := engineB.StartHand()
		if a.Cards != b.Cards {
			t.Fatalf("deal %d diverged: %v vs %v", i, a.Cards, b.Cards)
		}
	}
}

func TestLegalActions(t *testing.T) {
	engine := NewEngine(randutil.New(1))

	tests := []struct {
		name    string
		history []Action
		want    []Action
	}{
		{"opening", nil, []Action{Check, Bet}},
		{"after check", []Action{Check}, []Action{Check, Bet}},
		{"facing immediate bet", []Action{Bet}, []Action{Call, Fold}},
		{"facing bet after check", []Action{Check, Bet}, []Action{Call, Fold}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := GameState{
				Cards:         [2]Card{Queen, King},
				History:       tt.history,
				Pot:           2,
				CurrentPlayer: len(tt.history) % 2,
			}
			got, err := engine.LegalActions(state)
			if err != nil {
				t.Fatalf("LegalActions: %v", err)
			}
			if len(got) != 2 {
				t.Fatalf("got %d legal actions, want exactly 2: %v", len(got), got)
			}
			for i, action := range tt.want {
				if got[i] != action {
					t.Errorf("legal[%d] = %s, want %s", i, got[i], action)
				}
			}
		})
	}
}

func TestLegalActions_Terminal(t *testing.T) {
	engine := NewEngine(randutil.New(1))
	state := GameState{Terminal: true}

	got, err := engine.LegalActions(state)
	if err != nil {
		t.Fatalf("LegalActions on terminal state: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("terminal state has legal actions %v", got)
	}
}

func TestLegalActions_InvalidHistory(t *testing.T) {
	engine := NewEngine(randutil.New(1))
	state := GameState{
		Cards:   [2]Card{Queen, King},
		History: []Action{Fold},
	}

	if _, err := engine.LegalActions(state); !errors.Is(err, ErrInvalidState) {
		t.Errorf("got %v, want ErrInvalidState", err)
	}
}

func TestApply_IllegalAction(t *testing.T) {
	engine := NewEngine(randutil.New(1))
	state := GameState{
		Cards:   [2]Card{Queen, King},
		History: []Action{Bet},
		Pot:     3,
	}

	if _, err := engine.Apply(state, Check); !errors.Is(err, ErrIllegalAction) {
		t.Errorf("got %v, want ErrIllegalAction", err)
	}
}

func TestApply_CheckCheckShowdown(t *testing.T) {
	engine := NewEngine(randutil.New(1))
	state := GameState{Cards: [2]Card{Queen, King}, Pot: 2}

	state, err := engine.Apply(state, Check)
	if err != nil {
		t.Fatalf("seat 0 check: %v", err)
	}
	if state.Terminal {
		t.Fatal("hand terminal after a single check")
	}
	if state.CurrentPlayer != 1 {
		t.Fatalf("current player = %d, want 1", state.CurrentPlayer)
	}

	state, err = engine.Apply(state, Check)
	if err != nil {
		t.Fatalf("seat 1 check: %v", err)
	}
	if !state.Terminal {
		t.Fatal("CHECK-CHECK not terminal")
	}
	if state.Pot != 2 {
		t.Errorf("pot = %d, want 2", state.Pot)
	}
	// King at seat 1 wins the showdown for one ante.
	if state.Payoffs != [2]int{-1, 1} {
		t.Errorf("payoffs = %v, want [-1 1]", state.Payoffs)
	}
}

func TestApply_CheckCheckNeverTies(t *testing.T) {
	engine := NewEngine(randutil.New(1))

	for _, cards := range [][2]Card{{Jack, Queen}, {Queen, Jack}, {Jack, King}, {King, Jack}, {Queen, King}, {King, Queen}} {
		state := GameState{Cards: cards, Pot: 2}
		state, _ = engine.Apply(state, Check)
		state, _ = engine.Apply(state, Check)

		if state.Payoffs == [2]int{0, 0} {
			t.Errorf("cards %v: showdown produced a tie", cards)
		}
		if state.Payoffs[0]+state.Payoffs[1] != 0 {
			t.Errorf("cards %v: payoffs %v not zero-sum", cards, state.Payoffs)
		}
	}
}

func TestApply_BetFold(t *testing.T) {
	engine := NewEngine(randutil.New(1))
	state := GameState{Cards: [2]Card{Jack, King}, Pot: 2}

	state, err := engine.Apply(state, Bet)
	if err != nil {
		t.Fatalf("bet: %v", err)
	}
	if state.Pot != 3 {
		t.Fatalf("pot after bet = %d, want 3", state.Pot)
	}

	state, err = engine.Apply(state, Fold)
	if err != nil {
		t.Fatalf("fold: %v", err)
	}
	if !state.Terminal {
		t.Fatal("BET-FOLD not terminal")
	}
	// The bettor wins one ante regardless of cards.
	if state.Payoffs != [2]int{1, -1} {
		t.Errorf("payoffs = %v, want [1 -1]", state.Payoffs)
	}
}

func TestApply_CheckBetFold(t *testing.T) {
	engine := NewEngine(randutil.New(1))
	state := GameState{Cards: [2]Card{Queen, Jack}, Pot: 2}

	state, _ = engine.Apply(state, Check)
	state, err := engine.Apply(state, Bet)
	if err != nil {
		t.Fatalf("bet: %v", err)
	}
	if state.Terminal {
		t.Fatal("CHECK-BET must not be terminal")
	}
	if state.CurrentPlayer != 0 {
		t.Fatalf("control must return to the checker, current player = %d", state.CurrentPlayer)
	}
	if state.Pot != 3 {
		t.Fatalf("pot = %d, want 3", state.Pot)
	}

	state, err = engine.Apply(state, Fold)
	if err != nil {
		t.Fatalf("fold: %v", err)
	}
	if !state.Terminal {
		t.Fatal("CHECK-BET-FOLD not terminal")
	}
	if state.Payoffs != [2]int{-1, 1} {
		t.Errorf("payoffs = %v, want [-1 1] favoring the bettor", state.Payoffs)
	}
}

func TestApply_BetCallShowdown(t *testing.T) {
	engine := NewEngine(randutil.New(1))
	state := GameState{Cards: [2]Card{King, Queen}, Pot: 2}

	state, _ = engine.Apply(state, Bet)
	state, err := engine.Apply(state, Call)
	if err != nil {
		t.Fatalf("call: %v", err)
	}
	if !state.Terminal {
		t.Fatal("BET-CALL not terminal")
	}
	if state.Pot != 4 {
		t.Errorf("pot = %d, want 4", state.Pot)
	}
	if state.Payoffs != [2]int{2, -2} {
		t.Errorf("payoffs = %v, want [2 -2]", state.Payoffs)
	}
}

func TestApply_CheckBetCallShowdown(t *testing.T) {
	engine := NewEngine(randutil.New(1))
	state := GameState{Cards: [2]Card{King, Jack}, Pot: 2}

	state, _ = engine.Apply(state, Check)
	state, _ = engine.Apply(state, Bet)
	state, err := engine.Apply(state, Call)
	if err != nil {
		t.Fatalf("call: %v", err)
	}
	if !state.Terminal {
		t.Fatal("CHECK-BET-CALL not terminal")
	}
	if state.Pot != 4 {
		t.Errorf("pot = %d, want 4", state.Pot)
	}
	if state.Payoffs != [2]int{2, -2} {
		t.Errorf("payoffs = %v, want [2 -2]", state.Payoffs)
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	engine := NewEngine(randutil.New(1))
	state := GameState{Cards: [2]Card{Queen, King}, Pot: 2}

	next, err := engine.Apply(state, Check)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if len(state.History) != 0 {
		t.Errorf("input state history mutated: %v", state.History)
	}

	// Branching from the same parent state must not alias histories.
	other, err := engine.Apply(state, Bet)
	if err != nil {
		t.Fatalf("bet: %v", err)
	}
	if next.History[0] != Check || other.History[0] != Bet {
		t.Errorf("sibling states share history: %v vs %v", next.History, other.History)
	}
}

func TestPayoff(t *testing.T) {
	engine := NewEngine(randutil.New(1))
	state := GameState{Cards: [2]Card{Queen, King}, Pot: 2}

	if _, err := engine.Payoff(state, 0); !errors.Is(err, ErrNotTerminal) {
		t.Errorf("got %v, want ErrNotTerminal", err)
	}

	state, _ = engine.Apply(state, Check)
	state, _ = engine.Apply(state, Check)

	got, err := engine.Payoff(state, 1)
	if err != nil {
		t.Fatalf("Payoff: %v", err)
	}
	if got != 1 {
		t.Errorf("payoff = %d, want 1", got)
	}
}

// TestAllReachableStates walks the full game tree from every possible deal
// and checks the structural invariants: exactly two legal actions at every
// decision point, zero-sum payoffs at every leaf, and no hand longer than
// three actions.
func TestAllReachableStates(t *testing.T) {
	engine := NewEngine(randutil.New(1))

	var walk func(t *testing.T, state GameState, depth int)
	walk = func(t *testing.T, state GameState, depth int) {
		if depth > 3 {
			t.Fatalf("hand exceeded 3 actions: %s", state.HistoryString())
		}
		if state.Terminal {
			if state.Payoffs[0]+state.Payoffs[1] != 0 {
				t.Errorf("%s: payoffs %v not zero-sum", state.HistoryString(), state.Payoffs)
			}
			return
		}
		legal, err := engine.LegalActions(state)
		if err != nil {
			t.Fatalf("%s: %v", state.HistoryString(), err)
		}
		if len(legal) != 2 {
			t.Errorf("%s: %d legal actions, want 2", state.HistoryString(), len(legal))
		}
		for _, action := range legal {
			next, err := engine.Apply(state, action)
			if err != nil {
				t.Fatalf("%s + %s: %v", state.HistoryString(), action, err)
			}
			walk(t, next, depth+1)
		}
	}

	deck := Deck()
	for _, c0 := range deck {
		for _, c1 := range deck {
			if c0 == c1 {
				continue
			}
			walk(t, GameState{Cards: [2]Card{c0, c1}, Pot: 2}, 0)
		}
	}
}
