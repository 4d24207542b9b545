package kuhn

import (
	"errors"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		history []Action
		want    Situation
	}{
		{"opening decision", nil, FirstToAct},
		{"after opponent check", []Action{Check}, AfterCheck},
		{"facing immediate bet", []Action{Bet}, FacingBet},
		{"facing bet after own check", []Action{Check, Bet}, FacingBet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := GameState{
				Cards:         [2]Card{Queen, King},
				History:       tt.history,
				CurrentPlayer: len(tt.history) % 2,
			}
			got, err := Classify(state)
			if err != nil {
				t.Fatalf("Classify: %v", err)
			}
			if got != tt.want {
				t.Errorf("Classify(%v) = %s, want %s", tt.history, got, tt.want)
			}
		})
	}
}

func TestClassify_Errors(t *testing.T) {
	if _, err := Classify(GameState{Terminal: true}); !errors.Is(err, ErrInvalidState) {
		t.Errorf("terminal state: got %v, want ErrInvalidState", err)
	}
	if _, err := Classify(GameState{History: []Action{Check, Check}}); !errors.Is(err, ErrInvalidState) {
		t.Errorf("completed history: got %v, want ErrInvalidState", err)
	}
}

// TestInfoSet_FacingBetCollapse verifies that the two raw bet-facing
// histories key onto the same information set for a seat holding the same
// card: a history-keyed strategy table would wrongly split them.
func TestInfoSet_FacingBetCollapse(t *testing.T) {
	immediate := GameState{
		Cards:         [2]Card{Jack, Queen},
		History:       []Action{Bet},
		CurrentPlayer: 1,
	}
	delayed := GameState{
		Cards:         [2]Card{King, Queen},
		History:       []Action{Check, Bet},
		CurrentPlayer: 0,
	}

	isImmediate, err := NewInfoSet(immediate, 1)
	if err != nil {
		t.Fatalf("NewInfoSet(immediate): %v", err)
	}
	isDelayed, err := NewInfoSet(delayed, 0)
	if err != nil {
		t.Fatalf("NewInfoSet(delayed): %v", err)
	}

	if isImmediate.Situation != FacingBet || isDelayed.Situation != FacingBet {
		t.Fatalf("situations = %s, %s, want both facing-bet", isImmediate.Situation, isDelayed.Situation)
	}
	if isImmediate.Card != Queen || isDelayed.Card != King {
		t.Errorf("cards = %s, %s, want Q and K", isImmediate.Card, isDelayed.Card)
	}
}

func TestNewInfoSet_WrongSeat(t *testing.T) {
	state := GameState{
		Cards:         [2]Card{Queen, King},
		History:       []Action{Check},
		CurrentPlayer: 1,
	}
	if _, err := NewInfoSet(state, 0); !errors.Is(err, ErrInvalidState) {
		t.Errorf("got %v, want ErrInvalidState", err)
	}
}

func TestAllInfoSets(t *testing.T) {
	sets := AllInfoSets()
	if len(sets) != 9 {
		t.Fatalf("got %d info sets, want 9", len(sets))
	}
	seen := make(map[InfoSet]bool)
	for _, is := range sets {
		if seen[is] {
			t.Errorf("duplicate info set %s", is)
		}
		seen[is] = true
	}
}

func TestInfoSet_String(t *testing.T) {
	is := InfoSet{Card: King, Situation: FacingBet}
	if got := is.String(); got != "K/facing-bet" {
		t.Errorf("String() = %q, want %q", got, "K/facing-bet")
	}
}
