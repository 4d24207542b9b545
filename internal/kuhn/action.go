package kuhn

import "fmt"

// Action is a betting action in the single Kuhn poker betting round.
type Action int8

const (
	Check Action = iota
	Bet
	Call
	Fold
)

// Actions lists every action in canonical order. Distributions and frequency
// tables iterate this slice so output ordering is stable.
var Actions = []Action{Check, Bet, Call, Fold}

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case Check:
		return "CHECK"
	case Bet:
		return "BET"
	case Call:
		return "CALL"
	case Fold:
		return "FOLD"
	default:
		return "?"
	}
}

// MarshalText encodes an action as its uppercase name for JSON records.
func (a Action) MarshalText() ([]byte, error) {
	if a < Check || a > Fold {
		return nil, fmt.Errorf("invalid action %d", int8(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText decodes an action from its uppercase name.
func (a *Action) UnmarshalText(text []byte) error {
	parsed, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAction converts an action name ("CHECK", "BET", "CALL", "FOLD") to an
// Action.
func ParseAction(s string) (Action, error) {
	switch s {
	case "CHECK":
		return Check, nil
	case "BET":
		return Bet, nil
	case "CALL":
		return Call, nil
	case "FOLD":
		return Fold, nil
	default:
		return 0, fmt.Errorf("unknown action %q", s)
	}
}
