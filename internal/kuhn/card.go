package kuhn

import "fmt"

// Card represents one of the three Kuhn poker cards. The deck has no suits;
// rank is the card's only identity.
type Card int8

const (
	Jack Card = iota + 1
	Queen
	King
)

// Deck returns the full three-card Kuhn deck in rank order.
func Deck() [3]Card {
	return [3]Card{Jack, Queen, King}
}

// String returns the string representation of a card
func (c Card) String() string {
	switch c {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return "?"
	}
}

// Beats reports whether c outranks other at showdown. Ranks are never equal
// within a hand because the two cards are dealt without replacement.
func (c Card) Beats(other Card) bool {
	return c > other
}

// Valid reports whether c is one of the three deck cards.
func (c Card) Valid() bool {
	return c >= Jack && c <= King
}

// MarshalText encodes a card as its single-letter rank for JSON records.
func (c Card) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid card %d", int8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a card from its single-letter rank.
func (c *Card) UnmarshalText(text []byte) error {
	switch string(text) {
	case "J":
		*c = Jack
	case "Q":
		*c = Queen
	case "K":
		*c = King
	default:
		return fmt.Errorf("unknown card %q", text)
	}
	return nil
}
