package kuhn

// EquilibriumValue returns the expected chip value of an information set when
// both seats play the equilibrium strategy. The values come from the known
// analytic solution of the game and are useful for verifying long-run
// tournament results; unknown info sets value to 0.
func EquilibriumValue(is InfoSet) float64 {
	switch is.Situation {
	case FirstToAct:
		switch is.Card {
		case Jack:
			return -1.0 / 18.0
		case Queen:
			return -1.0 / 18.0
		case King:
			return 1.0 / 9.0
		}
	case FacingBet:
		switch is.Card {
		case Jack:
			return -1
		case Queen:
			return 0
		case King:
			return 1
		}
	case AfterCheck:
		switch is.Card {
		case Jack:
			return -1.0 / 6.0
		case Queen:
			return 0
		case King:
			return 1.0 / 6.0
		}
	}
	return 0
}
