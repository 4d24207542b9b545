package tournament

import "github.com/kuhnlab/kuhnbench/internal/kuhn"

// ActionEvent is one action within a hand, attributed both to the seat that
// took it and to the strategy identity occupying that seat for this hand.
type ActionEvent struct {
	Seat     int         `json:"seat"`
	Identity string      `json:"identity"`
	Action   kuhn.Action `json:"action"`
	Card     kuhn.Card   `json:"card"`
}

// HandRecord captures one completed hand. A batch of records is the sole
// input the analyzer needs; the struct tags describe the persistence shape
// but encoding happens outside the core.
type HandRecord struct {
	Index    int           `json:"hand_id"`
	Cards    [2]kuhn.Card  `json:"cards"`
	Events   []ActionEvent `json:"actions"`
	History  []kuhn.Action `json:"betting_history"`
	FinalPot int           `json:"final_pot"`
	Payoffs  [2]int        `json:"payoffs"`
}

// Summary aggregates a completed tournament by strategy identity.
type Summary struct {
	TournamentID   string                    `json:"tournament_id"`
	Matchup        string                    `json:"matchup"`
	TotalHands     int                       `json:"total_hands"`
	Profit         map[string]int            `json:"profits"`
	ProfitPer100   map[string]float64        `json:"profit_per_100"`
	ProfitStdDev   map[string]float64        `json:"profit_std_dev"`
	ActionCounts   map[string]map[string]int `json:"action_frequencies"`
	DurationSecs   float64                   `json:"duration_seconds"`
	HandsPerSecond float64                   `json:"hands_per_second"`
}

// Result bundles the per-hand log with the aggregate summary. It is the unit
// of persistence: one JSON object per tournament.
type Result struct {
	Summary Summary      `json:"summary"`
	Hands   []HandRecord `json:"hands"`
}
