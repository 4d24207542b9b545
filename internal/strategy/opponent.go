package strategy

import "github.com/kuhnlab/kuhnbench/internal/kuhn"

// NeutralPrior is the estimate returned before enough observations have
// accumulated. It deliberately carries no directional information.
const NeutralPrior = 0.5

// DefaultMinSamples is the observation count below which estimates fall back
// to the neutral prior. With only nine information sets and a handful of
// samples per cell, reacting earlier just chases noise.
const DefaultMinSamples = 8

// situationStats holds the typed counters for one opponent decision-point
// class: how often the opponent was there, what it chose, and which cards it
// later showed down after each choice.
type situationStats struct {
	opportunities int
	actions       map[kuhn.Action]int
	showdowns     map[kuhn.Action]map[kuhn.Card]int
}

func newSituationStats() *situationStats {
	return &situationStats{
		actions:   make(map[kuhn.Action]int),
		showdowns: make(map[kuhn.Action]map[kuhn.Card]int),
	}
}

// OpponentModel accumulates frequentist counters of one opponent's observed
// actions, keyed by the opponent's decision situation. Counters live for a
// single matchup; Reset must be called before tracking an unrelated opponent.
type OpponentModel struct {
	minSamples int
	stats      map[kuhn.Situation]*situationStats
}

// NewOpponentModel creates a model. minSamples <= 0 selects
// DefaultMinSamples.
func NewOpponentModel(minSamples int) *OpponentModel {
	if minSamples <= 0 {
		minSamples = DefaultMinSamples
	}
	return &OpponentModel{
		minSamples: minSamples,
		stats:      make(map[kuhn.Situation]*situationStats),
	}
}

// Observe records that the opponent chose action at a decision point of the
// given situation class.
func (m *OpponentModel) Observe(situation kuhn.Situation, action kuhn.Action) {
	s := m.situation(situation)
	s.opportunities++
	s.actions[action]++
}

// ObserveShowdown records the card the opponent revealed after taking action
// in the given situation, correlating observed tendencies with actual
// holdings.
func (m *OpponentModel) ObserveShowdown(situation kuhn.Situation, action kuhn.Action, card kuhn.Card) {
	s := m.situation(situation)
	cards := s.showdowns[action]
	if cards == nil {
		cards = make(map[kuhn.Card]int)
		s.showdowns[action] = cards
	}
	cards[card]++
}

// Estimate returns the observed frequency of action in situation. The second
// return value is false when fewer than minSamples opportunities have been
// seen, in which case the neutral prior is returned instead; insufficient
// data is a defined fallback, never an error.
func (m *OpponentModel) Estimate(situation kuhn.Situation, action kuhn.Action) (float64, bool) {
	s, ok := m.stats[situation]
	if !ok || s.opportunities < m.minSamples {
		return NeutralPrior, false
	}
	return float64(s.actions[action]) / float64(s.opportunities), true
}

// Opportunities returns how many decision points of the given class have
// been observed.
func (m *OpponentModel) Opportunities(situation kuhn.Situation) int {
	if s, ok := m.stats[situation]; ok {
		return s.opportunities
	}
	return 0
}

// ShowdownCount returns how often the opponent showed card after taking
// action in situation.
func (m *OpponentModel) ShowdownCount(situation kuhn.Situation, action kuhn.Action, card kuhn.Card) int {
	s, ok := m.stats[situation]
	if !ok {
		return 0
	}
	if cards, ok := s.showdowns[action]; ok {
		return cards[card]
	}
	return 0
}

// MinSamples returns the configured estimation threshold.
func (m *OpponentModel) MinSamples() int { return m.minSamples }

// Reset clears all counters so that no model state leaks across unrelated
// matchups.
func (m *OpponentModel) Reset() {
	m.stats = make(map[kuhn.Situation]*situationStats)
}

func (m *OpponentModel) situation(situation kuhn.Situation) *situationStats {
	s, ok := m.stats[situation]
	if !ok {
		s = newSituationStats()
		m.stats[situation] = s
	}
	return s
}
