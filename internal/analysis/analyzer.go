// Package analysis computes post-tournament statistics from a batch of hand
// records: action frequencies, per-card outcomes, profit confidence
// intervals and cumulative profit series.
package analysis

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/kuhnlab/kuhnbench/internal/kuhn"
	"github.com/kuhnlab/kuhnbench/internal/tournament"
)

// ActionFrequency is the count and share of one action type for an identity.
type ActionFrequency struct {
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// CardStats groups outcomes by which card a seat held, regardless of which
// identity held it.
type CardStats struct {
	Hands     int     `json:"hands"`
	Wins      int     `json:"won"`
	WinRate   float64 `json:"win_rate"`
	Profit    int     `json:"profit"`
	AvgProfit float64 `json:"avg_profit"`
}

// ProfitStats summarises one identity's per-hand profit with a 95%
// Student-t confidence interval. HasInterval is false for n <= 1, where no
// meaningful interval exists.
type ProfitStats struct {
	Mean        float64 `json:"mean"`
	StdDev      float64 `json:"std"`
	CILow       float64 `json:"ci_lower"`
	CIHigh      float64 `json:"ci_upper"`
	N           int     `json:"n"`
	HasInterval bool    `json:"has_interval"`
}

// Report is the full analysis of one tournament.
type Report struct {
	Matchup           string                                `json:"matchup"`
	TotalHands        int                                   `json:"total_hands"`
	ActionFrequencies map[string]map[string]ActionFrequency `json:"action_frequencies"`
	Cards             map[kuhn.Card]CardStats               `json:"card_statistics"`
	Profit            map[string]ProfitStats                `json:"confidence_intervals"`
	Cumulative        map[string][]int                      `json:"cumulative_profit"`
	ProfitPer100      map[string]float64                    `json:"profit_per_100"`
}

// Analyze computes a Report from a tournament result. It is a pure function
// of the recorded hands; re-running it on the same result always yields the
// same report.
func Analyze(result *tournament.Result) *Report {
	report := &Report{
		Matchup:           result.Summary.Matchup,
		TotalHands:        result.Summary.TotalHands,
		ActionFrequencies: actionFrequencies(result.Hands),
		Cards:             cardStatistics(result.Hands),
		ProfitPer100:      result.Summary.ProfitPer100,
	}
	report.Profit = profitIntervals(result.Hands)
	report.Cumulative = cumulativeProfit(result.Hands)
	return report
}

// actionFrequencies tallies each identity's actions with percentages of that
// identity's total.
func actionFrequencies(hands []tournament.HandRecord) map[string]map[string]ActionFrequency {
	counts := make(map[string]map[string]int)
	for _, hand := range hands {
		for _, event := range hand.Events {
			if counts[event.Identity] == nil {
				counts[event.Identity] = make(map[string]int)
			}
			counts[event.Identity][event.Action.String()]++
		}
	}

	out := make(map[string]map[string]ActionFrequency, len(counts))
	for identity, actions := range counts {
		total := 0
		for _, c := range actions {
			total += c
		}
		out[identity] = make(map[string]ActionFrequency, len(kuhn.Actions))
		for _, action := range kuhn.Actions {
			c := actions[action.String()]
			freq := ActionFrequency{Count: c}
			if total > 0 {
				freq.Percent = float64(c) / float64(total) * 100
			}
			out[identity][action.String()] = freq
		}
	}
	return out
}

// cardStatistics groups win rate and average profit by held card.
func cardStatistics(hands []tournament.HandRecord) map[kuhn.Card]CardStats {
	out := make(map[kuhn.Card]CardStats, 3)
	for _, hand := range hands {
		for seat := 0; seat < 2; seat++ {
			card := hand.Cards[seat]
			s := out[card]
			s.Hands++
			payoff := hand.Payoffs[seat]
			if payoff > 0 {
				s.Wins++
			}
			s.Profit += payoff
			out[card] = s
		}
	}
	for card, s := range out {
		if s.Hands > 0 {
			s.WinRate = float64(s.Wins) / float64(s.Hands)
			s.AvgProfit = float64(s.Profit) / float64(s.Hands)
		}
		out[card] = s
	}
	return out
}

// profitIntervals computes each identity's mean per-hand profit with a 95%
// Student-t confidence interval. For a single hand (or none) the interval
// degrades to a point estimate with no width rather than pretending n-1
// degrees of freedom exist.
func profitIntervals(hands []tournament.HandRecord) map[string]ProfitStats {
	profits := identityProfits(hands)

	out := make(map[string]ProfitStats, len(profits))
	for identity, values := range profits {
		n := len(values)
		if n == 0 {
			out[identity] = ProfitStats{}
			continue
		}

		mean := stat.Mean(values, nil)
		if n == 1 {
			out[identity] = ProfitStats{Mean: mean, CILow: mean, CIHigh: mean, N: n}
			continue
		}

		variance := stat.Variance(values, nil)
		stddev := math.Sqrt(variance)

		tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}
		tCritical := tDist.Quantile(0.975)
		margin := tCritical * stddev / math.Sqrt(float64(n))

		out[identity] = ProfitStats{
			Mean:        mean,
			StdDev:      stddev,
			CILow:       mean - margin,
			CIHigh:      mean + margin,
			N:           n,
			HasInterval: true,
		}
	}
	return out
}

// cumulativeProfit builds each identity's prefix-sum profit series in play
// order, starting at 0 before the first hand.
func cumulativeProfit(hands []tournament.HandRecord) map[string][]int {
	series := make(map[string][]int)
	for _, hand := range hands {
		for identity, payoff := range handPayoffs(hand) {
			s, ok := series[identity]
			if !ok {
				s = []int{0}
			}
			series[identity] = append(s, s[len(s)-1]+payoff)
		}
	}
	return series
}

// identityProfits extracts per-hand profits keyed by identity, in play order.
func identityProfits(hands []tournament.HandRecord) map[string][]float64 {
	out := make(map[string][]float64)
	for _, hand := range hands {
		for identity, payoff := range handPayoffs(hand) {
			out[identity] = append(out[identity], float64(payoff))
		}
	}
	return out
}

// handPayoffs maps identities to their payoff for one hand, resolving which
// seat each identity occupied from the recorded events.
func handPayoffs(hand tournament.HandRecord) map[string]int {
	out := make(map[string]int, 2)
	for _, event := range hand.Events {
		if _, seen := out[event.Identity]; !seen {
			out[event.Identity] = hand.Payoffs[event.Seat]
		}
	}
	return out
}

// String renders the report as a readable summary block.
func (r *Report) String() string {
	var b strings.Builder
	line := strings.Repeat("=", 60)

	fmt.Fprintf(&b, "%s\nTOURNAMENT SUMMARY: %s\n%s\n\n", line, r.Matchup, line)
	fmt.Fprintf(&b, "Total Hands: %d\n", r.TotalHands)

	identities := sortedKeys(r.Profit)

	b.WriteString("\nRESULTS (mean profit per hand, 95% CI):\n")
	for _, identity := range identities {
		p := r.Profit[identity]
		if p.HasInterval {
			fmt.Fprintf(&b, "  %s: %+.4f  [%.4f, %.4f]  (n=%d)\n", identity, p.Mean, p.CILow, p.CIHigh, p.N)
		} else {
			fmt.Fprintf(&b, "  %s: %+.4f  (n=%d, no interval)\n", identity, p.Mean, p.N)
		}
		if per100, ok := r.ProfitPer100[identity]; ok {
			fmt.Fprintf(&b, "    %+.2f per 100 hands\n", per100)
		}
	}

	b.WriteString("\nACTION FREQUENCIES:\n")
	for _, identity := range identities {
		freqs, ok := r.ActionFrequencies[identity]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "  %s:\n", identity)
		for _, action := range kuhn.Actions {
			f := freqs[action.String()]
			fmt.Fprintf(&b, "    %-5s %5d (%.1f%%)\n", action, f.Count, f.Percent)
		}
	}

	b.WriteString("\nCARD STATISTICS:\n")
	deck := kuhn.Deck()
	for i := len(deck) - 1; i >= 0; i-- {
		card := deck[i]
		s, ok := r.Cards[card]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "  %s: win rate %.1f%%, avg profit %+.2f over %d hands\n",
			card, s.WinRate*100, s.AvgProfit, s.Hands)
	}

	fmt.Fprintf(&b, "\n%s\n", line)
	return b.String()
}

func sortedKeys(m map[string]ProfitStats) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
