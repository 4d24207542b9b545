// Package tournament runs repeated independent Kuhn poker hands between two
// strategies, alternating seats each hand and accounting profit by strategy
// identity so that position never biases the aggregate.
package tournament

import (
	"context"
	"fmt"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kuhnlab/kuhnbench/internal/kuhn"
	"github.com/kuhnlab/kuhnbench/internal/randutil"
	"github.com/kuhnlab/kuhnbench/internal/statistics"
	"github.com/kuhnlab/kuhnbench/internal/strategy"
)

// Config holds tournament settings. Matchup optionally names the tournament
// in the summary; when empty the name is derived from the strategy names,
// which is ambiguous if the same pairing runs more than once.
type Config struct {
	HandsTotal int
	Seed       int64
	Matchup    string
	Logger     zerolog.Logger
	Clock      quartz.Clock
}

// NewConfig returns defaults: 1000 hands, seed 1, silent logger, real clock.
func NewConfig() Config {
	return Config{
		HandsTotal: 1000,
		Seed:       1,
		Logger:     zerolog.Nop(),
		Clock:      quartz.NewReal(),
	}
}

// Runner drives tournaments. Hands within one tournament run strictly
// sequentially: opponent-model updates from hand i must be visible to
// decisions in hand i+1, so hands must never race. Independent tournaments
// are safe to run concurrently.
type Runner struct {
	config Config
}

// NewRunner creates a runner with the given configuration.
func NewRunner(config Config) *Runner {
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &Runner{config: config}
}

// Run plays the configured number of hands between a and b. Seats alternate
// by hand parity: even hands seat a first, odd hands seat b first, which
// cancels first-mover advantage over an even hand count. The context is
// checked between hands only; a single hand always runs to termination.
func (r *Runner) Run(ctx context.Context, a, b strategy.Strategy) (*Result, error) {
	if a.Name() == b.Name() {
		return nil, fmt.Errorf("strategies must have distinct names, both are %q", a.Name())
	}

	engine := kuhn.NewEngine(randutil.New(r.config.Seed))
	start := r.config.Clock.Now()

	profit := map[string]int{a.Name(): 0, b.Name(): 0}
	stats := map[string]*statistics.Statistics{
		a.Name(): {},
		b.Name(): {},
	}
	actionCounts := map[string]map[string]int{
		a.Name(): newActionCount(),
		b.Name(): newActionCount(),
	}

	hands := make([]HandRecord, 0, r.config.HandsTotal)
	for i := 0; i < r.config.HandsTotal; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("tournament aborted after %d hands: %w", i, err)
		}

		seats := [2]strategy.Strategy{a, b}
		if i%2 == 1 {
			seats = [2]strategy.Strategy{b, a}
		}

		record, err := r.playHand(engine, seats, i)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i, err)
		}

		for seat := 0; seat < 2; seat++ {
			name := seats[seat].Name()
			profit[name] += record.Payoffs[seat]
			stats[name].Add(float64(record.Payoffs[seat]))
		}
		for _, event := range record.Events {
			actionCounts[event.Identity][event.Action.String()]++
		}
		if profit[a.Name()]+profit[b.Name()] != 0 {
			return nil, fmt.Errorf("profit conservation violated after hand %d: %s=%d %s=%d",
				i, a.Name(), profit[a.Name()], b.Name(), profit[b.Name()])
		}

		hands = append(hands, record)

		r.config.Logger.Debug().
			Int("hand", i).
			Str("cards", fmt.Sprintf("%s%s", record.Cards[0], record.Cards[1])).
			Str("history", historyString(record.History)).
			Ints("payoffs", record.Payoffs[:]).
			Msg("hand complete")
	}

	duration := r.config.Clock.Now().Sub(start)
	matchup := r.config.Matchup
	if matchup == "" {
		matchup = fmt.Sprintf("%s_vs_%s", a.Name(), b.Name())
	}
	summary := Summary{
		TournamentID: uuid.NewString(),
		Matchup:      matchup,
		TotalHands:   r.config.HandsTotal,
		Profit:       profit,
		ProfitPer100: make(map[string]float64, 2),
		ProfitStdDev: make(map[string]float64, 2),
		ActionCounts: actionCounts,
		DurationSecs: duration.Seconds(),
	}
	for name, p := range profit {
		if r.config.HandsTotal > 0 {
			summary.ProfitPer100[name] = float64(p) / float64(r.config.HandsTotal) * 100
		}
		summary.ProfitStdDev[name] = stats[name].StdDev()
	}
	if secs := duration.Seconds(); secs > 0 {
		summary.HandsPerSecond = float64(r.config.HandsTotal) / secs
	}

	r.config.Logger.Info().
		Str("tournament_id", summary.TournamentID).
		Str("matchup", summary.Matchup).
		Int("hands", summary.TotalHands).
		Interface("profits", summary.Profit).
		Msg("tournament complete")

	return &Result{Summary: summary, Hands: hands}, nil
}

// playHand drives one hand from deal to termination. At every decision point
// the seated strategy picks from the engine's legal actions; the other
// seat's strategy observes the action before it is applied, and the actor
// observes the resulting transition afterwards.
func (r *Runner) playHand(engine *kuhn.Engine, seats [2]strategy.Strategy, index int) (HandRecord, error) {
	state := engine.StartHand()

	record := HandRecord{
		Index: index,
		Cards: state.Cards,
	}

	for !state.Terminal {
		seat := state.CurrentPlayer
		actor := seats[seat]

		legal, err := engine.LegalActions(state)
		if err != nil {
			return HandRecord{}, err
		}

		action, err := actor.ChooseAction(state, legal, seat)
		if err != nil {
			return HandRecord{}, fmt.Errorf("%s at seat %d: %w", actor.Name(), seat, err)
		}

		record.Events = append(record.Events, ActionEvent{
			Seat:     seat,
			Identity: actor.Name(),
			Action:   action,
			Card:     state.Cards[seat],
		})

		seats[1-seat].ObserveOpponentAction(state, action, 1-seat)

		next, err := engine.Apply(state, action)
		if err != nil {
			return HandRecord{}, err
		}

		actor.ObserveResult(state, action, next, seat)
		state = next
	}

	record.History = state.History
	record.FinalPot = state.Pot
	record.Payoffs = state.Payoffs

	if state.Payoffs[0]+state.Payoffs[1] != 0 {
		return HandRecord{}, fmt.Errorf("zero-sum violation: payoffs %v", state.Payoffs)
	}

	return record, nil
}

func newActionCount() map[string]int {
	counts := make(map[string]int, len(kuhn.Actions))
	for _, a := range kuhn.Actions {
		counts[a.String()] = 0
	}
	return counts
}

func historyString(history []kuhn.Action) string {
	s := ""
	for i, a := range history {
		if i > 0 {
			s += "->"
		}
		s += a.String()
	}
	return s
}
