// Package statistics provides running profit statistics for tournament play.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// Statistics accumulates per-hand profit results for one strategy identity.
type Statistics struct {
	Hands  int
	Sum    float64
	Sum2   float64   // Sum of squares for variance calculation
	Values []float64 // All values, kept for median calculation

	Wins   int
	Losses int
}

// Add incorporates one hand's profit.
func (s *Statistics) Add(profit float64) {
	s.Hands++
	s.Sum += profit
	s.Sum2 += profit * profit
	s.Values = append(s.Values, profit)

	if profit > 0 {
		s.Wins++
	} else if profit < 0 {
		s.Losses++
	}
}

// Mean returns the arithmetic mean profit per hand.
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.Sum / float64(s.Hands)
}

// Variance returns the sample variance of per-hand profit.
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

// StdDev returns the sample standard deviation of per-hand profit.
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean.
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns a normal-approximation 95% interval for the
// mean. The analyzer uses a proper Student-t interval; this one is for quick
// in-run reporting where hand counts are large.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median per-hand profit.
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Validate checks internal consistency of the accumulated data.
func (s *Statistics) Validate() error {
	if len(s.Values) != s.Hands {
		return fmt.Errorf("values length (%d) does not match hands count (%d)", len(s.Values), s.Hands)
	}
	if s.Wins+s.Losses > s.Hands {
		return fmt.Errorf("wins (%d) plus losses (%d) exceed hands (%d)", s.Wins, s.Losses, s.Hands)
	}
	return nil
}
