// Package stats provides the small numeric building blocks the beam
// search's confidence-based early exit needs: a
// constant-memory running mean/variance (Welford's algorithm) and a
// Z-value lookup backing a confidence interval.
package stats

import "math"

// Statistic accumulates a running mean and variance in O(1) memory, one
// sample at a time, so a rollout worker never keeps the full sample
// history just to know whether it is confidently ahead.
type Statistic struct {
	totalIterations int
	last            float64

	oldM, newM float64
	oldS, newS float64
}

// Push folds val into the running statistic.
func (s *Statistic) Push(val float64) {
	s.last = val
	s.totalIterations++
	if s.totalIterations == 1 {
		s.oldM = val
		s.newM = val
		s.oldS = 0
		return
	}
	s.newM = s.oldM + (val-s.oldM)/float64(s.totalIterations)
	s.newS = s.oldS + (val-s.oldM)*(val-s.newM)
	s.oldM = s.newM
	s.oldS = s.newS
}

// Mean returns the running mean, or 0 if no samples have been pushed.
func (s *Statistic) Mean() float64 {
	if s.totalIterations > 0 {
		return s.newM
	}
	return 0
}

// Variance returns the running sample variance.
func (s *Statistic) Variance() float64 {
	if s.totalIterations <= 1 {
		return 0
	}
	return s.newS / float64(s.totalIterations-1)
}

// Stdev returns the running sample standard deviation.
func (s *Statistic) Stdev() float64 {
	return math.Sqrt(s.Variance())
}

// StandardError returns the standard error of the mean, scaled by a
// Z-value (e.g. stats.Z95) for a confidence-interval half-width.
func (s *Statistic) StandardError(z float64) float64 {
	if s.totalIterations == 0 {
		return 0
	}
	return z * math.Sqrt(s.Variance()/float64(s.totalIterations))
}

// Last returns the most recently pushed value.
func (s *Statistic) Last() float64 {
	return s.last
}

// Iterations returns the number of samples pushed so far.
func (s *Statistic) Iterations() int {
	return s.totalIterations
}
