package stats

import "gonum.org/v1/gonum/stat/distuv"

// Z90/Z95/Z98/Z99 are common two-tailed Z-values, precomputed with ZVal
// so the beam search's early-exit check doesn't recompute a Normal
// quantile on every depth.
var (
	Z90 = ZVal(90)
	Z95 = ZVal(95)
	Z98 = ZVal(98)
	Z99 = ZVal(99)
)

// ZVal returns the two-tailed Z-value for a confidence interval given as
// a percentage (0-100).
func ZVal(confidenceInterval float64) float64 {
	dist := distuv.Normal{Mu: 0, Sigma: 1}
	area := (1 + (confidenceInterval / 100)) / 2
	return dist.Quantile(area)
}
