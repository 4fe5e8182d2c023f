// Package evaluator maps a Plan to an integer score where higher is
// better (spec.md §4.3): a linear model over a static table of tagged
// feature variants, deterministic and allocation-free in its hot path.
package evaluator

import (
	"github.com/puyopop/ghoti-fork/field"
	"github.com/puyopop/ghoti-fork/plan"
)

// FeatureKind tags a feature's computation without runtime polymorphism
// (spec.md §9 "Evaluator features without dynamic dispatch"): Evaluate's
// hot loop switches on Kind rather than calling through an interface.
type FeatureKind int

const (
	// Shape group.
	FeatureHeightDiff FeatureKind = iota
	FeatureValley
	FeatureRidge
	FeatureTallness

	// Connectivity group.
	FeatureConnectivity2
	FeatureConnectivity3

	// Chain potential group.
	FeaturePotentialMax
	FeaturePotentialNext

	// Pattern match group.
	FeaturePattern

	// Frame / realized chain group.
	FeatureRealizedChain
	FeatureRealizedScore
	FeatureFramePenalty
	FeatureDeathPenalty
	FeatureAllClearBonus
)

// Feature is one weighted term of the linear model. Param's meaning
// depends on Kind: a column index for the per-column shape features
// (height diff, valley, ridge), a color index for FeatureConnectivity2/3,
// a template ID for FeaturePattern, and unused (0) otherwise.
type Feature struct {
	Kind   FeatureKind
	Param  int
	Weight int
}

// Evaluator holds an immutable feature/weight table (spec.md §4.3
// "the evaluator must expose a constructor that accepts a weight vector,
// plus a documented default") plus a private, mutable memo cache for the
// chain-potential feature. The weight table is never mutated after
// construction, so a single Evaluator may be shared read-only across
// goroutines as long as each caller uses its own cache — Clone gives
// every caller (e.g. every beam search worker) its own instance.
type Evaluator struct {
	features []Feature
	cache    *potentialCache
}

// New builds an Evaluator from an explicit feature/weight table.
func New(features []Feature) *Evaluator {
	return &Evaluator{
		features: append([]Feature(nil), features...),
		cache:    newPotentialCache(),
	}
}

// Default returns an Evaluator using DefaultFeatures.
func Default() *Evaluator {
	return New(DefaultFeatures())
}

// Clone returns an Evaluator sharing e's immutable feature table but
// with its own, empty potential cache. Beam search calls this once per
// rollout goroutine (spec.md §5 "No shared mutable state during
// search"): every worker evaluates concurrently, and sharing e's cache
// across goroutines would race on potentialCache.entries.
func (e *Evaluator) Clone() *Evaluator {
	return &Evaluator{features: e.features, cache: newPotentialCache()}
}

// Evaluate computes the plan's score. It never allocates: every
// sub-computation operates on the Plan's Field by value and returns a
// plain int.
func (e *Evaluator) Evaluate(p plan.Plan) int {
	score := 0
	f := &p.FieldAfter
	for _, feat := range e.features {
		score += feat.Weight * e.compute(feat, p, f)
	}
	return score
}

func (e *Evaluator) compute(feat Feature, p plan.Plan, f *field.Field) int {
	switch feat.Kind {
	case FeatureHeightDiff:
		return heightDiff(f, feat.Param)
	case FeatureValley:
		return valleyIndicator(f, feat.Param)
	case FeatureRidge:
		return ridgeIndicator(f, feat.Param)
	case FeatureTallness:
		return tallness(f)
	case FeatureConnectivity2:
		return connectivityCount(p, feat.Param, 2)
	case FeatureConnectivity3:
		return connectivityCount(p, feat.Param, 3)
	case FeaturePotentialMax:
		max, _ := e.chainPotential(p)
		return max
	case FeaturePotentialNext:
		_, next := e.chainPotential(p)
		return next
	case FeaturePattern:
		return matchPattern(p, feat.Param)
	case FeatureRealizedChain:
		return p.ChainResult.ChainCount
	case FeatureRealizedScore:
		return p.ChainResult.Score
	case FeatureFramePenalty:
		return p.CumulativeFrames
	case FeatureDeathPenalty:
		if p.Dead {
			return 1
		}
		return 0
	case FeatureAllClearBonus:
		if p.AllClear {
			return 1
		}
		return 0
	default:
		return 0
	}
}
