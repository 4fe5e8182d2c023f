package evaluator

import (
	"github.com/samber/lo"

	"github.com/puyopop/ghoti-fork/field"
)

// DefaultFeatures is the evaluator's documented default weight vector
// (spec.md §4.3: "the evaluator must expose a constructor that accepts
// a weight vector, plus a documented default"). Weights are hand-chosen
// starting points; the genetic-algorithm optimizer (out of scope, §6) is
// the intended way to tune them — this default only needs to produce
// sane, deterministic play.
func DefaultFeatures() []Feature {
	var fs []Feature

	for col := 1; col <= field.Width; col++ {
		fs = append(fs, Feature{Kind: FeatureHeightDiff, Param: col, Weight: -10})
		fs = append(fs, Feature{Kind: FeatureValley, Param: col, Weight: -40})
		fs = append(fs, Feature{Kind: FeatureRidge, Param: col, Weight: -25})
	}
	fs = append(fs, Feature{Kind: FeatureTallness, Weight: -5})

	for colorIdx := 0; colorIdx < 4; colorIdx++ {
		fs = append(fs, Feature{Kind: FeatureConnectivity2, Param: colorIdx, Weight: 15})
		fs = append(fs, Feature{Kind: FeatureConnectivity3, Param: colorIdx, Weight: 45})
	}

	fs = append(fs,
		Feature{Kind: FeaturePotentialMax, Weight: 1},
		Feature{Kind: FeaturePotentialNext, Weight: 1},
	)

	fs = append(fs, lo.Map(lo.Range(len(Templates)), func(id int, _ int) Feature {
		return Feature{Kind: FeaturePattern, Param: id, Weight: 600}
	})...)

	fs = append(fs,
		Feature{Kind: FeatureRealizedChain, Weight: 300},
		Feature{Kind: FeatureRealizedScore, Weight: 1},
		Feature{Kind: FeatureFramePenalty, Weight: -1},
		Feature{Kind: FeatureDeathPenalty, Weight: -1_000_000},
		Feature{Kind: FeatureAllClearBonus, Weight: 5000},
	)

	return fs
}
