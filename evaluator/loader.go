package evaluator

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	ghoti "github.com/puyopop/ghoti-fork"
)

// featureNames maps a FeatureKind to the name used in the weight-table
// artifact (spec.md §6: "a flat list of (feature_name, integer_weight)
// pairs").
var featureNames = map[string]FeatureKind{
	"height_diff":        FeatureHeightDiff,
	"valley":             FeatureValley,
	"ridge":              FeatureRidge,
	"tallness":           FeatureTallness,
	"connectivity2":      FeatureConnectivity2,
	"connectivity3":      FeatureConnectivity3,
	"potential_max":      FeaturePotentialMax,
	"potential_next":     FeaturePotentialNext,
	"pattern":            FeaturePattern,
	"realized_chain":     FeatureRealizedChain,
	"realized_score":     FeatureRealizedScore,
	"frame_penalty":      FeatureFramePenalty,
	"death_penalty":      FeatureDeathPenalty,
	"all_clear_bonus":    FeatureAllClearBonus,
}

// weightEntry is one row of the artifact: a feature name, an optional
// parameter (column/color/template index), and its integer weight.
type weightEntry struct {
	Feature string `yaml:"feature"`
	Param   int    `yaml:"param"`
	Weight  int    `yaml:"weight"`
}

// LoadWeights parses a weight-table artifact from r (spec.md §6). The
// core never opens this file itself — the caller reads it and hands
// LoadWeights an io.Reader, keeping file I/O out of the decision core
// (spec.md §6 "must not read files... except through an injected now
// callback").
func LoadWeights(r io.Reader) ([]Feature, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("evaluator: reading weight table: %w", err)
	}
	var entries []weightEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWeightTable, err)
	}

	features := make([]Feature, 0, len(entries))
	for _, e := range entries {
		kind, ok := featureNames[e.Feature]
		if !ok {
			return nil, fmt.Errorf("%w: unknown feature %q", ErrInvalidWeightTable, e.Feature)
		}
		features = append(features, Feature{Kind: kind, Param: e.Param, Weight: e.Weight})
	}
	return features, nil
}

// ErrInvalidWeightTable is the InvalidInput error kind (spec.md §7) for
// a malformed weight-table artifact; it chains to ghoti.InvalidInput so
// callers can check errors.Is(err, ghoti.InvalidInput).
var ErrInvalidWeightTable = fmt.Errorf("evaluator: invalid weight table: %w", ghoti.InvalidInput)
