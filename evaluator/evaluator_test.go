package evaluator

import (
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/puyopop/ghoti-fork/color"
	"github.com/puyopop/ghoti-fork/field"
	"github.com/puyopop/ghoti-fork/piece"
	"github.com/puyopop/ghoti-fork/plan"
)

func planFromField(f field.Field) plan.Plan {
	return plan.Plan{FieldAfter: f}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	is := is.New(t)
	f := field.New()
	is.NoErr(f.DropPiece(field.Decision{Column: 3, Rotation: field.RotationAbove}, piece.New(color.Red, color.Blue)))
	p := planFromField(f)

	e := Default()
	s1 := e.Evaluate(p)
	s2 := e.Evaluate(p)
	is.Equal(s1, s2)
}

func TestEvaluatePenalizesDeath(t *testing.T) {
	is := is.New(t)
	deadField, err := field.FromText(strings.Repeat("..R...\n", 11) + "..R...")
	is.NoErr(err)
	deadPlan := plan.Plan{FieldAfter: deadField, Dead: true}

	aliveField := field.New()
	alivePlan := plan.Plan{FieldAfter: aliveField, Dead: false}

	e := Default()
	is.True(e.Evaluate(deadPlan) < e.Evaluate(alivePlan))
}

func TestConnectivityCountsTwoAndThreeGroups(t *testing.T) {
	is := is.New(t)
	f, err := field.FromText(strings.Repeat("......\n", 10) + ".Y....\nRRY..." )
	is.NoErr(err)
	p := planFromField(f)

	twos := connectivityCount(p, 0, 2) // Red is index 0
	is.Equal(twos, 1)
}

func TestChainPotentialFindsAvailableChain(t *testing.T) {
	is := is.New(t)
	f, err := field.FromText(strings.Repeat("......\n", 11) + "RRR...")
	is.NoErr(err)
	p := planFromField(f)

	e := Default()
	max, _ := e.chainPotential(p)
	is.True(max > 0)
}

func TestChainPotentialCached(t *testing.T) {
	is := is.New(t)
	f := field.New()
	p := planFromField(f)
	e := Default()

	max1, next1 := e.chainPotential(p)
	max2, next2 := e.chainPotential(p)
	is.Equal(max1, max2)
	is.Equal(next1, next2)
}

func TestLoadWeightsRoundTrip(t *testing.T) {
	is := is.New(t)
	yamlDoc := `
- feature: tallness
  weight: -5
- feature: connectivity2
  param: 1
  weight: 20
`
	features, err := LoadWeights(strings.NewReader(yamlDoc))
	is.NoErr(err)
	is.Equal(len(features), 2)
	is.Equal(features[0].Kind, FeatureTallness)
	is.Equal(features[1].Param, 1)
	is.Equal(features[1].Weight, 20)
}

func TestLoadWeightsRejectsUnknownFeature(t *testing.T) {
	is := is.New(t)
	_, err := LoadWeights(strings.NewReader("- feature: not_a_feature\n  weight: 1\n"))
	is.True(err != nil)
}

func TestPatternMatchGTR(t *testing.T) {
	is := is.New(t)
	// GTR template: row2 "*BB" (col1 any), row1 "AAB" — realized here
	// with A=Red, B=Blue, and col1/row2 left empty to satisfy "any".
	f, err := field.FromText(strings.Repeat("......\n", 10) + ".BB...\nRRB...")
	is.NoErr(err)
	p := planFromField(f)
	is.Equal(matchPattern(p, 0), 1)
}
