package player

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	ghoti "github.com/puyopop/ghoti-fork"
	"github.com/puyopop/ghoti-fork/color"
	"github.com/puyopop/ghoti-fork/evaluator"
	"github.com/puyopop/ghoti-fork/field"
	"github.com/puyopop/ghoti-fork/opening"
	"github.com/puyopop/ghoti-fork/piece"
)

func testContext() context.Context {
	return zerolog.New(io.Discard).WithContext(context.Background())
}

// S3 from spec.md §8: a field already satisfying is_dead() returns the
// sentinel decision rather than running search.
func TestDecideReturnsSentinelOnDeadField(t *testing.T) {
	is := is.New(t)
	f, err := field.FromText(strings.Repeat("..R...\n", 12))
	is.NoErr(err)
	is.True(f.IsDead())

	self := State{
		Field:               f,
		RemainingVisibleSeq: []piece.Pair{piece.New(color.Red, color.Blue)},
	}
	d := Decide(testContext(), self, nil, Options{Evaluator: evaluator.Default()})
	is.Equal(d.Decision, sentinelDecision)
	is.Equal(d.LogMessage, ghoti.DeadState.Error())
}

func TestDecideReturnsSentinelOnEmptySequence(t *testing.T) {
	is := is.New(t)
	self := State{Field: field.New()}
	d := Decide(testContext(), self, nil, Options{Evaluator: evaluator.Default()})
	is.Equal(d.Decision, sentinelDecision)
	is.Equal(d.LogMessage, ghoti.NoLegalMove.Error())
}

// S6 from spec.md §8: the opening table short-circuits beam search.
func TestDecideShortCircuitsOnOpeningHit(t *testing.T) {
	is := is.New(t)
	self := State{
		Field:               field.New(),
		RemainingVisibleSeq: []piece.Pair{piece.New(color.Red, color.Red)},
		Turn:                1,
	}
	d := Decide(testContext(), self, nil, Options{
		Evaluator: evaluator.Default(),
		Opening:   opening.Default(),
	})
	is.Equal(d.Decision, field.Decision{Column: 2, Rotation: field.RotationAbove})
	is.Equal(d.LogMessage, "opening table match")
}

// An empty field past both the opening window and any fire rule's
// trigger should fall through all the way to beam search.
func TestDecideFallsThroughToBeamWhenNoEarlierRuleMatches(t *testing.T) {
	is := is.New(t)
	self := State{
		Field:               field.New(),
		RemainingVisibleSeq: []piece.Pair{piece.New(color.Red, color.Blue)},
		Turn:                10,
	}
	d := Decide(testContext(), self, nil, Options{
		Evaluator: evaluator.Default(),
		Rollouts:  2,
		Width:     4,
		Seed:      7,
	})
	is.Equal(d.LogMessage, "beam search")
	is.True(d.Decision.Column >= 1 && d.Decision.Column <= field.Width)
}

func TestDeriveOpponentSnapshotReflectsImmediateChain(t *testing.T) {
	is := is.New(t)
	// Six reds pop for 180 points, enough for 180/OjamaRate = 2 ojama (a
	// 4-pop's 40 points would round down to none).
	f, err := field.FromText(strings.Repeat("......\n", 11) + "RRRRRR")
	is.NoErr(err)
	opp := State{Field: f}

	snap := deriveOpponentSnapshot(&opp, evaluator.Default())
	is.True(snap.MidChain)
	is.True(snap.IncomingOjama > 0)
}
