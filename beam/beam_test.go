package beam

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/matryer/is"

	ghoti "github.com/puyopop/ghoti-fork"
	"github.com/puyopop/ghoti-fork/color"
	"github.com/puyopop/ghoti-fork/evaluator"
	"github.com/puyopop/ghoti-fork/field"
	"github.com/puyopop/ghoti-fork/piece"
)

var ctx = context.Background()

func TestSearchReturnsALegalDecision(t *testing.T) {
	is := is.New(t)
	f := field.New()
	seq := []piece.Pair{
		piece.New(color.Red, color.Blue),
		piece.New(color.Yellow, color.Green),
	}

	d, err := Search(ctx, f, seq, Options{Evaluator: evaluator.Default(), Rollouts: 4, Width: 5, Seed: 1})
	is.NoErr(err)
	is.True(d.Column >= 1 && d.Column <= field.Width)
}

func TestSearchIsDeterministicForFixedSeed(t *testing.T) {
	is := is.New(t)
	f := field.New()
	seq := []piece.Pair{piece.New(color.Red, color.Blue)}
	opts := Options{Evaluator: evaluator.Default(), Rollouts: 6, Width: 8, Seed: 42}

	d1, err1 := Search(ctx, f, seq, opts)
	d2, err2 := Search(ctx, f, seq, opts)
	is.NoErr(err1)
	is.NoErr(err2)
	is.Equal(d1, d2)
}

func TestSearchReturnsNoLegalMoveOnEmptySequence(t *testing.T) {
	is := is.New(t)
	f := field.New()
	_, err := Search(ctx, f, nil, Options{Evaluator: evaluator.Default()})
	is.Equal(err, ghoti.NoLegalMove)
}

func TestSearchRespectsExpiredDeadline(t *testing.T) {
	is := is.New(t)
	f := field.New()
	seq := []piece.Pair{piece.New(color.Red, color.Blue), piece.New(color.Yellow, color.Green)}

	var deadline atomic.Bool
	deadline.Store(true)

	_, err := Search(ctx, f, seq, Options{Evaluator: evaluator.Default(), Rollouts: 3, Deadline: &deadline})
	is.True(err != nil)
}

func TestBetterNodePrefersHigherScore(t *testing.T) {
	is := is.New(t)
	a := node{evalScore: 10}
	b := node{evalScore: 5}
	is.True(betterNode(a, b))
	is.True(!betterNode(b, a))
}

func TestBetterNodeTieBreaksByColumnDistance(t *testing.T) {
	is := is.New(t)
	near := node{evalScore: 1, firstDecision: field.Decision{Column: 3}}
	far := node{evalScore: 1, firstDecision: field.Decision{Column: 6}}
	is.True(betterNode(near, far))
}

func TestSingleRolloutFindsAWinningFirstMove(t *testing.T) {
	is := is.New(t)
	f, err := field.FromText(strings.Repeat("......\n", 11) + "RRR...")
	is.NoErr(err)
	seq := []piece.Pair{piece.New(color.Red, color.Red)}

	d, score, ok := singleRollout(f, seq, 10, 1, evaluator.Default(), nil, nil)
	is.True(ok)
	is.True(score != 0 || d.Column >= 1)
}
