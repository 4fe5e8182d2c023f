package plan

import (
	"testing"

	"github.com/matryer/is"

	"github.com/puyopop/ghoti-fork/color"
	"github.com/puyopop/ghoti-fork/field"
	"github.com/puyopop/ghoti-fork/piece"
)

func TestEnumerateDepthOneEmptyBoardYields22Plans(t *testing.T) {
	is := is.New(t)
	f := field.New()
	seq := []piece.Pair{piece.New(color.Red, color.Blue)}

	count := 0
	Enumerate(f, seq, 1, func(p Plan) bool {
		count++
		is.Equal(p.Depth, 1)
		return false
	})
	is.Equal(count, 22)
}

func TestEnumerateVisitorCanStop(t *testing.T) {
	is := is.New(t)
	f := field.New()
	seq := []piece.Pair{piece.New(color.Red, color.Blue)}

	count := 0
	Enumerate(f, seq, 1, func(p Plan) bool {
		count++
		return true
	})
	is.Equal(count, 1)
}

func TestEnumerateDeterministicOrder(t *testing.T) {
	is := is.New(t)
	f := field.New()
	seq := []piece.Pair{piece.New(color.Red, color.Blue), piece.New(color.Yellow, color.Green)}

	var firstRun, secondRun []field.Decision
	Enumerate(f, seq, 2, func(p Plan) bool {
		firstRun = append(firstRun, p.Path[len(p.Path)-1])
		return false
	})
	Enumerate(f, seq, 2, func(p Plan) bool {
		secondRun = append(secondRun, p.Path[len(p.Path)-1])
		return false
	})
	is.Equal(len(firstRun), len(secondRun))
	for i := range firstRun {
		is.Equal(firstRun[i], secondRun[i])
	}
}

func TestEnumerateSkipsOverflow(t *testing.T) {
	is := is.New(t)
	f := field.New()
	// Stack column 1 to the top first.
	for i := 0; i < 6; i++ {
		is.NoErr(f.DropPiece(field.Decision{Column: 1, Rotation: field.RotationAbove}, piece.New(color.Red, color.Blue)))
	}
	seq := []piece.Pair{piece.New(color.Yellow, color.Green)}

	count := 0
	Enumerate(f, seq, 1, func(p Plan) bool {
		count++
		is.True(p.FirstDecision.Column != 1 || p.FirstDecision.Rotation == field.RotationRight || p.FirstDecision.Rotation == field.RotationLeft)
		return false
	})
	is.True(count < 22)
}
