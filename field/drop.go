package field

import (
	"github.com/puyopop/ghoti-fork/color"
	"github.com/puyopop/ghoti-fork/piece"
)

// DropPiece places pair according to d, updating heights. It fails with
// ErrOverflow if either puyo would land above the ghost row (spec.md
// §4.1). If the child lies horizontally (RotationRight/RotationLeft),
// each puyo falls independently to the top of its own column.
//
// DropPiece assumes d is one of CanonicalDecisions; an out-of-bounds
// decision is a programming error (the plan enumerator and beam search
// never construct one), so it panics rather than returning an error.
func (f *Field) DropPiece(d Decision, p piece.Pair) error {
	if !d.valid() {
		panic("field: DropPiece called with an invalid Decision: " + d.String())
	}

	switch d.Rotation {
	case RotationAbove, RotationBelow:
		h := f.HeightOf(d.Column)
		if h+2 > GhostRow {
			return ErrOverflow
		}
		lower, upper := p.Axis, p.Child
		if d.Rotation == RotationBelow {
			lower, upper = p.Child, p.Axis
		}
		f.bits.setColor(d.Column, h+1, lower)
		f.bits.setColor(d.Column, h+2, upper)

	default: // RotationRight, RotationLeft
		cc := d.ChildColumn()
		ha, hc := f.HeightOf(d.Column), f.HeightOf(cc)
		if ha+1 > GhostRow || hc+1 > GhostRow {
			return ErrOverflow
		}
		f.bits.setColor(d.Column, ha+1, p.Axis)
		f.bits.setColor(cc, hc+1, p.Child)
	}

	f.recomputeHeights()
	return nil
}

// DropSingle places a single puyo of color c at the top of column x. It
// is not part of the public decision contract (a real turn always drops
// a Pair); the evaluator's chain-potential feature (evaluator/potential.go)
// uses it to run the "one additional puyo of any color at any valid
// landing spot" experiments described in spec.md §4.3.
func (f *Field) DropSingle(x int, c color.Color) error {
	h := f.HeightOf(x)
	if h+1 > GhostRow {
		return ErrOverflow
	}
	f.bits.setColor(x, h+1, c)
	f.recomputeHeights()
	return nil
}
