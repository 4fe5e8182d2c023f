// Package piece defines the falling tumo (piece pair) the field and plan
// packages operate on.
package piece

import (
	"fmt"

	"github.com/puyopop/ghoti-fork/color"
)

// Pair is an ordered (axis, child) tumo. It is immutable value type, kept
// small and copyable so it is free to thread through plan trees and
// rollout workers without allocation (see SPEC_FULL.md concurrency
// notes on plan size).
type Pair struct {
	Axis  color.Color
	Child color.Color
}

// New constructs a Pair, panicking if either color is not chromatic;
// callers (plan enumerator, beam search, randomized extension) only ever
// build pairs out of ChromaticColors, so a non-chromatic color here is a
// programming error, not a runtime condition to recover from.
func New(axis, child color.Color) Pair {
	if !axis.IsChromatic() || !child.IsChromatic() {
		panic(fmt.Sprintf("piece.New: non-chromatic pair (%v, %v)", axis, child))
	}
	return Pair{Axis: axis, Child: child}
}

func (p Pair) String() string {
	return fmt.Sprintf("%s%s", p.Axis, p.Child)
}

// IsMonochrome reports whether both puyos of the pair share a color.
func (p Pair) IsMonochrome() bool {
	return p.Axis == p.Child
}
