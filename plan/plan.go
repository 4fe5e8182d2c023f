// Package plan enumerates legal placements for a sequence of piece pairs
// and applies them to a field (spec.md §4.2).
package plan

import (
	"github.com/puyopop/ghoti-fork/field"
	"github.com/puyopop/ghoti-fork/piece"
)

// Plan is an immutable view of a completed placement: the first decision
// taken, how deep it is in the lookahead tree, the resulting field, the
// chain triggered by the triggering placement, cumulative frame cost,
// and any all-clear carry-over (spec.md §3).
type Plan struct {
	FirstDecision field.Decision
	Depth         int
	FieldAfter    field.Field
	ChainResult   field.ChainResult
	CumulativeFrames int
	AllClear      bool
	Path          []field.Decision
	Dead          bool
}

// VisitorFunc is called once per generated plan. Returning true stops
// the whole enumeration: no further plan is visited at any depth
// (spec.md §4.2 "the visitor may prune by returning a stop flag").
type VisitorFunc func(p Plan) (stop bool)

// Enumerate generates every reachable plan of depth <= maxDepth (or
// len(seq), whichever is smaller) from field, applying seq's pairs in
// order. Decisions landing above the ghost row are skipped, not errors.
// Visitation order is deterministic: CanonicalDecisions order at every
// depth (spec.md §4.2 "Ordering").
func Enumerate(f field.Field, seq []piece.Pair, maxDepth int, visitor VisitorFunc) {
	if maxDepth > len(seq) {
		maxDepth = len(seq)
	}
	if maxDepth <= 0 {
		return
	}
	var path []field.Decision
	enumerate(f, seq, 0, maxDepth, 0, path, visitor)
}

func enumerate(f field.Field, seq []piece.Pair, depth, maxDepth int, cumFrames int, path []field.Decision, visitor VisitorFunc) (stop bool) {
	pair := seq[depth]
	for _, d := range field.CanonicalDecisions {
		child := f.Clone()
		if err := child.DropPiece(d, pair); err != nil {
			continue
		}
		result := child.Simulate(false)

		first := d
		if depth > 0 {
			first = path[0]
		}
		newPath := append(append([]field.Decision{}, path...), d)

		p := Plan{
			FirstDecision:    first,
			Depth:            depth + 1,
			FieldAfter:       child,
			ChainResult:      result,
			CumulativeFrames: cumFrames + result.Frames,
			AllClear:         result.AllClear,
			Path:             newPath,
			Dead:             child.IsDead(),
		}

		if visitor(p) {
			return true
		}

		if depth+1 < maxDepth {
			if enumerate(child, seq, depth+1, maxDepth, p.CumulativeFrames, newPath, visitor) {
				return true
			}
		}
	}
	return false
}
