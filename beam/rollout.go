package beam

import (
	"math/rand/v2"
	"sort"
	"sync/atomic"

	"github.com/puyopop/ghoti-fork/color"
	"github.com/puyopop/ghoti-fork/evaluator"
	"github.com/puyopop/ghoti-fork/field"
	"github.com/puyopop/ghoti-fork/piece"
	"github.com/puyopop/ghoti-fork/plan"
	"github.com/puyopop/ghoti-fork/stats"
)

// node is one surviving beam state: the field it reached, which
// first-level decision it descends from, how deep it is, its cumulative
// frame cost, and its evaluator score (spec.md §4.4 step 2).
type node struct {
	field            field.Field
	firstDecision    field.Decision
	depth            int
	cumulativeFrames int
	evalScore        int
}

// betterNode implements the beam's sort/tie-break order (spec.md §4.4
// step 2 "Tie-break"): higher eval_score first; then lower cumulative
// frames; then shallower plan; then the first decision's column closer
// to the death column.
func betterNode(a, b node) bool {
	if a.evalScore != b.evalScore {
		return a.evalScore > b.evalScore
	}
	if a.cumulativeFrames != b.cumulativeFrames {
		return a.cumulativeFrames < b.cumulativeFrames
	}
	if a.depth != b.depth {
		return a.depth < b.depth
	}
	return colDistance(a.firstDecision.Column) < colDistance(b.firstDecision.Column)
}

func colDistance(col int) int {
	d := col - field.DeathColumn
	if d < 0 {
		d = -d
	}
	return d
}

// randomPair draws a uniformly random chromatic PiecePair, used to
// extend the visible sequence when it is shorter than the search depth
// (spec.md §4.4 "Randomized extension for hidden futures").
func randomPair(rng *rand.Rand) piece.Pair {
	axis := color.ChromaticColors[rng.IntN(len(color.ChromaticColors))]
	child := color.ChromaticColors[rng.IntN(len(color.ChromaticColors))]
	return piece.New(axis, child)
}

// extendSequence pads seq with random pairs up to length depth.
func extendSequence(seq []piece.Pair, depth int, rng *rand.Rand) []piece.Pair {
	if len(seq) >= depth {
		return seq[:depth]
	}
	out := make([]piece.Pair, depth)
	copy(out, seq)
	for i := len(seq); i < depth; i++ {
		out[i] = randomPair(rng)
	}
	return out
}

// singleRollout runs one serial beam search (spec.md §4.4 "Algorithm
// (serial single rollout)") and returns the best first decision and its
// associated score. deadline, if non-nil, is polled between depths
// (spec.md §5 "Workers poll the deadline between depths"); ok is false
// when there is no usable result at all: depth is zero, the deadline was
// already set before any depth completed, or no candidate placement fit.
func singleRollout(f field.Field, seq []piece.Pair, width, depth int, eval *evaluator.Evaluator, rng *rand.Rand, deadline *atomic.Bool) (decision field.Decision, score int, ok bool) {
	if depth <= 0 {
		return field.Decision{}, 0, false
	}
	extended := extendSequence(seq, depth, rng)

	beamState := []node{{field: f}}
	completedDepths := 0

	// leadMargin tracks the score gap between the beam's top two
	// candidates across depths, the same running-mean/stderr figure the
	// teacher's montecarlo autostopper watches (stats.Statistic +
	// stats.ZVal) to decide a leader is unlikely to be overtaken. Here
	// it lets a rollout stop deepening once its lead is confidently
	// stable, saving the remaining depths' work. The rollout then reports
	// the best first-decision of the beam at the depth where it stopped,
	// which can differ from what a full-depth search would report.
	var leadMargin stats.Statistic

	for d := 0; d < depth; d++ {
		if deadline != nil && deadline.Load() {
			break
		}
		pair := extended[d]

		candidates := make([]node, 0, len(beamState)*len(field.CanonicalDecisions))
		for _, st := range beamState {
			for _, dec := range field.CanonicalDecisions {
				child := st.field.Clone()
				if err := child.DropPiece(dec, pair); err != nil {
					continue
				}
				result := child.Simulate(false)
				cumFrames := st.cumulativeFrames + result.Frames
				first := dec
				if d > 0 {
					first = st.firstDecision
				}
				p := plan.Plan{
					FirstDecision:    first,
					Depth:            d + 1,
					FieldAfter:       child,
					ChainResult:      result,
					CumulativeFrames: cumFrames,
					AllClear:         result.AllClear,
					Dead:             child.IsDead(),
				}
				candidates = append(candidates, node{
					field:            child,
					firstDecision:    first,
					depth:            d + 1,
					cumulativeFrames: cumFrames,
					evalScore:        eval.Evaluate(p),
				})
			}
		}

		sort.Slice(candidates, func(i, j int) bool { return betterNode(candidates[i], candidates[j]) })
		if len(candidates) > width {
			candidates = candidates[:width]
		}
		beamState = candidates
		completedDepths++

		if len(beamState) == 0 {
			break
		}

		if len(beamState) >= 2 {
			leadMargin.Push(float64(beamState[0].evalScore - beamState[1].evalScore))
			if leadMargin.Iterations() >= 2 && leadMargin.Mean()-leadMargin.StandardError(stats.Z90) > 0 {
				break
			}
		}
	}

	if completedDepths == 0 || len(beamState) == 0 {
		return field.Decision{}, 0, false
	}

	// spec.md §4.4 step 3: per first-decision, the max eval_score
	// observed across surviving states rooted at it.
	bestPerDecision := map[field.Decision]node{}
	for _, n := range beamState {
		cur, seen := bestPerDecision[n.firstDecision]
		if !seen || n.evalScore > cur.evalScore {
			bestPerDecision[n.firstDecision] = n
		}
	}

	var best node
	haveBest := false
	for _, dec := range field.CanonicalDecisions {
		n, seen := bestPerDecision[dec]
		if !seen {
			continue
		}
		if !haveBest || betterNode(n, best) {
			best = n
			haveBest = true
		}
	}
	if !haveBest {
		return field.Decision{}, 0, false
	}
	return best.firstDecision, best.evalScore, true
}
