package evaluator

import (
	"github.com/puyopop/ghoti-fork/color"
	"github.com/puyopop/ghoti-fork/field"
	"github.com/puyopop/ghoti-fork/plan"
)

// potentialCacheSize is a fixed, direct-mapped cache of recent
// chain-potential results, keyed by field.Field.Hash. A plain array
// avoids the map allocation a general-purpose cache would need in the
// evaluator's hot path (spec.md §4.3 "no allocation inside the feature
// loop"); collisions simply evict, which only costs recomputation, never
// correctness.
const potentialCacheSize = 1024

type potentialCacheEntry struct {
	hash   uint64
	filled bool
	max    int
	next   int
}

type potentialCache struct {
	entries [potentialCacheSize]potentialCacheEntry
}

func newPotentialCache() *potentialCache {
	return &potentialCache{}
}

func (c *potentialCache) get(h uint64) (max, next int, ok bool) {
	e := &c.entries[h%potentialCacheSize]
	if e.filled && e.hash == h {
		return e.max, e.next, true
	}
	return 0, 0, false
}

func (c *potentialCache) put(h uint64, max, next int) {
	e := &c.entries[h%potentialCacheSize]
	*e = potentialCacheEntry{hash: h, filled: true, max: max, next: next}
}

// ChainPotential exposes the group-3 "chain potential" computation on a
// bare field, for collaborators (the fire condition) that need the same
// figure spec.md §4.5 rules 5/6 reference as "evaluator feature #3"
// without constructing a Plan themselves.
func (e *Evaluator) ChainPotential(f field.Field) (max, next int) {
	return e.chainPotential(plan.Plan{FieldAfter: f})
}

// chainPotential implements spec.md §4.3 group 3 "Chain potential": the
// maximum achievable chain score from placing one additional puyo of any
// color at any valid landing spot, and the next-best.
func (e *Evaluator) chainPotential(p plan.Plan) (max, next int) {
	h := p.FieldAfter.Hash()
	if m, n, ok := e.cache.get(h); ok {
		return m, n
	}

	for x := 1; x <= field.Width; x++ {
		for _, c := range color.ChromaticColors {
			trial := p.FieldAfter.Clone()
			if err := trial.DropSingle(x, c); err != nil {
				continue
			}
			result := trial.Simulate(false)
			switch {
			case result.Score > max:
				next = max
				max = result.Score
			case result.Score > next:
				next = result.Score
			}
		}
	}

	e.cache.put(h, max, next)
	return max, next
}
