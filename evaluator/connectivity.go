package evaluator

import (
	"github.com/puyopop/ghoti-fork/color"
	"github.com/puyopop/ghoti-fork/plan"
)

// connectivityCount counts the chromatic groups of exactly wantSize
// cells for the chromatic color at index colorIdx (spec.md §4.3 group 2
// "Connectivity": 2- and 3-groups are good, since they prepare a pop;
// 4+ groups have already popped by the time Plan.FieldAfter is observed,
// so they are intentionally excluded here).
func connectivityCount(p plan.Plan, colorIdx, wantSize int) int {
	c := color.ChromaticColors[colorIdx%len(color.ChromaticColors)]
	return p.FieldAfter.CountComponentsOfSize(c, wantSize)
}
