package field

import "github.com/puyopop/ghoti-fork/color"

// CountComponentsOfSize counts color c's maximal 4-connected components
// whose size equals wantSize, without allocating (spec.md §4.3 "no
// allocation inside the feature loop"). The evaluator's connectivity
// features (evaluator/connectivity.go) call this once per feature
// evaluation to count 2- and 3-puyo groups that haven't popped yet.
func (f *Field) CountComponentsOfSize(c color.Color, wantSize int) int {
	count := 0
	remaining := f.bits.colorMask(c)
	for {
		col, row, ok := lowestSetBit(remaining)
		if !ok {
			break
		}
		comp := floodFill(remaining, col, row)
		if popcountAll(comp) == wantSize {
			count++
		}
		remaining = andNotAll(remaining, comp)
	}
	return count
}
