package field

import (
	"math/bits"

	"github.com/puyopop/ghoti-fork/color"
)

// ChainResult summarizes a completed Simulate call (spec.md §3).
type ChainResult struct {
	ChainCount int
	Score      int
	Frames     int
	// Quick reports whether the chain's last step had a column settle by
	// a nonzero distance (spec.md §8 S1: a single ground-level group with
	// nothing stacked above it is not quick, since no fall happened for
	// the next piece to benefit from).
	Quick    bool
	AllClear bool
}

type poppingGroup struct {
	color color.Color
	cells [internalWidth]uint16
	size  int
}

// maxPoppingGroups bounds the number of simultaneous 4+ groups a single
// step can contain: every group needs at least 4 of the board's
// Width*GhostRow cells, so there can never be more than that count
// divided by 4. Sized generously so detectPoppingGroups can use a fixed
// array instead of an allocating slice (spec.md §4.3/§5 "no allocation
// inside the feature loop").
const maxPoppingGroups = Width * GhostRow / 4

// Simulate iteratively pops and drops until no more groups pop,
// mutating f to the post-chain state and returning the aggregate result
// (spec.md §4.1). zenkeshiPending, supplied by the caller (the
// PlayerState owner tracks this across turns, per spec.md §4.1
// "Zenkeshi"), adds the flat bonus to the first step of this chain if
// one occurs.
func (f *Field) Simulate(zenkeshiPending bool) ChainResult {
	var result ChainResult
	bonusApplied := false

	for {
		groups, numGroups := f.detectPoppingGroups()
		if numGroups == 0 {
			break
		}

		poppingCells, ojamaCells := f.poppedMasks(groups[:numGroups])
		// Only chromatic puyos count toward the step's scoring multiplier
		// (spec.md §4.1 "total puyos popped" means the linked colored
		// group, matching published ES scoring); cleared garbage still
		// leaves the board via clearCells below but contributes no score.
		popped := popcountAll(poppingCells)

		var distinctColors [color.NumColors]bool
		numDistinctColors := 0
		groupBonusSum := 0
		for _, g := range groups[:numGroups] {
			if !distinctColors[g.color] {
				distinctColors[g.color] = true
				numDistinctColors++
			}
			groupBonusSum += groupBonus(g.size)
		}

		step := result.ChainCount + 1
		stepScore := 10 * popped * max(1, chainPower(step)+colorBonus(numDistinctColors)+groupBonusSum)
		if zenkeshiPending && !bonusApplied {
			stepScore += ZenkeshiBonus
			bonusApplied = true
		}
		result.Score += stepScore

		f.clearCells(poppingCells)
		f.clearCells(ojamaCells)

		maxDrop := f.settle()
		f.recomputeHeights()

		result.Frames += BasePopFrames + dropFrames(maxDrop)
		result.ChainCount++
		result.Quick = maxDrop > 0
	}

	result.AllClear = f.IsAllClear()
	return result
}

// detectPoppingGroups finds every maximal 4-connected chromatic group of
// size >= 4, via the bit-parallel flood fill described in spec.md
// §4.1's algorithmic note. It returns the groups in a fixed-size array
// plus a count rather than a slice, so the chain step's hot loop never
// allocates (spec.md §4.3/§5).
func (f *Field) detectPoppingGroups() (groups [maxPoppingGroups]poppingGroup, numGroups int) {
	for _, c := range color.ChromaticColors {
		remaining := f.bits.colorMask(c)
		for {
			col, row, ok := lowestSetBit(remaining)
			if !ok {
				break
			}
			comp := floodFill(remaining, col, row)
			size := popcountAll(comp)
			if size >= 4 {
				groups[numGroups] = poppingGroup{color: c, cells: comp, size: size}
				numGroups++
			}
			remaining = andNotAll(remaining, comp)
		}
	}
	return groups, numGroups
}

// poppedMasks returns the union of every group's cells, plus any OJAMA
// cell orthogonally adjacent to that union (spec.md §4.1 pop rule).
func (f *Field) poppedMasks(groups []poppingGroup) (chromatic, ojama [internalWidth]uint16) {
	for _, g := range groups {
		chromatic = orAll(chromatic, g.cells)
	}
	neighbors := expandOnce(chromatic)
	ojama = andAll(neighbors, f.bits.ojamaMask())
	return chromatic, ojama
}

func (f *Field) clearCells(mask [internalWidth]uint16) {
	for x := 1; x <= Width; x++ {
		m := mask[x]
		for m != 0 {
			y := bits.TrailingZeros16(m)
			f.bits.setColor(x, y, color.Empty)
			m &^= 1 << uint(y)
		}
	}
}

type settledCell struct {
	c    color.Color
	oldY int
}

// settle compacts each column's non-empty cells to the bottom and
// returns the largest vertical distance any single puyo fell. cells is
// a fixed-size scratch buffer (at most GhostRow entries per column) so
// settle never allocates (spec.md §4.3/§5).
func (f *Field) settle() int {
	maxDrop := 0
	var cells [GhostRow]settledCell
	for x := 1; x <= Width; x++ {
		n := 0
		for y := 1; y <= GhostRow; y++ {
			c := f.bits.colorAt(x, y)
			if c != color.Empty {
				cells[n] = settledCell{c, y}
				n++
			}
		}
		for i := 0; i < n; i++ {
			newY := i + 1
			if cells[i].oldY-newY > maxDrop {
				maxDrop = cells[i].oldY - newY
			}
		}
		for y := 1; y <= GhostRow; y++ {
			f.bits.setColor(x, y, color.Empty)
		}
		for i := 0; i < n; i++ {
			f.bits.setColor(x, i+1, cells[i].c)
		}
	}
	return maxDrop
}
