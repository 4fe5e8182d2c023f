package field

import (
	"math/bits"

	"github.com/puyopop/ghoti-fork/color"
)

// BitBoard stores the board as three parallel bitplanes, one bit per
// plane per cell, encoding the 3-bit color code (spec.md §3). Columns are
// the array index (0..internalWidth-1); within a column, bit y holds the
// color-code bit for row y. Border cells (column 0/7, row 0, and the
// ceiling rows above the ghost row) are permanently coded color.Wall so
// that flood fill naturally stops at the edge without bounds checks.
type BitBoard struct {
	planes [3][internalWidth]uint16
}

func newEmptyBitBoard() BitBoard {
	var b BitBoard
	for x := 0; x < internalWidth; x++ {
		for y := 0; y < internalHeight; y++ {
			c := color.Empty
			if x == 0 || x == internalWidth-1 || y == 0 || y > GhostRow {
				c = color.Wall
			}
			b.setColor(x, y, c)
		}
	}
	return b
}

func (b *BitBoard) colorAt(x, y int) color.Color {
	var code uint8
	for p := 0; p < 3; p++ {
		if b.planes[p][x]&(1<<uint(y)) != 0 {
			code |= 1 << p
		}
	}
	return color.Color(code)
}

func (b *BitBoard) setColor(x, y int, c color.Color) {
	code := uint8(c)
	for p := 0; p < 3; p++ {
		bit := uint16(1) << uint(y)
		if code&(1<<p) != 0 {
			b.planes[p][x] |= bit
		} else {
			b.planes[p][x] &^= bit
		}
	}
}

// columnHeight returns the row of the topmost non-Wall, non-Empty cell
// in column x; 0 if the column (restricted to the playable + ghost rows)
// is empty.
func (b *BitBoard) columnHeight(x int) uint8 {
	occupied := b.occupiedMask(x)
	if occupied == 0 {
		return 0
	}
	// Bit y holds row y, so the bit length is the topmost row plus one.
	return uint8(bits.Len16(occupied) - 1)
}

// occupiedMask returns the bitmask (rows 1..GhostRow only) of cells in
// column x that are non-empty.
func (b *BitBoard) occupiedMask(x int) uint16 {
	return b.columnMaskRange(x) &^ b.emptyMask(x)
}

// columnMaskRange is the bitmask covering the playable+ghost rows
// (1..GhostRow inclusive) of a column, excluding border rows.
func (b *BitBoard) columnMaskRange(x int) uint16 {
	return uint16(1)<<uint(GhostRow+1) - 2 // bits 1..GhostRow set
}

// emptyMask returns, for column x, the bitmask of cells coded color.Empty.
func (b *BitBoard) emptyMask(x int) uint16 {
	// Empty is code 0, so a cell is empty iff none of the three plane
	// bits are set there.
	return ^(b.planes[0][x] | b.planes[1][x] | b.planes[2][x])
}

// colorMask returns, across every internal column, the bitmask of cells
// coded exactly c. Used by the chain simulator's per-color flood fill.
func (b *BitBoard) colorMask(c color.Color) [internalWidth]uint16 {
	var out [internalWidth]uint16
	code := uint8(c)
	for x := 0; x < internalWidth; x++ {
		m := ^uint16(0)
		for p := 0; p < 3; p++ {
			if code&(1<<p) != 0 {
				m &= b.planes[p][x]
			} else {
				m &= ^b.planes[p][x]
			}
		}
		out[x] = m
	}
	return out
}

// ojamaMask returns the bitmask of OJAMA cells per column.
func (b *BitBoard) ojamaMask() [internalWidth]uint16 {
	return b.colorMask(color.Ojama)
}

// floodFill expands a single connected component starting at
// (seedCol, seedRow), restricted to cells present in mask, by repeatedly
// OR-ing each column's current frontier with its vertical and horizontal
// neighbors and re-intersecting with mask, until the component stops
// growing. This is the "bit-parallel flood fill" described in spec.md
// §4.1's algorithmic note: each iteration processes whole columns via
// shifts rather than visiting individual cells.
func floodFill(mask [internalWidth]uint16, seedCol, seedRow int) [internalWidth]uint16 {
	var comp [internalWidth]uint16
	comp[seedCol] = 1 << uint(seedRow)
	for {
		var next [internalWidth]uint16
		changed := false
		for x := 0; x < internalWidth; x++ {
			v := comp[x] | (comp[x] << 1) | (comp[x] >> 1)
			if x > 0 {
				v |= comp[x-1]
			}
			if x < internalWidth-1 {
				v |= comp[x+1]
			}
			v &= mask[x]
			next[x] = v
			if v != comp[x] {
				changed = true
			}
		}
		comp = next
		if !changed {
			return comp
		}
	}
}

// expandOnce returns the immediate (4-connected) neighbor bitmask of
// every set cell in m, without intersecting against any plane. Used to
// find OJAMA cells adjacent to a popped chromatic group.
func expandOnce(m [internalWidth]uint16) [internalWidth]uint16 {
	var out [internalWidth]uint16
	for x := 0; x < internalWidth; x++ {
		v := (m[x] << 1) | (m[x] >> 1)
		if x > 0 {
			v |= m[x-1]
		}
		if x < internalWidth-1 {
			v |= m[x+1]
		}
		out[x] = v
	}
	return out
}

func popcountAll(m [internalWidth]uint16) int {
	total := 0
	for x := 0; x < internalWidth; x++ {
		total += bits.OnesCount16(m[x])
	}
	return total
}

func andAll(a, b [internalWidth]uint16) [internalWidth]uint16 {
	var out [internalWidth]uint16
	for x := range out {
		out[x] = a[x] & b[x]
	}
	return out
}

func orAll(a, b [internalWidth]uint16) [internalWidth]uint16 {
	var out [internalWidth]uint16
	for x := range out {
		out[x] = a[x] | b[x]
	}
	return out
}

func andNotAll(a, b [internalWidth]uint16) [internalWidth]uint16 {
	var out [internalWidth]uint16
	for x := range out {
		out[x] = a[x] &^ b[x]
	}
	return out
}

func isZero(m [internalWidth]uint16) bool {
	for x := range m {
		if m[x] != 0 {
			return false
		}
	}
	return true
}

func lowestSetBit(m [internalWidth]uint16) (col, row int, ok bool) {
	for x := range m {
		if m[x] != 0 {
			return x, bits.TrailingZeros16(m[x]), true
		}
	}
	return 0, 0, false
}
