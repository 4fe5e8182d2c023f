// Package field implements the bit-packed puyo playfield and its
// constant-time chain simulator (spec.md §3, §4.1).
package field

import (
	"errors"

	"github.com/puyopop/ghoti-fork/color"
)

// Logical board dimensions (spec.md §3).
const (
	Width       = 6  // playable columns, 1..=6
	Height      = 12 // playable rows, 1..=12 (1 is the bottom)
	GhostRow    = 13 // overflow-detection row
	DeathColumn = 3  // ES rule: (3, 12) non-empty => dead

	// internalWidth/internalHeight reserve a WALL border so that
	// bit-shift neighbor operations never need bounds checks: column 0
	// and internalWidth-1 are WALL, row 0 is the WALL floor, and rows
	// above GhostRow are WALL ceiling padding.
	internalWidth  = Width + 2  // 8
	internalHeight = 16         // room for GhostRow plus 2 rows of ceiling wall
)

var (
	// ErrOverflow is returned by DropPiece when a puyo would land above
	// the ghost row.
	ErrOverflow = errors.New("field: piece overflows the ghost row")
)

// Field is the playable board. It embeds a BitBoard (the representation
// used by Simulate and DropPiece) and caches per-column heights. Field is
// a value type: copying it clones the board, which beam search and the
// plan enumerator rely on heavily (each plan branch owns its own Field).
type Field struct {
	bits    BitBoard
	heights [internalWidth]uint8
}

// New returns an empty, settled field.
func New() Field {
	var f Field
	f.bits = newEmptyBitBoard()
	f.recomputeHeights()
	return f
}

// FromPlain builds a Field from a PlainBoard. The PlainBoard must not
// contain floating puyos; FromPlain does not validate this (FromText
// does, and rejects a floating puyo with ErrInvalidText).
func FromPlain(pb PlainBoard) Field {
	var f Field
	f.bits = bitBoardFromPlain(pb)
	f.recomputeHeights()
	return f
}

// ColorAt returns the color at logical (x, y), x in 1..=6, y in 1..=13.
func (f *Field) ColorAt(x, y int) color.Color {
	return f.bits.colorAt(x, y)
}

// IsEmpty reports whether (x, y) holds no puyo.
func (f *Field) IsEmpty(x, y int) bool {
	return f.ColorAt(x, y) == color.Empty
}

// HeightOf returns the row index of the topmost non-empty cell in column
// x; the next dropped puyo lands on the row above it. A column with
// nothing in it has height 0.
func (f *Field) HeightOf(x int) int {
	return int(f.heights[x])
}

// IsDead reports whether the field satisfies the ES death condition:
// the death column's 12th row is occupied.
func (f *Field) IsDead() bool {
	return !f.IsEmpty(DeathColumn, Height)
}

// IsAllClear reports whether every playable cell is empty (zenkeshi).
func (f *Field) IsAllClear() bool {
	for x := 1; x <= Width; x++ {
		if f.heights[x] != 0 {
			return false
		}
	}
	return true
}

// BitBoard exposes the underlying bit-packed representation, e.g. for
// hashing (field/hash.go) or the evaluator's shape features.
func (f *Field) BitBoard() *BitBoard {
	return &f.bits
}

func (f *Field) recomputeHeights() {
	for x := 1; x <= Width; x++ {
		f.heights[x] = f.bits.columnHeight(x)
	}
}

// Clone returns an independent copy of f. Since Field is entirely value
// types (no pointers/slices), a plain assignment already clones it; Clone
// exists so call sites documenting "I need an owned copy" read clearly,
// matching the teacher's convention of explicit Clone methods on engine
// state (board.GameBoard.Copy, montecarlo's per-thread game copies).
func (f Field) Clone() Field {
	return f
}
