package field

import (
	"fmt"
	"strings"

	ghoti "github.com/puyopop/ghoti-fork"
	"github.com/puyopop/ghoti-fork/color"
)

// PlainBoard is a flat 2D array used for construction, debugging, and as
// the input format for BitBoard (spec.md §3). Indexing is [x][y] with
// x in 1..=Width and y in 1..=GhostRow; PlainBoard never stores border
// wall cells explicitly.
type PlainBoard [Width + 1][GhostRow + 1]color.Color

// NewPlainBoard returns an all-empty PlainBoard.
func NewPlainBoard() PlainBoard {
	var pb PlainBoard
	for x := 1; x <= Width; x++ {
		for y := 1; y <= GhostRow; y++ {
			pb[x][y] = color.Empty
		}
	}
	return pb
}

func bitBoardFromPlain(pb PlainBoard) BitBoard {
	b := newEmptyBitBoard()
	for x := 1; x <= Width; x++ {
		for y := 1; y <= GhostRow; y++ {
			b.setColor(x, y, pb[x][y])
		}
	}
	return b
}

// ToPlain converts f to a PlainBoard, losslessly (spec.md §3 invariant).
func (f *Field) ToPlain() PlainBoard {
	pb := NewPlainBoard()
	for x := 1; x <= Width; x++ {
		for y := 1; y <= GhostRow; y++ {
			pb[x][y] = f.ColorAt(x, y)
		}
	}
	return pb
}

// ErrInvalidText is returned by FromText when the input does not match
// the board text format described in spec.md §6; it chains to
// ghoti.InvalidInput so callers can check errors.Is(err, ghoti.InvalidInput).
var ErrInvalidText = fmt.Errorf("field: invalid board text: %w", ghoti.InvalidInput)

// FromText parses the board text format: a string of Width*Height
// characters (optionally followed by trailing newlines), top row (row
// Height) first, bottom row (row 1) last, characters R/B/Y/G/O/. .
func FromText(s string) (Field, error) {
	s = strings.TrimRight(s, "\n")
	s = strings.ReplaceAll(s, "\n", "")
	if len(s) != Width*Height {
		return Field{}, fmt.Errorf("%w: want %d chars, got %d", ErrInvalidText, Width*Height, len(s))
	}
	pb := NewPlainBoard()
	for row := 0; row < Height; row++ {
		y := Height - row
		for col := 0; col < Width; col++ {
			x := col + 1
			ch := s[row*Width+col]
			c, ok := color.FromByte(ch)
			if !ok {
				return Field{}, fmt.Errorf("%w: bad char %q", ErrInvalidText, ch)
			}
			pb[x][y] = c
		}
	}
	if err := validateNoFloat(pb); err != nil {
		return Field{}, err
	}
	return FromPlain(pb), nil
}

func validateNoFloat(pb PlainBoard) error {
	for x := 1; x <= Width; x++ {
		seenGap := false
		for y := 1; y <= Height; y++ {
			if pb[x][y] == color.Empty {
				seenGap = true
			} else if seenGap {
				return fmt.Errorf("%w: floating puyo in column %d", ErrInvalidText, x)
			}
		}
	}
	return nil
}

// Text renders f in the board text format (top row first).
func (f *Field) Text() string {
	var sb strings.Builder
	sb.Grow(Width * Height)
	for row := 0; row < Height; row++ {
		y := Height - row
		for col := 0; col < Width; col++ {
			x := col + 1
			sb.WriteString(f.ColorAt(x, y).String())
		}
	}
	return sb.String()
}
