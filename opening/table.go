package opening

import "github.com/puyopop/ghoti-fork/field"

// DefaultEntries returns the built-in opening book. It is small and
// mostly illustrative: a real deployment loads a larger table via
// LoadTable from an artifact produced offline (spec.md §6 "Opening
// template table, loaded once at init").
//
// Entry board cells use column/row coordinates (1-indexed, row 1 is the
// bottom) and single-byte color variables; '.' means "must be empty".
// axisVar/childVar name which variable the incoming pair's axis/child
// must bind to — reusing a variable already bound by a board cell forces
// that puyo to match what's already on the board; a fresh variable binds
// to whatever chromatic color the pair brings, as long as it isn't
// already claimed by another variable.
func DefaultEntries() []entry {
	return []entry{
		{
			// Turn 1, empty board, first pair monochrome (e.g. "RR"):
			// build the opening column stack in the center-left column
			// rather than directly on the death column.
			name:         "empty-board-first-drop-mono",
			requireEmpty: true,
			cells:        []cell{},
			axisVar:      'A',
			childVar:     'A',
			decision:     field.Decision{Column: 2, Rotation: field.RotationAbove},
		},
		{
			// A single puyo sits on column 2; stack a matching
			// monochrome pair on top of it to start a connectivity group.
			// A pair of any other colors misses this entry.
			name: "seed-column-2",
			cells: []cell{
				{col: 2, row: 1, v: 'A'},
			},
			axisVar:  'A',
			childVar: 'A',
			decision: field.Decision{Column: 2, Rotation: field.RotationAbove},
		},
	}
}
