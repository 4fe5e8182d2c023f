package opening

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	ghoti "github.com/puyopop/ghoti-fork"
	"github.com/puyopop/ghoti-fork/field"
)

// ErrInvalidTable is the InvalidInput error kind (spec.md §7) for a
// malformed opening-table artifact; it chains to ghoti.InvalidInput so
// callers can check errors.Is(err, ghoti.InvalidInput).
var ErrInvalidTable = fmt.Errorf("opening: invalid table: %w", ghoti.InvalidInput)

// tableCell and tableEntry mirror entry/cell in a YAML-friendly shape.
type tableCell struct {
	Col int    `yaml:"col"`
	Row int    `yaml:"row"`
	Var string `yaml:"var"`
}

type tableEntry struct {
	Name         string      `yaml:"name"`
	RequireEmpty bool        `yaml:"require_empty"`
	Cells        []tableCell `yaml:"cells"`
	AxisVar      string      `yaml:"axis_var"`
	ChildVar     string      `yaml:"child_var"`
	Column       int         `yaml:"column"`
	Rotation     int         `yaml:"rotation"`
}

// LoadTable parses an opening-table artifact from r (spec.md §6
// "Opening template table, loaded once at init"). The core never opens
// this file itself; the caller supplies an io.Reader.
func LoadTable(r io.Reader) ([]entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("opening: reading table: %w", err)
	}
	var raw []tableEntry
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}

	entries := make([]entry, 0, len(raw))
	for _, te := range raw {
		if len(te.AxisVar) != 1 || len(te.ChildVar) != 1 {
			return nil, fmt.Errorf("%w: entry %q: axis_var/child_var must be single characters", ErrInvalidTable, te.Name)
		}
		d := field.Decision{Column: te.Column, Rotation: te.Rotation}
		cells := make([]cell, 0, len(te.Cells))
		for _, tc := range te.Cells {
			if len(tc.Var) != 1 {
				return nil, fmt.Errorf("%w: entry %q: cell var must be a single character", ErrInvalidTable, te.Name)
			}
			cells = append(cells, cell{col: tc.Col, row: tc.Row, v: tc.Var[0]})
		}
		entries = append(entries, entry{
			name:         te.Name,
			requireEmpty: te.RequireEmpty,
			cells:        cells,
			axisVar:      te.AxisVar[0],
			childVar:     te.ChildVar[0],
			decision:     d,
		})
	}
	return entries, nil
}
