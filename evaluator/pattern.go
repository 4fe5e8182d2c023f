package evaluator

import (
	"github.com/puyopop/ghoti-fork/color"
	"github.com/puyopop/ghoti-fork/field"
	"github.com/puyopop/ghoti-fork/plan"
)

type cellKind int

const (
	cellEmpty cellKind = iota
	cellAny
	cellVar
)

type cellSpec struct {
	kind cellKind
	v    byte // variable letter, valid when kind == cellVar
}

// template is a small labeled color graph (spec.md §9 "Pattern
// templates"): a matrix of cells that are Empty, Any, or a color
// variable that must be assigned consistently across the template.
// Rows are given top-first for readability and anchored so that row 0
// of the template lines up with field row AnchorRow+Height-1.
type template struct {
	name      string
	rows      []string // top row first; chars '.'=Empty, '*'=Any, else a variable letter
	anchorCol int
	anchorRow int
}

// Templates holds the named opening/chain skeletons referenced by
// FeaturePattern (spec.md §4.3 group 4 "Pattern match": GTR, NewGTR,
// Submarine and variants). These are simplified representative
// skeletons, not exact tournament-grade cell graphs.
var Templates = []template{
	{
		name: "GTR",
		rows: []string{
			"*BB",
			"AAB",
		},
		anchorCol: 1, anchorRow: 1,
	},
	{
		name: "NewGTR",
		rows: []string{
			"B*A",
			"BAA",
		},
		anchorCol: 1, anchorRow: 1,
	},
	{
		name: "Submarine",
		rows: []string{
			"A**B",
			"AABB",
		},
		anchorCol: 1, anchorRow: 1,
	},
	{
		name: "SubmarineVariant",
		rows: []string{
			"**AB",
			"AABB",
		},
		anchorCol: 2, anchorRow: 1,
	},
}

func parseCellSpec(b byte) cellSpec {
	switch b {
	case '.':
		return cellSpec{kind: cellEmpty}
	case '*':
		return cellSpec{kind: cellAny}
	default:
		return cellSpec{kind: cellVar, v: b}
	}
}

// matchTemplate reports whether f satisfies t, allowing any bijection
// from t's variables to chromatic colors (spec.md §4.6 "color-agnostic
// up to a bijection").
func matchTemplate(f *field.Field, t template) bool {
	assignment := map[byte]color.Color{}
	used := map[color.Color]bool{}

	height := len(t.rows)
	for i, row := range t.rows {
		fy := t.anchorRow + (height - 1 - i)
		for x := 0; x < len(row); x++ {
			spec := parseCellSpec(row[x])
			fx := t.anchorCol + x
			if fx < 1 || fx > field.Width || fy < 1 || fy > field.GhostRow {
				return false
			}
			actual := f.ColorAt(fx, fy)
			switch spec.kind {
			case cellEmpty:
				if actual != color.Empty {
					return false
				}
			case cellAny:
				// no constraint
			case cellVar:
				if !actual.IsChromatic() {
					return false
				}
				if prev, ok := assignment[spec.v]; ok {
					if prev != actual {
						return false
					}
					continue
				}
				if used[actual] {
					return false
				}
				assignment[spec.v] = actual
				used[actual] = true
			}
		}
	}
	return true
}

// matchPattern returns 1 if the templateID-th template matches the
// plan's resulting field, else 0.
func matchPattern(p plan.Plan, templateID int) int {
	if templateID < 0 || templateID >= len(Templates) {
		return 0
	}
	if matchTemplate(&p.FieldAfter, Templates[templateID]) {
		return 1
	}
	return 0
}
