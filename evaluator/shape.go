package evaluator

import "github.com/puyopop/ghoti-fork/field"

// idealHeight is the target U-shape profile (column 3 lowest), used by
// FeatureHeightDiff (spec.md §4.3 group 1 "Shape").
var idealHeight = [field.Width + 1]int{0, 3, 2, 0, 1, 2, 3}

// heightDiff returns the absolute difference between column param's
// actual height and its ideal U-shape height.
func heightDiff(f *field.Field, column int) int {
	diff := f.HeightOf(column) - idealHeight[column]
	if diff < 0 {
		diff = -diff
	}
	return diff
}

// valleyIndicator returns 1 if column is at least 2 rows lower than both
// neighbors (a "valley" that invites filling), else 0. Edge columns
// compare only against their single neighbor.
func valleyIndicator(f *field.Field, column int) int {
	h := f.HeightOf(column)
	left, hasLeft := neighborHeight(f, column, -1)
	right, hasRight := neighborHeight(f, column, 1)
	switch {
	case hasLeft && hasRight:
		if h+2 <= left && h+2 <= right {
			return 1
		}
	case hasLeft:
		if h+2 <= left {
			return 1
		}
	case hasRight:
		if h+2 <= right {
			return 1
		}
	}
	return 0
}

// ridgeIndicator returns 1 if column is at least 2 rows higher than both
// neighbors (a "ridge" that is hard to clear around), else 0.
func ridgeIndicator(f *field.Field, column int) int {
	h := f.HeightOf(column)
	left, hasLeft := neighborHeight(f, column, -1)
	right, hasRight := neighborHeight(f, column, 1)
	switch {
	case hasLeft && hasRight:
		if h >= left+2 && h >= right+2 {
			return 1
		}
	case hasLeft:
		if h >= left+2 {
			return 1
		}
	case hasRight:
		if h >= right+2 {
			return 1
		}
	}
	return 0
}

func neighborHeight(f *field.Field, column, delta int) (int, bool) {
	n := column + delta
	if n < 1 || n > field.Width {
		return 0, false
	}
	return f.HeightOf(n), true
}

// tallness is the field's maximum column height.
func tallness(f *field.Field) int {
	max := 0
	for x := 1; x <= field.Width; x++ {
		if h := f.HeightOf(x); h > max {
			max = h
		}
	}
	return max
}
