package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChainPowerTable(t *testing.T) {
	cases := []struct {
		step int
		want int
	}{
		{step: 1, want: 0},
		{step: 2, want: 8},
		{step: 3, want: 16},
		{step: 4, want: 32},
		{step: 5, want: 64},
		{step: 0, want: 0},   // clamps to step 1
		{step: 99, want: 512}, // clamps to the tracked max, already saturated
	}
	for _, c := range cases {
		assert.Equal(t, c.want, chainPower(c.step), "step %d", c.step)
	}
}

func TestColorBonusTable(t *testing.T) {
	cases := []struct {
		distinct int
		want     int
	}{
		{distinct: 1, want: 0},
		{distinct: 2, want: 3},
		{distinct: 3, want: 6},
		{distinct: 4, want: 12},
		{distinct: 9, want: 12}, // clamps
	}
	for _, c := range cases {
		assert.Equal(t, c.want, colorBonus(c.distinct), "distinct %d", c.distinct)
	}
}

func TestGroupBonusTable(t *testing.T) {
	cases := []struct {
		size int
		want int
	}{
		{size: 4, want: 0},
		{size: 5, want: 2},
		{size: 11, want: 10},
		{size: 40, want: 10}, // clamps at 11
	}
	for _, c := range cases {
		assert.Equal(t, c.want, groupBonus(c.size), "size %d", c.size)
	}
}

func TestDropFrames(t *testing.T) {
	cases := []struct {
		drop int
		want int
	}{
		{drop: 0, want: 0},
		{drop: 1, want: 4},
		{drop: 5, want: 12},
		{drop: 30, want: 42}, // clamps
	}
	for _, c := range cases {
		assert.Equal(t, c.want, dropFrames(c.drop), "drop %d", c.drop)
	}
}
