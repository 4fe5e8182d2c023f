package field

import (
	"testing"

	"github.com/matryer/is"

	"github.com/puyopop/ghoti-fork/color"
	"github.com/puyopop/ghoti-fork/piece"
)

func emptyRows(n int) string {
	s := ""
	for i := 0; i < n; i++ {
		s += "......\n"
	}
	return s
}

// S1 from spec.md §8: a single 4-in-a-row pops for a 1-chain.
func TestSimpleOneChain(t *testing.T) {
	is := is.New(t)
	text := emptyRows(11) + "RRRR.."
	f, err := FromText(text)
	is.NoErr(err)

	result := f.Simulate(false)
	is.Equal(result.ChainCount, 1)
	is.Equal(result.Score, 40)
	is.True(result.Frames > 0)
	is.True(!result.Quick)
	is.True(f.IsAllClear())
}

// S2 from spec.md §8: a 2-chain. Columns 1-4 hold one connected red group
// (sizes 1/2/3/1, joined through columns 2 and 3) with a green puyo
// stacked directly above each column's reds; before the pop the greens
// sit at rows 2/3/4/2 and are not orthogonally adjacent to one another.
// Popping the reds (7 cells) drops every green to row 1, where all four
// become adjacent and pop as a second group (hand-verified column by
// column: col1 drops 1, col2 drops 2, col3 drops 3, col4 drops 1).
func TestTwoChainCascade(t *testing.T) {
	is := is.New(t)
	text := emptyRows(8) +
		"..G...\n" +
		".GR...\n" +
		"GRRG..\n" +
		"RRRR.."
	f, err := FromText(text)
	is.NoErr(err)

	result := f.Simulate(false)
	is.Equal(result.ChainCount, 2)
	is.Equal(result.Score, 600)
	is.True(f.IsAllClear())
}

// S3 from spec.md §8: death detection.
func TestDeathDetection(t *testing.T) {
	is := is.New(t)
	// Column 3 filled solidly from row 1 through row 12 (no-float
	// invariant holds) so the death cell at row 12 is occupied.
	row := "..R...\n"
	text := ""
	for i := 0; i < 11; i++ {
		text += row
	}
	text += "..R..."
	f, err := FromText(text)
	is.NoErr(err)
	is.True(f.IsDead())

	f2 := New()
	is.True(!f2.IsDead())
}

func TestRoundTripText(t *testing.T) {
	is := is.New(t)
	text := emptyRows(7) +
		"Y.....\n" +
		"YG....\n" +
		"YGG...\n" +
		"YRGG..\n" +
		"RRRB.."
	f, err := FromText(text)
	is.NoErr(err)
	roundTripped := f.Text()

	f2, err := FromText(roundTripped)
	is.NoErr(err)
	is.Equal(f.Text(), f2.Text())
}

func TestRoundTripBitBoard(t *testing.T) {
	is := is.New(t)
	text := emptyRows(10) + ".B....\nRRRRB."
	f, err := FromText(text)
	is.NoErr(err)
	pb := f.ToPlain()
	f2 := FromPlain(pb)
	is.Equal(f.Text(), f2.Text())
}

func TestDropPieceVerticalAndHeights(t *testing.T) {
	is := is.New(t)
	f := New()
	err := f.DropPiece(Decision{Column: 3, Rotation: RotationAbove}, piece.New(color.Red, color.Blue))
	is.NoErr(err)
	is.Equal(f.ColorAt(3, 1), color.Red)
	is.Equal(f.ColorAt(3, 2), color.Blue)
	is.Equal(f.HeightOf(3), 2)
}

func TestDropPieceHorizontal(t *testing.T) {
	is := is.New(t)
	f := New()
	err := f.DropPiece(Decision{Column: 3, Rotation: RotationRight}, piece.New(color.Red, color.Blue))
	is.NoErr(err)
	is.Equal(f.ColorAt(3, 1), color.Red)
	is.Equal(f.ColorAt(4, 1), color.Blue)
}

func TestDropPieceOverflow(t *testing.T) {
	is := is.New(t)
	f := New()
	for i := 0; i < 6; i++ {
		err := f.DropPiece(Decision{Column: 1, Rotation: RotationAbove}, piece.New(color.Red, color.Blue))
		is.NoErr(err)
	}
	is.Equal(f.HeightOf(1), 12)
	err := f.DropPiece(Decision{Column: 1, Rotation: RotationAbove}, piece.New(color.Red, color.Blue))
	is.True(err == ErrOverflow)
}

// Testable property 1 (spec.md §8): no floating puyos and heights match
// after DropPiece + Simulate, for every canonical decision.
func TestNoFloatAfterDropAndSimulate(t *testing.T) {
	is := is.New(t)
	for _, d := range CanonicalDecisions {
		f := New()
		err := f.DropPiece(d, piece.New(color.Red, color.Blue))
		is.NoErr(err)
		f.Simulate(false)
		for x := 1; x <= Width; x++ {
			seenGap := false
			expectedHeight := 0
			for y := 1; y <= GhostRow; y++ {
				if f.IsEmpty(x, y) {
					seenGap = true
				} else {
					is.True(!seenGap)
					expectedHeight = y
				}
			}
			is.Equal(f.HeightOf(x), expectedHeight)
		}
	}
}

// Testable property 2 (spec.md §8): Simulate is idempotent on a settled,
// non-popping field.
func TestSimulateIdempotent(t *testing.T) {
	is := is.New(t)
	f, err := FromText(emptyRows(11) + "RRR...")
	is.NoErr(err)
	r1 := f.Simulate(false)
	is.Equal(r1.ChainCount, 0)
	is.Equal(r1.Score, 0)
	textAfter := f.Text()
	r2 := f.Simulate(false)
	is.Equal(r2.ChainCount, 0)
	is.Equal(f.Text(), textAfter)
}

// Testable property 4 (spec.md §8).
func TestChainCountScoreEquivalence(t *testing.T) {
	is := is.New(t)
	noPop, err := FromText(emptyRows(11) + "RRR...")
	is.NoErr(err)
	before := noPop.Text()
	r := noPop.Simulate(false)
	is.Equal(r.ChainCount == 0, r.Score == 0)
	is.True(r.ChainCount == 0)
	is.Equal(noPop.Text(), before)

	doesPop, err := FromText(emptyRows(11) + "RRRR..")
	is.NoErr(err)
	r2 := doesPop.Simulate(false)
	is.True(r2.ChainCount > 0)
	is.True(r2.Score > 0)
}

// Testable property 6 (spec.md §8): depth-1 enumeration on an empty
// board yields exactly 22 decisions.
func TestCanonicalDecisionCount(t *testing.T) {
	is := is.New(t)
	is.Equal(len(CanonicalDecisions), 22)
	seen := map[Decision]bool{}
	for _, d := range CanonicalDecisions {
		is.True(!seen[d])
		seen[d] = true
	}
	is.True(!seen[Decision{Column: 1, Rotation: RotationLeft}])
	is.True(!seen[Decision{Column: 6, Rotation: RotationRight}])
}

func TestZenkeshiBonusAppliedOnce(t *testing.T) {
	is := is.New(t)
	f, err := FromText(emptyRows(11) + "RRRR..")
	is.NoErr(err)
	withoutBonus := f.Clone()
	r1 := f.Simulate(false)

	f2, err := FromText(emptyRows(11) + "RRRR..")
	is.NoErr(err)
	r2 := f2.Simulate(true)
	is.Equal(r2.Score, r1.Score+ZenkeshiBonus)
	_ = withoutBonus
}
