// Package fire implements the fire condition (spec.md §4.5): the
// ordered rule set that decides whether to play a "building" decision
// or replace it with one that triggers a chain right now.
package fire

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/puyopop/ghoti-fork/evaluator"
	"github.com/puyopop/ghoti-fork/field"
	"github.com/puyopop/ghoti-fork/piece"
	"github.com/puyopop/ghoti-fork/plan"
)

// OjamaRate mirrors field.OjamaRate (score-per-garbage-puyo) for the
// harass/offset rules' score-to-garbage-count conversions.
const OjamaRate = field.OjamaRate

// SaturationScore is the main-chain-potential threshold (spec.md §4.5
// rules 5/6) above which firing is warranted regardless of opponent
// state.
const SaturationScore = 80000

// OpeningTurnLimit bounds the "early zenkeshi" rule (spec.md §4.5 rule 1
// "game is in opening (turn <= 6)").
const OpeningTurnLimit = 6

// HarassColumns/HarassMinScore implement rule 3's "2 columns of ojama"
// threshold: 2 columns * 6 rows = 12 garbage puyo, at OjamaRate points
// each.
const (
	HarassColumns  = 2
	HarassMinScore = HarassColumns * field.Width * OjamaRate // 840
)

// FlatnessThreshold is rule 3's "opponent's board is flat" bound on
// max-height minus min-height.
const FlatnessThreshold = 2

// Opponent is the subset of the opponent's state the fire condition
// consults (a narrower view than player.State, to avoid an import cycle
// between the player and fire packages).
type Opponent struct {
	Field             field.Field
	MidChain          bool // opponent's chain is currently resolving
	IncomingOjama     int  // garbage puyo known inbound to self from this chain
	ChainPotentialMax int  // opponent's evaluator feature #3 (may be 0 if unknown)
}

// candidate is the best decision found by a single-depth enumeration of
// the current piece pair, alongside whether it cleared the board.
type candidate struct {
	decision field.Decision
	score    int
	allClear bool
	found    bool
}

// bestCandidate enumerates every decision for seq[0] on f and returns the
// highest-scoring one, plus the highest-scoring one that also achieves
// an all-clear (zero value, found=false, if seq is empty or every
// decision overflows).
func bestCandidate(f field.Field, seq []piece.Pair) (best, bestAllClear candidate) {
	if len(seq) == 0 {
		return candidate{}, candidate{}
	}

	var all []candidate
	plan.Enumerate(f, seq, 1, func(p plan.Plan) bool {
		all = append(all, candidate{decision: p.FirstDecision, score: p.ChainResult.Score, allClear: p.AllClear, found: true})
		return false
	})
	if len(all) == 0 {
		return candidate{}, candidate{}
	}

	best = lo.MaxBy(all, func(a, b candidate) bool { return a.score > b.score })

	allClearCandidates := lo.Filter(all, func(c candidate, _ int) bool { return c.allClear })
	if len(allClearCandidates) > 0 {
		bestAllClear = lo.MaxBy(allClearCandidates, func(a, b candidate) bool { return a.score > b.score })
	}
	return best, bestAllClear
}

func flatness(f field.Field) int {
	max, min := 0, field.Height+1
	for x := 1; x <= field.Width; x++ {
		h := f.HeightOf(x)
		if h > max {
			max = h
		}
		if h < min {
			min = h
		}
	}
	return max - min
}

// Decide implements should_fire(state_1p, state_2p_opt) (spec.md §4.5):
// rules 1-7, evaluated in order, first match wins. selfField/selfSeq are
// the current player's field and remaining visible sequence; turn is
// 1-indexed; selfPendingOjama is garbage already queued against self
// (distinct from opp.IncomingOjama, which is garbage the opponent's
// *current* chain would add). eval is used to compute the main-chain
// potential figure rules 5/6 reference.
func Decide(ctx context.Context, eval *evaluator.Evaluator, selfField field.Field, selfSeq []piece.Pair, turn int, selfPendingOjama int, opp *Opponent) (field.Decision, bool) {
	logger := zerolog.Ctx(ctx)
	fire := func(rule string, d field.Decision) (field.Decision, bool) {
		logger.Debug().Str("rule", rule).Str("decision", d.String()).Msg("fire: rule matched")
		return d, true
	}

	best, bestAllClear := bestCandidate(selfField, selfSeq)

	// Rule 1: early zenkeshi.
	if bestAllClear.found && turn <= OpeningTurnLimit {
		return fire("early-zenkeshi", bestAllClear.decision)
	}

	// Rule 2: counter.
	if opp != nil && opp.MidChain && opp.IncomingOjama > 0 {
		needed := opp.IncomingOjama * OjamaRate
		if best.found && best.score >= needed {
			return fire("counter", best.decision)
		}
		// Not achievable within the visible horizon: do not fire yet.
		logger.Debug().Msg("fire: counter needed but unachievable, holding")
		return field.Decision{}, false
	}

	// Rule 3: harass (tsubushi).
	if opp != nil && flatness(opp.Field) <= FlatnessThreshold {
		if best.found && best.score >= HarassMinScore {
			return fire("harass", best.decision)
		}
	}

	// Rule 4: offset.
	if opp != nil && opp.IncomingOjama > 0 {
		predictedRows := (selfPendingOjama + opp.IncomingOjama) / field.Width
		if selfField.HeightOf(field.DeathColumn)+predictedRows >= field.Height-1 {
			// Deadly: fire whatever is available to cancel as much as
			// possible, even if it can't cancel all of it.
			if best.found {
				return fire("offset", best.decision)
			}
		}
		// Otherwise the offset is comfortable; absorb (don't fire).
		return field.Decision{}, false
	}

	selfMax, _ := eval.ChainPotential(selfField)

	// Rule 5: preemptive main chain.
	if selfMax >= SaturationScore {
		if opp == nil || opp.ChainPotentialMax == 0 || selfMax > opp.ChainPotentialMax {
			if best.found {
				return fire("preemptive-main-chain", best.decision)
			}
		}
	}

	// Rule 6: saturation.
	if selfMax >= SaturationScore && best.found {
		return fire("saturation", best.decision)
	}

	// Rule 7: otherwise, don't fire.
	return field.Decision{}, false
}
