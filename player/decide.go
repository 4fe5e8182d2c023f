package player

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	ghoti "github.com/puyopop/ghoti-fork"
	"github.com/puyopop/ghoti-fork/beam"
	"github.com/puyopop/ghoti-fork/evaluator"
	"github.com/puyopop/ghoti-fork/field"
	"github.com/puyopop/ghoti-fork/fire"
	"github.com/puyopop/ghoti-fork/opening"
)

// Options configures a Decide call. Evaluator is required; Opening,
// Deadline and Clock default to sensible no-op/zero-value behavior when
// left nil.
type Options struct {
	Evaluator *evaluator.Evaluator
	Opening   *opening.Matcher

	// Deadline, shared with beam.Search, is polled cooperatively by
	// rollout workers between depths (spec.md §5). Nil means no budget.
	Deadline *atomic.Bool

	// Width/Rollouts forward to beam.Options; zero means its defaults.
	Width    int
	Rollouts int

	// Seed seeds the beam search's per-worker RNGs deterministically
	// (spec.md §5 "fixed RNG seeds for each worker").
	Seed uint64

	// Clock is the injected "now" callback spec.md §6 requires in lieu
	// of reading the system clock directly; it is used only to measure
	// AIDecision.ThinkingDuration, never to drive cancellation (that
	// remains Deadline, set by the caller). Nil means time.Now.
	Clock func() time.Time
}

func (o Options) clock() func() time.Time {
	if o.Clock != nil {
		return o.Clock
	}
	return time.Now
}

// Decide is the exported think(): given this player's read-only state
// and an optional opponent snapshot, it returns exactly one AIDecision.
// It never returns an error; every runtime error kind in errs.go
// (DeadState, NoLegalMove, BudgetExhausted) is recovered internally and
// folded into a sentinel decision plus a diagnostic LogMessage (spec.md
// §7 "Runtime errors are always recovered... the caller is never
// required to handle an error").
func Decide(ctx context.Context, self State, opponent *State, opts Options) AIDecision {
	now := opts.clock()
	start := now()
	logger := zerolog.Ctx(ctx)

	finish := func(d field.Decision, msg string) AIDecision {
		dur := now().Sub(start)
		logger.Info().Str("decision", d.String()).Dur("thinking_duration", dur).Msg(msg)
		return AIDecision{Decision: d, LogMessage: msg, ThinkingDuration: dur}
	}

	if self.Field.IsDead() {
		logger.Warn().Err(ghoti.DeadState).Msg("think: field already dead")
		return finish(sentinelDecision, ghoti.DeadState.Error())
	}
	if len(self.RemainingVisibleSeq) == 0 {
		logger.Warn().Err(ghoti.NoLegalMove).Msg("think: empty visible sequence")
		return finish(sentinelDecision, ghoti.NoLegalMove.Error())
	}

	// Opening matcher first: a hit short-circuits fire condition and
	// beam search entirely (spec.md §4.6, resolved composition order in
	// DESIGN.md).
	if opts.Opening != nil {
		if d, ok := opts.Opening.Lookup(ctx, &self.Field, self.RemainingVisibleSeq[0], self.Turn); ok {
			logger.Debug().Int("turn", self.Turn).Msg("think: opening table hit")
			return finish(d, "opening table match")
		}
	}

	var opp *fire.Opponent
	if opponent != nil {
		opp = deriveOpponentSnapshot(opponent, opts.Evaluator)
	}
	if d, ok := fire.Decide(ctx, opts.Evaluator, self.Field, self.RemainingVisibleSeq, self.Turn, self.PendingOjama, opp); ok {
		logger.Debug().Str("decision", d.String()).Msg("think: fire condition matched")
		return finish(d, "fire condition triggered")
	}

	d, err := beam.Search(ctx, self.Field, self.RemainingVisibleSeq, beam.Options{
		Width:     opts.Width,
		Rollouts:  opts.Rollouts,
		Evaluator: opts.Evaluator,
		Deadline:  opts.Deadline,
		Seed:      opts.Seed,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("think: beam search recovered an error")
		return finish(sentinelDecision, err.Error())
	}
	return finish(d, "beam search")
}

// deriveOpponentSnapshot builds the fire condition's opponent view from
// a bare State. MidChain and IncomingOjama are not fields of State
// (spec.md §3's PlayerState carries none of the derived "is an attack
// imminent" bookkeeping a two-player match needs); both are derived by
// simulating a clone of the opponent's current field as-is, which
// reveals whatever chain would fire if they dropped no further piece —
// exactly the quantity rule 2 needs to size a counter (decided Open
// Question, recorded in DESIGN.md).
func deriveOpponentSnapshot(opponent *State, eval *evaluator.Evaluator) *fire.Opponent {
	clone := opponent.Field.Clone()
	result := clone.Simulate(opponent.ZenkeshiFlag)
	max, _ := eval.ChainPotential(opponent.Field)
	return &fire.Opponent{
		Field:             opponent.Field,
		MidChain:          result.ChainCount > 0,
		IncomingOjama:     result.Score / field.OjamaRate,
		ChainPotentialMax: max,
	}
}
