// Package beam implements the bounded, parallel, depth-limited beam
// search decision engine (spec.md §4.4): independent rollouts searching
// with randomized extensions for hidden future pieces, aggregated by
// majority vote. Parallelism is grounded on the teacher's
// montecarlo.Simmer fan-out/fan-in over golang.org/x/sync/errgroup.
package beam

import (
	"context"
	"math/rand/v2"
	"sync/atomic"

	"github.com/rs/zerolog"

	ghoti "github.com/puyopop/ghoti-fork"
	"github.com/puyopop/ghoti-fork/evaluator"
	"github.com/puyopop/ghoti-fork/field"
	"github.com/puyopop/ghoti-fork/piece"

	"golang.org/x/sync/errgroup"
)

// DefaultWidth/DefaultRollouts mirror spec.md §4.4's documented typical
// values: beam width 20 in early game (up to 140 near saturation), 20
// parallel rollouts.
const (
	DefaultWidth    = 20
	DefaultRollouts = 20
)

// Options configures a Search call.
type Options struct {
	// Width is the beam width W. Zero means DefaultWidth.
	Width int
	// Depth is the search depth D. Zero means len(seq).
	Depth int
	// Rollouts is the parallel rollout count R. Zero means
	// DefaultRollouts.
	Rollouts int
	// Evaluator scores plans; required.
	Evaluator *evaluator.Evaluator
	// Deadline, if non-nil, is a shared cooperative cancellation flag
	// (spec.md §5): workers poll it between depths and return their
	// best-so-far result once it is set.
	Deadline *atomic.Bool
	// Seed seeds every rollout's RNG deterministically; each rollout
	// additionally mixes in its own index so no two rollouts share a
	// stream (spec.md §5 "fixed RNG seeds for each worker").
	Seed uint64
}

func (o Options) width() int {
	if o.Width > 0 {
		return o.Width
	}
	return DefaultWidth
}

func (o Options) rollouts() int {
	if o.Rollouts > 0 {
		return o.Rollouts
	}
	return DefaultRollouts
}

type rolloutOutcome struct {
	decision field.Decision
	score    int
	ok       bool
}

// Search selects the best first decision for the current turn (spec.md
// §4.4). It returns ghoti.NoLegalMove if the search depth is zero (seq
// empty and no explicit Depth) or if no decision for seq[0] fits on f,
// and ghoti.BudgetExhausted if the deadline expired before any rollout
// produced a usable result.
func Search(ctx context.Context, f field.Field, seq []piece.Pair, opts Options) (field.Decision, error) {
	logger := zerolog.Ctx(ctx)
	depth := opts.Depth
	if depth <= 0 {
		depth = len(seq)
	}
	if depth <= 0 {
		return field.Decision{}, ghoti.NoLegalMove
	}
	if len(seq) > 0 {
		fits := false
		for _, dec := range field.CanonicalDecisions {
			trial := f.Clone()
			if trial.DropPiece(dec, seq[0]) == nil {
				fits = true
				break
			}
		}
		if !fits {
			return field.Decision{}, ghoti.NoLegalMove
		}
	}

	rollouts := opts.rollouts()
	width := opts.width()
	outcomes := make([]rolloutOutcome, rollouts)

	logger.Debug().Int("rollouts", rollouts).Int("width", width).Int("depth", depth).Msg("beam: starting rollouts")

	var g errgroup.Group
	for i := 0; i < rollouts; i++ {
		i := i
		g.Go(func() error {
			rng := rand.New(rand.NewPCG(opts.Seed, uint64(i)))
			workerEval := opts.Evaluator.Clone()
			d, score, ok := singleRollout(f, seq, width, depth, workerEval, rng, opts.Deadline)
			outcomes[i] = rolloutOutcome{decision: d, score: score, ok: ok}
			return nil
		})
	}
	_ = g.Wait() // rollout workers never return an error; only ok=false

	d, err := aggregate(outcomes)
	if err != nil {
		logger.Warn().Err(err).Msg("beam: no rollout produced a usable result")
		return d, err
	}
	logger.Debug().Str("decision", d.String()).Msg("beam: aggregated decision")
	return d, nil
}

// aggregate implements spec.md §4.4 "Aggregation across rollouts":
// majority vote by decision, ties broken by highest mean eval_score,
// further ties broken by lowest column then lowest rotation (the
// decided Open Question in DESIGN.md) — the latter falls out for free by
// scanning field.CanonicalDecisions in its fixed column/rotation order
// and only replacing the incumbent on a strict improvement.
func aggregate(outcomes []rolloutOutcome) (field.Decision, error) {
	counts := map[field.Decision]int{}
	sums := map[field.Decision]int{}
	any := false
	for _, o := range outcomes {
		if !o.ok {
			continue
		}
		any = true
		counts[o.decision]++
		sums[o.decision] += o.score
	}
	if !any {
		return field.Decision{}, ghoti.BudgetExhausted
	}

	var best field.Decision
	bestCount := -1
	bestMean := 0.0
	found := false
	for _, d := range field.CanonicalDecisions {
		c, ok := counts[d]
		if !ok {
			continue
		}
		mean := float64(sums[d]) / float64(c)
		better := !found
		if !better {
			switch {
			case c > bestCount:
				better = true
			case c == bestCount && mean > bestMean:
				better = true
			}
		}
		if better {
			best, bestCount, bestMean, found = d, c, mean, true
		}
	}
	return best, nil
}
