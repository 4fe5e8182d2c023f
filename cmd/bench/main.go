// Command bench is the minimal exercising binary for the decision core
// (spec.md §1 Non-goals: "interactive/CLI front-ends" are out of scope
// beyond this ambient scaffolding). It plays a short solo game against
// a randomly generated visible sequence, printing each AIDecision and
// the resulting chain count and score.
package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/puyopop/ghoti-fork/color"
	ghotiConfig "github.com/puyopop/ghoti-fork/config"
	"github.com/puyopop/ghoti-fork/evaluator"
	"github.com/puyopop/ghoti-fork/field"
	"github.com/puyopop/ghoti-fork/opening"
	"github.com/puyopop/ghoti-fork/piece"
	"github.com/puyopop/ghoti-fork/player"
)

const turnsToPlay = 30

func main() {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	logger := zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger

	cfg := &ghotiConfig.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("bench: invalid configuration")
	}

	eval := loadEvaluator(cfg)
	openingMatcher := loadOpening(cfg)

	ctx := logger.WithContext(context.Background())
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))

	self := player.State{Field: field.New()}
	for self.Turn = 1; self.Turn <= turnsToPlay; self.Turn++ {
		self.RemainingVisibleSeq = visibleSeq(rng, 3)

		decision := player.Decide(ctx, self, nil, player.Options{
			Evaluator: eval,
			Opening:   openingMatcher,
			Width:     cfg.BeamWidth,
			Rollouts:  cfg.Rollouts,
			Seed:      cfg.Seed + uint64(self.Turn),
		})

		pair := self.RemainingVisibleSeq[0]
		if err := self.Field.DropPiece(decision.Decision, pair); err != nil {
			log.Fatal().Err(err).Msg("bench: chosen decision overflowed")
		}
		result := self.Field.Simulate(self.ZenkeshiFlag)
		self.AccumulatedScore += result.Score
		self.FramesElapsed += result.Frames
		if result.AllClear {
			self.ZenkeshiFlag = true
		}

		fmt.Printf("turn %2d: %s (%s) chain=%d score=%d\n",
			self.Turn, decision.Decision, decision.LogMessage, result.ChainCount, result.Score)

		if self.Field.IsDead() {
			fmt.Println("dead, stopping")
			break
		}
	}

	fmt.Printf("final accumulated score: %d over %d frames\n", self.AccumulatedScore, self.FramesElapsed)
}

func visibleSeq(rng *rand.Rand, n int) []piece.Pair {
	seq := make([]piece.Pair, n)
	for i := range seq {
		axis := color.ChromaticColors[rng.IntN(len(color.ChromaticColors))]
		child := color.ChromaticColors[rng.IntN(len(color.ChromaticColors))]
		seq[i] = piece.New(axis, child)
	}
	return seq
}

func loadEvaluator(cfg *ghotiConfig.Config) *evaluator.Evaluator {
	if cfg.WeightTablePath == "" {
		return evaluator.Default()
	}
	f, err := os.Open(cfg.WeightTablePath)
	if err != nil {
		log.Fatal().Err(err).Msg("bench: opening weight table")
	}
	defer f.Close()
	features, err := evaluator.LoadWeights(f)
	if err != nil {
		log.Fatal().Err(err).Msg("bench: loading weight table")
	}
	return evaluator.New(features)
}

func loadOpening(cfg *ghotiConfig.Config) *opening.Matcher {
	if cfg.OpeningTablePath == "" {
		return opening.Default()
	}
	f, err := os.Open(cfg.OpeningTablePath)
	if err != nil {
		log.Fatal().Err(err).Msg("bench: opening template table")
	}
	defer f.Close()
	entries, err := opening.LoadTable(f)
	if err != nil {
		log.Fatal().Err(err).Msg("bench: loading opening table")
	}
	return opening.New(entries)
}
