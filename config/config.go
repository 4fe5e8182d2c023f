// Package config is ambient flag/env configuration for the example
// exercising binary (cmd/bench) only. The decision core itself never
// parses flags, reads environment variables, or reads files (spec.md
// §6 "Environment: none required by the core").
package config

import "github.com/namsral/flag"

// Config holds cmd/bench's tunable parameters: the evaluator weight
// table and opening template table artifact paths (both optional; a
// compiled-in default is used when empty), and the beam search's size
// parameters.
type Config struct {
	WeightTablePath  string
	OpeningTablePath string
	BeamWidth        int
	Rollouts         int
	ThinkFrames      int
	Seed             uint64
}

// Load parses args (typically os.Args[1:]) and any matching
// environment variables into c, the way the teacher's config.Config
// does with github.com/namsral/flag.
func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("ghoti-bench", flag.ContinueOnError)
	fs.StringVar(&c.WeightTablePath, "weight-table-path", "", "path to a YAML evaluator weight table (empty uses the built-in default)")
	fs.StringVar(&c.OpeningTablePath, "opening-table-path", "", "path to a YAML opening template table (empty uses the built-in default)")
	fs.IntVar(&c.BeamWidth, "beam-width", 0, "beam search width (0 uses beam.DefaultWidth)")
	fs.IntVar(&c.Rollouts, "rollouts", 0, "parallel rollout count (0 uses beam.DefaultRollouts)")
	fs.IntVar(&c.ThinkFrames, "think-frames", 0, "think-time budget in frames (parsed but not used by cmd/bench)")
	var seed int
	fs.IntVar(&seed, "seed", 1, "beam search RNG seed")
	err := fs.Parse(args)
	c.Seed = uint64(seed)
	return err
}
