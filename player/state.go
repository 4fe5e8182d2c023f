// Package player wires the opening matcher, fire condition, and beam
// search into the single think() entry point the simulation driver
// calls once per turn (spec.md §3, §6).
package player

import (
	"time"

	"github.com/puyopop/ghoti-fork/field"
	"github.com/puyopop/ghoti-fork/piece"
)

// State is spec.md §3's PlayerState, owned exclusively by the
// simulation driver and borrowed read-only here. Renamed from
// PlayerState to avoid stuttering with the package name.
type State struct {
	Field               field.Field
	RemainingVisibleSeq []piece.Pair
	AccumulatedScore    int
	PendingOjama        int
	FramesElapsed       int
	ZenkeshiFlag        bool

	// Turn is the 1-indexed turn number: 1 for this player's first
	// piece, i.e. the number of pieces already placed plus one.
	// Not one of spec.md §3's named PlayerState fields, but both the
	// opening matcher (§4.6, "turn ≤ 5") and the fire condition (§4.5
	// rule 1, "turn ≤ 6") are defined in terms of it, so the driver
	// supplies it alongside the rest of the read-only snapshot.
	Turn int
}

// AIDecision is spec.md §3's AIDecision: the chosen placement, a
// diagnostic message describing which rule produced it, and how long
// Decide took to produce it.
type AIDecision struct {
	Decision         field.Decision
	LogMessage       string
	ThinkingDuration time.Duration
}

// sentinelDecision is returned whenever think() recovers a runtime
// error instead of propagating it (spec.md §7): a vertical drop in the
// death column, chosen because it is always legal on any non-full
// field and does not worsen an already-lost position.
var sentinelDecision = field.Decision{Column: field.DeathColumn, Rotation: field.RotationAbove}
