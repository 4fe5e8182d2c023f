// Package ghoti declares the sentinel error kinds shared across the
// decision core's subpackages (spec.md §7). Propagation policy: errors
// returned from constructors (InvalidInput — malformed weight/opening
// artifacts) are fatal to that core instance; runtime errors raised
// while thinking are always recovered inside player.Decide and never
// escape it.
package ghoti

import "errors"

var (
	// DeadState is returned when think() is asked to act on a field
	// that is already dead (spec.md §3 "is_dead").
	DeadState = errors.New("ghoti: field is in a dead state")

	// NoLegalMove is returned when there is no piece to place (empty
	// visible sequence) or no decision for the next piece can be legally
	// applied (every candidate overflows).
	NoLegalMove = errors.New("ghoti: no legal move available")

	// BudgetExhausted is returned when the think-frame deadline expired
	// before any rollout produced a usable result. Rollouts that finished
	// at least one depth still yield a decision without this error;
	// think() recovers it by returning the sentinel decision, so it is
	// never fatal.
	BudgetExhausted = errors.New("ghoti: think budget exhausted before any rollout completed")

	// InvalidInput wraps construction-time errors: a malformed
	// evaluator weight table or opening template artifact.
	InvalidInput = errors.New("ghoti: invalid input")
)
