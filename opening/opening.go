// Package opening implements the opening-turn template matcher
// (spec.md §4.6): a small table of (board pattern, piece-pair colors) ->
// decision, consulted for turn <= 5, that bypasses beam search entirely
// on a hit. Patterns are color-agnostic up to a bijection over the four
// chromatic colors, mirroring the variable-assignment machinery in
// evaluator/pattern.go.
package opening

import (
	"context"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog"

	"github.com/puyopop/ghoti-fork/color"
	"github.com/puyopop/ghoti-fork/field"
	"github.com/puyopop/ghoti-fork/piece"
)

// MaxOpeningTurn is the last turn on which the matcher is consulted
// (spec.md §4.6 "turn <= 5"). Turn is 1-indexed by the caller.
const MaxOpeningTurn = 5

// cell is one constrained board position in a template: either required
// empty ('.') or bound to a color variable (any other byte).
type cell struct {
	col, row int
	v        byte
}

// entry is one opening-table row: the board cells it constrains, which
// template variables the incoming piece pair's axis/child must bind to,
// and the decision to play when it matches.
type entry struct {
	name         string
	requireEmpty bool // true: match only an entirely empty board
	cells        []cell
	axisVar      byte
	childVar     byte
	decision     field.Decision
}

// Matcher holds a loaded opening table and a small direct-mapped cache
// of recent lookups keyed by a hash of the (board, pair) query, avoiding
// a full table scan on repeated queries within a single think() (the
// table is tiny today but the cache keeps lookups O(1) as it grows).
type Matcher struct {
	entries []entry
	cache   [openingCacheSize]cacheEntry
}

const openingCacheSize = 256

type cacheEntry struct {
	key      uint64
	filled   bool
	decision field.Decision
	ok       bool
}

// New constructs a Matcher from a loaded table. Use Default for the
// built-in table.
func New(entries []entry) *Matcher {
	return &Matcher{entries: entries}
}

// Default returns a Matcher seeded with the built-in opening book
// (DefaultEntries).
func Default() *Matcher {
	return New(DefaultEntries())
}

// Lookup returns the tabled decision for the current field and the next
// piece pair, if turn is within the opening window and some entry
// matches. A miss (ok == false) means the caller must fall through to
// beam search (spec.md §4.6 "Misses fall through to beam search").
func (m *Matcher) Lookup(ctx context.Context, f *field.Field, p piece.Pair, turn int) (d field.Decision, ok bool) {
	logger := zerolog.Ctx(ctx)
	if turn > MaxOpeningTurn {
		return field.Decision{}, false
	}

	key := queryHash(f, p)
	if c := &m.cache[key%openingCacheSize]; c.filled && c.key == key {
		logger.Debug().Bool("hit", c.ok).Msg("opening: cache lookup")
		return c.decision, c.ok
	}

	for _, e := range m.entries {
		if d, ok := matchEntry(f, p, e); ok {
			m.cache[key%openingCacheSize] = cacheEntry{key: key, filled: true, decision: d, ok: true}
			logger.Debug().Str("entry", e.name).Str("decision", d.String()).Msg("opening: table match")
			return d, true
		}
	}
	m.cache[key%openingCacheSize] = cacheEntry{key: key, filled: true, ok: false}
	logger.Debug().Msg("opening: no template matched")
	return field.Decision{}, false
}

// queryHash combines the field's content hash with the pair's colors.
// It is an exact function of everything matchEntry reads, so caching on
// it never produces a stale hit.
func queryHash(f *field.Field, p piece.Pair) uint64 {
	h := f.Hash()
	h ^= xxhash.Sum64([]byte{byte(p.Axis), byte(p.Child)})
	return h
}

// matchEntry reports whether e's board constraints are satisfied by f
// and e's piece-variable bindings are satisfied by p, under some common
// bijection from template variables to chromatic colors.
func matchEntry(f *field.Field, p piece.Pair, e entry) (field.Decision, bool) {
	if e.requireEmpty && !f.IsAllClear() {
		return field.Decision{}, false
	}

	assignment := map[byte]color.Color{}
	used := map[color.Color]bool{}

	for _, c := range e.cells {
		actual := f.ColorAt(c.col, c.row)
		if c.v == '.' {
			if actual != color.Empty {
				return field.Decision{}, false
			}
			continue
		}
		if !actual.IsChromatic() {
			return field.Decision{}, false
		}
		if prev, ok := assignment[c.v]; ok {
			if prev != actual {
				return field.Decision{}, false
			}
			continue
		}
		if used[actual] {
			return field.Decision{}, false
		}
		assignment[c.v] = actual
		used[actual] = true
	}

	if !bindVar(assignment, used, e.axisVar, p.Axis) {
		return field.Decision{}, false
	}
	if !bindVar(assignment, used, e.childVar, p.Child) {
		return field.Decision{}, false
	}
	return e.decision, true
}

// bindVar checks variable v against target under assignment, extending
// assignment/used in place if v is not yet bound. A variable already
// bound to a different color, or a fresh variable whose target color is
// already claimed by a different variable, fails the match.
func bindVar(assignment map[byte]color.Color, used map[color.Color]bool, v byte, target color.Color) bool {
	if bound, ok := assignment[v]; ok {
		return bound == target
	}
	if used[target] {
		return false
	}
	assignment[v] = target
	used[target] = true
	return true
}
