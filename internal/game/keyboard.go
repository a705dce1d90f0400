// internal/game/keyboard.go
//
// Cumulative per-character feedback across all guesses of a session.
// Initially every character is unknown. Each recorded guess upgrades the
// view: a character's state only ever improves (Absent < Misplaced <
// Correct), never regresses. A later guess pinning down the exact position
// of a previously misplaced character upgrades the hint; the reverse
// recording leaves the stronger state in place.
//
// A guess is collapsed to one state per character before merging: surplus
// occurrences of a present letter score Absent at their positions ("ovolo"
// against "colon" marks the third 'o' Absent), so the character's state for
// the guess is the maximum across its positions. Only at that granularity
// is the absent/non-absent consistency check sound.

package game

import (
	"errors"
	"fmt"
)

// ErrInconsistentCharState reports a character scored both as absent and as
// present across guesses. With a fixed target that cannot happen unless the
// evaluator is broken, so it is surfaced loudly rather than averaged away.
var ErrInconsistentCharState = errors.New("inconsistent char state")

// Keyboard aggregates the best-known state per character.
type Keyboard struct {
	keys map[rune]CharState
}

// NewKeyboard returns an empty keyboard view.
func NewKeyboard() *Keyboard {
	return &Keyboard{keys: make(map[rune]CharState)}
}

// Record merges one character's state into the view. Callers recording a
// whole guess go through RecordResult, which collapses duplicate positions
// first.
func (k *Keyboard) Record(fb Feedback) error {
	prev, ok := k.keys[fb.Char]
	if !ok {
		k.keys[fb.Char] = fb.State
		return nil
	}
	if (prev == Absent) != (fb.State == Absent) {
		return fmt.Errorf("%w: %q was %s, now %s", ErrInconsistentCharState, fb.Char, prev, fb.State)
	}
	if fb.State > prev {
		k.keys[fb.Char] = fb.State
	}
	return nil
}

// RecordResult merges a whole guess result into the view, one state per
// character: the maximum across the guess's positions for that character.
func (k *Keyboard) RecordResult(r Result) error {
	best := make(map[rune]CharState, len(r))
	order := make([]rune, 0, len(r))
	for _, fb := range r {
		prev, seen := best[fb.Char]
		if !seen {
			order = append(order, fb.Char)
		}
		if fb.State > prev {
			best[fb.Char] = fb.State
		}
	}
	for _, ch := range order {
		if err := k.Record(Feedback{Char: ch, State: best[ch]}); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the aggregate state for ch. The second return is false if the
// character has not appeared in any guess yet.
func (k *Keyboard) Get(ch rune) (CharState, bool) {
	st, ok := k.keys[ch]
	return st, ok
}

// Known returns a copy of the full view, for rendering.
func (k *Keyboard) Known() map[rune]CharState {
	out := make(map[rune]CharState, len(k.keys))
	for ch, st := range k.keys {
		out[ch] = st
	}
	return out
}
