// internal/game/types.go
//
// Core type definitions for the guessing engine.
// Defines:
//   - CharState: per-letter feedback (absent/misplaced/correct), totally ordered.
//   - Feedback:  a (character, CharState) pair for one guess position.
//   - Result:    per-position feedback for one whole guess.
//   - Status:    state of a session (playing/won/lost).

package game

// CharState classifies one character of a guess against the target.
// The ordering Absent < Misplaced < Correct is load-bearing: the keyboard
// view merges states by taking the maximum. The zero value is reserved so
// an unset state is never confused with Absent.
type CharState uint8

const (
	// Absent: the character does not account for any target occurrence.
	Absent CharState = iota + 1
	// Misplaced: the character occurs in the target, at another position.
	Misplaced
	// Correct: the character is at this exact position in the target.
	Correct
)

// String returns the wire/display name of the state.
func (c CharState) String() string {
	switch c {
	case Absent:
		return "absent"
	case Misplaced:
		return "misplaced"
	case Correct:
		return "correct"
	}
	return "unknown"
}

// Feedback is the scored outcome for a single guess position.
type Feedback struct {
	Char  rune
	State CharState
}

// Result is the ordered per-position feedback for one guess.
// Its length always equals the word length of the session that produced it.
type Result []Feedback

// IsWin reports whether every position was scored Correct.
// Computed from the per-position states rather than by comparing strings,
// so the contract stays uniform with the rest of the feedback pipeline.
func (r Result) IsWin() bool {
	for _, fb := range r {
		if fb.State != Correct {
			return false
		}
	}
	return true
}

// Status is the lifecycle state of a Session.
type Status uint8

const (
	Playing Status = iota
	Won
	Lost
)

// String reports a coarse string representation of the session status.
func (s Status) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "playing"
}
