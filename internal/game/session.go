// internal/game/session.go
//
// Game session for a single round.
// Responsibilities:
//   - Validate construction: target must be a dictionary member, attempts positive.
//   - Validate and apply guesses; rejected guesses consume no attempt.
//   - Score guesses and feed the keyboard view.
//   - Track state transitions: playing → won/lost (terminal).
//
// A session is a plain owned object with synchronous methods; it is mutated
// by at most one caller at a time. The word set is read-only after load and
// may be shared across sessions. Any locking belongs to the host.

package game

import (
	"errors"

	"wordlestar/internal/words"
)

var (
	// ErrTargetNotInSet is a construction-time configuration error: the
	// target word is not a member of the word set (which also covers any
	// length mismatch, since all members share one length).
	ErrTargetNotInSet = errors.New("target word not present in word set")

	// ErrInvalidAttempts is a construction-time configuration error.
	ErrInvalidAttempts = errors.New("max attempts must be positive")

	// ErrInvalidGuess rejects a guess that is not in the word set. The
	// session is untouched and the caller may retry with another word.
	ErrInvalidGuess = errors.New("word not allowed")

	// ErrNoAttemptsRemaining reports a Submit call on a finished session or
	// after attempts ran out. That is a caller bug, not a game outcome.
	ErrNoAttemptsRemaining = errors.New("no more guesses allowed")
)

// Session holds all state of one round.
type Session struct {
	dict        *words.Set
	target      string
	maxAttempts int
	keyboard    *Keyboard
	history     []Result
	status      Status
}

// NewSession creates a round over dict with the given target word.
// At most maxAttempts accepted guesses may be submitted.
func NewSession(dict *words.Set, target string, maxAttempts int) (*Session, error) {
	if maxAttempts <= 0 {
		return nil, ErrInvalidAttempts
	}
	if !dict.Contains(target) {
		return nil, ErrTargetNotInSet
	}
	return &Session{
		dict:        dict,
		target:      target,
		maxAttempts: maxAttempts,
		keyboard:    NewKeyboard(),
		status:      Playing,
	}, nil
}

// Submit applies one guess.
//
// Returns ErrNoAttemptsRemaining if the session is already terminal or out
// of attempts, and ErrInvalidGuess if the word is not in the set (no state
// is mutated and no attempt is consumed). Otherwise the guess is scored,
// recorded into history and the keyboard view, and the session may
// transition to Won or Lost.
func (s *Session) Submit(guess string) (Result, error) {
	if s.status != Playing || len(s.history) >= s.maxAttempts {
		return nil, ErrNoAttemptsRemaining
	}
	if !s.dict.Contains(guess) {
		return nil, ErrInvalidGuess
	}

	res := Evaluate(guess, s.target)
	if err := s.keyboard.RecordResult(res); err != nil {
		// Unreachable for a fixed target when Evaluate is correct.
		panic(err)
	}
	s.history = append(s.history, res)

	if res.IsWin() {
		s.status = Won
	} else if len(s.history) >= s.maxAttempts {
		s.status = Lost
	}
	return res, nil
}

// Status returns the current lifecycle state.
func (s *Session) Status() Status { return s.status }

// Keyboard returns the cumulative keyboard view.
func (s *Session) Keyboard() *Keyboard { return s.keyboard }

// History returns the results of accepted guesses in submission order.
// The returned slice is shared; callers must not modify it.
func (s *Session) History() []Result { return s.history }

// Attempts returns the number of accepted guesses so far.
func (s *Session) Attempts() int { return len(s.history) }

// MaxAttempts returns the attempt limit for the round.
func (s *Session) MaxAttempts() int { return s.maxAttempts }

// Length returns the word length of the round.
func (s *Session) Length() int { return s.dict.Length() }

// Target returns the secret word. Front ends reveal it on a loss.
func (s *Session) Target() string { return s.target }
