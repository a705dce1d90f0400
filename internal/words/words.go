// internal/words/words.go
//
// Fixed-length word set used as the game dictionary.
//
// Responsibilities:
//   - Membership set of words that all share one length (in runes).
//   - Set semantics: duplicates collapse, no ordering exposed beyond Words().
//   - Random word selection for target picking.
//
// Loading from files, embedded defaults, or SQLite lives in the loader
// functions of this package; non-conforming entries are the loader's
// concern and are skipped there, while Add itself fails per word.

package words

import (
	"crypto/rand"
	"errors"
	"math/big"
	"unicode/utf8"
)

var (
	// ErrInvalidLength rejects construction with a non-positive word length.
	ErrInvalidLength = errors.New("word length must be positive")

	// ErrLengthMismatch rejects adding a word of the wrong length.
	ErrLengthMismatch = errors.New("incorrect word length")

	// ErrEmptySet rejects drawing a random word from an empty set.
	ErrEmptySet = errors.New("word set is empty")
)

// Set is a dictionary of words that all have the same rune length.
type Set struct {
	length  int
	members map[string]struct{}
	words   []string // insertion order, deduplicated; backs Random and Words
}

// NewSet creates an empty set for words of the given rune length.
func NewSet(length int) (*Set, error) {
	if length <= 0 {
		return nil, ErrInvalidLength
	}
	return &Set{length: length, members: make(map[string]struct{})}, nil
}

// Add inserts word into the set. Adding an existing word is a no-op.
func (s *Set) Add(word string) error {
	if utf8.RuneCountInString(word) != s.length {
		return ErrLengthMismatch
	}
	if _, ok := s.members[word]; ok {
		return nil
	}
	s.members[word] = struct{}{}
	s.words = append(s.words, word)
	return nil
}

// Contains reports whether word is a member.
func (s *Set) Contains(word string) bool {
	_, ok := s.members[word]
	return ok
}

// Len returns the number of distinct words.
func (s *Set) Len() int { return len(s.words) }

// Length returns the word length shared by all members.
func (s *Set) Length() int { return s.length }

// Words returns the members in insertion order. The slice is shared;
// callers must not modify it. Used for deterministic daily indexing.
func (s *Set) Words() []string { return s.words }

// Random returns a cryptographically random member.
func (s *Set) Random() (string, error) {
	if len(s.words) == 0 {
		return "", ErrEmptySet
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(s.words))))
	if err != nil {
		return "", err
	}
	return s.words[n.Int64()], nil
}
