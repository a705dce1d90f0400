// internal/game/evaluate.go
//
// Guess scoring. Evaluate compares a guess against a target of the same
// length and produces per-position feedback.
//
// The algorithm works on position sets per character rather than the common
// two-pass counter, because the tie-break for surplus repeated letters must
// be explicit:
//   1. Every position starts Absent.
//   2. For each character of the target, positions where guess and target
//      agree are Correct (set intersection, order-insensitive).
//   3. Target occurrences not consumed by an exact match are handed out to
//      the remaining guess positions of that character in ascending position
//      order, marked Misplaced. Guess occurrences beyond the target's count
//      stay Absent.
//
// So for target "colon" and guess "ovolo", the two spare target 'o's go to
// guess positions 0 and 2, and position 4 stays Absent. The result is
// deterministic no matter the iteration order over characters.

package game

import "sort"

// Evaluate scores guess against target.
// Both words must have the same rune length; the caller is responsible
// (session submits only dictionary members, which all share one length).
func Evaluate(guess, target string) Result {
	gr := []rune(guess)
	res := make(Result, len(gr))
	for i, ch := range gr {
		res[i] = Feedback{Char: ch, State: Absent}
	}

	guessPos := charPositions(guess)
	for ch, tpos := range charPositions(target) {
		gpos, ok := guessPos[ch]
		if !ok {
			continue
		}

		// Exact matches first.
		matched := 0
		var spare []int
		for p := range gpos {
			if _, hit := tpos[p]; hit {
				res[p].State = Correct
				matched++
			} else {
				spare = append(spare, p)
			}
		}

		// Target occurrences left over after exact matches are awarded to
		// the leftmost spare guess positions.
		extra := len(tpos) - matched
		if extra <= 0 {
			continue
		}
		sort.Ints(spare)
		if extra > len(spare) {
			extra = len(spare)
		}
		for _, p := range spare[:extra] {
			res[p].State = Misplaced
		}
	}
	return res
}

// charPositions maps each character of word to the set of positions
// (rune indexes) where it occurs.
func charPositions(word string) map[rune]map[int]struct{} {
	m := make(map[rune]map[int]struct{})
	i := 0
	for _, ch := range word {
		if m[ch] == nil {
			m[ch] = make(map[int]struct{})
		}
		m[ch][i] = struct{}{}
		i++
	}
	return m
}
