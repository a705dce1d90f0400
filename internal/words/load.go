// internal/words/load.go
//
// Loaders for word sets. All loaders normalize entries to lowercase and
// silently skip entries whose length does not match: the set's Add contract
// fails per word, and skipping is this loader's policy.

package words

import (
	"bufio"
	"errors"
	"os"
	"strings"
)

// FromLines builds a set of words of the given length from raw lines.
// Lines are trimmed and lowercased; blanks, "#" comments, and words of the
// wrong length are skipped.
func FromLines(lines []string, length int) (*Set, error) {
	set, err := NewSet(length)
	if err != nil {
		return nil, err
	}
	for _, line := range lines {
		w := strings.ToLower(strings.TrimSpace(line))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if err := set.Add(w); err != nil && !errors.Is(err, ErrLengthMismatch) {
			return nil, err
		}
	}
	if set.Len() == 0 {
		return nil, ErrEmptySet
	}
	return set, nil
}

// LoadFile reads one word per line from path.
func LoadFile(path string, length int) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return FromLines(lines, length)
}
