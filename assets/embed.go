package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed words_small.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// DefaultWords returns the embedded fallback word list, so the binaries run
// even when no word file or database is configured.
func DefaultWords() ([]string, error) {
	return readLines("words_small.txt")
}
