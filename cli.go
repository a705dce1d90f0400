// cli.go
//
// Interactive terminal front end. One round per run: reads guesses from
// stdin, prints the colored board and a keyboard hint row after every
// accepted guess, and finishes with a win or lose message.
//
// The engine rejects words that are not in the dictionary; those get a
// notice and do not cost an attempt.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"wordlestar/internal/game"
	"wordlestar/internal/words"
)

const (
	ansiReset  = "\033[0m"
	ansiGreen  = "\033[42;30m"
	ansiYellow = "\033[43;30m"
	ansiGray   = "\033[100;37m"
)

func runCLI(dict *words.Set, target string, maxAttempts int) error {
	sess, err := game.NewSession(dict, target, maxAttempts)
	if err != nil {
		return err
	}

	out := os.Stdout
	fmt.Fprintf(out, "Guess the %d-letter word. You have %d attempts.\n\n", sess.Length(), sess.MaxAttempts())

	sc := bufio.NewScanner(os.Stdin)
	for sess.Status() == game.Playing {
		fmt.Fprintf(out, "[%d/%d] > ", sess.Attempts()+1, sess.MaxAttempts())
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return err
			}
			return nil // EOF, player gave up
		}
		guess := strings.ToLower(strings.TrimSpace(sc.Text()))
		if guess == "" {
			continue
		}

		if _, err := sess.Submit(guess); err != nil {
			if err == game.ErrInvalidGuess {
				fmt.Fprintf(out, "%q is not a valid word.\n", guess)
				continue
			}
			return err
		}

		printBoard(out, sess)
		fmt.Fprintf(out, "keyboard: %s\n\n", keyboardRow(sess.Keyboard()))
	}

	switch sess.Status() {
	case game.Won:
		fmt.Fprintf(out, "You win! Got it in %d.\n", sess.Attempts())
	case game.Lost:
		fmt.Fprintf(out, "Out of attempts. The word was %q.\n", sess.Target())
	}
	return nil
}

// printBoard renders every accepted guess so far as colored tiles.
func printBoard(w io.Writer, sess *game.Session) {
	for _, result := range sess.History() {
		for _, fb := range result {
			fmt.Fprintf(w, "%s %c %s", stateColor(fb.State), fb.Char, ansiReset)
		}
		fmt.Fprintln(w)
	}
}

// keyboardRow renders a-z with each letter colored by its aggregate state.
// Letters not yet guessed print uncolored.
func keyboardRow(k *game.Keyboard) string {
	var b strings.Builder
	for ch := 'a'; ch <= 'z'; ch++ {
		if st, ok := k.Get(ch); ok {
			b.WriteString(stateColor(st))
			b.WriteRune(ch)
			b.WriteString(ansiReset)
		} else {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

func stateColor(st game.CharState) string {
	switch st {
	case game.Correct:
		return ansiGreen
	case game.Misplaced:
		return ansiYellow
	}
	return ansiGray
}
