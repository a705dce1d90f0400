package game

import (
	"errors"
	"testing"

	"wordlestar/internal/words"
)

func mustSet(t *testing.T, length int, list ...string) *words.Set {
	t.Helper()
	set, err := words.NewSet(length)
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range list {
		if err := set.Add(w); err != nil {
			t.Fatalf("Add(%q): %v", w, err)
		}
	}
	return set
}

func threeLetterSet(t *testing.T) *words.Set {
	return mustSet(t, 3, "rat", "sat", "mat", "cat", "dog", "tar")
}

func fiveLetterSet(t *testing.T) *words.Set {
	return mustSet(t, 5, "clone", "colon", "spoon", "ovolo", "potoo", "other", "siena")
}

func TestNewSession(t *testing.T) {
	sess, err := NewSession(threeLetterSet(t), "dog", 3)
	if err != nil {
		t.Fatal(err)
	}
	if sess.Status() != Playing {
		t.Errorf("status = %s, want playing", sess.Status())
	}
	if sess.Attempts() != 0 || len(sess.History()) != 0 {
		t.Error("fresh session should have no history")
	}
	if sess.Length() != 3 || sess.MaxAttempts() != 3 {
		t.Errorf("length/maxAttempts = %d/%d, want 3/3", sess.Length(), sess.MaxAttempts())
	}
}

func TestNewSessionConfigErrors(t *testing.T) {
	dict := threeLetterSet(t)

	// Wrong length: "star" can never be a member of a 3-letter set.
	if _, err := NewSession(dict, "star", 3); !errors.Is(err, ErrTargetNotInSet) {
		t.Errorf("length mismatch: err = %v, want ErrTargetNotInSet", err)
	}
	// Right length, but not a member.
	if _, err := NewSession(dict, "zzz", 3); !errors.Is(err, ErrTargetNotInSet) {
		t.Errorf("non-member: err = %v, want ErrTargetNotInSet", err)
	}
	if _, err := NewSession(dict, "dog", 0); !errors.Is(err, ErrInvalidAttempts) {
		t.Errorf("zero attempts: err = %v, want ErrInvalidAttempts", err)
	}
}

func TestSessionWin(t *testing.T) {
	sess, err := NewSession(threeLetterSet(t), "dog", 3)
	if err != nil {
		t.Fatal(err)
	}

	for _, guess := range []string{"rat", "cat"} {
		if _, err := sess.Submit(guess); err != nil {
			t.Fatalf("Submit(%q): %v", guess, err)
		}
		if sess.Status() != Playing {
			t.Fatalf("after %q: status = %s, want playing", guess, sess.Status())
		}
	}

	res, err := sess.Submit("dog")
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsWin() {
		t.Error("winning guess should report IsWin")
	}
	if sess.Status() != Won {
		t.Errorf("status = %s, want won", sess.Status())
	}
	assertKeyboard(t, sess.Keyboard(), "rtac", "", "dog")

	// Terminal: nothing more is accepted.
	if _, err := sess.Submit("tar"); !errors.Is(err, ErrNoAttemptsRemaining) {
		t.Errorf("submit after win: err = %v, want ErrNoAttemptsRemaining", err)
	}
}

func TestSessionLose(t *testing.T) {
	sess, err := NewSession(threeLetterSet(t), "dog", 2)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := sess.Submit("rat"); err != nil {
		t.Fatal(err)
	}
	if sess.Status() != Playing {
		t.Fatalf("status = %s, want playing", sess.Status())
	}
	if _, err := sess.Submit("cat"); err != nil {
		t.Fatal(err)
	}
	if sess.Status() != Lost {
		t.Errorf("status = %s, want lost", sess.Status())
	}
	assertKeyboard(t, sess.Keyboard(), "rtac", "", "")

	if _, err := sess.Submit("dog"); !errors.Is(err, ErrNoAttemptsRemaining) {
		t.Errorf("submit after loss: err = %v, want ErrNoAttemptsRemaining", err)
	}
}

func TestSessionRejectsUnknownWord(t *testing.T) {
	sess, err := NewSession(threeLetterSet(t), "mat", 6)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := sess.Submit("abc"); !errors.Is(err, ErrInvalidGuess) {
		t.Fatalf("err = %v, want ErrInvalidGuess", err)
	}
	// Rejection mutates nothing and costs no attempt.
	if sess.Status() != Playing || sess.Attempts() != 0 {
		t.Errorf("rejected guess changed state: status=%s attempts=%d", sess.Status(), sess.Attempts())
	}
	if len(sess.Keyboard().Known()) != 0 {
		t.Error("rejected guess reached the keyboard view")
	}

	if _, err := sess.Submit("sat"); err != nil {
		t.Fatalf("valid guess after rejection: %v", err)
	}
	if sess.Attempts() != 1 {
		t.Errorf("attempts = %d, want 1", sess.Attempts())
	}
}

func TestSessionGameFlow(t *testing.T) {
	sess, err := NewSession(fiveLetterSet(t), "colon", 6)
	if err != nil {
		t.Fatal(err)
	}

	steps := []struct {
		guess, codes string
	}{
		{"clone", "gyyyx"},
		{"spoon", "xxygg"},
		{"ovolo", "yxyyx"},
	}
	for _, step := range steps {
		res, err := sess.Submit(step.guess)
		if err != nil {
			t.Fatalf("Submit(%q): %v", step.guess, err)
		}
		assertResult(t, wantResult(t, step.guess, step.codes), res)
		if sess.Status() != Playing {
			t.Fatalf("after %q: status = %s, want playing", step.guess, sess.Status())
		}
	}

	res, err := sess.Submit("colon")
	if err != nil {
		t.Fatal(err)
	}
	assertResult(t, wantResult(t, "colon", "ggggg"), res)
	if sess.Status() != Won {
		t.Errorf("status = %s, want won", sess.Status())
	}
	if got := len(sess.History()); got != 4 {
		t.Errorf("history length = %d, want 4", got)
	}
}

// TestSessionKeyboardMonotonic replays a full round and checks that no
// character's keyboard state ever goes backwards.
func TestSessionKeyboardMonotonic(t *testing.T) {
	sess, err := NewSession(fiveLetterSet(t), "ovolo", 6)
	if err != nil {
		t.Fatal(err)
	}

	prev := make(map[rune]CharState)
	for _, guess := range []string{"colon", "spoon", "potoo", "siena", "ovolo"} {
		if _, err := sess.Submit(guess); err != nil {
			t.Fatalf("Submit(%q): %v", guess, err)
		}
		for ch, st := range sess.Keyboard().Known() {
			if st < prev[ch] {
				t.Errorf("after %q: %q regressed from %s to %s", guess, ch, prev[ch], st)
			}
			prev[ch] = st
		}
	}
	assertKeyboard(t, sess.Keyboard(), "spnt", "", "ovl")
	if sess.Status() != Won {
		t.Errorf("status = %s, want won", sess.Status())
	}
}

// assertKeyboard checks the aggregate state of each listed character.
func assertKeyboard(t *testing.T, k *Keyboard, absent, misplaced, correct string) {
	t.Helper()
	check := func(chars string, want CharState) {
		for _, ch := range chars {
			got, ok := k.Get(ch)
			if !ok {
				t.Errorf("no state for %q, want %s", ch, want)
				continue
			}
			if got != want {
				t.Errorf("state for %q = %s, want %s", ch, got, want)
			}
		}
	}
	check(absent, Absent)
	check(misplaced, Misplaced)
	check(correct, Correct)
}
