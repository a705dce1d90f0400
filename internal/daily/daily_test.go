package daily

import (
	"testing"
	"time"
)

func TestDateKey(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC.
	loc := time.FixedZone("UTC-5", -5*60*60)
	ts := time.Date(2024, 3, 1, 23, 30, 0, 0, loc)
	if got := DateKey(ts); got != "2024-03-02" {
		t.Errorf("DateKey = %q, want 2024-03-02", got)
	}
}

func TestWordIndexDeterministic(t *testing.T) {
	day := time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC)
	later := time.Date(2024, 3, 2, 22, 0, 0, 0, time.UTC)

	a := WordIndex(day, "salt", 100)
	b := WordIndex(later, "salt", 100)
	if a != b {
		t.Errorf("same day gave different indexes: %d vs %d", a, b)
	}
	if a < 0 || a >= 100 {
		t.Errorf("index %d out of range", a)
	}

	next := WordIndex(day.AddDate(0, 0, 1), "salt", 100)
	salted := WordIndex(day, "other salt", 100)
	if a == next && a == salted {
		t.Error("index should depend on date and salt")
	}
}

func TestWordIndexEmptyList(t *testing.T) {
	if got := WordIndex(time.Now(), "salt", 0); got != 0 {
		t.Errorf("WordIndex with empty list = %d, want 0", got)
	}
}
