package config

import (
	"os"
	"testing"
)

func TestParseDefaults(t *testing.T) {
	for _, k := range []string{
		"MODE", "PORT", "WORD_LENGTH", "MAX_ATTEMPTS", "DAILY", "LOG_LEVEL",
	} {
		t.Setenv(k, "") // registers restore
		os.Unsetenv(k)
	}

	cfg, err := Parse()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Mode != "cli" || cfg.Port != "5175" {
		t.Errorf("mode/port = %s/%s, want cli/5175", cfg.Mode, cfg.Port)
	}
	if cfg.WordLength != 5 || cfg.MaxAttempts != 6 {
		t.Errorf("length/attempts = %d/%d, want 5/6", cfg.WordLength, cfg.MaxAttempts)
	}
	if cfg.Daily {
		t.Error("daily should default to off")
	}
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("MODE", "serve")
	t.Setenv("WORD_LENGTH", "3")
	t.Setenv("MAX_ATTEMPTS", "2")
	t.Setenv("DAILY", "true")

	cfg, err := Parse()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Mode != "serve" || cfg.WordLength != 3 || cfg.MaxAttempts != 2 || !cfg.Daily {
		t.Errorf("unexpected config: %+v", cfg)
	}
}
