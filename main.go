package main

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"wordlestar/assets"
	"wordlestar/internal/config"
	"wordlestar/internal/daily"
	"wordlestar/internal/httpserver"
	"wordlestar/internal/store"
	"wordlestar/internal/words"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Parse()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	dict, err := loadWords(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	log.Info().Int("words", dict.Len()).Int("length", dict.Length()).Msg("word list loaded")

	switch cfg.Mode {
	case "serve":
		srv := httpserver.New(store.NewMemoryStore(), dict, cfg.MaxAttempts, cfg.DailySalt, cfg.ClientOrigin)
		log.Info().Str("port", cfg.Port).Msg("starting wordlestar server")
		if err := srv.Start(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("server exited")
		}
	default:
		target, err := pickTarget(cfg, dict)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to pick target word")
		}
		if err := runCLI(dict, target, cfg.MaxAttempts); err != nil {
			log.Fatal().Err(err).Msg("game aborted")
		}
	}
}

// loadWords builds the dictionary from the first configured source:
// SQLite database, plain text file, or the embedded default list.
func loadWords(cfg config.Config) (*words.Set, error) {
	switch {
	case cfg.WordsDB != "":
		return words.LoadSQLite(cfg.WordsDB, cfg.WordLength)
	case cfg.WordsFile != "":
		return words.LoadFile(cfg.WordsFile, cfg.WordLength)
	default:
		lines, err := assets.DefaultWords()
		if err != nil {
			return nil, err
		}
		return words.FromLines(lines, cfg.WordLength)
	}
}

// pickTarget chooses the secret word: the deterministic word of the day in
// daily mode, a random member otherwise.
func pickTarget(cfg config.Config, dict *words.Set) (string, error) {
	if cfg.Daily {
		idx := daily.WordIndex(time.Now(), cfg.DailySalt, dict.Len())
		return dict.Words()[idx], nil
	}
	return dict.Random()
}
