// internal/httpserver/server.go
//
// HTTP front end over the game engine.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints: POST /game/new, POST /game/guess, GET /game/{id}.
//
// Notes:
//   - CORS is origin-aware so a browser front end can talk to it directly.
//   - Sessions live in the store; per-record locking keeps each session
//     single-owner even under concurrent requests.
//   - The engine itself stays wire-free; marks and keyboard states are
//     converted to strings here.

package httpserver

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"wordlestar/internal/daily"
	"wordlestar/internal/game"
	"wordlestar/internal/store"
	"wordlestar/internal/words"
)

// Server bundles router, session store, and the shared word set.
type Server struct {
	r           *chi.Mux
	store       store.Store
	dict        *words.Set
	maxAttempts int
	dailySalt   string
	corsOrigin  string
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, dict *words.Set, maxAttempts int, dailySalt, corsOrigin string) *Server {
	s := &Server{
		r:           chi.NewRouter(),
		store:       st,
		dict:        dict,
		maxAttempts: maxAttempts,
		dailySalt:   dailySalt,
		corsOrigin:  corsOrigin,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(s.cors)

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordlestar","endpoints":["/health","POST /game/new","POST /game/guess","GET /game/{id}"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{
			"words":  s.dict.Len(),
			"length": s.dict.Length(),
		})
	})

	// --- game ---
	s.r.Post("/game/new", s.handleNewGame)
	s.r.Post("/game/guess", s.handleGuess)
	s.r.Get("/game/{id}", s.handleGameState)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables single-origin CORS for browser front ends.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", s.corsOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ GAME ---------------------------------------

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Answer      string `json:"answer"`      // optional fixed answer (testing)
	Daily       bool   `json:"daily"`       // use today's deterministic word
	MaxAttempts int    `json:"maxAttempts"` // optional override
}
type newGameRes struct {
	GameID      string `json:"gameId"`
	Length      int    `json:"length"`
	MaxAttempts int    `json:"maxAttempts"`
	Date        string `json:"date,omitempty"` // set for daily games
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	attempts := s.maxAttempts
	if req.MaxAttempts > 0 {
		attempts = req.MaxAttempts
	}

	var (
		target string
		date   string
		err    error
	)
	switch {
	case req.Answer != "":
		target = strings.ToLower(strings.TrimSpace(req.Answer))
	case req.Daily:
		now := time.Now()
		date = daily.DateKey(now)
		target = s.dict.Words()[daily.WordIndex(now, s.dailySalt, s.dict.Len())]
	default:
		target, err = s.dict.Random()
		if err != nil {
			log.Error().Err(err).Msg("pick target")
			http.Error(w, `{"error":"no_words"}`, http.StatusInternalServerError)
			return
		}
	}

	sess, err := game.NewSession(s.dict, target, attempts)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	rec := &store.Record{ID: randomID(), Session: sess}
	if err := s.store.Save(r.Context(), rec); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	_ = json.NewEncoder(w).Encode(newGameRes{
		GameID:      rec.ID,
		Length:      sess.Length(),
		MaxAttempts: sess.MaxAttempts(),
		Date:        date,
	})
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}
type guessRes struct {
	Marks    []markJSON        `json:"marks"`
	State    string            `json:"state"` // "playing" | "won" | "lost"
	Attempts int               `json:"attempts"`
	Keyboard map[string]string `json:"keyboard"`
}
type markJSON struct {
	Char  string `json:"char"`
	State string `json:"state"`
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	rec, err := s.store.Get(r.Context(), req.GameID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}

	guess := strings.ToLower(strings.TrimSpace(req.Guess))
	var res guessRes
	err = rec.Do(func(sess *game.Session) error {
		result, err := sess.Submit(guess)
		if err != nil {
			return err
		}
		res = guessRes{
			Marks:    marksJSON(result),
			State:    sess.Status().String(),
			Attempts: sess.Attempts(),
			Keyboard: keyboardJSON(sess.Keyboard()),
		}
		return nil
	})
	switch {
	case errors.Is(err, game.ErrInvalidGuess):
		http.Error(w, `{"error":"not_in_word_list"}`, http.StatusUnprocessableEntity)
		return
	case errors.Is(err, game.ErrNoAttemptsRemaining):
		http.Error(w, `{"error":"game_finished"}`, http.StatusConflict)
		return
	case err != nil:
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	_ = json.NewEncoder(w).Encode(res)
}

// stateRes is returned by GET /game/{id}.
type stateRes struct {
	GameID      string            `json:"gameId"`
	State       string            `json:"state"`
	Attempts    int               `json:"attempts"`
	MaxAttempts int               `json:"maxAttempts"`
	Length      int               `json:"length"`
	History     [][]markJSON      `json:"history"`
	Keyboard    map[string]string `json:"keyboard"`
}

func (s *Server) handleGameState(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}

	var res stateRes
	_ = rec.Do(func(sess *game.Session) error {
		history := make([][]markJSON, 0, sess.Attempts())
		for _, result := range sess.History() {
			history = append(history, marksJSON(result))
		}
		res = stateRes{
			GameID:      rec.ID,
			State:       sess.Status().String(),
			Attempts:    sess.Attempts(),
			MaxAttempts: sess.MaxAttempts(),
			Length:      sess.Length(),
			History:     history,
			Keyboard:    keyboardJSON(sess.Keyboard()),
		}
		return nil
	})
	_ = json.NewEncoder(w).Encode(res)
}

// ------------------------------ wire helpers -------------------------------

func marksJSON(r game.Result) []markJSON {
	out := make([]markJSON, len(r))
	for i, fb := range r {
		out[i] = markJSON{Char: string(fb.Char), State: fb.State.String()}
	}
	return out
}

func keyboardJSON(k *game.Keyboard) map[string]string {
	out := make(map[string]string)
	for ch, st := range k.Known() {
		out[string(ch)] = st.String()
	}
	return out
}

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
