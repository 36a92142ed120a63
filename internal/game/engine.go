// apps/go-cli/internal/game/engine.go
//
// Game engine for a single terminal Wordle session.
// Responsibilities:
//   - Create new games with fixed dimensions (6x5).
//   - Validate guesses (length, alphabetic, dictionary, hard mode).
//   - Score accepted guesses with Classify.
//   - Track state transitions: playing → won/lost.
//
// Rejected guesses never consume an attempt.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
)

const (
	defaultRows = 6
	defaultCols = 5
)

var (
	ErrFinished      = errors.New("game finished")
	ErrInvalidLength = errors.New("invalid guess length")
	ErrInvalidGuess  = errors.New("invalid guess")
	ErrNotInWordList = errors.New("not in word list")
)

// Option customizes a Game at construction.
type Option func(*Game)

// WithHardMode enables the hard-mode carryover rule.
func WithHardMode(on bool) Option {
	return func(g *Game) { g.Hard = on }
}

// New constructs a new game for answer. A nil dict accepts every
// well-formed guess.
func New(answer string, dict Dictionary, opts ...Option) *Game {
	g := &Game{
		ID:      randomID(),
		Answer:  strings.ToLower(strings.TrimSpace(answer)),
		Rows:    defaultRows,
		Cols:    defaultCols,
		Guesses: []string{},
		dict:    dict,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ApplyGuess validates and scores a guess, mutating the game state.
// Returns the classification, the resulting state, or an error.
//
// Validation order:
//   - Game must not be finished.
//   - Guess must be exactly g.Cols letters, all a–z.
//   - Guess must be in the dictionary.
//   - In hard mode, guess must satisfy the previous guess's constraints.
func (g *Game) ApplyGuess(guess string) (Classification, State, error) {
	if g.Finished {
		return nil, g.State(), ErrFinished
	}
	guess = strings.ToLower(strings.TrimSpace(guess))
	if len(guess) != g.Cols {
		return nil, g.State(), ErrInvalidLength
	}
	if !isAlpha(guess) {
		return nil, g.State(), ErrInvalidGuess
	}
	if g.dict != nil && !g.dict.Contains(guess) {
		return nil, g.State(), ErrNotInWordList
	}
	if g.Hard {
		if err := g.hard.Check(guess); err != nil {
			return nil, g.State(), err
		}
	}

	marks := Classify(g.Answer, guess)
	g.Guesses = append(g.Guesses, guess)
	g.Results = append(g.Results, marks)
	g.hard = DeriveHardState(guess, marks)

	if marks.Solved() {
		g.Finished, g.Won = true, true
	} else if len(g.Guesses) >= g.Rows {
		g.Finished = true
	}
	return marks, g.State(), nil
}

// State reports the coarse state of the game.
func (g *Game) State() State {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// Remaining reports how many attempts are left.
func (g *Game) Remaining() int {
	return g.Rows - len(g.Guesses)
}

// Constraints returns the hard-mode snapshot derived from the last accepted guess.
func (g *Game) Constraints() HardState {
	return g.hard
}

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// randomID returns a compact 16‑hex‑char identifier used to correlate log lines.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
