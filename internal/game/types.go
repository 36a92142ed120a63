// apps/go-cli/internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Mark: per-letter result of a guess (match/misplaced/nomatch).
//   - Classification: the ordered marks for one guess.
//   - State: coarse game state (playing/won/lost).
//   - Game: state for a single in-progress or finished game.

package game

import "strings"

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "match":     letter is correct and in the correct position.
//   - "misplaced": letter exists in the answer at a not-yet-accounted-for position.
//   - "nomatch":   letter has no unaccounted-for occurrence in the answer.
type Mark string

const (
	MarkMatch     Mark = "match"
	MarkMisplaced Mark = "misplaced"
	MarkNoMatch   Mark = "nomatch"
)

// Classification is one Mark per guess position, in position order.
// Produced fresh by Classify and never mutated afterwards.
type Classification []Mark

// Solved reports whether every position is a Match.
func (c Classification) Solved() bool {
	if len(c) == 0 {
		return false
	}
	for _, m := range c {
		if m != MarkMatch {
			return false
		}
	}
	return true
}

// String renders the classification compactly: G (match), Y (misplaced), . (nomatch).
func (c Classification) String() string {
	var b strings.Builder
	for _, m := range c {
		switch m {
		case MarkMatch:
			b.WriteByte('G')
		case MarkMisplaced:
			b.WriteByte('Y')
		default:
			b.WriteByte('.')
		}
	}
	return b.String()
}

// State is the coarse lifecycle of a game.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Dictionary is the membership set guesses are checked against.
type Dictionary interface {
	Contains(word string) bool
}

// Game holds the state of a single Wordle game session.
type Game struct {
	ID       string           // Unique game identifier (random hex string).
	Answer   string           // The solution word (always lowercase).
	Rows     int              // Maximum number of guesses allowed (6).
	Cols     int              // Number of letters per word (5).
	Hard     bool             // Hard mode: guesses must reuse the previous greens/yellows.
	Guesses  []string         // Accepted guesses so far (lowercased).
	Results  []Classification // Classification of each accepted guess.
	Finished bool             // True once the game is over (won or lost).
	Won      bool             // True if the game was finished with a win.

	dict Dictionary
	hard HardState // derived from the most recent accepted guess only
}
