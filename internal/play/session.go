// apps/go-cli/internal/play/session.go
//
// Interactive game loop for one terminal game.
// Responsibilities:
//   - Prompt for guesses and read them line by line.
//   - Report rejected guesses (length, letters, dictionary, hard mode) and re-prompt
//     without consuming an attempt.
//   - Render each accepted guess and announce the result.
//   - Reveal the secret when the game is lost, the input closes, or ctx is cancelled.
//
// Input is read on a separate goroutine so a cancelled ctx (interrupt) is noticed
// while the player is idle at the prompt.

package play

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/render"
)

// maxReadErrors consecutive read failures end the session.
const maxReadErrors = 5

var (
	ErrInterrupted = errors.New("interrupted")
	ErrInputClosed = errors.New("input closed")
)

// Session binds a game to its input, output, and renderer.
type Session struct {
	game *game.Game
	in   io.Reader
	out  io.Writer
	rend *render.Renderer
	log  zerolog.Logger
}

// NewSession builds a Session. A nil renderer draws plain squares.
func NewSession(g *game.Game, in io.Reader, out io.Writer, r *render.Renderer, logger zerolog.Logger) *Session {
	if r == nil {
		r = &render.Renderer{}
	}
	return &Session{game: g, in: in, out: out, rend: r, log: logger.With().Str("game_id", g.ID).Logger()}
}

type line struct {
	text string
	err  error
}

// Run plays until the game ends, the input closes, or ctx is cancelled.
// It returns the final game state; ErrInterrupted and ErrInputClosed report
// an unfinished game after the secret has been revealed.
func (s *Session) Run(ctx context.Context) (game.State, error) {
	lines := make(chan line)
	done := make(chan struct{})
	defer close(done)
	go readLines(s.in, lines, done)

	s.intro()
	for {
		fmt.Fprint(s.out, "Guess: ")

		var ln line
		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out)
			s.reveal()
			s.log.Info().Msg("game interrupted")
			return s.game.State(), ErrInterrupted
		case ln = <-lines:
		}

		if ln.err != nil {
			if errors.Is(ln.err, ErrInputClosed) {
				fmt.Fprintln(s.out)
				s.reveal()
				s.log.Info().Msg("input closed")
				return s.game.State(), ErrInputClosed
			}
			s.log.Warn().Err(ln.err).Msg("read guess")
			fmt.Fprintf(s.out, "Error occurred: %v\n", ln.err)
			fmt.Fprintln(s.out, "Try again ...")
			continue
		}

		marks, st, err := s.game.ApplyGuess(ln.text)
		if err != nil {
			s.log.Debug().Err(err).Str("guess", ln.text).Msg("guess rejected")
			fmt.Fprintln(s.out, s.rejection(err))
			continue
		}

		guess := s.game.Guesses[len(s.game.Guesses)-1]
		s.log.Debug().
			Str("guess", guess).
			Str("marks", marks.String()).
			Int("remaining", s.game.Remaining()).
			Msg("guess accepted")
		fmt.Fprintln(s.out, s.rend.Row(guess, marks))

		switch st {
		case game.StateWon:
			fmt.Fprintln(s.out, "Correct!")
			s.log.Info().Int("guesses", len(s.game.Guesses)).Msg("game won")
			return st, nil
		case game.StateLost:
			s.reveal()
			s.log.Info().Msg("game lost")
			return st, nil
		}
	}
}

func (s *Session) intro() {
	fmt.Fprintf(s.out, "Guess the %d letter word in %d tries.", s.game.Cols, s.game.Rows)
	if s.game.Hard {
		fmt.Fprint(s.out, " Hard mode: reuse every revealed hint.")
	}
	fmt.Fprintln(s.out)
}

func (s *Session) reveal() {
	fmt.Fprintf(s.out, "Wordle word was: %s\n", s.game.Answer)
}

// rejection turns an ApplyGuess error into the message shown to the player.
func (s *Session) rejection(err error) string {
	var hme *game.HardModeError
	switch {
	case errors.Is(err, game.ErrInvalidLength):
		return fmt.Sprintf("Not a %d letter word.", s.game.Cols)
	case errors.Is(err, game.ErrInvalidGuess):
		return "Only letters a-z are allowed."
	case errors.Is(err, game.ErrNotInWordList):
		return "Word is not a word in the list"
	case errors.As(err, &hme):
		return "Not allowed in " + hme.Error()
	}
	return err.Error()
}

// readLines feeds lines from in until EOF or too many consecutive errors,
// then sends ErrInputClosed. It stops early once done is closed.
func readLines(in io.Reader, lines chan<- line, done <-chan struct{}) {
	send := func(l line) bool {
		select {
		case lines <- l:
			return true
		case <-done:
			return false
		}
	}

	br := bufio.NewReader(in)
	failures := 0
	for {
		text, err := br.ReadString('\n')
		switch {
		case err == nil:
			failures = 0
			if !send(line{text: text}) {
				return
			}
		case errors.Is(err, io.EOF):
			if text != "" && !send(line{text: text}) {
				return
			}
			send(line{err: ErrInputClosed})
			return
		default:
			failures++
			if failures >= maxReadErrors {
				send(line{err: fmt.Errorf("%w: %v", ErrInputClosed, err)})
				return
			}
			if !send(line{err: err}) {
				return
			}
		}
	}
}
