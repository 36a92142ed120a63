// Package render draws classified guesses for the terminal.
//
// Each guess becomes one line of squares in position order:
// 🟩 match, 🟨 misplaced, ⬛ nomatch. With color enabled the guessed
// letters follow the squares in matching ANSI colors.
package render

import (
	"os"
	"strings"

	"github.com/TwiN/go-color"
	"github.com/mattn/go-isatty"

	"github.com/robalobadob/wordle/apps/go-cli/internal/config"
	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

const (
	squareMatch     = "🟩"
	squareMisplaced = "🟨"
	squareNoMatch   = "⬛"
)

// Renderer formats classifications.
type Renderer struct {
	Color bool
}

// New picks color output from mode; "auto" enables it only when out is a terminal.
func New(out *os.File, mode string) *Renderer {
	switch mode {
	case config.ColorAlways:
		return &Renderer{Color: true}
	case config.ColorNever:
		return &Renderer{}
	}
	return &Renderer{Color: out != nil && IsTerminal(out.Fd())}
}

// IsTerminal reports whether fd is an interactive terminal.
func IsTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Squares renders only the square symbols for c.
func Squares(c game.Classification) string {
	var b strings.Builder
	for _, m := range c {
		switch m {
		case game.MarkMatch:
			b.WriteString(squareMatch)
		case game.MarkMisplaced:
			b.WriteString(squareMisplaced)
		default:
			b.WriteString(squareNoMatch)
		}
	}
	return b.String()
}

// Row renders one guess line, without a trailing newline.
func (r *Renderer) Row(guess string, c game.Classification) string {
	sq := Squares(c)
	if !r.Color {
		return sq
	}

	var b strings.Builder
	b.WriteString(sq)
	b.WriteString("  ")
	for i := 0; i < len(guess) && i < len(c); i++ {
		letter := strings.ToUpper(guess[i : i+1])
		switch c[i] {
		case game.MarkMatch:
			b.WriteString(color.Ize(color.Green, letter))
		case game.MarkMisplaced:
			b.WriteString(color.Ize(color.Yellow, letter))
		default:
			b.WriteString(color.Ize(color.Gray, letter))
		}
	}
	return b.String()
}
