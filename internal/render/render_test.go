package render

import (
	"strings"
	"testing"

	"github.com/TwiN/go-color"

	"github.com/robalobadob/wordle/apps/go-cli/internal/config"
	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

func TestSquares(t *testing.T) {
	c := game.Classify("rebus", "route")
	if got, want := Squares(c), "🟩⬛🟨⬛🟨"; got != want {
		t.Fatalf("Squares = %q, want %q", got, want)
	}
}

func TestRowPlain(t *testing.T) {
	r := &Renderer{}
	if got := r.Row("robot", game.Classify("robot", "robot")); got != "🟩🟩🟩🟩🟩" {
		t.Fatalf("Row = %q", got)
	}
}

func TestRowColor(t *testing.T) {
	r := &Renderer{Color: true}
	got := r.Row("route", game.Classify("rebus", "route"))

	if !strings.HasPrefix(got, "🟩⬛🟨⬛🟨  ") {
		t.Fatalf("Row missing squares: %q", got)
	}
	if !strings.Contains(got, color.Ize(color.Green, "R")) || !strings.Contains(got, color.Ize(color.Yellow, "U")) || !strings.Contains(got, color.Ize(color.Gray, "O")) {
		t.Fatalf("Row missing colored letters: %q", got)
	}
}

func TestNewModes(t *testing.T) {
	if !New(nil, config.ColorAlways).Color {
		t.Fatal("always must enable color")
	}
	if New(nil, config.ColorNever).Color {
		t.Fatal("never must disable color")
	}
	if New(nil, config.ColorAuto).Color {
		t.Fatal("auto without a terminal must disable color")
	}
}
