package game

import (
	"errors"
	"testing"
)

type wordSet map[string]struct{}

func (s wordSet) Contains(w string) bool {
	_, ok := s[w]
	return ok
}

func newSet(words ...string) wordSet {
	s := make(wordSet, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

var testDict = newSet("rebus", "route", "stole", "rules", "arise", "crane", "rumba", "reach", "robot")

func TestApplyGuessWin(t *testing.T) {
	g := New("REBUS", testDict)
	if g.Answer != "rebus" || g.Rows != 6 || g.Cols != 5 || len(g.ID) != 16 {
		t.Fatalf("unexpected game %+v", g)
	}

	marks, st, err := g.ApplyGuess("route")
	if err != nil || st != StatePlaying {
		t.Fatalf("route: state=%s err=%v", st, err)
	}
	if marks.String() != "G.Y.Y" {
		t.Fatalf("route marks = %s", marks)
	}

	marks, st, err = g.ApplyGuess(" Rebus\n")
	if err != nil {
		t.Fatal(err)
	}
	if st != StateWon || !g.Won || !g.Finished || !marks.Solved() {
		t.Fatalf("expected win, got %s", st)
	}
	if len(g.Guesses) != 2 || len(g.Results) != 2 {
		t.Fatalf("history = %v", g.Guesses)
	}

	if _, _, err := g.ApplyGuess("rebus"); !errors.Is(err, ErrFinished) {
		t.Fatalf("expected ErrFinished, got %v", err)
	}
}

func TestApplyGuessLoss(t *testing.T) {
	g := New("rebus", testDict)
	var st State
	for i := 0; i < 6; i++ {
		var err error
		if _, st, err = g.ApplyGuess("crane"); err != nil {
			t.Fatal(err)
		}
		if i < 5 && st != StatePlaying {
			t.Fatalf("guess %d: state %s", i+1, st)
		}
	}
	if st != StateLost || g.Won || g.Remaining() != 0 {
		t.Fatalf("expected loss, got %s remaining=%d", st, g.Remaining())
	}
}

func TestApplyGuessRejectionsKeepAttempts(t *testing.T) {
	g := New("rebus", testDict)

	cases := []struct {
		guess string
		want  error
	}{
		{"rebu", ErrInvalidLength},
		{"rebuses", ErrInvalidLength},
		{"reb1s", ErrInvalidGuess},
		{"zzzzz", ErrNotInWordList},
	}
	for _, tc := range cases {
		if _, st, err := g.ApplyGuess(tc.guess); !errors.Is(err, tc.want) || st != StatePlaying {
			t.Errorf("ApplyGuess(%q) = %s, %v; want %v", tc.guess, st, err, tc.want)
		}
	}
	if g.Remaining() != 6 || len(g.Guesses) != 0 {
		t.Fatalf("rejections consumed attempts: remaining=%d", g.Remaining())
	}
}

func TestApplyGuessHardMode(t *testing.T) {
	g := New("rebus", testDict, WithHardMode(true))

	// First turn is unconstrained.
	if _, _, err := g.ApplyGuess("rules"); err != nil {
		t.Fatal(err)
	}
	// rules: r and s green, u and e yellow.
	if _, _, err := g.ApplyGuess("stole"); !errors.Is(err, ErrHardMode) {
		t.Fatalf("expected hard mode rejection, got %v", err)
	}
	if _, _, err := g.ApplyGuess("route"); !errors.Is(err, ErrHardMode) {
		t.Fatalf("route lacks the green s, got %v", err)
	}
	if g.Remaining() != 5 {
		t.Fatalf("remaining = %d", g.Remaining())
	}
	if _, st, err := g.ApplyGuess("rebus"); err != nil || st != StateWon {
		t.Fatalf("rebus: %s %v", st, err)
	}
}

func TestHardStateOnlyTracksPreviousGuess(t *testing.T) {
	g := New("rebus", testDict, WithHardMode(true))

	if _, _, err := g.ApplyGuess("arise"); err != nil {
		t.Fatal(err)
	}
	// arise leaves r, s, e yellow; reach keeps r and e but drops s.
	if _, _, err := g.ApplyGuess("reach"); !errors.Is(err, ErrHardMode) {
		t.Fatalf("reach should miss yellow s, got %v", err)
	}
	if _, _, err := g.ApplyGuess("rules"); err != nil {
		t.Fatal(err)
	}
	st := g.Constraints()
	if len(st.Greens) != 2 || string(st.Yellows) != "eu" {
		t.Fatalf("constraints not replaced: %+v", st)
	}
}

func TestSoftModeIgnoresConstraints(t *testing.T) {
	g := New("rebus", testDict)
	if _, _, err := g.ApplyGuess("rules"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := g.ApplyGuess("stole"); err != nil {
		t.Fatalf("soft mode rejected stole: %v", err)
	}
}

func TestNilDictionaryAcceptsWellFormed(t *testing.T) {
	g := New("rebus", nil)
	if _, _, err := g.ApplyGuess("qwert"); err != nil {
		t.Fatal(err)
	}
}
