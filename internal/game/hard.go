package game

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrHardMode is wrapped by every hard-mode rejection.
var ErrHardMode = errors.New("hard mode")

// Green is a letter known to sit at a fixed position.
type Green struct {
	Char byte
	Pos  int
}

// HardState is the constraint snapshot carried from the previous guess.
// The zero value means there was no previous guess and accepts anything.
type HardState struct {
	Greens  []Green
	Yellows []byte // sorted, unique
}

// HardModeError names the first constraint a guess failed.
type HardModeError struct {
	Char byte
	Pos  int // -1 for a yellow (position-free) constraint
}

func (e *HardModeError) Error() string {
	c := strings.ToUpper(string(e.Char))
	if e.Pos < 0 {
		return fmt.Sprintf("hard mode: guess must contain %s", c)
	}
	return fmt.Sprintf("hard mode: %s letter must be %s", ordinal(e.Pos+1), c)
}

func (e *HardModeError) Unwrap() error { return ErrHardMode }

// DeriveHardState builds the constraints implied by one classified guess.
func DeriveHardState(guess string, c Classification) HardState {
	var st HardState
	seen := make(map[byte]bool)
	for i, m := range c {
		switch m {
		case MarkMatch:
			st.Greens = append(st.Greens, Green{Char: guess[i], Pos: i})
		case MarkMisplaced:
			if !seen[guess[i]] {
				seen[guess[i]] = true
				st.Yellows = append(st.Yellows, guess[i])
			}
		}
	}
	sort.Slice(st.Yellows, func(i, j int) bool { return st.Yellows[i] < st.Yellows[j] })
	return st
}

// Empty reports whether the state carries no constraints.
func (st HardState) Empty() bool {
	return len(st.Greens) == 0 && len(st.Yellows) == 0
}

// Check returns a *HardModeError for the first constraint guess violates:
// greens first in position order, then yellows alphabetically. Yellow
// letters must appear at a position not already pinned by a green.
func (st HardState) Check(guess string) error {
	pinned := make(map[int]bool, len(st.Greens))
	for _, g := range st.Greens {
		if g.Pos >= len(guess) || guess[g.Pos] != g.Char {
			return &HardModeError{Char: g.Char, Pos: g.Pos}
		}
		pinned[g.Pos] = true
	}

	for _, y := range st.Yellows {
		found := false
		for i := 0; i < len(guess); i++ {
			if !pinned[i] && guess[i] == y {
				found = true
				break
			}
		}
		if !found {
			return &HardModeError{Char: y, Pos: -1}
		}
	}
	return nil
}

// IsValidHardGuess reports whether guess satisfies st.
func IsValidHardGuess(guess string, st HardState) bool {
	return st.Check(guess) == nil
}

func ordinal(n int) string {
	switch {
	case n%100 >= 11 && n%100 <= 13:
		return fmt.Sprintf("%dth", n)
	case n%10 == 1:
		return fmt.Sprintf("%dst", n)
	case n%10 == 2:
		return fmt.Sprintf("%dnd", n)
	case n%10 == 3:
		return fmt.Sprintf("%drd", n)
	}
	return fmt.Sprintf("%dth", n)
}
