package main

import (
	"errors"
	"testing"
	"time"

	"github.com/robalobadob/wordle/apps/go-cli/internal/config"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

func TestPickSecret(t *testing.T) {
	list, err := words.New([]string{"crane", "slate", "robot"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("fixed", func(t *testing.T) {
		l, w, err := pickSecret(config.Config{Secret: "Zesty"}, list, now)
		if err != nil || w != "zesty" || !l.Contains("zesty") {
			t.Fatalf("got %q, %v", w, err)
		}
	})

	t.Run("fixed invalid", func(t *testing.T) {
		if _, _, err := pickSecret(config.Config{Secret: "no"}, list, now); !errors.Is(err, words.ErrInvalidWord) {
			t.Fatalf("expected ErrInvalidWord, got %v", err)
		}
	})

	t.Run("daily", func(t *testing.T) {
		cfg := config.Config{Daily: true, DailySalt: "s"}
		_, a, _ := pickSecret(cfg, list, now)
		_, b, _ := pickSecret(cfg, list, now.Add(time.Hour))
		if a != b || !list.IsAnswer(a) {
			t.Fatalf("daily secrets %q / %q", a, b)
		}
	})

	t.Run("random", func(t *testing.T) {
		_, w, err := pickSecret(config.Config{}, list, now)
		if err != nil || !list.IsAnswer(w) {
			t.Fatalf("got %q, %v", w, err)
		}
	})
}
