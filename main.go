package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/config"
	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/play"
	"github.com/robalobadob/wordle/apps/go-cli/internal/render"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

func main() {
	_ = godotenv.Load()
	hard := flag.Bool("hard", false, "hard mode: every revealed hint must be reused in the next guess")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	zerolog.SetGlobalLevel(cfg.Level())

	list, err := words.Load(words.Sources{AnswersFile: cfg.AnswersFile, AllowedFile: cfg.AllowedFile})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	nAns, nAllowed := list.Stats()
	log.Debug().Int("answers", nAns).Int("allowed", nAllowed).Msg("word lists loaded")

	list, secret, err := pickSecret(cfg, list, time.Now())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to pick a secret word")
	}

	g := game.New(secret, list, game.WithHardMode(*hard))
	log.Debug().Str("game_id", g.ID).Bool("hard", g.Hard).Bool("daily", cfg.Daily).Msg("starting game")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	sess := play.NewSession(g, os.Stdin, os.Stdout, render.New(os.Stdout, cfg.Color), log.Logger)
	_, err = sess.Run(ctx)
	stop()

	switch {
	case errors.Is(err, play.ErrInterrupted):
		os.Exit(130)
	case err != nil:
		log.Error().Err(err).Msg("game ended early")
		os.Exit(1)
	}
}

// pickSecret chooses the game's word: fixed from config, daily, or random.
// A fixed secret outside the lists is added to the allowed guesses.
func pickSecret(cfg config.Config, list *words.List, now time.Time) (*words.List, string, error) {
	switch {
	case cfg.Secret != "":
		return list.WithSecret(cfg.Secret)
	case cfg.Daily:
		return list, list.DailyAnswer(now, cfg.DailySalt), nil
	}
	return list, list.RandomAnswer(), nil
}
