package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/iamasit07/4gewinnt/internal/config"
	"github.com/iamasit07/4gewinnt/internal/domain"
	"github.com/iamasit07/4gewinnt/internal/service/game"
	"github.com/iamasit07/4gewinnt/internal/transport/terminal"
	"github.com/iamasit07/4gewinnt/pkg/uid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	os.Exit(run())
}

func run() int {
	// stderr until the config says otherwise
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	cfg := config.LoadConfig()

	logOut, closeLog, err := openLog(cfg.LogFile)
	if err != nil {
		log.Error().Err(err).Msg("failed to open log file")
		return 1
	}
	defer closeLog()

	log.Logger = zerolog.New(logOut).With().Timestamp().Logger()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	term := terminal.NewTerminal(os.Stdin, os.Stdout)
	opts := terminal.Options{
		Color:      cfg.Color,
		DropDelay:  cfg.DropDelay,
		SlideDelay: cfg.SlideDelay,
		WinPause:   cfg.WinPause,
	}
	if !cfg.Animate || !term.Interactive() {
		opts.DropDelay, opts.SlideDelay, opts.WinPause = 0, 0, 0
	}
	if !term.Interactive() {
		opts.Color = false
	}
	if _, height := term.Size(); height <= game.StatusLine {
		log.Warn().Int("height", height).Int("needed", game.StatusLine+1).Msg("terminal is shorter than the game screen")
	}

	gameID, err := uid.GenerateGameID()
	if err != nil {
		log.Error().Err(err).Msg("failed to create game")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer := terminal.NewRenderer(term.Out(), opts)
	input := terminal.NewLineReader(term.In())
	svc := game.NewService(renderer, input, log.Logger)

	result, err := svc.Play(ctx, domain.NewGame(gameID))
	renderer.Finish(game.StatusLine + 1)

	if rerr := renderer.Err(); rerr != nil {
		log.Error().Err(rerr).Msg("failed to draw the game")
	}
	if err != nil {
		log.Warn().Err(err).Msg("game did not finish")
		return 1
	}

	log.Info().Str("game_id", gameID).Str("result", result.String()).Msg("game over")
	return 0
}

func openLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return zerolog.ConsoleWriter{Out: os.Stderr}, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}
