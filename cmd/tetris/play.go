package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/engine"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/layout"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

func runGame(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg, args)
	if err := cfg.Validate(); err != nil {
		return err
	}

	run, err := registry.Lookup(cfg.Display.Backend)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	lay := layout.New(cfg.Board.Width, cfg.Board.Height)
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < lay.Width() || h < lay.Height()+1 {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: terminal is %dx%d, the game needs %dx%d\n",
				w, h, lay.Width(), lay.Height()+1)
		}
	}

	game := tetris.New(tetris.Options{
		Width:        cfg.Board.Width,
		Height:       cfg.Board.Height,
		Speed:        cfg.Speed,
		RandomColors: cfg.Display.RandomColors,
		Seed:         seed,
	})
	opts := engine.Options{
		PollTimeout: cfg.Input.PollTimeout,
		Ghost:       cfg.Display.Ghost,
		Logger:      logger,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting",
		"backend", cfg.Display.Backend,
		"board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"seed", seed,
		"random_colors", cfg.Display.RandomColors,
	)

	res, err := run(ctx, game, opts)
	if err != nil {
		return err
	}

	logger.Info("finished", "reason", res.Reason, "score", res.Final.Score, "pieces", res.Final.Pieces)
	printSummary(cmd.OutOrStdout(), res.Final)
	return nil
}

// applyFlags overrides config values with flags the user actually set.
func applyFlags(cmd *cobra.Command, cfg *config.TetrisConfig, args []string) {
	flags := cmd.Flags()
	if flagRandom || len(args) > 0 {
		cfg.Display.RandomColors = true
	}
	if flags.Changed("backend") {
		cfg.Display.Backend = flagBackend
	}
	if flags.Changed("width") {
		cfg.Board.Width = flagWidth
	}
	if flags.Changed("height") {
		cfg.Board.Height = flagHeight
	}
	if flags.Changed("ghost") {
		cfg.Display.Ghost = flagGhost
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
}

// newLogger builds the diagnostics logger. The terminal belongs to the game,
// so without a log file everything is discarded.
func newLogger(cfg config.LogConfig) (*log.Logger, func(), error) {
	level := log.InfoLevel
	if cfg.Level != "" {
		parsed, err := log.ParseLevel(cfg.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("log level: %w", err)
		}
		level = parsed
	}

	if cfg.File == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
		Level:           level,
	})
	return logger, func() {
		//nolint:errcheck // Best-effort close on exit
		f.Close()
	}, nil
}

// printSummary writes the final score screen.
func printSummary(w io.Writer, s tetris.Snapshot) {
	fmt.Fprintln(w, "Game over!")
	fmt.Fprintf(w, "Score: %d\n", s.Score)
	fmt.Fprintf(w, "Lines: %d\n", s.Lines)
	fmt.Fprintf(w, "Level: %d\n", s.Level)
}
