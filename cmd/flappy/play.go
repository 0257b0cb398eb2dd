package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Space/Up/W/Click - Flap (the first flap starts the run)
  R                - Restart after game over
  Tab              - Show this session's runs (between runs)
  Ctrl+S           - Save a screenshot to ~/.tui-flappy/screenshots
  Q/Esc/Ctrl+C     - Quit

When the game exits, a summary of the session's runs is printed.

Examples:
  flappy play
  flappy play --seed 42
  flappy play --log-file flappy.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to Bubble Tea, so logs go to a file or nowhere
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game, err := flappy.New(cfg)
	if err != nil {
		return err
	}

	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("run log unavailable", "err", err)
		store = nil
	}

	logger.Info("starting", "width", width, "height", height, "tick_rate", cfg.TickRate, "seed", flagSeed)

	runErr := tui.Run(game, tui.Options{
		Store:  store,
		Logger: logger,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.TickRate,
			Seed:     flagSeed,
		},
		TickInterval: cfg.TickInterval(),
	})

	if store != nil {
		defer store.Close()
		if runErr == nil {
			if err := printSummary(cmd.OutOrStdout(), store); err != nil {
				logger.Warn("cannot print summary", "err", err)
			}
		}
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
