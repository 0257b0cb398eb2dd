package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/headless"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagRuns     int
	flagMaxTicks uint64
	flagPaced    bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Let the autopilot play without a terminal",
	Long: `Run games headlessly with the built-in autopilot and print a summary.

By default time is simulated, so runs finish as fast as the CPU allows and
the same --seed always gives the same results. With --paced the simulation
runs at the configured tick rate on the wall clock.

Examples:
  flappy sim
  flappy sim --runs 20 --seed 7
  flappy sim --paced --runs 1 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagRuns, "runs", 5, "Number of runs to play")
	simCmd.Flags().Uint64Var(&flagMaxTicks, "ticks", 20000, "Tick limit per run (0 = no limit)")
	simCmd.Flags().BoolVar(&flagPaced, "paced", false, "Run in real time instead of simulated time")
}

func runSim(cmd *cobra.Command, args []string) error {
	if flagRuns <= 0 {
		return errors.New("--runs must be positive")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	var clock clockwork.Clock = clockwork.NewFakeClock()
	if flagPaced {
		clock = clockwork.NewRealClock()
	}

	game, err := flappy.New(cfg, flappy.WithClock(clock))
	if err != nil {
		return err
	}
	game.Reset(core.RuntimeConfig{TickRate: cfg.TickRate, Seed: flagSeed})

	store, err := storage.OpenMemory()
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	runner := headless.NewRunner(game, flappy.NewAutopilot(game), headless.Options{
		Clock:    clock,
		Interval: cfg.TickInterval(),
		Paced:    flagPaced,
		MaxTicks: flagMaxTicks,
		Logger:   logger,
	})

	for i := 0; i < flagRuns; i++ {
		res, err := runner.Run(ctx)
		if errors.Is(err, context.Canceled) {
			logger.Warn("interrupted", "finished_runs", i)
			break
		}
		if err != nil {
			return err
		}

		if _, err := store.SaveRun(storage.Run{
			Score:     res.Score,
			Best:      res.Best,
			Ticks:     res.Ticks,
			Cause:     res.Cause,
			StartedAt: res.StartedAt,
			EndedAt:   res.EndedAt,
		}); err != nil {
			return fmt.Errorf("recording run: %w", err)
		}
	}

	return printSummary(cmd.OutOrStdout(), store)
}
