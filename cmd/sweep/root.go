package main

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vancomm/sweep/internal/config"
	"github.com/vancomm/sweep/internal/events"
	"github.com/vancomm/sweep/internal/game"
	"github.com/vancomm/sweep/internal/logging"
	"github.com/vancomm/sweep/internal/mines"
	"github.com/vancomm/sweep/internal/tui"
)

var log = logrus.New()

type runFunc func(ctx context.Context, cfg *config.Config) error

func newRootCmd(run runFunc) *cobra.Command {
	cfg, envErr := config.Load()

	rootCmd := &cobra.Command{
		Use:   "sweep",
		Short: "Play minesweeper in the terminal",
		Long: `sweep draws a minesweeper board in the terminal.

Move with the arrow keys or h/j/k/l, expose a tile with space, flag it
with f, start over with r and leave with q, Esc or Ctrl-C.`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return envErr
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			cfg.ClampMines()
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg)
		},
		SilenceUsage: true,
	}

	flags := rootCmd.Flags()
	flags.IntVarP(&cfg.Rows, "rows", "r", cfg.Rows, "Number of rows (env: SWEEP_ROWS)")
	flags.IntVarP(&cfg.Columns, "columns", "c", cfg.Columns, "Number of columns (env: SWEEP_COLUMNS)")
	flags.IntVarP(&cfg.Mines, "mines", "n", cfg.Mines, "Number of mines, capped at rows*columns (env: SWEEP_MINES)")
	flags.IntVarP(&cfg.CellWidth, "cell-width", "w", cfg.CellWidth, "Width of a tile in terminal columns (env: SWEEP_CELL_WIDTH)")
	flags.IntVarP(&cfg.CellHeight, "cell-height", "H", cfg.CellHeight, "Height of a tile in terminal rows (env: SWEEP_CELL_HEIGHT)")
	flags.DurationVar(&cfg.TickRate, "tick-rate", cfg.TickRate, "Redraw interval (env: SWEEP_TICK_RATE)")
	flags.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Log file path (env: SWEEP_LOG_FILE)")
	flags.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Log at debug level (env: SWEEP_DEBUG)")

	return rootCmd
}

func setupLogging(cfg *config.Config) error {
	return logging.Setup(
		logging.Options{
			File:  cfg.LogFile,
			Debug: cfg.Debug || config.Development(),
		},
		log, mines.Log, game.Log, events.Log, tui.Log,
	)
}

func play(ctx context.Context, cfg *config.Config) error {
	if err := setupLogging(cfg); err != nil {
		return err
	}
	log.WithFields(cfg.Fields()).Info("starting")

	app, err := tui.NewApp(tui.Options{
		Params: game.Params{
			Rows:    cfg.Rows,
			Columns: cfg.Columns,
			Mines:   cfg.Mines,
		},
		CellWidth:    cfg.CellWidth,
		CellHeight:   cfg.CellHeight,
		TickRate:     cfg.TickRate,
		BoardOptions: []mines.Option{mines.WithRand(mines.NewRand())},
	})
	if err != nil {
		log.WithError(err).Error("unable to start game")
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("unable to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("unable to initialise terminal: %w", err)
	}
	defer screen.Fini()

	if err := app.Run(ctx, screen); err != nil {
		log.WithError(err).Error("game stopped")
		return err
	}
	log.Info("bye")
	return nil
}
