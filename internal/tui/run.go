package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/sweep/internal/events"
	"github.com/vancomm/sweep/internal/game"
	"github.com/vancomm/sweep/internal/mines"
)

var Log = logrus.New()

type Options struct {
	Params     game.Params
	CellWidth  int
	CellHeight int
	TickRate   time.Duration

	// BoardOptions are passed on to every board the game creates.
	BoardOptions []mines.Option
}

// App is the game loop: it owns the game and is the only code that mutates
// it.
type App struct {
	opts Options
	game *game.Game
	view *view
}

func NewApp(opts Options) (*App, error) {
	g, err := game.New(opts.Params, opts.BoardOptions...)
	if err != nil {
		return nil, err
	}
	return &App{
		opts: opts,
		game: g,
		view: newView(g, opts.CellWidth, opts.CellHeight),
	}, nil
}

func (a *App) Game() *game.Game {
	return a.game
}

// Run draws the game and applies one command per key press until the player
// quits or ctx is cancelled. screen must already be initialised; finalising it
// is left to the caller.
func (a *App) Run(ctx context.Context, screen tcell.Screen) (err error) {
	ctx, cancel := context.WithCancel(ctx)
	src := events.Start(ctx, screen, events.Config{TickRate: a.opts.TickRate})
	defer func() {
		cancel()
		if werr := src.Wait(); werr != nil && err == nil {
			err = werr
		}
	}()
	defer func() {
		if r := recover(); r != nil {
			Log.WithField("game_id", a.game.ID().String()).
				WithField("panic", r).
				Error("game loop panicked")
			panic(r)
		}
	}()

	for {
		if err := a.view.draw(screen); err != nil {
			return fmt.Errorf("failed to draw to terminal: %w", err)
		}
		screen.Show()

		select {
		case <-ctx.Done():
			Log.Info("game loop cancelled")
			return nil
		case ev := <-src.Events():
			switch ev.Kind {
			case events.Resize:
				screen.Sync()
			case events.Input:
				cmd := commandFor(ev.Key)
				if cmd == game.None {
					continue
				}
				Log.WithField("command", cmd.String()).Debug("input")

				outcome, err := a.game.Apply(cmd)
				if err != nil {
					return fmt.Errorf("failed to %s: %w", cmd, err)
				}
				if outcome == game.Quitting {
					return nil
				}
			}
		}
	}
}
