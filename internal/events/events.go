package events

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var Log = logrus.New()

const DefaultTickRate = 250 * time.Millisecond

type Kind int

const (
	Input Kind = iota
	Resize
	Tick
)

// Event is either a key press, a terminal resize or a tick.
type Event struct {
	Kind Kind
	Key  *tcell.EventKey
}

// Screen is the part of a [tcell.Screen] the input reader consumes.
type Screen interface {
	ChannelEvents(ch chan<- tcell.Event, quit <-chan struct{})
}

type Config struct {
	TickRate time.Duration
}

// Source merges terminal input and a periodic tick into a single channel,
// each produced by its own goroutine.
type Source struct {
	ch    chan Event
	group *errgroup.Group
}

// Start launches the producers. They stop once ctx is done; call [Source.Wait]
// afterwards to join them.
func Start(ctx context.Context, screen Screen, cfg Config) *Source {
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultTickRate
	}

	g, ctx := errgroup.WithContext(ctx)
	s := &Source{
		ch:    make(chan Event),
		group: g,
	}

	raw := make(chan tcell.Event)
	g.Go(func() error {
		screen.ChannelEvents(raw, ctx.Done())
		return nil
	})
	g.Go(func() error {
		return s.forwardInput(ctx, raw)
	})
	g.Go(func() error {
		return s.tick(ctx, cfg.TickRate)
	})

	return s
}

func (s *Source) Events() <-chan Event {
	return s.ch
}

func (s *Source) Wait() error {
	return s.group.Wait()
}

func (s *Source) send(ctx context.Context, ev Event) bool {
	select {
	case s.ch <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

func (s *Source) forwardInput(ctx context.Context, raw <-chan tcell.Event) error {
	defer Log.Debug("input reader stopped")
	for {
		var ev tcell.Event
		select {
		case <-ctx.Done():
			return nil
		case e, ok := <-raw:
			if !ok {
				return nil
			}
			ev = e
		}

		var out Event
		switch ev := ev.(type) {
		case *tcell.EventKey:
			out = Event{Kind: Input, Key: ev}
		case *tcell.EventResize:
			out = Event{Kind: Resize}
		case *tcell.EventError:
			Log.WithError(ev).Warn("terminal reported an error")
			continue
		default:
			continue
		}
		if !s.send(ctx, out) {
			return nil
		}
	}
}

func (s *Source) tick(ctx context.Context, rate time.Duration) error {
	ticker := time.NewTicker(rate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if !s.send(ctx, Event{Kind: Tick}) {
				return nil
			}
		}
	}
}
