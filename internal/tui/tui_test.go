package tui

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/sweep/internal/events"
	"github.com/vancomm/sweep/internal/game"
	"github.com/vancomm/sweep/internal/mines"
)

func TestMain(m *testing.M) {
	Log.SetOutput(io.Discard)
	game.Log.SetOutput(io.Discard)
	mines.Log.SetOutput(io.Discard)
	events.Log.SetOutput(io.Discard)
	m.Run()
}

func newScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(width, height)
	return screen
}

// screenText returns the visible content of screen, one string per line.
func screenText(screen tcell.SimulationScreen) []string {
	cells, width, height := screen.GetContents()
	lines := make([]string, height)
	for y := range height {
		var b strings.Builder
		for x := range width {
			c := cells[y*width+x]
			if len(c.Runes) == 0 {
				b.WriteRune(' ')
				continue
			}
			b.WriteRune(c.Runes[0])
		}
		lines[y] = b.String()
	}
	return lines
}

func contains(lines []string, s string) bool {
	for _, line := range lines {
		if strings.Contains(line, s) {
			return true
		}
	}
	return false
}

func newApp(t *testing.T, p game.Params, mined ...int) *App {
	t.Helper()
	app, err := NewApp(Options{
		Params:       p,
		CellWidth:    5,
		CellHeight:   3,
		TickRate:     time.Hour,
		BoardOptions: []mines.Option{mines.WithMines(mined...)},
	})
	require.NoError(t, err)
	return app
}

func TestCommandFor(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want game.Command
	}{
		{tcell.KeyUp, 0, game.MoveUp},
		{tcell.KeyDown, 0, game.MoveDown},
		{tcell.KeyLeft, 0, game.MoveLeft},
		{tcell.KeyRight, 0, game.MoveRight},
		{tcell.KeyRune, 'k', game.MoveUp},
		{tcell.KeyRune, 'j', game.MoveDown},
		{tcell.KeyRune, 'h', game.MoveLeft},
		{tcell.KeyRune, 'l', game.MoveRight},
		{tcell.KeyRune, ' ', game.Expose},
		{tcell.KeyRune, 'f', game.Flag},
		{tcell.KeyRune, 'r', game.Restart},
		{tcell.KeyRune, 'q', game.Quit},
		{tcell.KeyEscape, 0, game.Quit},
		{tcell.KeyCtrlC, 0, game.Quit},
		{tcell.KeyRune, 'x', game.None},
		{tcell.KeyTab, 0, game.None},
	}

	for _, test := range tests {
		ev := tcell.NewEventKey(test.key, test.r, tcell.ModNone)
		assert.Equal(t, test.want, commandFor(ev), "key %v rune %q", test.key, test.r)
	}
}

func TestAlignOn(t *testing.T) {
	got := alignOn([]string{"a: 1", "long key: 22", "none"}, ":")
	assert.Equal(t, []string{
		"       a: 1 ",
		"long key: 22",
		"    none    ",
	}, got)
}

func TestComputeLayout(t *testing.T) {
	l, ok := computeLayout(80, 40, 9, 9, 5, 3)
	require.True(t, ok)

	assert.Equal(t, 47, l.grid.width)
	assert.Equal(t, 29, l.grid.height)
	assert.Equal(t, l.grid.y, l.info.y+l.info.height)
	assert.Equal(t, l.grid.y+l.grid.height, l.help.y)
	assert.Equal(t, (78-47)/2+1, l.grid.x)

	cell := l.cellRect(8, 8, 5, 3)
	assert.Equal(t, l.grid.x+l.grid.width-1, cell.x+cell.width)
	assert.Equal(t, l.grid.y+l.grid.height-1, cell.y+cell.height)

	_, ok = computeLayout(30, 10, 9, 9, 5, 3)
	assert.False(t, ok)
}

func TestDrawFrame(t *testing.T) {
	screen := newScreen(t, 80, 40)
	app := newApp(t, game.Params{Rows: 3, Columns: 3, Mines: 1}, 4)

	require.NoError(t, app.view.draw(screen))
	screen.Show()

	lines := screenText(screen)
	assert.True(t, contains(lines, "Minesweeper"))
	assert.True(t, contains(lines, "flag tile: f"))
	assert.False(t, contains(lines, "You"))
}

func TestDrawTooSmall(t *testing.T) {
	screen := newScreen(t, 30, 10)
	app := newApp(t, game.Params{Rows: 9, Columns: 9, Mines: 1}, 0)

	require.NoError(t, app.view.draw(screen))
	screen.Show()
	assert.True(t, contains(screenText(screen), "terminal too small"))
}

func TestRunQuits(t *testing.T) {
	screen := newScreen(t, 80, 40)
	app := newApp(t, game.Params{Rows: 3, Columns: 3, Mines: 1}, 4)

	screen.InjectKey(tcell.KeyRune, 'l', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'f', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	require.NoError(t, app.Run(context.Background(), screen))
	assert.Equal(t, 1, app.Game().Active())
	assert.Equal(t, 0, app.Game().Board().AvailableFlags())
}

func TestRunShowsLoss(t *testing.T) {
	screen := newScreen(t, 80, 40)
	app := newApp(t, game.Params{Rows: 3, Columns: 3, Mines: 1}, 0)

	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	require.NoError(t, app.Run(context.Background(), screen))
	assert.True(t, app.Game().Lost())
	assert.True(t, contains(screenText(screen), "You lose!"))
}

func TestRunStopsOnCancel(t *testing.T) {
	screen := newScreen(t, 80, 40)
	app := newApp(t, game.Params{Rows: 3, Columns: 3, Mines: 1}, 4)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- app.Run(ctx, screen) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("game loop did not stop after cancel")
	}
}
