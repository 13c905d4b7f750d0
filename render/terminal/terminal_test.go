package terminal_test

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/tetris/engine"
	"github.com/plus3/tetris/render"
	"github.com/plus3/tetris/render/terminal"
	"github.com/plus3/tetris/tetromino"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	return screen
}

func background(screen tcell.Screen, x, y int) tcell.Color {
	row, col := terminal.Position(x, y)
	_, _, style, _ := screen.GetContent(col, row)
	_, bg, _ := style.Decompose()
	return bg
}

func text(screen tcell.Screen, x, y, n int) string {
	runes := make([]rune, n)
	for i := range runes {
		runes[i], _, _, _ = screen.GetContent(x+i, y)
	}
	return string(runes)
}

func TestRendererDrawsBlocks(t *testing.T) {
	screen := newScreen(t)
	defer screen.Fini()

	e := engine.New(engine.WithGenerator(tetromino.NewSequence(tetromino.O, tetromino.Z)))
	for i := 0; i <= tetromino.SpawnY; i++ {
		e.Enqueue(engine.MoveDown)
	}
	e.Tick(0)
	s := e.Snapshot()

	require.NoError(t, terminal.NewRenderer(screen).Render(&s))

	o := render.Color(tetromino.O)
	want := tcell.NewRGBColor(int32(o.R), int32(o.G), int32(o.B))
	assert.Equal(t, want, background(screen, 5, 0))
	assert.Equal(t, want, background(screen, 6, 1))

	z := render.Color(tetromino.Z)
	// The Z piece has just spawned entirely above the field.
	assert.NotEqual(t, tcell.NewRGBColor(int32(z.R), int32(z.G), int32(z.B)), background(screen, 5, 19))

	bg := render.Background
	assert.Equal(t, tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)), background(screen, 0, 0))
}

func TestRendererHUD(t *testing.T) {
	screen := newScreen(t)
	defer screen.Fini()

	s := engine.Snapshot{Score: 1200, Level: 3, Lines: 31, State: engine.Exited}
	require.NoError(t, terminal.NewRenderer(screen).Render(&s))

	var found []string
	for y := 0; y < 24; y++ {
		for _, want := range []string{"Score 1200", "Level 3", "Lines 31", "GAME OVER"} {
			for x := 0; x < 80-len(want); x++ {
				if text(screen, x, y, len(want)) == want {
					found = append(found, want)
				}
			}
		}
	}
	assert.ElementsMatch(t, []string{"Score 1200", "Level 3", "Lines 31", "GAME OVER"}, found)
}

func TestPosition(t *testing.T) {
	bottomRow, leftCol := terminal.Position(0, 0)
	topRow, rightCol := terminal.Position(engine.Width-1, engine.Height-1)

	assert.Equal(t, engine.Height-1, bottomRow-topRow)
	assert.Equal(t, 2*(engine.Width-1), rightCol-leftCol)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want engine.Action
		ok   bool
	}{
		{"up rotates", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), engine.Rotate, true},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), engine.MoveLeft, true},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), engine.MoveRight, true},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), engine.MoveDown, true},
		{"vi k", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), engine.Rotate, true},
		{"vi h", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), engine.MoveLeft, true},
		{"vi l", tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), engine.MoveRight, true},
		{"vi j", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), engine.MoveDown, true},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), 0, false},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := terminal.Decode(tt.ev)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestIsQuit(t *testing.T) {
	assert.True(t, terminal.IsQuit(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.True(t, terminal.IsQuit(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.False(t, terminal.IsQuit(tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone)))
	assert.False(t, terminal.IsQuit(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)))
}

func TestInputFeedsEngine(t *testing.T) {
	screen := newScreen(t)
	e := engine.New(engine.WithGenerator(tetromino.NewSequence(tetromino.O)))

	in := terminal.NewInput(screen)
	in.Start()

	screen.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	require.Eventually(t, func() bool {
		in.Poll(e)
		e.Tick(0)
		return e.Piece().Anchor.X == tetromino.SpawnX-1
	}, time.Second, time.Millisecond)

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	require.Eventually(t, func() bool {
		in.Poll(e)
		return e.Tick(0) == engine.Exit
	}, time.Second, time.Millisecond)
	assert.True(t, in.Quitting())

	screen.Fini()
	select {
	case <-in.Done():
	case <-time.After(time.Second):
		t.Fatal("input reader did not stop after Fini")
	}
}

func TestInputKeepsQuitWhenBufferIsFull(t *testing.T) {
	screen := newScreen(t)
	e := engine.New(engine.WithGenerator(tetromino.NewSequence(tetromino.O)))

	in := terminal.NewInput(screen)
	in.Start()
	defer screen.Fini()

	for i := 0; i < 200; i++ {
		screen.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	}
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	assert.False(t, in.Quitting())

	require.Eventually(t, func() bool {
		in.Poll(e)
		return e.Tick(0) == engine.Exit
	}, time.Second, time.Millisecond)
	assert.True(t, in.Quitting())
}
