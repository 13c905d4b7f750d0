package render_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/plus3/tetris/engine"
	"github.com/plus3/tetris/render"
	"github.com/plus3/tetris/tetromino"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func droppedO() engine.Snapshot {
	e := engine.New(engine.WithGenerator(tetromino.NewSequence(tetromino.O, tetromino.I)))
	for i := 0; i < 21; i++ {
		e.Enqueue(engine.MoveDown)
	}
	e.Enqueue(engine.Rotate)
	for i := 0; i < 3; i++ {
		e.Enqueue(engine.MoveDown)
	}
	e.Tick(0)
	return e.Snapshot()
}

func TestCellsOverlaysPiece(t *testing.T) {
	s := droppedO()
	cells := render.Cells(&s)

	assert.Equal(t, engine.Block(tetromino.O), cells.At(5, 0))
	assert.Equal(t, engine.Block(tetromino.O), cells.At(6, 1))
	for x := 4; x <= 7; x++ {
		assert.Equal(t, engine.Block(tetromino.I), cells.At(x, 17), "col %d", x)
	}
	assert.Equal(t, 8, cells.Count())
	assert.Equal(t, 4, s.Field.Count(), "snapshot field must not change")
}

func TestCellsDropsCellsAboveField(t *testing.T) {
	e := engine.New(engine.WithGenerator(tetromino.NewSequence(tetromino.I)))
	s := e.Snapshot()

	cells := render.Cells(&s)

	// Vertical I at row 20 only shows its bottom cell.
	assert.Equal(t, 1, cells.Count())
	assert.Equal(t, engine.Block(tetromino.I), cells.At(5, 19))
}

func TestTextRender(t *testing.T) {
	s := droppedO()
	var buf bytes.Buffer

	require.NoError(t, render.NewText(&buf).Render(&s))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, engine.Height+1)
	assert.Equal(t, "..........", lines[0])
	assert.Equal(t, "....IIII..", lines[engine.Height-1-17])
	assert.Equal(t, ".....OO...", lines[engine.Height-2])
	assert.Equal(t, ".....OO...", lines[engine.Height-1])
	assert.Equal(t, "score 0 level 0 lines 0", lines[engine.Height])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestTextRenderError(t *testing.T) {
	s := droppedO()

	err := render.NewText(failingWriter{}).Render(&s)

	assert.ErrorContains(t, err, "disk full")
}

func TestColor(t *testing.T) {
	seen := make(map[[4]uint8]bool)
	for _, kind := range tetromino.Kinds {
		c := render.Color(kind)
		assert.Equal(t, uint8(255), c.A)
		seen[[4]uint8{c.R, c.G, c.B, c.A}] = true
	}
	assert.Len(t, seen, len(tetromino.Kinds))
	assert.Equal(t, render.GridLine, render.Color(tetromino.Kind(12)))
}

func TestRendererFunc(t *testing.T) {
	var got int
	r := render.RendererFunc(func(s *engine.Snapshot) error {
		got = s.Score
		return nil
	})

	s := engine.Snapshot{Score: 99}
	require.NoError(t, r.Render(&s))
	assert.Equal(t, 99, got)
}
