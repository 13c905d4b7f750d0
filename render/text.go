package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/plus3/tetris/engine"
)

// Text writes the board as rows of characters, top row first, followed by a status
// line. Empty cells print as '.', blocks as their kind letter.
type Text struct {
	w io.Writer
}

// NewText returns a text renderer writing to w.
func NewText(w io.Writer) *Text {
	return &Text{w: w}
}

func (t *Text) Render(s *engine.Snapshot) error {
	bw := bufio.NewWriter(t.w)
	cells := Cells(s)
	for y := engine.Height - 1; y >= 0; y-- {
		for x := 0; x < engine.Width; x++ {
			bw.WriteString(cells.At(x, y).String())
		}
		bw.WriteByte('\n')
	}
	fmt.Fprintf(bw, "score %d level %d lines %d\n", s.Score, s.Level, s.Lines)
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("render text: %w", err)
	}
	return nil
}
