// Package terminal draws the game in a text terminal with tcell and decodes key
// presses into engine actions.
package terminal

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/tetris/engine"
	"github.com/plus3/tetris/render"
)

// Each field cell is drawn two columns wide so blocks look square.
const cellWidth = 2

// Board origin, leaving room for the border.
const (
	originX = 1
	originY = 1
)

// hudX is the first column of the score panel.
const hudX = originX + engine.Width*cellWidth + 3

// Renderer draws snapshots onto a tcell screen.
type Renderer struct {
	screen tcell.Screen

	background tcell.Style
	border     tcell.Style
	text       tcell.Style
}

// NewRenderer creates a renderer for an initialized screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	bg := rgb(render.Background)
	return &Renderer{
		screen:     screen,
		background: tcell.StyleDefault.Background(bg),
		border:     tcell.StyleDefault.Foreground(rgb(render.GridLine)).Background(bg),
		text:       tcell.StyleDefault.Foreground(tcell.ColorWhite),
	}
}

// Render draws the field, the falling piece and the score panel, then shows the frame.
func (r *Renderer) Render(s *engine.Snapshot) error {
	r.screen.Clear()
	r.drawBorder()

	cells := render.Cells(s)
	for y := 0; y < engine.Height; y++ {
		for x := 0; x < engine.Width; x++ {
			style := r.background
			if kind, ok := cells.At(x, y).Kind(); ok {
				style = tcell.StyleDefault.Background(rgb(render.Color(kind)))
			}
			row, col := Position(x, y)
			for i := 0; i < cellWidth; i++ {
				r.screen.SetContent(col+i, row, ' ', nil, style)
			}
		}
	}

	r.drawText(hudX, originY, fmt.Sprintf("Score %d", s.Score))
	r.drawText(hudX, originY+2, fmt.Sprintf("Level %d", s.Level))
	r.drawText(hudX, originY+4, fmt.Sprintf("Lines %d", s.Lines))
	if s.State == engine.Exited {
		r.drawText(hudX, originY+7, "GAME OVER")
	}

	r.screen.Show()
	return nil
}

func (r *Renderer) drawBorder() {
	left, right := originX-1, originX+engine.Width*cellWidth
	bottom := originY + engine.Height

	for row := originY; row < bottom; row++ {
		r.screen.SetContent(left, row, '│', nil, r.border)
		r.screen.SetContent(right, row, '│', nil, r.border)
	}
	for col := originX; col < right; col++ {
		r.screen.SetContent(col, bottom, '─', nil, r.border)
	}
	r.screen.SetContent(left, bottom, '└', nil, r.border)
	r.screen.SetContent(right, bottom, '┘', nil, r.border)
}

func (r *Renderer) drawText(x, y int, text string) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, r.text)
	}
}

// Position maps a field cell to the screen row and first column that draw it.
// Field row 0 is the bottom row.
func Position(x, y int) (row, col int) {
	return originY + engine.Height - 1 - y, originX + x*cellWidth
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
