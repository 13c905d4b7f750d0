// Package gui draws the game in an ebiten window.
package gui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/tetris/engine"
	"github.com/plus3/tetris/render"
)

// Border in cells around the board, and the width of the score panel.
const (
	margin     = 1
	panelCells = 6
)

// Renderer keeps the most recent snapshot and paints it when ebiten asks for a frame.
type Renderer struct {
	cellSize int
	last     engine.Snapshot
	ready    bool
}

// NewRenderer creates a renderer drawing square cells of cellSize pixels.
func NewRenderer(cellSize int) *Renderer {
	return &Renderer{cellSize: cellSize}
}

// Render stores s for the next Draw.
func (r *Renderer) Render(s *engine.Snapshot) error {
	r.last = *s
	r.ready = true
	return nil
}

// Last returns the stored snapshot and whether one has been rendered yet.
func (r *Renderer) Last() (engine.Snapshot, bool) {
	return r.last, r.ready
}

// Size returns the window size in pixels needed for the board and the score panel.
func (r *Renderer) Size() (width, height int) {
	width = (engine.Width + 2*margin + panelCells) * r.cellSize
	height = (engine.Height + 2*margin) * r.cellSize
	return width, height
}

// CellRect returns the pixel rectangle of field cell (x, y). Row 0 is at the bottom.
func (r *Renderer) CellRect(x, y int) (px, py, size float32) {
	size = float32(r.cellSize)
	px = float32((margin + x) * r.cellSize)
	py = float32((margin + engine.Height - 1 - y) * r.cellSize)
	return px, py, size
}

// Draw paints the board, the falling piece and the score panel onto screen.
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(render.Background)
	if !r.ready {
		return
	}

	left, top, _ := r.CellRect(0, engine.Height-1)
	boardW := float32(engine.Width * r.cellSize)
	boardH := float32(engine.Height * r.cellSize)
	vector.StrokeRect(screen, left-1, top-1, boardW+2, boardH+2, 1, render.GridLine, false)

	cells := render.Cells(&r.last)
	for y := 0; y < engine.Height; y++ {
		for x := 0; x < engine.Width; x++ {
			kind, ok := cells.At(x, y).Kind()
			if !ok {
				continue
			}
			px, py, size := r.CellRect(x, y)
			vector.DrawFilledRect(screen, px+1, py+1, size-2, size-2, render.Color(kind), false)
		}
	}

	panelX := int(left+boardW) + r.cellSize
	panelY := int(top)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score %d", r.last.Score), panelX, panelY)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Level %d", r.last.Level), panelX, panelY+2*r.cellSize)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Lines %d", r.last.Lines), panelX, panelY+4*r.cellSize)
	if r.last.State == engine.Exited {
		ebitenutil.DebugPrintAt(screen, "GAME OVER", panelX, panelY+7*r.cellSize)
		ebitenutil.DebugPrintAt(screen, "Esc to close", panelX, panelY+8*r.cellSize)
	}
}
