// Package render defines how presentation back ends consume engine state.
package render

import (
	"image/color"

	"github.com/plus3/tetris/engine"
	"github.com/plus3/tetris/tetromino"
)

// Renderer draws one frame from a snapshot of the game.
type Renderer interface {
	Render(s *engine.Snapshot) error
}

// RendererFunc adapts a plain function to Renderer.
type RendererFunc func(s *engine.Snapshot) error

func (f RendererFunc) Render(s *engine.Snapshot) error {
	return f(s)
}

var (
	Background = color.RGBA{20, 20, 20, 255}
	GridLine   = color.RGBA{128, 128, 128, 255}
)

var kindColors = [...]color.RGBA{
	tetromino.O: {247, 211, 8, 255},
	tetromino.I: {49, 199, 239, 255},
	tetromino.T: {173, 77, 156, 255},
	tetromino.L: {239, 121, 33, 255},
	tetromino.J: {90, 101, 173, 255},
	tetromino.S: {66, 182, 66, 255},
	tetromino.Z: {239, 32, 41, 255},
}

// Color returns the fill colour for blocks of kind k.
func Color(k tetromino.Kind) color.RGBA {
	if int(k) < len(kindColors) {
		return kindColors[k]
	}
	return GridLine
}

// Cells returns what should be drawn at each grid position: the locked blocks plus
// the falling piece. Piece cells above the visible field are dropped.
func Cells(s *engine.Snapshot) engine.Field {
	field := s.Field
	block := engine.Block(s.Piece.Kind)
	for _, c := range s.Piece.Cells() {
		field.Set(c.X, c.Y, block)
	}
	return field
}
