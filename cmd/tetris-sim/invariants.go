package main

import (
	"fmt"

	"github.com/plus3/tetris/engine"
	"github.com/plus3/tetris/loop"
	"github.com/plus3/tetris/tetromino"
)

// InvariantSystem stops the run if the falling piece ever leaves the walls, sinks
// below the floor or overlaps a locked block after it has moved.
type InvariantSystem struct{}

func (s *InvariantSystem) Execute(frame *loop.Frame) {
	if err := Check(frame.Engine.Snapshot()); err != nil {
		frame.Commands.Stop(err)
	}
}

// Check validates a snapshot. A piece that has not left its spawn position may
// overlap the stack; the game only ends when such a piece locks above the ceiling.
func Check(s engine.Snapshot) error {
	checkOverlap := s.State == engine.Running && !spawned(s.Piece)
	for _, c := range s.Piece.Cells() {
		if c.X < 0 || c.X >= engine.Width || c.Y < 0 {
			return fmt.Errorf("piece %v cell %v outside the field", s.Piece.Kind, c)
		}
		if checkOverlap && s.Field.Occupied(c.X, c.Y) {
			return fmt.Errorf("piece %v cell %v overlaps a block", s.Piece.Kind, c)
		}
	}
	for y := 0; y < engine.Height; y++ {
		if s.Field[y].Complete() {
			return fmt.Errorf("row %d complete after clearing", y)
		}
	}
	return nil
}

func spawned(p tetromino.Piece) bool {
	return p.Rotation == 0 && p.Anchor == tetromino.Point{X: tetromino.SpawnX, Y: tetromino.SpawnY}
}
