package loop

import (
	"time"

	"github.com/plus3/tetris/engine"
)

// Frame is the context handed to every system during one scheduler pass.
type Frame struct {
	DeltaTime time.Duration
	Engine    *engine.Engine
	Commands  *Commands

	// Result is set by the system that ticks the engine.
	Result engine.Result
}

func newFrame(dt time.Duration, e *engine.Engine) *Frame {
	return &Frame{
		DeltaTime: dt,
		Engine:    e,
		Commands:  newCommands(),
	}
}
