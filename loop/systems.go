package loop

import (
	"fmt"

	"github.com/plus3/tetris/engine"
	"github.com/plus3/tetris/render"
)

// Input decodes whatever the front end received since the last frame into engine
// actions. Poll must not block.
type Input interface {
	Poll(e *engine.Engine)
}

// InputFunc adapts a plain function to Input.
type InputFunc func(e *engine.Engine)

func (f InputFunc) Poll(e *engine.Engine) {
	f(e)
}

// InputSystem feeds decoded input into the engine queue.
type InputSystem struct {
	Input Input
}

func (s *InputSystem) Execute(frame *Frame) {
	if s.Input == nil {
		return
	}
	s.Input.Poll(frame.Engine)
}

// TickSystem advances the engine by the frame's delta time and records the result.
type TickSystem struct{}

func (s *TickSystem) Execute(frame *Frame) {
	frame.Result = frame.Engine.Tick(frame.DeltaTime)
}

// RenderSystem hands a snapshot of the engine to a renderer. A render error stops the loop.
type RenderSystem struct {
	Renderer render.Renderer
}

func (s *RenderSystem) Execute(frame *Frame) {
	snapshot := frame.Engine.Snapshot()
	if err := s.Renderer.Render(&snapshot); err != nil {
		frame.Commands.Stop(fmt.Errorf("render frame: %w", err))
	}
}

// Effects reacts to game events, typically with sound.
type Effects interface {
	LinesCleared(n int)
	GameOver()
}

// SoundSystem watches the engine for cleared rows and the end of the game and
// reports them to Effects once each.
type SoundSystem struct {
	Effects Effects

	lines    int
	finished bool
}

func (s *SoundSystem) Execute(frame *Frame) {
	if s.Effects == nil {
		return
	}

	e := frame.Engine
	if n := e.Lines() - s.lines; n > 0 {
		s.Effects.LinesCleared(n)
	}
	s.lines = e.Lines()

	if e.State() == engine.Exited && !s.finished {
		s.finished = true
		s.Effects.GameOver()
	}
}
