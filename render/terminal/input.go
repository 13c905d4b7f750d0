package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/plus3/tetris/engine"
)

// eventBuffer bounds how many undecoded events can pile up between frames.
const eventBuffer = 64

// Input reads screen events on its own goroutine and hands them to the engine
// when polled from the frame loop. Quit keys travel on their own channel so a
// full event buffer never swallows them.
type Input struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
	done   chan struct{}

	quitting bool
}

// NewInput creates an input source for screen. Call Start to begin reading.
func NewInput(screen tcell.Screen) *Input {
	return &Input{
		screen: screen,
		events: make(chan tcell.Event, eventBuffer),
		quit:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// Start reads events until the screen is finalized. Events other than quit keys
// are dropped while the buffer is full.
func (in *Input) Start() {
	go func() {
		defer close(in.done)
		for {
			ev := in.screen.PollEvent()
			if ev == nil {
				return
			}
			if key, ok := ev.(*tcell.EventKey); ok && IsQuit(key) {
				select {
				case in.quit <- struct{}{}:
				default:
				}
				continue
			}
			select {
			case in.events <- ev:
			default:
			}
		}
	}()
}

// Done is closed once the reader goroutine has exited.
func (in *Input) Done() <-chan struct{} {
	return in.done
}

// Quitting reports whether a quit key has been passed to the engine.
func (in *Input) Quitting() bool {
	return in.quitting
}

// Poll drains pending events without blocking. Movement keys are enqueued, quit
// keys stop the engine and resizes repaint the screen.
func (in *Input) Poll(e *engine.Engine) {
	select {
	case <-in.quit:
		in.quitting = true
		e.Quit()
		return
	default:
	}
	for {
		select {
		case ev := <-in.events:
			in.handle(e, ev)
		default:
			return
		}
	}
}

func (in *Input) handle(e *engine.Engine, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if a, ok := Decode(ev); ok {
			e.Enqueue(a)
		}
	case *tcell.EventResize:
		in.screen.Sync()
	}
}

// Decode maps a key press to an engine action. Arrow keys and the vi keys h, j, k
// and l are recognised.
func Decode(ev *tcell.EventKey) (engine.Action, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return engine.Rotate, true
	case tcell.KeyLeft:
		return engine.MoveLeft, true
	case tcell.KeyRight:
		return engine.MoveRight, true
	case tcell.KeyDown:
		return engine.MoveDown, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			return engine.Rotate, true
		case 'h':
			return engine.MoveLeft, true
		case 'l':
			return engine.MoveRight, true
		case 'j':
			return engine.MoveDown, true
		}
	}
	return 0, false
}

// IsQuit reports whether the key ends the game: q, Escape or Ctrl-C.
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
