package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/tetris/engine"
)

// Held keys repeat after repeatDelay ticks, then every repeatInterval ticks.
const (
	repeatDelay    = 12
	repeatInterval = 4
)

var bindings = []struct {
	key    ebiten.Key
	action engine.Action
	repeat bool
}{
	{ebiten.KeyArrowUp, engine.Rotate, false},
	{ebiten.KeyArrowLeft, engine.MoveLeft, true},
	{ebiten.KeyArrowRight, engine.MoveRight, true},
	{ebiten.KeyArrowDown, engine.MoveDown, true},
}

// Keyboard reads ebiten key state each frame and feeds the engine.
type Keyboard struct {
	// Captured, when set, suppresses game input while it returns true,
	// e.g. while a debug window has keyboard focus.
	Captured func() bool
}

func (k *Keyboard) Poll(e *engine.Engine) {
	if k.Captured != nil && k.Captured() {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		e.Quit()
		return
	}
	for _, b := range bindings {
		d := inpututil.KeyPressDuration(b.key)
		if d == 1 || (b.repeat && Repeats(d)) {
			e.Enqueue(b.action)
		}
	}
}

// Repeats reports whether a key held for d ticks fires an auto-repeat this tick.
func Repeats(d int) bool {
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}
