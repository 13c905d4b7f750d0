package main

import (
	"math/rand/v2"

	"github.com/plus3/tetris/engine"
)

// Bot presses random keys. Roughly a third of frames are idle so gravity gets a say.
type Bot struct {
	rng *rand.Rand
}

func NewBot(seed uint64) *Bot {
	return &Bot{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

var botMoves = [...]engine.Action{
	engine.Rotate,
	engine.MoveLeft, engine.MoveLeft,
	engine.MoveRight, engine.MoveRight,
	engine.MoveDown, engine.MoveDown, engine.MoveDown,
}

func (b *Bot) Poll(e *engine.Engine) {
	n := b.rng.IntN(len(botMoves) + 4)
	if n >= len(botMoves) {
		return
	}
	e.Enqueue(botMoves[n])
}
