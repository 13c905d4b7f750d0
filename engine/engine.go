// Package engine implements the rules of the falling-block game: the playfield, the
// falling piece, gravity, line clears, scoring and leveling.
//
// An Engine performs no I/O. A driver feeds it decoded actions with Enqueue, advances
// it with Tick and reads its state back for drawing.
package engine

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/plus3/tetris/tetromino"
)

// Result is the outcome of a tick or of applying a single action.
type Result uint8

const (
	NoOp Result = iota
	Exit
)

func (r Result) String() string {
	if r == Exit {
		return "Exit"
	}
	return "NoOp"
}

// State is the lifecycle of an engine. Exited is terminal.
type State uint8

const (
	Running State = iota
	Exited
)

func (s State) String() string {
	if s == Exited {
		return "Exited"
	}
	return "Running"
}

// Engine owns one game. Enqueue and Quit may be called from another goroutine;
// everything else belongs to the goroutine that calls Tick.
type Engine struct {
	field Field
	piece tetromino.Piece
	gen   tetromino.Generator

	queue Queue
	spare []Action
	quit  atomic.Bool

	level     int
	score     int
	lines     int
	remaining int

	clock    time.Duration
	lastDrop time.Duration
	state    State
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithGenerator sets the source of piece kinds. The default draws uniformly at random.
func WithGenerator(gen tetromino.Generator) Option {
	return func(e *Engine) {
		e.gen = gen
	}
}

// WithInitialLevel sets the starting level. Values above MaxLevel are capped.
func WithInitialLevel(level int) Option {
	if level < 0 {
		panic(fmt.Sprintf("engine: negative initial level %d", level))
	}
	return func(e *Engine) {
		e.level = min(level, MaxLevel)
	}
}

// New starts a game with an empty field and a freshly spawned piece.
func New(opts ...Option) *Engine {
	e := &Engine{
		remaining: LinesPerLevel,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.gen == nil {
		e.gen = tetromino.NewRandom(0)
	}
	e.piece = tetromino.Spawn(e.gen)
	return e
}

// Enqueue appends a player action for the next tick. Unknown actions are dropped.
func (e *Engine) Enqueue(a Action) {
	if !a.Valid() {
		return
	}
	e.queue.Push(a)
}

// Quit asks the engine to stop; the next tick returns Exit.
func (e *Engine) Quit() {
	e.quit.Store(true)
}

// Tick advances the game by elapsed wall-clock time. It applies every queued action
// in arrival order, then lets gravity pull the piece down once if the current level's
// drop interval has passed since the last automatic descent.
func (e *Engine) Tick(elapsed time.Duration) Result {
	if e.state == Exited {
		return Exit
	}
	if e.quit.Load() {
		e.state = Exited
		return Exit
	}

	e.clock += elapsed

	pending := e.queue.swap(e.spare)
	e.spare = pending
	for _, a := range pending {
		if e.apply(a) == Exit {
			return Exit
		}
	}

	if e.clock-e.lastDrop > DropInterval(e.level) {
		e.lastDrop = e.clock
		return e.apply(MoveDown)
	}
	return NoOp
}

// apply tries a on the active piece and rolls back when the result overlaps the
// stack or leaves the field. A blocked MoveDown locks the piece in place.
func (e *Engine) apply(a Action) Result {
	prev := e.piece
	switch a {
	case Rotate:
		e.piece = e.piece.Rotate()
	case MoveLeft:
		e.piece = e.piece.Move(-1, 0)
	case MoveRight:
		e.piece = e.piece.Move(1, 0)
	case MoveDown:
		e.piece = e.piece.Move(0, -1)
	default:
		return NoOp
	}

	if e.fits(e.piece) {
		return NoOp
	}

	e.piece = prev
	if a == MoveDown {
		return e.commit()
	}
	return NoOp
}

// fits reports whether p lies within the walls and floor without overlapping a block.
// Cells above the top row are allowed so pieces can fall in from above.
func (e *Engine) fits(p tetromino.Piece) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= Width {
			return false
		}
		if c.Y < 0 {
			return false
		}
		if c.Y < Height && e.field.Occupied(c.X, c.Y) {
			return false
		}
	}
	return true
}

// commit freezes the active piece into the field. A piece that locks with any cell
// above the visible field ends the game and leaves the field untouched.
func (e *Engine) commit() Result {
	cells := e.piece.Cells()
	for _, c := range cells {
		if c.Y >= Height {
			e.state = Exited
			return Exit
		}
	}

	block := Block(e.piece.Kind)
	for _, c := range cells {
		e.field.Set(c.X, c.Y, block)
	}

	e.piece = tetromino.Spawn(e.gen)
	e.clearLines()
	return NoOp
}

// clearLines removes every complete row, awards points and advances the level.
// It returns the number of rows removed.
func (e *Engine) clearLines() int {
	rows := e.field.completeRows()
	n := rows.Len()

	e.score += LineScore(n, e.level)
	e.lines += n

	// Strictly greater: a clear that exactly uses up the counter does not level up.
	if n > e.remaining {
		e.level = min(e.level+1, MaxLevel)
		e.remaining = LinesPerLevel
	} else {
		e.remaining -= n
	}

	if n > 0 {
		e.field.compact(rows)
	}
	return n
}

// Field returns a copy of the playfield.
func (e *Engine) Field() Field {
	return e.field
}

// Piece returns the falling piece.
func (e *Engine) Piece() tetromino.Piece {
	return e.piece
}

func (e *Engine) Score() int {
	return e.score
}

func (e *Engine) Level() int {
	return e.level
}

// Lines returns the total number of rows cleared this game.
func (e *Engine) Lines() int {
	return e.lines
}

// Remaining returns the rows left to clear before the next level-up check.
func (e *Engine) Remaining() int {
	return e.remaining
}

func (e *Engine) State() State {
	return e.state
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Field     Field
	Piece     tetromino.Piece
	Score     int
	Level     int
	Lines     int
	Remaining int
	State     State
}

// Snapshot copies the current game state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Field:     e.field,
		Piece:     e.piece,
		Score:     e.score,
		Level:     e.level,
		Lines:     e.lines,
		Remaining: e.remaining,
		State:     e.state,
	}
}
