package engine

import (
	"fmt"
	"sync"
)

// Action is a decoded player command applied to the falling piece.
type Action uint8

const (
	Rotate Action = iota
	MoveLeft
	MoveRight
	MoveDown

	actionCount
)

var actionNames = [...]string{"Rotate", "MoveLeft", "MoveRight", "MoveDown"}

func (a Action) String() string {
	if a.Valid() {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// Valid reports whether a is one of the four known actions.
func (a Action) Valid() bool {
	return a < actionCount
}

// Queue hands actions from an input producer to the tick loop. Push may be called
// from any goroutine; the tick loop takes the whole backlog at once.
type Queue struct {
	mu      sync.Mutex
	pending []Action
}

// Push appends a to the backlog.
func (q *Queue) Push(a Action) {
	q.mu.Lock()
	q.pending = append(q.pending, a)
	q.mu.Unlock()
}

// Len returns the number of pending actions.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// swap takes the backlog in arrival order and installs spare, emptied, as the new
// buffer so steady-state draining does not allocate.
func (q *Queue) swap(spare []Action) []Action {
	q.mu.Lock()
	pending := q.pending
	q.pending = spare[:0]
	q.mu.Unlock()
	return pending
}
