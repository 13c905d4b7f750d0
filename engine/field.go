package engine

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/tetris/tetromino"
)

// Playfield dimensions.
const (
	Width  = 10
	Height = 20
)

// Cell is either empty or a block left behind by a piece of some kind.
// The zero value is Empty.
type Cell uint8

// Empty is the vacant cell.
const Empty Cell = 0

// Block returns a cell occupied by a piece of kind k.
func Block(k tetromino.Kind) Cell {
	return Cell(k) + 1
}

// IsEmpty reports whether c holds no block.
func (c Cell) IsEmpty() bool {
	return c == Empty
}

// Kind returns the kind of piece that produced the block, or false for an empty cell.
func (c Cell) Kind() (tetromino.Kind, bool) {
	if c == Empty {
		return 0, false
	}
	return tetromino.Kind(c - 1), true
}

func (c Cell) String() string {
	if k, ok := c.Kind(); ok {
		return k.String()
	}
	return "."
}

// Row is one horizontal line of the playfield, indexed by column.
type Row [Width]Cell

// Complete reports whether every cell in the row holds a block.
func (r *Row) Complete() bool {
	for _, c := range r {
		if c.IsEmpty() {
			return false
		}
	}
	return true
}

// Field is the playfield grid indexed as Field[row][column], row 0 at the bottom.
// It is a value type: assigning or returning it copies the grid.
type Field [Height]Row

// At returns the cell at column x, row y. Coordinates outside the grid read as Empty.
func (f *Field) At(x, y int) Cell {
	if !inside(x, y) {
		return Empty
	}
	return f[y][x]
}

// Occupied reports whether (x, y) lies inside the grid and holds a block.
func (f *Field) Occupied(x, y int) bool {
	return !f.At(x, y).IsEmpty()
}

// Set writes c at column x, row y. Writes outside the grid are dropped.
func (f *Field) Set(x, y int, c Cell) {
	if inside(x, y) {
		f[y][x] = c
	}
}

// Count returns the number of blocks in the grid.
func (f *Field) Count() int {
	n := 0
	for y := range f {
		for _, c := range f[y] {
			if !c.IsEmpty() {
				n++
			}
		}
	}
	return n
}

// completeRows collects the indexes of every full row.
func (f *Field) completeRows() *intmap.Map[int, struct{}] {
	rows := intmap.New[int, struct{}](4)
	for y := range f {
		if f[y].Complete() {
			rows.Put(y, struct{}{})
		}
	}
	return rows
}

// compact drops the given rows, lets the rows above settle in order and refills the
// top with empty rows so the grid keeps Height rows.
func (f *Field) compact(cleared *intmap.Map[int, struct{}]) {
	var next Field
	write := 0
	for y := range f {
		if _, ok := cleared.Get(y); ok {
			continue
		}
		next[write] = f[y]
		write++
	}
	*f = next
}

func inside(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}
