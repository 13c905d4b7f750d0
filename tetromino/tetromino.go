// Package tetromino defines the seven falling pieces, their rotation states and
// the offsets each state occupies relative to the piece anchor.
package tetromino

import "fmt"

// Size is the number of cells every piece occupies.
const Size = 4

// SpawnX and SpawnY are the anchor coordinates of a freshly spawned piece.
// SpawnY sits on the first row above a 20-row field.
const (
	SpawnX = 5
	SpawnY = 20
)

// Point is a column/row pair. Rows grow upwards.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Shape holds the offsets of one rotation state.
type Shape [Size]Point

// Kind identifies one of the seven pieces.
type Kind uint8

const (
	O Kind = iota // square
	I             // line
	T
	L
	J
	S
	Z
)

// Kinds lists every piece kind in table order.
var Kinds = [...]Kind{O, I, T, L, J, S, Z}

var kindNames = [...]string{"O", "I", "T", "L", "J", "S", "Z"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid reports whether k is one of the seven kinds.
func (k Kind) Valid() bool {
	return int(k) < len(shapes)
}

// Rotations returns the number of distinct rotation states of k.
func (k Kind) Rotations() int {
	return len(k.table())
}

// Shape returns the offsets of rotation state r. r is taken modulo the rotation count.
func (k Kind) Shape(r int) Shape {
	table := k.table()
	return table[mod(r, len(table))]
}

func (k Kind) table() []Shape {
	if !k.Valid() {
		panic("tetromino: unknown kind " + k.String())
	}
	return shapes[k]
}

// shapes is indexed by Kind, then rotation state. Every state lists exactly four offsets.
var shapes = [...][]Shape{
	O: {
		{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	},
	I: {
		{{0, -1}, {0, 0}, {0, 1}, {0, 2}}, // vertical
		{{-1, 0}, {0, 0}, {1, 0}, {2, 0}}, // horizontal
	},
	T: {
		{{-1, 0}, {0, 0}, {1, 0}, {0, 1}},
		{{0, -1}, {0, 0}, {0, 1}, {1, 0}},
		{{-1, 0}, {0, 0}, {1, 0}, {0, -1}},
		{{0, -1}, {0, 0}, {0, 1}, {-1, 0}},
	},
	L: {
		{{0, -1}, {0, 0}, {0, 1}, {1, 1}},
		{{-1, 0}, {0, 0}, {1, 0}, {-1, 1}},
		{{0, -1}, {0, 0}, {0, 1}, {-1, -1}},
		{{-1, 0}, {0, 0}, {1, 0}, {1, -1}},
	},
	J: {
		{{0, -1}, {0, 0}, {0, 1}, {-1, 1}},
		{{-1, 0}, {0, 0}, {1, 0}, {-1, -1}},
		{{0, -1}, {0, 0}, {0, 1}, {1, -1}},
		{{-1, 0}, {0, 0}, {1, 0}, {1, 1}},
	},
	S: {
		{{1, 0}, {0, 0}, {0, 1}, {-1, 1}},
		{{-1, -1}, {-1, 0}, {0, 0}, {0, 1}},
	},
	Z: {
		{{-1, 0}, {0, 0}, {0, 1}, {1, 1}},
		{{0, -1}, {0, 0}, {-1, 0}, {-1, 1}},
	},
}

// Piece is a falling piece instance. Pieces are values; every transform returns a copy.
type Piece struct {
	Kind     Kind
	Rotation int
	Anchor   Point
}

// New returns a piece of kind k in rotation state 0 at the spawn anchor.
func New(k Kind) Piece {
	if !k.Valid() {
		panic("tetromino: unknown kind " + k.String())
	}
	return Piece{Kind: k, Anchor: Point{X: SpawnX, Y: SpawnY}}
}

// Rotate advances the rotation state clockwise by one, wrapping at the kind's count.
func (p Piece) Rotate() Piece {
	p.Rotation = (p.Rotation + 1) % p.Kind.Rotations()
	return p
}

// Move shifts the anchor by dx columns and dy rows.
func (p Piece) Move(dx, dy int) Piece {
	p.Anchor = p.Anchor.Add(Point{X: dx, Y: dy})
	return p
}

// Offsets returns the four offsets of the current rotation state.
func (p Piece) Offsets() Shape {
	return p.Kind.Shape(p.Rotation)
}

// Cells returns the four absolute cells the piece occupies.
func (p Piece) Cells() Shape {
	cells := p.Offsets()
	for i := range cells {
		cells[i] = cells[i].Add(p.Anchor)
	}
	return cells
}

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}
