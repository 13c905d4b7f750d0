package tetromino

import (
	"math/rand/v2"
	"sync"
)

// Generator supplies the kind of each newly spawned piece.
type Generator interface {
	Next() Kind
}

// Random picks kinds uniformly from all seven.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandom returns a uniform generator. A zero seed draws a seed from the runtime source.
func NewRandom(seed uint64) *Random {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Random{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *Random) Next() Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Kinds[r.rng.IntN(len(Kinds))]
}

// Spawn returns a random piece at the spawn anchor in rotation state 0.
func Spawn(g Generator) Piece {
	return New(g.Next())
}

// Sequence replays a fixed list of kinds, cycling when it runs out.
type Sequence struct {
	kinds []Kind
	next  int
}

// NewSequence returns a generator that yields kinds in order. It panics on an empty list.
func NewSequence(kinds ...Kind) *Sequence {
	if len(kinds) == 0 {
		panic("tetromino: empty sequence")
	}
	return &Sequence{kinds: kinds}
}

func (s *Sequence) Next() Kind {
	k := s.kinds[s.next]
	s.next = (s.next + 1) % len(s.kinds)
	return k
}
