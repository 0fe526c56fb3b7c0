package parallel

import (
	"errors"
	"sync"
)

// ErrBrokenBarrier is the panic value raised by Barrier.Wait when another
// party of the barrier has failed.
var ErrBrokenBarrier = errors.New("team barrier broken")

// Barrier is a reusable synchronization point for a fixed number of parties.
//
// Every write a party performs before Wait is visible to every party after
// the same generation of Wait returns.
type Barrier struct {
	mu         sync.Mutex
	cond       *sync.Cond
	parties    int
	waiting    int
	generation uint64
	broken     bool
}

// NewBarrier creates a barrier for n parties.
func NewBarrier(n int) *Barrier {
	b := &Barrier{parties: max(n, 1)}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Parties returns the number of parties the barrier waits for.
func (b *Barrier) Parties() int {
	return b.parties
}

// Wait blocks until all parties have called Wait for the current generation.
// Panics with ErrBrokenBarrier if the barrier is, or becomes, broken.
func (b *Barrier) Wait() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.broken {
		panic(ErrBrokenBarrier)
	}

	gen := b.generation
	b.waiting++
	if b.waiting == b.parties {
		b.waiting = 0
		b.generation++
		b.cond.Broadcast()
		return
	}

	for gen == b.generation && !b.broken {
		b.cond.Wait()
	}
	if gen == b.generation {
		panic(ErrBrokenBarrier)
	}
}

// Break releases every waiting party with ErrBrokenBarrier and makes all
// future Waits fail.
func (b *Barrier) Break() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.broken = true
	b.cond.Broadcast()
}
