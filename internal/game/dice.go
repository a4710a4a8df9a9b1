package game

import (
	"math/rand/v2"
	"sync"
)

// Dice is the source of every random decision the engine makes. Tests
// pass a seeded or scripted implementation to get repeatable results.
type Dice interface {
	// IntN returns a value in [0, n). n must be > 0.
	IntN(n int) int
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// NewDice returns a PCG-backed Dice safe for concurrent use.
func NewDice(seed uint64) Dice {
	return &lockedDice{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

type lockedDice struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (d *lockedDice) IntN(n int) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.r.IntN(n)
}

func (d *lockedDice) Float64() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.r.Float64()
}

// roll returns base + U[0, spread].
func roll(d Dice, base, spread int) int {
	return base + d.IntN(spread+1)
}

func chance(d Dice, p float64) bool {
	return d.Float64() < p
}

func pick[T any](d Dice, list []T) (T, bool) {
	var zero T
	if len(list) == 0 {
		return zero, false
	}
	return list[d.IntN(len(list))], true
}
