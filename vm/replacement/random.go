package replacement

import (
	"math/rand"

	"github.com/sarchlab/vmsim/vm"
)

// RandomVictimFinder evicts a uniformly chosen frame.
type RandomVictimFinder struct {
	rng *rand.Rand
}

// NewRandomVictimFinder returns a random evictor that draws from a generator
// seeded with seed, so that runs can be reproduced.
func NewRandomVictimFinder(seed int64) *RandomVictimFinder {
	e := new(RandomVictimFinder)
	e.rng = rand.New(rand.NewSource(seed))

	return e
}

// FindVictim returns a frame index in [0, frames.NumFrames()).
func (e *RandomVictimFinder) FindVictim(
	frames FrameView,
	_ vm.PageDirectory,
) vm.FrameIndex {
	return vm.FrameIndex(e.rng.Intn(frames.NumFrames()))
}
