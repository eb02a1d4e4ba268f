package replacement

import (
	"github.com/sarchlab/vmsim/vm"
)

// RoundRobinVictimFinder evicts frames in index order, wrapping around after
// the last one.
//
// It matches first-in-first-out eviction only while evictions follow the
// order in which frames were filled. It does not track when each page
// arrived.
type RoundRobinVictimFinder struct {
	next int
}

// NewRoundRobinVictimFinder returns an evictor whose cursor starts at frame 0.
func NewRoundRobinVictimFinder() *RoundRobinVictimFinder {
	return &RoundRobinVictimFinder{}
}

// FindVictim returns the cursor and moves it to the next frame.
func (e *RoundRobinVictimFinder) FindVictim(
	frames FrameView,
	_ vm.PageDirectory,
) vm.FrameIndex {
	n := frames.NumFrames()
	if e.next >= n {
		e.next = 0
	}

	victim := e.next
	e.next = (e.next + 1) % n

	return vm.FrameIndex(victim)
}
