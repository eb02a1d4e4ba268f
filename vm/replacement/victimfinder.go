// Package replacement provides the policies that choose which frame to evict
// when a page must be loaded and every frame is occupied.
package replacement

import (
	"github.com/sarchlab/vmsim/vm"
)

// A FrameView exposes the occupancy of the frames to a policy.
type FrameView interface {
	// NumFrames returns the number of frames.
	NumFrames() int

	// Occupant returns the page held by frame f. The bool is false if the
	// frame is empty.
	Occupant(f vm.FrameIndex) (vm.PageNum, bool)
}

// A VictimFinder decides which frame should be evicted. It is only asked when
// every frame is occupied, and it must return an index in
// [0, frames.NumFrames()).
type VictimFinder interface {
	FindVictim(frames FrameView, directory vm.PageDirectory) vm.FrameIndex
}
