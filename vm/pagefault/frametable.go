package pagefault

import (
	"fmt"

	"github.com/sarchlab/vmsim/vm"
)

// A FrameTable records which page occupies each frame.
type FrameTable struct {
	occupants []vm.PageNum
}

// NewFrameTable creates a table of numFrames empty frames.
func NewFrameTable(numFrames int) *FrameTable {
	if numFrames <= 0 {
		panic("frame table must have at least one frame")
	}

	t := &FrameTable{occupants: make([]vm.PageNum, numFrames)}
	for i := range t.occupants {
		t.occupants[i] = vm.NoPage
	}

	return t
}

// NumFrames returns the number of frames.
func (t *FrameTable) NumFrames() int {
	return len(t.occupants)
}

// Occupant returns the page held by frame f. The bool is false if the frame
// is empty.
func (t *FrameTable) Occupant(f vm.FrameIndex) (vm.PageNum, bool) {
	t.frameMustBeInRange(f)

	p := t.occupants[f]

	return p, p != vm.NoPage
}

// FirstFree returns the empty frame with the lowest index. The bool is false
// if every frame is occupied.
func (t *FrameTable) FirstFree() (vm.FrameIndex, bool) {
	for i, p := range t.occupants {
		if p == vm.NoPage {
			return vm.FrameIndex(i), true
		}
	}

	return vm.NoFrame, false
}

// Bind records that page p now occupies frame f.
func (t *FrameTable) Bind(f vm.FrameIndex, p vm.PageNum) {
	t.frameMustBeInRange(f)

	if p < 0 {
		panic(fmt.Sprintf("cannot bind invalid page %d to frame %d", p, f))
	}

	t.occupants[f] = p
}

// NumOccupied returns the number of frames that hold a page.
func (t *FrameTable) NumOccupied() int {
	n := 0

	for _, p := range t.occupants {
		if p != vm.NoPage {
			n++
		}
	}

	return n
}

// Snapshot returns a copy of the occupant of every frame, vm.NoPage for
// empty frames.
func (t *FrameTable) Snapshot() []vm.PageNum {
	s := make([]vm.PageNum, len(t.occupants))
	copy(s, t.occupants)

	return s
}

func (t *FrameTable) frameMustBeInRange(f vm.FrameIndex) {
	if f < 0 || int(f) >= len(t.occupants) {
		panic(fmt.Sprintf("frame %d out of range [0, %d)", f, len(t.occupants)))
	}
}
