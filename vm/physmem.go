package vm

import "fmt"

// PhysicalMemory is the set of frames a simulation can place pages in. Each
// frame is a PageSize slice of one contiguous buffer.
type PhysicalMemory struct {
	numFrames int
	data      []byte
}

// NewPhysicalMemory allocates numFrames zeroed frames.
func NewPhysicalMemory(numFrames int) *PhysicalMemory {
	if numFrames <= 0 {
		panic("physical memory must have at least one frame")
	}

	return &PhysicalMemory{
		numFrames: numFrames,
		data:      make([]byte, numFrames*PageSize),
	}
}

// NumFrames returns the number of frames.
func (m *PhysicalMemory) NumFrames() int {
	return m.numFrames
}

// Frame returns the buffer of the given frame. Writes to the returned slice
// change the frame content.
func (m *PhysicalMemory) Frame(f FrameIndex) []byte {
	if f < 0 || int(f) >= m.numFrames {
		panic(fmt.Sprintf("frame %d out of range [0, %d)", f, m.numFrames))
	}

	start := int(f) * PageSize

	return m.data[start : start+PageSize : start+PageSize]
}
