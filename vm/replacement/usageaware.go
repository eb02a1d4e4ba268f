package replacement

import (
	"fmt"

	"github.com/sarchlab/vmsim/vm"
)

// ScanMode selects what the cursor of a UsageAwareVictimFinder walks over.
type ScanMode int

const (
	// ScanFrames walks frame indices and inspects the entry of the page that
	// occupies each frame.
	ScanFrames ScanMode = iota

	// ScanPageNumbers walks page numbers, inspects the entry of that page
	// and returns the cursor as a frame index. The two spaces only line up
	// when the page count equals the frame count. This mode exists to
	// reproduce runs of the legacy simulator, so the cursor only wraps once
	// it passes the frame count. A check of page frameCount is one of the
	// frameCount checks, and if that page can write, the returned index is
	// out of range and the resolver rejects it.
	ScanPageNumbers
)

// String returns the configuration name of the mode.
func (m ScanMode) String() string {
	switch m {
	case ScanFrames:
		return "frame"
	case ScanPageNumbers:
		return "page"
	default:
		return fmt.Sprintf("ScanMode(%d)", int(m))
	}
}

// ParseScanMode converts a configuration name into a ScanMode.
func ParseScanMode(s string) (ScanMode, error) {
	switch s {
	case "", "frame":
		return ScanFrames, nil
	case "page":
		return ScanPageNumbers, nil
	default:
		return ScanFrames, fmt.Errorf("invalid scan mode %q", s)
	}
}

// UsageAwareVictimFinder scans for a page that has been granted write access
// and evicts its frame as-is. When a full sweep of frameCount checks finds no
// such page, it falls back to a random victim.
type UsageAwareVictimFinder struct {
	mode     ScanMode
	cursor   int
	fallback *RandomVictimFinder
}

// NewUsageAwareVictimFinder returns an evictor with its own cursor at 0. The
// seed feeds the random fallback.
func NewUsageAwareVictimFinder(
	mode ScanMode,
	seed int64,
) *UsageAwareVictimFinder {
	return &UsageAwareVictimFinder{
		mode:     mode,
		fallback: NewRandomVictimFinder(seed),
	}
}

// Mode returns the scan mode.
func (e *UsageAwareVictimFinder) Mode() ScanMode {
	return e.mode
}

// FindVictim checks up to frames.NumFrames() positions starting at the cursor.
func (e *UsageAwareVictimFinder) FindVictim(
	frames FrameView,
	directory vm.PageDirectory,
) vm.FrameIndex {
	n := frames.NumFrames()
	last := e.lastPosition(n)

	for checked := 0; checked < n; checked++ {
		if e.cursor > last {
			e.cursor = 0
		}

		pos := e.cursor
		e.cursor++

		if e.writeGranted(frames, directory, pos) {
			return vm.FrameIndex(pos)
		}
	}

	return e.fallback.FindVictim(frames, directory)
}

// lastPosition returns the highest cursor value checked before wrapping.
func (e *UsageAwareVictimFinder) lastPosition(numFrames int) int {
	if e.mode == ScanPageNumbers {
		return numFrames
	}

	return numFrames - 1
}

func (e *UsageAwareVictimFinder) writeGranted(
	frames FrameView,
	directory vm.PageDirectory,
	pos int,
) bool {
	var page vm.PageNum

	switch e.mode {
	case ScanFrames:
		occupant, ok := frames.Occupant(vm.FrameIndex(pos))
		if !ok {
			return false
		}

		page = occupant
	case ScanPageNumbers:
		if pos >= directory.NumPages() {
			return false
		}

		page = vm.PageNum(pos)
	default:
		panic(fmt.Sprintf("unknown scan mode %d", e.mode))
	}

	return directory.Entry(page).Perm.Has(vm.PermWrite)
}
