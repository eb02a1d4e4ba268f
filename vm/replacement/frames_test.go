package replacement

import (
	"github.com/sarchlab/vmsim/vm"
)

// fullFrames is a FrameView where frame i holds page occupants[i].
type fullFrames struct {
	occupants []vm.PageNum
}

func framesHolding(pages ...vm.PageNum) fullFrames {
	return fullFrames{occupants: pages}
}

func (f fullFrames) NumFrames() int {
	return len(f.occupants)
}

func (f fullFrames) Occupant(frame vm.FrameIndex) (vm.PageNum, bool) {
	p := f.occupants[frame]
	return p, p != vm.NoPage
}

// residentDirectory maps every occupant to its frame with read access.
func residentDirectory(numPages int, frames fullFrames) vm.PageDirectory {
	d := vm.NewPageDirectory(numPages, frames.NumFrames())

	for f, p := range frames.occupants {
		if p != vm.NoPage {
			d.SetEntry(p, vm.Entry{Frame: vm.FrameIndex(f), Perm: vm.PermRead})
		}
	}

	return d
}

func grantWrite(d vm.PageDirectory, p vm.PageNum) {
	e := d.Entry(p)
	e.Perm = e.Perm.With(vm.PermWrite)
	d.SetEntry(p, e)
}

func toggleWrite(d vm.PageDirectory, p vm.PageNum) {
	if p == vm.NoPage {
		return
	}

	e := d.Entry(p)
	if e.Perm.Has(vm.PermWrite) {
		e.Perm = vm.PermRead
	} else {
		e.Perm = e.Perm.With(vm.PermWrite)
	}

	d.SetEntry(p, e)
}

// legacyScan follows the scan of the legacy "custom" policy step by step:
// the counter wraps only once it exceeds the frame count, every check of a
// page without write access counts as checked, and after frameCount checks
// a random frame is drawn. Pages past the directory count as clean.
type legacyScan struct {
	samCount int
	random   *RandomVictimFinder
}

func newLegacyScan(seed int64) *legacyScan {
	return &legacyScan{random: NewRandomVictimFinder(seed)}
}

func (l *legacyScan) FindVictim(
	frames FrameView,
	directory vm.PageDirectory,
) vm.FrameIndex {
	nframes := frames.NumFrames()
	checked := 0

	for {
		if checked >= nframes {
			return l.random.FindVictim(frames, directory)
		}

		if l.samCount > nframes {
			l.samCount = 0
		}

		if l.samCount >= directory.NumPages() ||
			!directory.Entry(vm.PageNum(l.samCount)).Perm.Has(vm.PermWrite) {
			checked++
			l.samCount++

			continue
		}

		victim := l.samCount
		l.samCount++

		return vm.FrameIndex(victim)
	}
}
