package pagefault

import (
	"github.com/sarchlab/vmsim/vm"
	"github.com/sarchlab/vmsim/vm/replacement"
)

// A Builder can build resolvers.
type Builder struct {
	numFrames       int
	directory       vm.PageDirectory
	store           vm.BackingStore
	physMem         *vm.PhysicalMemory
	victimFinder    replacement.VictimFinder
	checkInvariants bool
}

// MakeBuilder creates a builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		numFrames: 1,
	}
}

// WithNumFrames sets the number of frames. It is ignored if physical memory
// is given.
func (b Builder) WithNumFrames(n int) Builder {
	b.numFrames = n
	return b
}

// WithPageDirectory sets the page directory that the resolver maintains.
func (b Builder) WithPageDirectory(d vm.PageDirectory) Builder {
	b.directory = d
	return b
}

// WithBackingStore sets the store that pages are read from and flushed to.
func (b Builder) WithBackingStore(s vm.BackingStore) Builder {
	b.store = s
	return b
}

// WithPhysicalMemory sets the frames that pages are loaded into.
func (b Builder) WithPhysicalMemory(m *vm.PhysicalMemory) Builder {
	b.physMem = m
	return b
}

// WithVictimFinder sets the replacement policy.
func (b Builder) WithVictimFinder(f replacement.VictimFinder) Builder {
	b.victimFinder = f
	return b
}

// WithInvariantChecks makes the resolver verify the frame table against the
// page directory after every fault.
func (b Builder) WithInvariantChecks(enabled bool) Builder {
	b.checkInvariants = enabled
	return b
}

// Build creates a resolver with the given name.
func (b Builder) Build(name string) *Resolver {
	b.mustBeComplete()

	physMem := b.physMem
	if physMem == nil {
		physMem = vm.NewPhysicalMemory(b.numFrames)
	}

	victimFinder := b.victimFinder
	if victimFinder == nil {
		victimFinder = replacement.NewRoundRobinVictimFinder()
	}

	return &Resolver{
		name:            name,
		directory:       b.directory,
		store:           b.store,
		physMem:         physMem,
		frames:          NewFrameTable(physMem.NumFrames()),
		victimFinder:    victimFinder,
		checkInvariants: b.checkInvariants,
	}
}

func (b Builder) mustBeComplete() {
	if b.directory == nil {
		panic("resolver requires a page directory")
	}

	if b.store == nil {
		panic("resolver requires a backing store")
	}

	if b.store.NumBlocks() < b.directory.NumPages() {
		panic("backing store is smaller than the page directory")
	}
}
