// Package pagefault resolves page faults. It owns the frame table and the
// fault statistics and is the only writer of the page directory.
package pagefault

import (
	"fmt"
	"sync"

	"github.com/sarchlab/vmsim/vm"
	"github.com/sarchlab/vmsim/vm/replacement"
)

// A Resolver brings pages into frames and widens their permissions when the
// MMU reports a fault.
type Resolver struct {
	vm.HookableBase
	sync.Mutex

	name            string
	directory       vm.PageDirectory
	store           vm.BackingStore
	physMem         *vm.PhysicalMemory
	frames          *FrameTable
	victimFinder    replacement.VictimFinder
	stats           Statistics
	checkInvariants bool
}

// Name returns the name of the resolver.
func (r *Resolver) Name() string {
	return r.name
}

// HandleFault resolves a fault on the given page. A page that is not resident
// is loaded with read permission, evicting a victim if no frame is free. A
// resident page gains write permission, or exec permission if it can already
// write.
//
// Hooks run outside the resolver lock and may query the resolver.
func (r *Resolver) HandleFault(page vm.PageNum) {
	r.pageMustBeInRange(page)

	r.invokeHook(HookPosBeforeFault, page, nil)

	record, stats := r.resolve(page)

	r.invokeHook(HookPosAfterFault, record, stats)
}

func (r *Resolver) resolve(page vm.PageNum) (FaultRecord, Statistics) {
	r.Lock()
	defer r.Unlock()

	r.stats.Faults++
	record := FaultRecord{
		Seq:         r.stats.Faults,
		Page:        page,
		EvictedPage: vm.NoPage,
	}

	entry := r.directory.Entry(page)
	if entry.Perm.IsEmpty() {
		r.handleMiss(page, &record)
	} else {
		r.handleUpgrade(page, entry, &record)
	}

	if r.checkInvariants {
		r.mustBeConsistent()
	}

	return record, r.stats
}

func (r *Resolver) handleMiss(page vm.PageNum, record *FaultRecord) {
	if f, ok := r.frames.FirstFree(); ok {
		r.directory.SetEntry(page, vm.Entry{Frame: f, Perm: vm.PermRead})
		r.frames.Bind(f, page)
		r.loadPage(page, f)

		record.Kind = FaultKindFreeFrame
		record.Frame = f
		record.Perm = vm.PermRead

		return
	}

	victim := r.victimFinder.FindVictim(r.frames, r.directory)
	evicted := r.victimMustBeOccupied(victim)

	evictedEntry := r.directory.Entry(evicted)
	if evictedEntry.Perm.Has(vm.PermWrite) {
		r.flushPage(evicted, victim)
		record.Flushed = true
	} else {
		r.stats.CleanEvictions++
	}

	r.loadPage(page, victim)

	r.directory.SetEntry(page, vm.Entry{Frame: victim, Perm: vm.PermRead})
	r.directory.SetEntry(evicted, vm.EmptyEntry)
	r.frames.Bind(victim, page)
	r.stats.Evictions++

	record.Kind = FaultKindEviction
	record.Frame = victim
	record.EvictedPage = evicted
	record.Perm = vm.PermRead
}

func (r *Resolver) handleUpgrade(
	page vm.PageNum,
	entry vm.Entry,
	record *FaultRecord,
) {
	record.Frame = entry.Frame
	record.Kind = FaultKindUpgrade

	switch {
	case !entry.Perm.Has(vm.PermWrite):
		entry.Perm = entry.Perm.With(vm.PermWrite)
	case !entry.Perm.Has(vm.PermExec):
		entry.Perm = entry.Perm.With(vm.PermExec)
	default:
		record.Kind = FaultKindSpurious
		record.Perm = entry.Perm

		return
	}

	r.directory.SetEntry(page, entry)
	r.stats.Upgrades++

	record.Perm = entry.Perm
}

func (r *Resolver) loadPage(page vm.PageNum, f vm.FrameIndex) {
	err := r.store.Read(page, r.physMem.Frame(f))
	if err != nil {
		panic(fmt.Sprintf("failed to read page %d into frame %d: %v",
			page, f, err))
	}

	r.stats.StoreReads++
}

func (r *Resolver) flushPage(page vm.PageNum, f vm.FrameIndex) {
	err := r.store.Write(page, r.physMem.Frame(f))
	if err != nil {
		panic(fmt.Sprintf("failed to flush page %d from frame %d: %v",
			page, f, err))
	}

	r.stats.StoreWrites++
}

func (r *Resolver) victimMustBeOccupied(victim vm.FrameIndex) vm.PageNum {
	if victim < 0 || int(victim) >= r.frames.NumFrames() {
		panic(fmt.Sprintf("victim frame %d out of range [0, %d)",
			victim, r.frames.NumFrames()))
	}

	evicted, ok := r.frames.Occupant(victim)
	if !ok {
		panic(fmt.Sprintf("victim frame %d is empty", victim))
	}

	return evicted
}

func (r *Resolver) pageMustBeInRange(page vm.PageNum) {
	if page < 0 || int(page) >= r.directory.NumPages() {
		panic(fmt.Sprintf("page %d out of range [0, %d)",
			page, r.directory.NumPages()))
	}
}

func (r *Resolver) mustBeConsistent() {
	err := CheckConsistency(r.frames, r.directory)
	if err != nil {
		panic(fmt.Sprintf("inconsistent state after fault %d: %v",
			r.stats.Faults, err))
	}
}

func (r *Resolver) invokeHook(pos *vm.HookPos, item, detail interface{}) {
	if r.NumHooks() == 0 {
		return
	}

	r.InvokeHook(vm.HookCtx{
		Domain: r,
		Pos:    pos,
		Item:   item,
		Detail: detail,
	})
}

// Statistics returns a copy of the counters.
func (r *Resolver) Statistics() Statistics {
	r.Lock()
	defer r.Unlock()

	return r.stats
}

// Frames returns the occupant of every frame, vm.NoPage for empty frames.
func (r *Resolver) Frames() []vm.PageNum {
	r.Lock()
	defer r.Unlock()

	return r.frames.Snapshot()
}

// PageDirectory returns the directory the resolver maintains.
func (r *Resolver) PageDirectory() vm.PageDirectory {
	return r.directory
}

// VictimFinder returns the replacement policy of the resolver.
func (r *Resolver) VictimFinder() replacement.VictimFinder {
	return r.victimFinder
}
