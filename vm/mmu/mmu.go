// Package mmu traps memory accesses that the page directory does not permit
// and forwards them to a fault handler.
package mmu

import (
	"fmt"
	"sync/atomic"

	"github.com/sarchlab/vmsim/vm"
)

// A FaultHandler resolves faults on pages.
type FaultHandler interface {
	HandleFault(page vm.PageNum)
}

// maxFaultsPerAccess bounds the faults one access can take. Permissions are
// granted one per fault in the order read, write, exec.
const maxFaultsPerAccess = 3

// An MMU gives byte access to a virtual address space backed by physical
// frames. It owns no data.
type MMU struct {
	name      string
	directory vm.PageDirectory
	physMem   *vm.PhysicalMemory
	handler   FaultHandler

	accesses atomic.Uint64
	faults   atomic.Uint64
}

// Name returns the name of the MMU.
func (m *MMU) Name() string {
	return m.name
}

// Size returns the number of addressable bytes.
func (m *MMU) Size() uint64 {
	return uint64(m.directory.NumPages()) * vm.PageSize
}

// Load reads the byte at addr.
func (m *MMU) Load(addr uint64) byte {
	f, offset := m.translate(addr, vm.PermRead)
	return m.physMem.Frame(f)[offset]
}

// Store writes the byte at addr.
func (m *MMU) Store(addr uint64, value byte) {
	f, offset := m.translate(addr, vm.PermWrite)
	m.physMem.Frame(f)[offset] = value
}

// Fetch reads the byte at addr as an instruction.
func (m *MMU) Fetch(addr uint64) byte {
	f, offset := m.translate(addr, vm.PermExec)
	return m.physMem.Frame(f)[offset]
}

// Accesses returns the number of loads, stores and fetches served.
func (m *MMU) Accesses() uint64 {
	return m.accesses.Load()
}

// Faults returns the number of faults the MMU raised.
func (m *MMU) Faults() uint64 {
	return m.faults.Load()
}

func (m *MMU) translate(addr uint64, need vm.Perm) (vm.FrameIndex, uint64) {
	m.addrMustBeInRange(addr)

	page := vm.PageNum(addr / vm.PageSize)
	offset := addr % vm.PageSize

	m.accesses.Add(1)

	for i := 0; ; i++ {
		entry := m.directory.Entry(page)
		if entry.Perm.Has(need) {
			return entry.Frame, offset
		}

		if i == maxFaultsPerAccess {
			panic(fmt.Sprintf(
				"page %d still lacks %s after %d faults", page, need, i))
		}

		m.faults.Add(1)
		m.handler.HandleFault(page)
	}
}

func (m *MMU) addrMustBeInRange(addr uint64) {
	if addr >= m.Size() {
		panic(fmt.Sprintf("address %#x out of range [0, %#x)", addr, m.Size()))
	}
}
