package mmu

import (
	"github.com/sarchlab/vmsim/vm"
)

// A Builder can build MMUs.
type Builder struct {
	directory vm.PageDirectory
	physMem   *vm.PhysicalMemory
	handler   FaultHandler
}

// MakeBuilder creates a new builder.
func MakeBuilder() Builder {
	return Builder{}
}

// WithPageDirectory sets the directory that the MMU checks permissions in.
func (b Builder) WithPageDirectory(d vm.PageDirectory) Builder {
	b.directory = d
	return b
}

// WithPhysicalMemory sets the frames that the MMU reads and writes.
func (b Builder) WithPhysicalMemory(m *vm.PhysicalMemory) Builder {
	b.physMem = m
	return b
}

// WithFaultHandler sets the handler that resolves faults.
func (b Builder) WithFaultHandler(h FaultHandler) Builder {
	b.handler = h
	return b
}

// Build returns a newly created MMU.
func (b Builder) Build(name string) *MMU {
	if b.directory == nil || b.physMem == nil || b.handler == nil {
		panic("mmu requires a page directory, physical memory and a fault handler")
	}

	return &MMU{
		name:      name,
		directory: b.directory,
		physMem:   b.physMem,
		handler:   b.handler,
	}
}
