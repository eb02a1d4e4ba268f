package simulation

import (
	"github.com/sarchlab/vmsim/monitoring"
	"github.com/sarchlab/vmsim/workload"
)

const progressBatch = 4096

// progressMemory reports the accesses of a workload to a progress bar in
// batches.
type progressMemory struct {
	workload.Memory

	bar     *monitoring.ProgressBar
	pending uint64
}

func (m *progressMemory) Load(addr uint64) byte {
	m.tick()
	return m.Memory.Load(addr)
}

func (m *progressMemory) Store(addr uint64, value byte) {
	m.tick()
	m.Memory.Store(addr, value)
}

func (m *progressMemory) Fetch(addr uint64) byte {
	m.tick()
	return m.Memory.Fetch(addr)
}

func (m *progressMemory) tick() {
	m.pending++
	if m.pending >= progressBatch {
		m.flush()
	}
}

func (m *progressMemory) flush() {
	m.bar.IncrementFinished(m.pending)
	m.pending = 0
}
