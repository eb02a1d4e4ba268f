// Package tracing provides hooks that observe the fault resolver.
package tracing

import (
	"sync"

	"github.com/sarchlab/vmsim/datarecording"
	"github.com/sarchlab/vmsim/vm"
	"github.com/sarchlab/vmsim/vm/pagefault"
)

// Table names written by the FaultTracer.
const (
	FaultTable   = "page_fault"
	SummaryTable = "run_summary"
)

type faultEntry struct {
	RunID       string `json:"run_id"`
	Seq         uint64 `json:"seq"`
	Page        int    `json:"page"`
	Kind        string `json:"kind"`
	Frame       int    `json:"frame"`
	EvictedPage int    `json:"evicted_page"`
	Flushed     bool   `json:"flushed"`
	Perm        string `json:"perm"`
	StoreReads  uint64 `json:"store_reads"`
	StoreWrites uint64 `json:"store_writes"`
}

// A RunSummary describes a finished run.
type RunSummary struct {
	RunID          string `json:"run_id"`
	Policy         string `json:"policy"`
	ScanMode       string `json:"scan_mode"`
	Program        string `json:"program"`
	NumPages       int    `json:"num_pages"`
	NumFrames      int    `json:"num_frames"`
	Seed           int64  `json:"seed"`
	Accesses       uint64 `json:"accesses"`
	Faults         uint64 `json:"faults"`
	StoreReads     uint64 `json:"store_reads"`
	StoreWrites    uint64 `json:"store_writes"`
	Evictions      uint64 `json:"evictions"`
	CleanEvictions uint64 `json:"clean_evictions"`
	Upgrades       uint64 `json:"upgrades"`
	Checksum       uint64 `json:"checksum"`
}

// A FaultTracer records every resolved fault into a data recorder.
type FaultTracer struct {
	mu       sync.Mutex
	runID    string
	backend  datarecording.DataRecorder
	numFault uint64
}

// NewFaultTracer creates the trace tables in dataRecorder and returns a
// tracer that tags its rows with runID.
func NewFaultTracer(
	dataRecorder datarecording.DataRecorder,
	runID string,
) *FaultTracer {
	dataRecorder.CreateTable(FaultTable, faultEntry{})
	dataRecorder.CreateTable(SummaryTable, RunSummary{})

	return &FaultTracer{
		runID:   runID,
		backend: dataRecorder,
	}
}

// Func records the fault described by a HookPosAfterFault context.
func (t *FaultTracer) Func(ctx vm.HookCtx) {
	if ctx.Pos != pagefault.HookPosAfterFault {
		return
	}

	record, ok := ctx.Item.(pagefault.FaultRecord)
	if !ok {
		return
	}

	stats, _ := ctx.Detail.(pagefault.Statistics)

	t.mu.Lock()
	defer t.mu.Unlock()

	t.backend.InsertData(FaultTable, faultEntry{
		RunID:       t.runID,
		Seq:         record.Seq,
		Page:        int(record.Page),
		Kind:        string(record.Kind),
		Frame:       int(record.Frame),
		EvictedPage: int(record.EvictedPage),
		Flushed:     record.Flushed,
		Perm:        record.Perm.String(),
		StoreReads:  stats.StoreReads,
		StoreWrites: stats.StoreWrites,
	})
	t.numFault++
}

// NumRecorded returns the number of faults recorded so far.
func (t *FaultTracer) NumRecorded() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.numFault
}

// Terminate records the summary of the run and flushes the recorder.
func (t *FaultTracer) Terminate(summary RunSummary) {
	t.mu.Lock()
	defer t.mu.Unlock()

	summary.RunID = t.runID

	t.backend.InsertData(SummaryTable, summary)
	t.backend.Flush()
}
