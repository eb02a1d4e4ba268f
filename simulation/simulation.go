// Package simulation wires the components of one demand-paging run and
// drives the workload through them.
package simulation

import (
	"context"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/sarchlab/vmsim/config"
	"github.com/sarchlab/vmsim/datarecording"
	"github.com/sarchlab/vmsim/monitoring"
	"github.com/sarchlab/vmsim/tracing"
	"github.com/sarchlab/vmsim/vm"
	"github.com/sarchlab/vmsim/vm/mmu"
	"github.com/sarchlab/vmsim/vm/pagefault"
	"github.com/sarchlab/vmsim/vm/storage"
	"github.com/sarchlab/vmsim/workload"
)

// A Report summarizes a finished run.
type Report struct {
	Statistics pagefault.Statistics
	Accesses   uint64
	Checksum   uint64
	Duration   time.Duration
}

// A Simulation owns the components of one run.
type Simulation struct {
	id  string
	cfg config.Config

	store     storage.Store
	directory vm.PageDirectory
	resolver  *pagefault.Resolver
	mmu       *mmu.MMU
	program   workload.Program

	dataRecorder datarecording.DataRecorder
	tracer       *tracing.FaultTracer
	monitor      *monitoring.Monitor

	report     Report
	terminated bool
}

// ID returns the unique ID of the run.
func (s *Simulation) ID() string {
	return s.id
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() config.Config {
	return s.cfg
}

// Resolver returns the fault resolver.
func (s *Simulation) Resolver() *pagefault.Resolver {
	return s.resolver
}

// MMU returns the memory the workload runs against.
func (s *Simulation) MMU() *mmu.MMU {
	return s.mmu
}

// Monitor returns the monitor, nil if monitoring is off.
func (s *Simulation) Monitor() *monitoring.Monitor {
	return s.monitor
}

// Tracer returns the fault tracer, nil if tracing is off.
func (s *Simulation) Tracer() *tracing.FaultTracer {
	return s.tracer
}

// Run executes the workload to completion.
func (s *Simulation) Run() Report {
	var mem workload.Memory = s.mmu

	if s.monitor != nil {
		bar := s.monitor.CreateProgressBar(s.program.Name(),
			s.program.ExpectedAccesses(s.mmu.Size()))
		defer s.monitor.CompleteProgressBar(bar)

		pm := &progressMemory{Memory: s.mmu, bar: bar}
		defer pm.flush()

		mem = pm
	}

	start := time.Now()
	checksum := s.program.Run(mem)

	s.report = Report{
		Statistics: s.resolver.Statistics(),
		Accesses:   s.mmu.Accesses(),
		Checksum:   checksum,
		Duration:   time.Since(start),
	}

	return s.report
}

// Terminate records the summary of the run and releases every resource.
// Calling it more than once has no effect.
func (s *Simulation) Terminate() error {
	if s.terminated {
		return nil
	}

	s.terminated = true

	var result *multierror.Error

	if s.tracer != nil {
		s.tracer.Terminate(s.summary())
	}

	if s.dataRecorder != nil {
		result = multierror.Append(result, s.dataRecorder.Close())
	}

	if s.monitor != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		result = multierror.Append(result, s.monitor.StopServer(ctx))
	}

	result = multierror.Append(result, s.store.Close())

	return result.ErrorOrNil()
}

func (s *Simulation) summary() tracing.RunSummary {
	stats := s.report.Statistics

	return tracing.RunSummary{
		Policy:         s.cfg.Policy,
		ScanMode:       s.cfg.ScanMode,
		Program:        s.cfg.Program,
		NumPages:       s.cfg.NumPages,
		NumFrames:      s.cfg.NumFrames,
		Seed:           s.cfg.Seed,
		Accesses:       s.report.Accesses,
		Faults:         stats.Faults,
		StoreReads:     stats.StoreReads,
		StoreWrites:    stats.StoreWrites,
		Evictions:      stats.Evictions,
		CleanEvictions: stats.CleanEvictions,
		Upgrades:       stats.Upgrades,
		Checksum:       s.report.Checksum,
	}
}
