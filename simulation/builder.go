package simulation

import (
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/xid"

	"github.com/sarchlab/vmsim/config"
	"github.com/sarchlab/vmsim/datarecording"
	"github.com/sarchlab/vmsim/monitoring"
	"github.com/sarchlab/vmsim/tracing"
	"github.com/sarchlab/vmsim/vm"
	"github.com/sarchlab/vmsim/vm/mmu"
	"github.com/sarchlab/vmsim/vm/pagefault"
	"github.com/sarchlab/vmsim/vm/replacement"
	"github.com/sarchlab/vmsim/vm/storage"
	"github.com/sarchlab/vmsim/workload"
)

// Builder can be used to build a simulation.
type Builder struct {
	cfg          config.Config
	logOutput    io.Writer
	store        storage.Store
	dataRecorder datarecording.DataRecorder
}

// MakeBuilder creates a new builder with the default configuration.
func MakeBuilder() Builder {
	return Builder{
		cfg:       config.Default(),
		logOutput: os.Stderr,
	}
}

// WithConfig sets the configuration of the run.
func (b Builder) WithConfig(cfg config.Config) Builder {
	b.cfg = cfg
	return b
}

// WithLogOutput sets where verbose fault logs are written.
func (b Builder) WithLogOutput(w io.Writer) Builder {
	b.logOutput = w
	return b
}

// WithStore replaces the backing store selected by the configuration. The
// simulation closes the store on Terminate.
func (b Builder) WithStore(s storage.Store) Builder {
	b.store = s
	return b
}

// WithDataRecorder replaces the trace database selected by the
// configuration. Setting a recorder enables tracing.
func (b Builder) WithDataRecorder(r datarecording.DataRecorder) Builder {
	b.dataRecorder = r
	return b
}

// Build validates the configuration and wires a simulation.
func (b Builder) Build() (*Simulation, error) {
	err := b.cfg.Validate()
	if err != nil {
		return nil, err
	}

	s := &Simulation{
		id:  xid.New().String(),
		cfg: b.cfg,
	}

	s.program, err = workload.New(b.cfg.Program, b.cfg.Seed)
	if err != nil {
		return nil, err
	}

	victimFinder, err := b.createVictimFinder()
	if err != nil {
		return nil, err
	}

	s.store = b.store
	if s.store == nil {
		s.store, err = storage.New(
			b.cfg.Store.Kind, b.cfg.Store.Path, b.cfg.NumPages)
		if err != nil {
			return nil, err
		}
	}

	b.buildMemorySystem(s, victimFinder)
	b.attachTracer(s)
	b.attachLogger(s)

	err = b.attachMonitor(s)
	if err != nil {
		s.store.Close()
		return nil, err
	}

	return s, nil
}

func (b Builder) createVictimFinder() (replacement.VictimFinder, error) {
	scanMode, err := replacement.ParseScanMode(b.cfg.ScanMode)
	if err != nil {
		return nil, err
	}

	return replacement.New(b.cfg.Policy, replacement.Options{
		Seed:     b.cfg.Seed,
		ScanMode: scanMode,
	})
}

func (b Builder) buildMemorySystem(
	s *Simulation,
	victimFinder replacement.VictimFinder,
) {
	s.directory = vm.NewPageDirectory(b.cfg.NumPages, b.cfg.NumFrames)
	physMem := vm.NewPhysicalMemory(b.cfg.NumFrames)

	s.resolver = pagefault.MakeBuilder().
		WithPageDirectory(s.directory).
		WithPhysicalMemory(physMem).
		WithBackingStore(s.store).
		WithVictimFinder(victimFinder).
		WithInvariantChecks(b.cfg.CheckInvariants).
		Build("Resolver")

	s.mmu = mmu.MakeBuilder().
		WithPageDirectory(s.directory).
		WithPhysicalMemory(physMem).
		WithFaultHandler(s.resolver).
		Build("MMU")
}

func (b Builder) attachTracer(s *Simulation) {
	s.dataRecorder = b.dataRecorder

	if s.dataRecorder == nil && b.cfg.Trace.Enabled {
		path := b.cfg.Trace.Path
		if path == "" {
			path = "vmsim_trace_" + s.id
		}

		s.dataRecorder = datarecording.New(path)
	}

	if s.dataRecorder == nil {
		return
	}

	s.tracer = tracing.NewFaultTracer(s.dataRecorder, s.id)
	s.resolver.AcceptHook(s.tracer, pagefault.HookPosAfterFault)
}

func (b Builder) attachLogger(s *Simulation) {
	if !b.cfg.Verbose {
		return
	}

	logger := log.New(b.logOutput, "", 0)
	s.resolver.AcceptHook(tracing.NewFaultLogger(logger),
		pagefault.HookPosAfterFault)
}

func (b Builder) attachMonitor(s *Simulation) error {
	if !b.cfg.Monitor.Enabled {
		return nil
	}

	s.monitor = monitoring.NewMonitor().
		WithPortNumber(b.cfg.Monitor.Port).
		WithBrowser(b.cfg.Monitor.OpenBrowser)
	s.monitor.RegisterResolver(s.resolver)
	s.monitor.RegisterMMU(s.mmu)

	err := s.monitor.StartServer()
	if err != nil {
		return errors.Wrap(err, "failed to start monitor")
	}

	return nil
}
