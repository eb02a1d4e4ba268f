package tracing

import (
	"log"

	"github.com/sarchlab/vmsim/vm"
	"github.com/sarchlab/vmsim/vm/pagefault"
)

// A FaultLogger prints one line per resolved fault.
type FaultLogger struct {
	*log.Logger
}

// NewFaultLogger returns a FaultLogger that writes into logger.
func NewFaultLogger(logger *log.Logger) *FaultLogger {
	h := new(FaultLogger)
	h.Logger = logger

	return h
}

// Func writes the fault information into the logger.
func (h *FaultLogger) Func(ctx vm.HookCtx) {
	if ctx.Pos != pagefault.HookPosAfterFault {
		return
	}

	record, ok := ctx.Item.(pagefault.FaultRecord)
	if !ok {
		return
	}

	switch record.Kind {
	case pagefault.FaultKindEviction:
		h.Printf("fault %d: page %d -> frame %d, evicted page %d, flushed %t",
			record.Seq, record.Page, record.Frame,
			record.EvictedPage, record.Flushed)
	default:
		h.Printf("fault %d: page %d %s in frame %d, %s",
			record.Seq, record.Page, record.Kind, record.Frame, record.Perm)
	}
}
