package pagefault

import (
	"github.com/sarchlab/vmsim/vm"
)

// FaultKind classifies how a fault was resolved.
type FaultKind string

// The ways a fault can be resolved.
const (
	// FaultKindFreeFrame loaded a page into an empty frame.
	FaultKindFreeFrame FaultKind = "free-frame"

	// FaultKindEviction evicted a page to make room for the faulting page.
	FaultKindEviction FaultKind = "eviction"

	// FaultKindUpgrade widened the permissions of a resident page.
	FaultKindUpgrade FaultKind = "upgrade"

	// FaultKindSpurious hit a page that already held every permission.
	FaultKindSpurious FaultKind = "spurious"
)

// A FaultRecord describes one resolved fault. It is the item passed to hooks
// at HookPosAfterFault.
type FaultRecord struct {
	// Seq is the 1-based number of the fault in the run.
	Seq  uint64
	Page vm.PageNum
	Kind FaultKind

	// Frame is the frame the page occupies after the fault.
	Frame vm.FrameIndex

	// EvictedPage is the page that left Frame, vm.NoPage if none did.
	EvictedPage vm.PageNum

	// Flushed tells if the evicted page was written to the backing store.
	Flushed bool

	// Perm is the permission set of the page after the fault.
	Perm vm.Perm
}

// Hook positions of the resolver.
var (
	// HookPosBeforeFault triggers before a fault is classified. The item is
	// the faulting vm.PageNum.
	HookPosBeforeFault = &vm.HookPos{Name: "BeforeFault"}

	// HookPosAfterFault triggers once a fault is resolved and the resolver
	// is unlocked. The item is a FaultRecord and the detail is the
	// Statistics right after the fault. When faults run concurrently, hooks
	// may see records out of Seq order.
	HookPosAfterFault = &vm.HookPos{Name: "AfterFault"}
)
