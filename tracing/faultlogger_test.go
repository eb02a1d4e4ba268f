package tracing

import (
	"bytes"
	"log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/vmsim/vm"
	"github.com/sarchlab/vmsim/vm/pagefault"
)

var _ = Describe("FaultLogger", func() {
	var (
		buf    *bytes.Buffer
		logger *FaultLogger
	)

	BeforeEach(func() {
		buf = new(bytes.Buffer)
		logger = NewFaultLogger(log.New(buf, "", 0))
	})

	It("should log evictions", func() {
		logger.Func(vm.HookCtx{
			Pos: pagefault.HookPosAfterFault,
			Item: pagefault.FaultRecord{
				Seq:         7,
				Page:        5,
				Kind:        pagefault.FaultKindEviction,
				Frame:       2,
				EvictedPage: 1,
			},
		})

		Expect(buf.String()).To(Equal(
			"fault 7: page 5 -> frame 2, evicted page 1, flushed false\n"))
	})

	It("should log upgrades with the new permissions", func() {
		logger.Func(vm.HookCtx{
			Pos: pagefault.HookPosAfterFault,
			Item: pagefault.FaultRecord{
				Seq:   2,
				Page:  0,
				Kind:  pagefault.FaultKindUpgrade,
				Frame: 0,
				Perm:  vm.PermRead | vm.PermWrite,
			},
		})

		Expect(buf.String()).To(Equal("fault 2: page 0 upgrade in frame 0, rw-\n"))
	})

	It("should stay quiet before a fault", func() {
		logger.Func(vm.HookCtx{
			Pos:  pagefault.HookPosBeforeFault,
			Item: vm.PageNum(3),
		})

		Expect(buf.String()).To(BeEmpty())
	})
})
