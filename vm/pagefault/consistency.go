package pagefault

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/sarchlab/vmsim/vm"
	"github.com/sarchlab/vmsim/vm/replacement"
)

// CheckConsistency verifies that the frame table and the page directory
// agree: every occupied frame is named by its page's entry, every resident
// page occupies the frame its entry names, and only resident pages hold
// permissions. It returns every violation it finds.
func CheckConsistency(
	frames replacement.FrameView,
	directory vm.PageDirectory,
) error {
	var result *multierror.Error

	for i := 0; i < frames.NumFrames(); i++ {
		f := vm.FrameIndex(i)

		p, ok := frames.Occupant(f)
		if !ok {
			continue
		}

		if p < 0 || int(p) >= directory.NumPages() {
			result = multierror.Append(result,
				fmt.Errorf("frame %d holds page %d out of range", f, p))

			continue
		}

		e := directory.Entry(p)
		if e.Frame != f {
			result = multierror.Append(result,
				fmt.Errorf("frame %d holds page %d but the page maps to frame %d",
					f, p, e.Frame))
		}

		if e.Perm.IsEmpty() {
			result = multierror.Append(result,
				fmt.Errorf("frame %d holds page %d without permissions", f, p))
		}
	}

	for i := 0; i < directory.NumPages(); i++ {
		p := vm.PageNum(i)
		e := directory.Entry(p)

		if !e.IsResident() {
			if !e.Perm.IsEmpty() {
				result = multierror.Append(result,
					fmt.Errorf("page %d is not resident but has permissions %s",
						p, e.Perm))
			}

			continue
		}

		if int(e.Frame) >= frames.NumFrames() {
			result = multierror.Append(result,
				fmt.Errorf("page %d maps to frame %d out of range", p, e.Frame))

			continue
		}

		occupant, ok := frames.Occupant(e.Frame)
		if !ok || occupant != p {
			result = multierror.Append(result,
				fmt.Errorf("page %d maps to frame %d which does not hold it",
					p, e.Frame))
		}
	}

	return result.ErrorOrNil()
}
