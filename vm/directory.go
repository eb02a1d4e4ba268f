package vm

import (
	"fmt"
	"sync"
)

// A PageDirectory holds one Entry per virtual page.
type PageDirectory interface {
	// NumPages returns the number of pages the directory describes.
	NumPages() int

	// Entry returns the entry of the given page.
	Entry(page PageNum) Entry

	// SetEntry replaces the entry of the given page.
	SetEntry(page PageNum, entry Entry)
}

// NewPageDirectory creates a directory of numPages entries that may refer to
// numFrames frames. Every entry starts as EmptyEntry.
func NewPageDirectory(numPages, numFrames int) PageDirectory {
	if numPages <= 0 {
		panic("page directory must have at least one page")
	}

	d := &pageDirectoryImpl{
		numFrames: numFrames,
		entries:   make([]Entry, numPages),
	}

	for i := range d.entries {
		d.entries[i] = EmptyEntry
	}

	return d
}

// pageDirectoryImpl is the default implementation of a PageDirectory.
type pageDirectoryImpl struct {
	sync.Mutex
	numFrames int
	entries   []Entry
}

func (d *pageDirectoryImpl) NumPages() int {
	return len(d.entries)
}

func (d *pageDirectoryImpl) Entry(page PageNum) Entry {
	d.Lock()
	defer d.Unlock()

	d.pageMustBeInRange(page)

	return d.entries[page]
}

func (d *pageDirectoryImpl) SetEntry(page PageNum, entry Entry) {
	d.Lock()
	defer d.Unlock()

	d.pageMustBeInRange(page)
	d.entryMustBeValid(page, entry)

	d.entries[page] = entry
}

func (d *pageDirectoryImpl) pageMustBeInRange(page PageNum) {
	if page < 0 || int(page) >= len(d.entries) {
		panic(fmt.Sprintf("page %d out of range [0, %d)", page, len(d.entries)))
	}
}

func (d *pageDirectoryImpl) entryMustBeValid(page PageNum, entry Entry) {
	if entry.Frame == NoFrame {
		if !entry.Perm.IsEmpty() {
			panic(fmt.Sprintf(
				"page %d is not resident but has permissions %s",
				page, entry.Perm))
		}

		return
	}

	if entry.Frame < 0 || int(entry.Frame) >= d.numFrames {
		panic(fmt.Sprintf("page %d mapped to frame %d out of range [0, %d)",
			page, entry.Frame, d.numFrames))
	}

	if entry.Perm&^PermAll != 0 {
		panic(fmt.Sprintf("page %d has unknown permission bits %#x",
			page, uint8(entry.Perm)))
	}
}
