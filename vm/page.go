// Package vm provides the data model shared by the demand-paging simulator:
// pages, frames, access permissions, the page directory, physical memory and
// the backing store interface.
package vm

import "strings"

// PageSize is the size of one page, one frame and one backing-store block.
const PageSize = 4096

// PageNum identifies a virtual page.
type PageNum int

// NoPage marks the absence of a page, for example in an empty frame.
const NoPage PageNum = -1

// FrameIndex identifies a physical frame.
type FrameIndex int

// NoFrame marks a page that is not resident.
const NoFrame FrameIndex = -1

// Perm is a set of access rights granted to a resident page.
type Perm uint8

// The permission bits. They are granted in the order Read, Write, Exec.
const (
	PermRead Perm = 1 << iota
	PermWrite
	PermExec
)

// PermNone is the empty permission set of a page that is not resident.
const PermNone Perm = 0

// PermAll holds every permission bit.
const PermAll = PermRead | PermWrite | PermExec

// IsEmpty returns true if no right is granted.
func (p Perm) IsEmpty() bool {
	return p == PermNone
}

// Has returns true if every bit of q is granted in p.
func (p Perm) Has(q Perm) bool {
	return p&q == q
}

// With returns the set that grants q in addition to p.
func (p Perm) With(q Perm) Perm {
	return p | q
}

// String formats the set like a protection mask, e.g. "rw-".
func (p Perm) String() string {
	var b strings.Builder

	b.WriteByte(permChar(p, PermRead, 'r'))
	b.WriteByte(permChar(p, PermWrite, 'w'))
	b.WriteByte(permChar(p, PermExec, 'x'))

	return b.String()
}

func permChar(p, bit Perm, c byte) byte {
	if p.Has(bit) {
		return c
	}

	return '-'
}

// An Entry is the page-directory record of one page.
type Entry struct {
	Frame FrameIndex
	Perm  Perm
}

// EmptyEntry is the entry of a page that is not resident.
var EmptyEntry = Entry{Frame: NoFrame, Perm: PermNone}

// IsResident returns true if the page holds a frame.
func (e Entry) IsResident() bool {
	return e.Frame != NoFrame
}
