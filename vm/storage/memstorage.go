package storage

import (
	"github.com/sarchlab/vmsim/vm"
)

// A MemStorage keeps blocks in memory.
//
// Blocks that have never been written are not allocated; reading them yields
// zeros.
type MemStorage struct {
	numBlocks int
	data      map[vm.PageNum][]byte
}

// NewMemStorage creates a memory store that holds numBlocks blocks.
func NewMemStorage(numBlocks int) *MemStorage {
	return &MemStorage{
		numBlocks: numBlocks,
		data:      make(map[vm.PageNum][]byte),
	}
}

// NumBlocks returns the capacity of the store in blocks.
func (s *MemStorage) NumBlocks() int {
	return s.numBlocks
}

// Read copies the block of the given page into dst.
func (s *MemStorage) Read(page vm.PageNum, dst []byte) error {
	if err := s.accessMustBeValid(page, dst); err != nil {
		return err
	}

	unit, ok := s.data[page]
	if !ok {
		clear(dst)
		return nil
	}

	copy(dst, unit)

	return nil
}

// Write copies src into the block of the given page.
func (s *MemStorage) Write(page vm.PageNum, src []byte) error {
	if err := s.accessMustBeValid(page, src); err != nil {
		return err
	}

	unit, ok := s.data[page]
	if !ok {
		unit = make([]byte, vm.PageSize)
		s.data[page] = unit
	}

	copy(unit, src)

	return nil
}

// NumAllocatedBlocks returns how many blocks have been written at least once.
func (s *MemStorage) NumAllocatedBlocks() int {
	return len(s.data)
}

// Close drops every block.
func (s *MemStorage) Close() error {
	s.data = make(map[vm.PageNum][]byte)
	return nil
}

func (s *MemStorage) accessMustBeValid(page vm.PageNum, buf []byte) error {
	if err := blockMustBeInRange(page, s.numBlocks); err != nil {
		return err
	}

	return bufferMustHoldOneBlock(buf)
}
