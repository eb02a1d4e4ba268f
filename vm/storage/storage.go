// Package storage provides the backing stores that keep the pages that are not
// resident in physical memory.
package storage

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/sarchlab/vmsim/vm"
)

// Kind names a backing store implementation.
type Kind string

// The supported backing stores.
const (
	KindMemory Kind = "memory"
	KindFile   Kind = "file"
	KindSQLite Kind = "sqlite"
)

// Kinds lists every supported Kind.
func Kinds() []Kind {
	return []Kind{KindMemory, KindFile, KindSQLite}
}

// IsValidKind returns true if k names a supported backing store.
func IsValidKind(k Kind) bool {
	for _, known := range Kinds() {
		if k == known {
			return true
		}
	}

	return false
}

// A Store is a backing store that holds resources that must be released at
// the end of a run.
type Store interface {
	vm.BackingStore

	// Close releases the resources of the store.
	Close() error
}

// New opens a backing store of the given kind that holds numBlocks blocks.
// The path is ignored by the memory store.
func New(kind Kind, path string, numBlocks int) (Store, error) {
	switch kind {
	case KindMemory:
		return NewMemStorage(numBlocks), nil
	case KindFile:
		s, err := OpenFileStorage(path, numBlocks)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open disk file %q", path)
		}

		return s, nil
	case KindSQLite:
		s, err := OpenSQLiteStorage(path, numBlocks)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open sqlite store %q", path)
		}

		return s, nil
	default:
		return nil, fmt.Errorf("invalid store kind %q", kind)
	}
}

func blockMustBeInRange(page vm.PageNum, numBlocks int) error {
	if page < 0 || int(page) >= numBlocks {
		return fmt.Errorf("block %d out of range [0, %d)", page, numBlocks)
	}

	return nil
}

func bufferMustHoldOneBlock(buf []byte) error {
	if len(buf) != vm.PageSize {
		return fmt.Errorf("buffer of %d bytes, want %d", len(buf), vm.PageSize)
	}

	return nil
}
