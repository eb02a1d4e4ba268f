package storage

import (
	"os"

	"github.com/pkg/errors"

	"github.com/sarchlab/vmsim/vm"
)

// A FileStorage keeps blocks in a single disk file, block i at offset
// i*PageSize. The file is sized to hold every block when it is opened.
type FileStorage struct {
	file      *os.File
	numBlocks int
}

// OpenFileStorage creates or reuses the disk file at path and sizes it for
// numBlocks blocks.
func OpenFileStorage(path string, numBlocks int) (*FileStorage, error) {
	if path == "" {
		return nil, errors.New("disk file path must not be empty")
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, err
	}

	err = f.Truncate(int64(numBlocks) * vm.PageSize)
	if err != nil {
		f.Close()
		return nil, errors.Wrap(err, "failed to size disk file")
	}

	return &FileStorage{file: f, numBlocks: numBlocks}, nil
}

// NumBlocks returns the capacity of the store in blocks.
func (s *FileStorage) NumBlocks() int {
	return s.numBlocks
}

// Read fills dst with the block of the given page.
func (s *FileStorage) Read(page vm.PageNum, dst []byte) error {
	if err := s.accessMustBeValid(page, dst); err != nil {
		return err
	}

	_, err := s.file.ReadAt(dst, s.offset(page))

	return errors.Wrapf(err, "failed to read block %d", page)
}

// Write persists src as the block of the given page.
func (s *FileStorage) Write(page vm.PageNum, src []byte) error {
	if err := s.accessMustBeValid(page, src); err != nil {
		return err
	}

	_, err := s.file.WriteAt(src, s.offset(page))

	return errors.Wrapf(err, "failed to write block %d", page)
}

// Path returns the path of the disk file.
func (s *FileStorage) Path() string {
	return s.file.Name()
}

// Close closes the disk file. The file stays on disk.
func (s *FileStorage) Close() error {
	return s.file.Close()
}

func (s *FileStorage) offset(page vm.PageNum) int64 {
	return int64(page) * vm.PageSize
}

func (s *FileStorage) accessMustBeValid(page vm.PageNum, buf []byte) error {
	if err := blockMustBeInRange(page, s.numBlocks); err != nil {
		return err
	}

	return bufferMustHoldOneBlock(buf)
}
