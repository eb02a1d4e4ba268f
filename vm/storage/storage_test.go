package storage

import (
	"database/sql"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/vmsim/vm"
)

func block(fill byte) []byte {
	b := make([]byte, vm.PageSize)
	for i := range b {
		b[i] = fill + byte(i%7)
	}

	return b
}

// behavesLikeABackingStore runs the contract every backing store must meet.
func behavesLikeABackingStore(open func() Store) {
	var s Store

	BeforeEach(func() {
		s = open()
	})

	AfterEach(func() {
		Expect(s.Close()).To(Succeed())
	})

	It("should report its capacity", func() {
		Expect(s.NumBlocks()).To(Equal(4))
	})

	It("should read zeros from blocks never written", func() {
		dst := block(1)

		Expect(s.Read(2, dst)).To(Succeed())
		Expect(dst).To(Equal(make([]byte, vm.PageSize)))
	})

	It("should read back what was written", func() {
		Expect(s.Write(1, block(3))).To(Succeed())
		Expect(s.Write(3, block(5))).To(Succeed())

		dst := make([]byte, vm.PageSize)
		Expect(s.Read(1, dst)).To(Succeed())
		Expect(dst).To(Equal(block(3)))

		Expect(s.Read(3, dst)).To(Succeed())
		Expect(dst).To(Equal(block(5)))
	})

	It("should overwrite blocks", func() {
		Expect(s.Write(0, block(3))).To(Succeed())
		Expect(s.Write(0, block(9))).To(Succeed())

		dst := make([]byte, vm.PageSize)
		Expect(s.Read(0, dst)).To(Succeed())
		Expect(dst).To(Equal(block(9)))
	})

	It("should not alias the caller's buffer", func() {
		src := block(3)
		Expect(s.Write(0, src)).To(Succeed())
		src[0] = 200

		dst := make([]byte, vm.PageSize)
		Expect(s.Read(0, dst)).To(Succeed())
		Expect(dst[0]).To(Equal(byte(3)))
	})

	It("should reject out-of-range blocks", func() {
		buf := make([]byte, vm.PageSize)

		Expect(s.Read(4, buf)).To(MatchError(ContainSubstring("out of range")))
		Expect(s.Write(-1, buf)).To(MatchError(ContainSubstring("out of range")))
	})

	It("should reject buffers that are not one block", func() {
		Expect(s.Read(0, make([]byte, 10))).NotTo(Succeed())
		Expect(s.Write(0, make([]byte, vm.PageSize+1))).NotTo(Succeed())
	})
}

var _ = Describe("MemStorage", func() {
	behavesLikeABackingStore(func() Store {
		return NewMemStorage(4)
	})

	It("should only allocate written blocks", func() {
		s := NewMemStorage(4)
		Expect(s.Read(0, make([]byte, vm.PageSize))).To(Succeed())
		Expect(s.Write(2, block(1))).To(Succeed())

		Expect(s.NumAllocatedBlocks()).To(Equal(1))
	})
})

var _ = Describe("FileStorage", func() {
	behavesLikeABackingStore(func() Store {
		path := filepath.Join(GinkgoT().TempDir(), "disk")
		s, err := OpenFileStorage(path, 4)
		Expect(err).NotTo(HaveOccurred())

		return s
	})

	It("should keep blocks across reopening", func() {
		path := filepath.Join(GinkgoT().TempDir(), "disk")

		s, err := OpenFileStorage(path, 4)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Path()).To(Equal(path))
		Expect(s.Write(2, block(4))).To(Succeed())
		Expect(s.Close()).To(Succeed())

		s, err = OpenFileStorage(path, 4)
		Expect(err).NotTo(HaveOccurred())
		defer s.Close()

		dst := make([]byte, vm.PageSize)
		Expect(s.Read(2, dst)).To(Succeed())
		Expect(dst).To(Equal(block(4)))
	})

	It("should refuse an empty path", func() {
		_, err := OpenFileStorage("", 4)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("SQLiteStorage", func() {
	behavesLikeABackingStore(func() Store {
		db, err := sql.Open("sqlite3", ":memory:")
		Expect(err).NotTo(HaveOccurred())
		db.SetMaxOpenConns(1)

		s, err := NewSQLiteStorageWithDB(db, 4)
		Expect(err).NotTo(HaveOccurred())

		return s
	})

	It("should store blocks in a database file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "store.sqlite3")

		s, err := OpenSQLiteStorage(path, 4)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Write(1, block(2))).To(Succeed())
		Expect(s.Close()).To(Succeed())

		s, err = OpenSQLiteStorage(path, 4)
		Expect(err).NotTo(HaveOccurred())
		defer s.Close()

		dst := make([]byte, vm.PageSize)
		Expect(s.Read(1, dst)).To(Succeed())
		Expect(dst).To(Equal(block(2)))
	})
})

var _ = Describe("New", func() {
	It("should open every supported kind", func() {
		dir := GinkgoT().TempDir()

		for _, kind := range Kinds() {
			s, err := New(kind, filepath.Join(dir, string(kind)), 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(s.NumBlocks()).To(Equal(2))
			Expect(s.Close()).To(Succeed())
		}
	})

	It("should reject unknown kinds", func() {
		_, err := New("tape", "", 2)

		Expect(err).To(MatchError(`invalid store kind "tape"`))
		Expect(IsValidKind("tape")).To(BeFalse())
		Expect(IsValidKind(KindSQLite)).To(BeTrue())
	})

	It("should wrap open errors", func() {
		_, err := New(KindFile, "", 2)

		Expect(err).To(MatchError(ContainSubstring("failed to open disk file")))
	})
})
