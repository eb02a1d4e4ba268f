package workload

import (
	"math/bits"
	"math/rand"
	"sort"
)

// sortProgram fills memory with random bytes and sorts them in place.
type sortProgram struct {
	seed int64
}

func (p *sortProgram) Name() string {
	return "beta"
}

func (p *sortProgram) ExpectedAccesses(size uint64) uint64 {
	if size < 2 {
		return 2 * size
	}

	logN := uint64(bits.Len64(size))

	return 2*size + 2*size*logN
}

func (p *sortProgram) Run(mem Memory) uint64 {
	rng := rand.New(rand.NewSource(p.seed))
	size := mem.Size()

	for i := uint64(0); i < size; i++ {
		mem.Store(i, byte(rng.Intn(256)))
	}

	sort.Sort(byteSlice{mem})

	var total uint64
	for i := uint64(0); i < size; i++ {
		total += uint64(mem.Load(i))
	}

	return total
}

// byteSlice sorts the bytes of a memory.
type byteSlice struct {
	mem Memory
}

func (s byteSlice) Len() int {
	return int(s.mem.Size())
}

func (s byteSlice) Less(i, j int) bool {
	return s.mem.Load(uint64(i)) < s.mem.Load(uint64(j))
}

func (s byteSlice) Swap(i, j int) {
	a := s.mem.Load(uint64(i))
	b := s.mem.Load(uint64(j))
	s.mem.Store(uint64(i), b)
	s.mem.Store(uint64(j), a)
}
