package workload

import "math/rand"

// focusProgram clears memory, then hammers small windows at random places.
type focusProgram struct {
	seed   int64
	rounds int
	writes int
	window uint64
}

func (p *focusProgram) Name() string {
	return "gamma"
}

func (p *focusProgram) ExpectedAccesses(size uint64) uint64 {
	return 2*size + uint64(p.rounds*p.writes)
}

func (p *focusProgram) Run(mem Memory) uint64 {
	rng := rand.New(rand.NewSource(p.seed))
	size := mem.Size()

	for i := uint64(0); i < size; i++ {
		mem.Store(i, 0)
	}

	for j := 0; j < p.rounds; j++ {
		start := uint64(rng.Int63n(int64(size)))

		for i := 0; i < p.writes; i++ {
			offset := uint64(rng.Int63n(int64(p.window)))
			mem.Store((start+offset)%size, byte(rng.Intn(256)))
		}
	}

	var total uint64
	for i := uint64(0); i < size; i++ {
		total += uint64(mem.Load(i))
	}

	return total
}
