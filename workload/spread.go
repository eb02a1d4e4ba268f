package workload

import "math/rand"

// spreadProgram mixes loads, stores and instruction fetches at uniformly
// random addresses.
type spreadProgram struct {
	seed int64
}

func (p *spreadProgram) Name() string {
	return "delta"
}

func (p *spreadProgram) ExpectedAccesses(size uint64) uint64 {
	return size
}

func (p *spreadProgram) Run(mem Memory) uint64 {
	rng := rand.New(rand.NewSource(p.seed))
	size := mem.Size()

	var total uint64

	for i := uint64(0); i < size; i++ {
		addr := uint64(rng.Int63n(int64(size)))

		switch rng.Intn(3) {
		case 0:
			total += uint64(mem.Load(addr))
		case 1:
			mem.Store(addr, byte(rng.Intn(256)))
		default:
			total += uint64(mem.Fetch(addr))
		}
	}

	return total
}
