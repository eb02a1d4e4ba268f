package workload

// scanProgram fills memory with a ramp and sums it sequentially several
// times.
type scanProgram struct {
	passes int
}

func (p *scanProgram) Name() string {
	return "alpha"
}

func (p *scanProgram) ExpectedAccesses(size uint64) uint64 {
	return size * uint64(p.passes+1)
}

func (p *scanProgram) Run(mem Memory) uint64 {
	size := mem.Size()

	for i := uint64(0); i < size; i++ {
		mem.Store(i, byte(i%256))
	}

	var total uint64

	for j := 0; j < p.passes; j++ {
		for i := uint64(0); i < size; i++ {
			total += uint64(mem.Load(i))
		}
	}

	return total
}
