package mem

// Stats describes the occupancy of an arena.
type Stats struct {
	Capacity    int
	MaxBlocks   int
	Blocks      int
	FreeBlocks  int
	UsedBytes   int
	FreeBytes   int
	LargestFree int

	// Fragmentation is 1 - LargestFree/FreeBytes: 0 when all free space is
	// one block, approaching 1 as free space splinters. 0 when nothing is free.
	Fragmentation float64

	// Cumulative counters since the last Init.
	AllocCalls  int
	AllocFailed int
	ExactFits   int
	Splits      int
	FreeCalls   int
	BlocksFreed int
	Merges      int
}

// Stats walks the block table and returns occupancy figures.
func (a *Arena) Stats() Stats {
	s := Stats{
		Capacity:    a.capacity,
		MaxBlocks:   a.maxBlocks,
		Blocks:      len(a.blocks),
		AllocCalls:  a.counters.AllocCalls,
		AllocFailed: a.counters.AllocFailed,
		ExactFits:   a.counters.ExactFits,
		Splits:      a.counters.Splits,
		FreeCalls:   a.counters.FreeCalls,
		BlocksFreed: a.counters.BlocksFreed,
		Merges:      a.counters.Merges,
	}
	for _, b := range a.blocks {
		if !b.Free {
			s.UsedBytes += b.Size
			continue
		}
		s.FreeBlocks++
		s.FreeBytes += b.Size
		if b.Size > s.LargestFree {
			s.LargestFree = b.Size
		}
	}
	if s.FreeBytes > 0 {
		s.Fragmentation = 1 - float64(s.LargestFree)/float64(s.FreeBytes)
	}
	return s
}

// Utilization returns the used fraction of the arena in [0, 1].
func (s Stats) Utilization() float64 {
	if s.Capacity == 0 {
		return 0
	}
	return float64(s.UsedBytes) / float64(s.Capacity)
}
