package mem

import (
	"fmt"
	"iter"
)

// Arena is a first-fit allocator over a fixed byte range.
type Arena struct {
	capacity  int
	maxBlocks int

	// Kept in address order; see the package invariants.
	blocks []Block

	counters counters
}

// counters holds cumulative operation counts since the last Init.
type counters struct {
	AllocCalls  int // Total Alloc() calls
	AllocFailed int // Alloc() calls that returned an error
	ExactFits   int // Allocations that claimed a block in place
	Splits      int // Allocations that split a larger block
	FreeCalls   int // Total FreeByOwner() calls
	BlocksFreed int // Blocks transitioned to free
	Merges      int // Adjacent free pairs merged by coalescing
}

// NewArena returns an initialised arena. Non-positive arguments select
// DefaultCapacity and DefaultMaxBlocks.
func NewArena(capacity, maxBlocks int) *Arena {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if maxBlocks <= 0 {
		maxBlocks = DefaultMaxBlocks
	}
	a := &Arena{
		capacity:  capacity,
		maxBlocks: maxBlocks,
		blocks:    make([]Block, 0, maxBlocks),
	}
	a.Init()
	return a
}

// Init resets the arena to a single free block spanning the whole capacity.
func (a *Arena) Init() {
	a.blocks = append(a.blocks[:0], Block{
		Owner: Unowned,
		Start: 0,
		Size:  a.capacity,
		Free:  true,
	})
	a.counters = counters{}
}

// Capacity returns the arena size in bytes.
func (a *Arena) Capacity() int { return a.capacity }

// MaxBlocks returns the size of the block table.
func (a *Arena) MaxBlocks() int { return a.maxBlocks }

// Len returns the number of blocks currently in the table.
func (a *Arena) Len() int { return len(a.blocks) }

// Alloc gives size bytes to owner from the first free block that can hold
// them, and returns the index of the owner's block.
//
// Requests with size <= 0, size > capacity or a negative owner fail with
// ErrNoFit before any scanning. Allocation is all-or-nothing: on error the
// block table is unchanged.
func (a *Arena) Alloc(owner Owner, size int) (int, error) {
	a.counters.AllocCalls++
	idx, err := a.alloc(owner, size)
	if err != nil {
		a.counters.AllocFailed++
	}
	return idx, err
}

func (a *Arena) alloc(owner Owner, size int) (int, error) {
	if size <= 0 || size > a.capacity {
		return -1, fmt.Errorf("%w: size %d outside (0, %d]", ErrNoFit, size, a.capacity)
	}
	if owner < 0 {
		return -1, fmt.Errorf("%w: invalid owner %d", ErrNoFit, owner)
	}

	for i := range a.blocks {
		b := &a.blocks[i]
		if !b.Free || b.Size < size {
			continue
		}

		if b.Size == size {
			b.Owner = owner
			b.Free = false
			a.counters.ExactFits++
			return i, nil
		}

		if len(a.blocks) >= a.maxBlocks {
			return -1, fmt.Errorf("%w (limit %d)", ErrBlockTableFull, a.maxBlocks)
		}
		tail := Block{
			Owner: Unowned,
			Start: b.Start + size,
			Size:  b.Size - size,
			Free:  true,
		}
		b.Size = size
		b.Owner = owner
		b.Free = false
		a.insert(i+1, tail)
		a.counters.Splits++
		return i, nil
	}
	return -1, fmt.Errorf("%w: no free block of %d bytes", ErrNoFit, size)
}

// insert places b at index i, shifting later blocks right.
func (a *Arena) insert(i int, b Block) {
	a.blocks = append(a.blocks, Block{})
	copy(a.blocks[i+1:], a.blocks[i:])
	a.blocks[i] = b
}

// FreeByOwner releases every block held by owner and returns how many were
// released. Adjacent free blocks are merged when anything was released.
func (a *Arena) FreeByOwner(owner Owner) int {
	a.counters.FreeCalls++
	freed := 0
	for i := range a.blocks {
		b := &a.blocks[i]
		if !b.Free && b.Owner == owner {
			b.Free = true
			b.Owner = Unowned
			freed++
		}
	}
	if freed > 0 {
		a.counters.BlocksFreed += freed
		a.coalesce()
	}
	return freed
}

// OwnedBy returns the number of bytes currently held by owner.
func (a *Arena) OwnedBy(owner Owner) int {
	n := 0
	for _, b := range a.blocks {
		if !b.Free && b.Owner == owner {
			n += b.Size
		}
	}
	return n
}

// Map returns a copy of the block table in address order.
func (a *Arena) Map() []Block {
	out := make([]Block, len(a.blocks))
	copy(out, a.blocks)
	return out
}

// Blocks yields (index, block) pairs in address order.
func (a *Arena) Blocks() iter.Seq2[int, Block] {
	return func(yield func(int, Block) bool) {
		for i, b := range a.blocks {
			if !yield(i, b) {
				return
			}
		}
	}
}
