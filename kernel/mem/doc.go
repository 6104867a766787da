// Package mem implements the simulated memory arena: a fixed byte range
// partitioned into an ordered table of blocks, managed by a first-fit
// allocator that splits on allocation and coalesces on release.
//
// # Overview
//
// An Arena starts as a single free block spanning its whole capacity.
// Alloc scans blocks in address order and takes the first free block that is
// large enough. An exact fit is claimed in place; a larger block is split into
// an owned head and a free tail that is inserted right after it.
//
//	a := mem.NewArena(4096, 64)
//	idx, err := a.Alloc(1, 1000) // block 0 {0, 1000, owner 1}
//	if err != nil {
//	    return err // mem.ErrNoFit
//	}
//	a.FreeByOwner(1) // block 0 is free again and merges with its neighbour
//
// # Invariants
//
// After every operation the block table satisfies:
//
//   - blocks are sorted by Start, block 0 starts at 0
//   - each block ends where the next one starts, the last ends at capacity
//   - sizes sum to the capacity
//   - no two adjacent blocks are both free
//
// Verify checks all of them and is used heavily by the tests.
//
// # Owners
//
// An Owner is an opaque key, normally a process id. The arena knows nothing
// about processes: releasing memory is always an explicit FreeByOwner call.
//
// # Thread Safety
//
// Arena instances are not thread-safe. The kernel package serialises access.
package mem
