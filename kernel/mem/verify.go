package mem

import "fmt"

// Verify checks the block table against the arena invariants and returns an
// ErrCorruptMap error describing the first violation found.
func (a *Arena) Verify() error {
	if len(a.blocks) == 0 {
		return fmt.Errorf("%w: empty block table", ErrCorruptMap)
	}
	if len(a.blocks) > a.maxBlocks {
		return fmt.Errorf("%w: %d blocks exceed table size %d", ErrCorruptMap, len(a.blocks), a.maxBlocks)
	}
	if a.blocks[0].Start != 0 {
		return fmt.Errorf("%w: block 0 starts at %d", ErrCorruptMap, a.blocks[0].Start)
	}

	total := 0
	for i, b := range a.blocks {
		if b.Size <= 0 {
			return fmt.Errorf("%w: block %d has size %d", ErrCorruptMap, i, b.Size)
		}
		if b.Free != (b.Owner == Unowned) {
			return fmt.Errorf("%w: block %d free=%t owner=%d", ErrCorruptMap, i, b.Free, b.Owner)
		}
		if i > 0 {
			prev := a.blocks[i-1]
			if prev.End() != b.Start {
				return fmt.Errorf("%w: block %d ends at %d, block %d starts at %d",
					ErrCorruptMap, i-1, prev.End(), i, b.Start)
			}
			if prev.Free && b.Free {
				return fmt.Errorf("%w: blocks %d and %d are both free", ErrCorruptMap, i-1, i)
			}
		}
		total += b.Size
	}

	if last := a.blocks[len(a.blocks)-1]; last.End() != a.capacity {
		return fmt.Errorf("%w: last block ends at %d, capacity %d", ErrCorruptMap, last.End(), a.capacity)
	}
	if total != a.capacity {
		return fmt.Errorf("%w: sizes sum to %d, capacity %d", ErrCorruptMap, total, a.capacity)
	}
	return nil
}
