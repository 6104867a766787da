package mem

import (
	"errors"
	"fmt"
)

var (
	// ErrNoFit indicates an invalid request or that no free block is large enough.
	ErrNoFit = errors.New("mem: no fit")

	// ErrBlockTableFull indicates that a split needed a new block table entry and
	// the table was full. It matches ErrNoFit under errors.Is.
	ErrBlockTableFull = fmt.Errorf("%w: block table full", ErrNoFit)

	// ErrCorruptMap indicates that the block table violates an arena invariant.
	ErrCorruptMap = errors.New("mem: corrupt block map")
)
