package mem

const (
	// DefaultCapacity is the size of a default arena, in bytes.
	DefaultCapacity = 4096

	// DefaultMaxBlocks is the size of a default block table.
	DefaultMaxBlocks = 64
)

// Owner is the key a block is allocated to, normally a process id.
type Owner int

// Unowned marks a free block.
const Unowned Owner = -1

// Block is one entry of the block table.
type Block struct {
	Owner Owner
	Start int
	Size  int
	Free  bool
}

// End returns the offset one past the last byte of the block.
func (b Block) End() int { return b.Start + b.Size }
