package mem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// assertInvariants fails the test if the arena violates any block table
// invariant.
func assertInvariants(t *testing.T, a *Arena) {
	t.Helper()
	require.NoError(t, a.Verify())

	sum := 0
	for _, b := range a.Map() {
		sum += b.Size
	}
	require.Equal(t, a.Capacity(), sum, "conservation")
}

// newArenaWithLayout builds an arena whose blocks have the given sizes, in
// order, owned by owners[i] (Unowned for free). Adjacent free sizes are not
// merged, so callers can set up states that only FreeByOwner should repair.
func newArenaWithLayout(t *testing.T, sizes []int, owners []Owner) *Arena {
	t.Helper()
	require.Equal(t, len(sizes), len(owners))

	total := 0
	for _, s := range sizes {
		total += s
	}
	a := NewArena(total, DefaultMaxBlocks)
	a.blocks = a.blocks[:0]
	start := 0
	for i, s := range sizes {
		a.blocks = append(a.blocks, Block{
			Owner: owners[i],
			Start: start,
			Size:  s,
			Free:  owners[i] == Unowned,
		})
		start += s
	}
	return a
}
