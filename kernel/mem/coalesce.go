package mem

// coalesce merges adjacent free blocks until none remain and returns the
// number of merges. A block that absorbs its neighbour is re-checked against
// the next one before moving on, so runs of three or more free blocks
// collapse in a single pass.
func (a *Arena) coalesce() int {
	merges := 0
	i := 0
	for i < len(a.blocks)-1 {
		cur, next := &a.blocks[i], a.blocks[i+1]
		if cur.Free && next.Free {
			cur.Size += next.Size
			a.blocks = append(a.blocks[:i+1], a.blocks[i+2:]...)
			merges++
			continue
		}
		i++
	}
	a.counters.Merges += merges
	return merges
}
