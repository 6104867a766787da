package proc

import (
	"fmt"
	"iter"

	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/internal/names"
)

// Table is a fixed-capacity process table.
//
// Slots are filled in id order and never reclaimed. Ids keep counting up
// across Reset, so the slot of a process is its id minus base.
type Table struct {
	procs    []Process
	capacity int
	base     ID
}

// NewTable returns an empty table with room for capacity processes.
// A capacity <= 0 selects DefaultCapacity.
func NewTable(capacity int) *Table {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Table{
		procs:    make([]Process, 0, capacity),
		capacity: capacity,
	}
}

// Reset forgets every process. Ids already handed out are not reused.
func (t *Table) Reset() {
	t.base += ID(len(t.procs))
	t.procs = t.procs[:0]
}

// Cap returns the number of slots in the table.
func (t *Table) Cap() int { return t.capacity }

// Len returns the number of processes created so far, dead or alive.
func (t *Table) Len() int { return len(t.procs) }

// Create adds a process with the given name and burst and returns its id.
//
// The table is left untouched on error.
func (t *Table) Create(name string, burst int) (ID, error) {
	if len(t.procs) >= t.capacity {
		return -1, fmt.Errorf("%w (limit %d)", ErrTableFull, t.capacity)
	}
	if burst < 0 {
		return -1, fmt.Errorf("%w: %d", ErrInvalidBurst, burst)
	}

	id := t.base + ID(len(t.procs))
	t.procs = append(t.procs, Process{
		ID:        id,
		Name:      names.Clamp(name, MaxNameLen),
		Burst:     burst,
		Remaining: burst,
		Alive:     true,
	})
	return id, nil
}

// All yields every process in id order, including terminated ones.
// The sequence can be ranged over any number of times.
func (t *Table) All() iter.Seq[Process] {
	return func(yield func(Process) bool) {
		for _, p := range t.procs {
			if !yield(p) {
				return
			}
		}
	}
}

// List returns a copy of every process in id order.
func (t *Table) List() []Process {
	out := make([]Process, len(t.procs))
	copy(out, t.procs)
	return out
}

// Count returns the number of processes still eligible to run.
func (t *Table) Count() int {
	n := 0
	for _, p := range t.procs {
		if p.Runnable() {
			n++
		}
	}
	return n
}

// Lookup returns the process with the given id.
func (t *Table) Lookup(id ID) (Process, error) {
	if !t.valid(id) {
		return Process{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return t.procs[id-t.base], nil
}

// FindByName returns the lowest-id process whose name matches.
func (t *Table) FindByName(name string) (Process, bool) {
	for _, p := range t.procs {
		if names.Equal(p.Name, name) {
			return p, true
		}
	}
	return Process{}, false
}

// Kill terminates a process regardless of the work it had left.
// Killing an already terminated process succeeds.
func (t *Table) Kill(id ID) error {
	if !t.valid(id) {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	p := &t.procs[id-t.base]
	p.Alive = false
	p.Remaining = 0
	return nil
}

func (t *Table) valid(id ID) bool {
	return id >= t.base && int(id-t.base) < len(t.procs)
}

// consume executes one unit of process id and reports whether it finished.
// The caller guarantees id is valid and runnable.
func (t *Table) consume(id ID) (remaining int, finished bool) {
	p := &t.procs[id-t.base]
	p.Remaining--
	if p.Remaining <= 0 {
		p.Remaining = 0
		p.Alive = false
		return 0, true
	}
	return p.Remaining, false
}
