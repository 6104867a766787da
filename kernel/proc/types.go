package proc

const (
	// DefaultCapacity is the number of process slots in a default table.
	DefaultCapacity = 32

	// MaxNameLen is the longest stored process name, in bytes.
	MaxNameLen = 31
)

// ID identifies a process. Ids are assigned sequentially from 0.
type ID int

// Process is a snapshot of one process slot.
type Process struct {
	ID        ID
	Name      string
	Burst     int // total service units requested
	Remaining int // units still to execute
	Alive     bool
}

// Runnable reports whether the scheduler would still grant the process time.
func (p Process) Runnable() bool {
	return p.Alive && p.Remaining > 0
}
