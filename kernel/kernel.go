package kernel

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/internal/logger"
	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/kernel/mem"
	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/kernel/proc"
)

// Kernel is the simulated kernel context.
type Kernel struct {
	procMu sync.Mutex
	procs  *proc.Table
	view   atomic.Pointer[[]proc.Process] // republished after every process mutation

	memMu sync.Mutex
	arena *mem.Arena

	ticker proc.Ticker
	log    *slog.Logger
}

// New returns a kernel with an empty process table and a fully free arena.
func New(opts Options) *Kernel {
	k := &Kernel{
		procs:  proc.NewTable(opts.MaxProcesses),
		arena:  mem.NewArena(opts.MemorySize, opts.MaxBlocks),
		ticker: opts.Ticker,
		log:    opts.Logger,
	}
	if k.ticker == nil {
		k.ticker = proc.NoDelay
	}
	if k.log == nil {
		k.log = logger.L
	}
	k.publish()
	k.log.Debug("kernel initialised",
		"max_processes", k.procs.Cap(),
		"memory_size", k.arena.Capacity(),
		"max_blocks", k.arena.MaxBlocks())
	return k
}

// Reset discards every process and returns the arena to a single free block.
func (k *Kernel) Reset() {
	k.procMu.Lock()
	k.procs.Reset()
	k.publish()
	k.procMu.Unlock()

	k.memMu.Lock()
	k.arena.Init()
	k.memMu.Unlock()

	k.log.Debug("kernel reset")
}

// publish snapshots the process table for lock-free readers.
// Callers hold procMu.
func (k *Kernel) publish() {
	list := k.procs.List()
	k.view.Store(&list)
}

// MaxProcesses returns the number of process slots.
func (k *Kernel) MaxProcesses() int { return k.procs.Cap() }

// CreateProcess adds a process and returns its id.
func (k *Kernel) CreateProcess(name string, burst int) (proc.ID, error) {
	k.procMu.Lock()
	defer k.procMu.Unlock()

	id, err := k.procs.Create(name, burst)
	if err != nil {
		k.log.Debug("create process failed", "name", name, "burst", burst, "error", err)
		return id, err
	}
	k.publish()
	k.log.Debug("process created", "pid", id, "name", name, "burst", burst)
	return id, nil
}

// Processes returns every process in id order, including terminated ones.
// It does not wait for a running scheduling pass.
func (k *Kernel) Processes() []proc.Process {
	list := *k.view.Load()
	out := make([]proc.Process, len(list))
	copy(out, list)
	return out
}

// Ready returns the number of processes still eligible to run.
// It does not wait for a running scheduling pass.
func (k *Kernel) Ready() int {
	n := 0
	for _, p := range *k.view.Load() {
		if p.Runnable() {
			n++
		}
	}
	return n
}

// Lookup returns a single process by id.
// It does not wait for a running scheduling pass.
func (k *Kernel) Lookup(id proc.ID) (proc.Process, error) {
	list := *k.view.Load()
	if len(list) == 0 || id < list[0].ID || int(id-list[0].ID) >= len(list) {
		return proc.Process{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return list[id-list[0].ID], nil
}

// KillProcess terminates a process. Its memory is not released.
func (k *Kernel) KillProcess(id proc.ID) error {
	k.procMu.Lock()
	defer k.procMu.Unlock()

	if err := k.procs.Kill(id); err != nil {
		k.log.Debug("kill process failed", "pid", id, "error", err)
		return err
	}
	k.publish()
	k.log.Debug("process killed", "pid", id)
	return nil
}

// Run executes a round-robin pass with the given quantum until no process is
// runnable or ctx is done. obs, if non-nil, sees every scheduler event; it is
// called with the process table locked and must not create or kill processes.
func (k *Kernel) Run(ctx context.Context, quantum int, obs proc.Observer) (proc.Report, error) {
	k.procMu.Lock()
	defer k.procMu.Unlock()

	rr := proc.RoundRobin{
		Quantum: quantum,
		Ticker:  k.ticker,
		Observer: func(ev proc.Event) {
			if ev.Kind == proc.EventUnit {
				k.publish()
			}
			if obs != nil {
				obs(ev)
			}
		},
	}

	k.log.Debug("scheduler started", "quantum", quantum, "ready", k.procs.Count())
	rep, err := rr.Run(ctx, k.procs)
	k.publish()
	if err != nil {
		k.log.Warn("scheduler interrupted", "sweeps", rep.Sweeps, "units", rep.Units, "error", err)
		return rep, err
	}
	k.log.Debug("scheduler finished", "sweeps", rep.Sweeps, "units", rep.Units, "finished", len(rep.Finished))
	return rep, nil
}

// Alloc gives size bytes of the arena to owner and returns the block index.
func (k *Kernel) Alloc(owner mem.Owner, size int) (int, error) {
	k.memMu.Lock()
	defer k.memMu.Unlock()

	idx, err := k.arena.Alloc(owner, size)
	if err != nil {
		k.log.Debug("alloc failed", "owner", owner, "size", size, "error", err)
		return idx, err
	}
	k.log.Debug("alloc", "owner", owner, "size", size, "block", idx)
	return idx, nil
}

// Free releases every block held by owner and returns how many were released.
func (k *Kernel) Free(owner mem.Owner) int {
	k.memMu.Lock()
	defer k.memMu.Unlock()

	n := k.arena.FreeByOwner(owner)
	k.log.Debug("free", "owner", owner, "blocks", n)
	return n
}

// MemoryMap returns the arena block table in address order.
func (k *Kernel) MemoryMap() []mem.Block {
	k.memMu.Lock()
	defer k.memMu.Unlock()
	return k.arena.Map()
}

// MemoryStats returns arena occupancy figures.
func (k *Kernel) MemoryStats() mem.Stats {
	k.memMu.Lock()
	defer k.memMu.Unlock()
	return k.arena.Stats()
}

// MemoryState returns the block table and the stats computed from that same
// table, read under one lock.
func (k *Kernel) MemoryState() ([]mem.Block, mem.Stats) {
	k.memMu.Lock()
	defer k.memMu.Unlock()
	return k.arena.Map(), k.arena.Stats()
}

// OwnedBy returns the number of arena bytes held by owner.
func (k *Kernel) OwnedBy(owner mem.Owner) int {
	k.memMu.Lock()
	defer k.memMu.Unlock()
	return k.arena.OwnedBy(owner)
}

// VerifyMemory checks the arena invariants.
func (k *Kernel) VerifyMemory() error {
	k.memMu.Lock()
	defer k.memMu.Unlock()
	return k.arena.Verify()
}
