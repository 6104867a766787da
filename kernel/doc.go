// Package kernel ties the process table, the round-robin scheduler and the
// memory arena together behind one explicit context object.
//
// A Kernel owns exactly one proc.Table and one mem.Arena. Nothing else holds
// a reference to them, so several kernels can live side by side (one per
// test, one per front end) without sharing state.
//
// # Concurrency
//
// Each table is guarded by its own mutex. Run holds the process mutex for
// the whole scheduling pass, so process creation and termination wait for
// the pass to end (or for its context to be cancelled). Process reads are
// served from an immutable snapshot that is republished after every
// mutation and after every simulated unit, so Processes, Ready and Lookup
// never block behind a pass. Memory operations only take the memory mutex.
//
// The arena and the process table are never linked: killing a process does
// not release its memory. Free must be called explicitly.
package kernel
