package kernel

import (
	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/kernel/mem"
	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/kernel/proc"
)

// Caller-visible failure classes. Errors returned by Kernel methods match
// one of these under errors.Is.
var (
	ErrTableFull = proc.ErrTableFull
	ErrNotFound  = proc.ErrNotFound
	ErrNoFit     = mem.ErrNoFit
)
