package kernel

import (
	"log/slog"

	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/kernel/proc"
)

// Options configures a Kernel. Zero values select the defaults of the
// underlying packages.
type Options struct {
	// MaxProcesses is the number of process slots. Default: proc.DefaultCapacity.
	MaxProcesses int

	// MemorySize is the arena capacity in bytes. Default: mem.DefaultCapacity.
	MemorySize int

	// MaxBlocks is the size of the arena block table. Default: mem.DefaultMaxBlocks.
	MaxBlocks int

	// Ticker paces every simulated unit of a scheduling pass.
	// Default: proc.NoDelay.
	Ticker proc.Ticker

	// Logger receives debug records for every kernel operation.
	// Default: logger.L at the time New is called.
	Logger *slog.Logger
}
