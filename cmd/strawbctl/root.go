package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/internal/config"
	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/internal/logger"
	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/internal/output"
	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/internal/shell"
	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/kernel"
	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/kernel/vfs"
)

var (
	// Global flags
	cfgFile string
	tick    time.Duration
	vfsPath string
	debug   bool
	quiet   bool

	// Set at build time with -ldflags "-X main.version=...".
	version = "dev"
	commit  = "none"
	date    = "unknown"

	// Effective configuration, resolved before every command runs.
	cfg      = config.Default()
	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "strawbctl",
	Short: "CinnamStrawbOS simulated kernel console",
	Long: `strawbctl runs the CinnamStrawbOS prototype operating system: a process
table with a round-robin scheduler, a first-fit memory arena and a small
virtual file store, driven by the Spanish command language of the original
console (NuevoProceso, Ejecutar, AsignarMemoria, ...).`,
	Version:            version,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error { return closeLog() },
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().DurationVar(&tick, "tick", 0, "Simulated time per scheduler unit (overrides kernel.tick)")
	rootCmd.PersistentFlags().StringVar(&vfsPath, "vfs", "", "VFS dump file (overrides vfs.path)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Write a debug log under ~/.strawbos/logs")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress the banner")
	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} {{.Version}}\n  commit: %s\n  built: %s\n", commit, date))
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup resolves the configuration: defaults, then the file, then flags.
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("tick") {
		c.Kernel.Tick = tick
	}
	if flags.Changed("vfs") {
		c.VFS.Path = vfsPath
	}
	if debug {
		c.Log.Enabled = true
		c.Log.Level = "debug"
	}
	if err := c.Validate(); err != nil {
		return err
	}
	cfg = c

	closeFn, err := logger.Init(cfg.LoggerOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
		return nil
	}
	closeLog = closeFn
	logger.Debug("config resolved", "command", cmd.Name(), "tick", cfg.Kernel.Tick, "vfs", cfg.VFS.Path)
	return nil
}

// newSession builds a kernel, a file store and a shell writing to w.
func newSession(w io.Writer, echo bool) *shell.Shell {
	k := kernel.New(cfg.KernelOptions(logger.L))
	sh := shell.New(k, vfs.New(), output.New(w, output.Console), shell.Options{
		VFSPath: cfg.VFS.Path,
		Echo:    echo,
		Logger:  logger.L,
	})
	if cfg.VFS.Autoload {
		if err := sh.LoadVFS(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}
	return sh
}
