package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/internal/config"
	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/internal/logger"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	args := os.Args[1:]
	debugMode := false
	cfgFile := ""
	tickFlag := ""

	// Extract flags; the explorer takes no positional arguments
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "--debug", "-d":
			debugMode = true
		case "--help", "-h":
			printHelp()
			os.Exit(0)
		case "--version", "-v":
			fmt.Printf("strawbexplorer %s\n", version)
			fmt.Printf("  commit: %s\n", commit)
			fmt.Printf("  built: %s\n", date)
			os.Exit(0)
		case "--config", "-c", "--tick":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "Error: %s requires a value\n", arg)
				printUsage()
				os.Exit(1)
			}
			i++
			if arg == "--tick" {
				tickFlag = args[i]
			} else {
				cfgFile = args[i]
			}
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown argument %q\n", arg)
			printUsage()
			os.Exit(1)
		}
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if tickFlag != "" {
		d, err := time.ParseDuration(tickFlag)
		if err != nil || d < 0 {
			fmt.Fprintf(os.Stderr, "Error: invalid --tick %q\n", tickFlag)
			os.Exit(1)
		}
		cfg.Kernel.Tick = d
	}
	if debugMode {
		cfg.Log.Enabled = true
		cfg.Log.Level = "debug"
	}

	// Initialize logger (must be before any logging calls)
	closeLog, err := logger.Init(cfg.LoggerOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
		closeLog = func() error { return nil }
	}
	defer closeLog()

	logger.Info("starting strawbexplorer", "tick", cfg.Kernel.Tick, "vfs", cfg.VFS.Path, "debug", debugMode)

	m := NewModel(Options{
		Kernel:       cfg.KernelOptions(logger.L),
		VFSPath:      cfg.VFS.Path,
		Autoload:     cfg.VFS.Autoload,
		PollInterval: DefaultPollRate,
	})

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		logger.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	if model, ok := finalModel.(Model); ok {
		if err := model.Close(); err != nil {
			logger.Warn("error closing resources", "error", err)
		}
	}

	logger.Info("strawbexplorer exited normally")
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: strawbexplorer [options]\n")
	fmt.Fprintf(os.Stderr, "Try 'strawbexplorer --help' for more information.\n")
}

func printHelp() {
	fmt.Println("strawbexplorer - Interactive TUI for the CinnamStrawbOS prototype")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  strawbexplorer [options]")
	fmt.Println()
	fmt.Println("DESCRIPTION:")
	fmt.Println("  Runs the CinnamStrawbOS console in a terminal UI with live process")
	fmt.Println("  and memory panels.")
	fmt.Println()
	fmt.Println("  Keys:")
	fmt.Println("    F1..F7      Ayuda, Limpiar, Procesos, Memoria, Archivos, Guardar, Cargar")
	fmt.Println("    Enter       Run the typed command")
	fmt.Println("    ↑/↓         Command history")
	fmt.Println("    Esc         Interrupt Ejecutar / clear the input")
	fmt.Println("    PgUp/PgDn   Scroll the terminal")
	fmt.Println("    Ctrl+Y      Copy the terminal to the clipboard")
	fmt.Println("    ?           Show shortcuts (empty input)")
	fmt.Println("    Ctrl+C      Quit")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -c, --config <file>   YAML configuration file")
	fmt.Println("      --tick <dur>      Simulated time per scheduler unit (e.g. 500ms)")
	fmt.Println("  -d, --debug           Write a debug log under ~/.strawbos/logs")
	fmt.Println("  -h, --help            Show this help")
	fmt.Println("  -v, --version         Show version")
}
