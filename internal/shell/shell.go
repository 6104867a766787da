// Package shell implements the CinnamStrawbOS command interpreter shared by
// the console and the explorer.
package shell

import (
	"bufio"
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/internal/logger"
	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/internal/output"
	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/kernel"
	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/kernel/vfs"
)

// DefaultVFSPath is the dump file used when Options.VFSPath is empty.
const DefaultVFSPath = "vfs.dat"

// Prompt is the interactive prompt.
const Prompt = "CinnamStrawbOS> "

// Options configures a Shell.
type Options struct {
	// VFSPath is the file GuardarFS and CargarFS use. Default: DefaultVFSPath.
	VFSPath string

	// Echo repeats every line read by Run after the prompt, so a script
	// transcript reads like an interactive session.
	Echo bool

	// Logger receives a record per command. Default: logger.L.
	Logger *slog.Logger
}

// Shell parses command lines and applies them to a kernel and a file store.
// Handle must not be called concurrently.
type Shell struct {
	k    *kernel.Kernel
	fs   *vfs.Store
	out  *output.Writer
	opts Options
	log  *slog.Logger

	commands map[string]*command
	ordered  []*command
	parser   *shellwords.Parser
}

// New returns a shell bound to k and store, writing to out.
func New(k *kernel.Kernel, store *vfs.Store, out *output.Writer, opts Options) *Shell {
	if opts.VFSPath == "" {
		opts.VFSPath = DefaultVFSPath
	}
	sh := &Shell{
		k:        k,
		fs:       store,
		out:      out,
		opts:     opts,
		log:      opts.Logger,
		commands: make(map[string]*command),
		parser:   shellwords.NewParser(),
	}
	if sh.log == nil {
		sh.log = logger.L
	}
	sh.register()
	return sh
}

// Kernel returns the kernel the shell drives.
func (sh *Shell) Kernel() *kernel.Kernel { return sh.k }

// Files returns the file store the shell drives.
func (sh *Shell) Files() *vfs.Store { return sh.fs }

// VFSPath returns the dump file used by GuardarFS and CargarFS.
func (sh *Shell) VFSPath() string { return sh.opts.VFSPath }

// Banner writes the welcome banner.
func (sh *Shell) Banner() {
	sh.out.Printf("============================================================\n")
	sh.out.Printf("       Prototipo Sistema Operativo \"CinnamStrawbOS\"  \n")
	sh.out.Printf("============================================================\n")
	sh.out.Printf("                 Version 0.1 - 2025\n")
	sh.out.Printf("------------------------------------------------------------\n")
	sh.out.Printf("  Desarrollado por: Maria Alejandra Toro Ortiz\n")
	sh.out.Printf("                    Kevin Steven Guzman Acevedo\n")
	sh.out.Printf("------------------------------------------------------------\n")
	sh.out.Printf(" Escribe 'Ayuda' para ver la lista de comandos disponibles.\n")
	sh.out.Printf("============================================================\n\n")
}

// LoadVFS restores the file store from the dump file without printing
// anything. A missing dump is not an error.
func (sh *Shell) LoadVFS() error {
	err := sh.fs.Load(sh.opts.VFSPath)
	switch {
	case err == nil:
		sh.log.Info("vfs loaded", "path", sh.opts.VFSPath, "files", sh.fs.Len())
		return nil
	case errors.Is(err, fs.ErrNotExist):
		sh.log.Debug("no vfs dump", "path", sh.opts.VFSPath)
		return nil
	default:
		sh.log.Warn("vfs load failed", "path", sh.opts.VFSPath, "error", err)
		return err
	}
}

// Handle executes one command line and reports whether it asked to quit.
// Blank lines are ignored. ctx bounds Ejecutar.
func (sh *Shell) Handle(ctx context.Context, line string) bool {
	line = strings.TrimSpace(strings.TrimRight(line, "\r\n"))
	if line == "" {
		return false
	}

	args, err := sh.parser.Parse(line)
	if err != nil {
		sh.out.Warn("Linea invalida: %v", err)
		return false
	}
	if len(args) == 0 {
		return false
	}

	cmd, ok := sh.commands[strings.ToLower(args[0])]
	if !ok {
		sh.log.Debug("unknown command", "line", line)
		sh.out.Warn("Comando desconocido. Escribe 'Ayuda'")
		return false
	}

	sh.log.Debug("command", "name", cmd.name, "args", args[1:])
	if cmd.run != nil {
		cmd.run(ctx, input{line: line, args: args[1:]})
	}
	return cmd.quit
}

// Run reads commands from r until Salir, end of input or ctx is done.
// prompt, if non-empty, is written before each line.
func (sh *Shell) Run(ctx context.Context, r io.Reader, prompt string) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if prompt != "" {
			sh.out.Printf("%s", prompt)
		}
		if !sc.Scan() {
			if prompt != "" {
				sh.out.Printf("\n")
			}
			return sc.Err()
		}
		line := sc.Text()
		if sh.opts.Echo {
			sh.out.Printf("%s\n", line)
		}
		if sh.Handle(ctx, line) {
			return nil
		}
	}
}
