package main

import (
	"bufio"
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/internal/logger"
	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/internal/shell"
)

func init() {
	rootCmd.AddCommand(newShellCmd())
}

func newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive console",
		Long: `The shell command starts the interactive CinnamStrawbOS console.

The prompt is only printed when standard input is a terminal, so a
session can also be piped in. Ctrl+C during Ejecutar interrupts the
scheduling pass and returns to the prompt.

Example:
  strawbctl shell
  strawbctl shell --tick 200ms
  printf 'NuevoProceso a 3\nEjecutar 2\n' | strawbctl shell -q --tick 0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd.Context(), os.Stdin, cmd.OutOrStdout(), isTerminal(os.Stdin))
		},
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func runShell(ctx context.Context, in io.Reader, w io.Writer, interactive bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	sh := newSession(w, false)
	if !quiet {
		sh.Banner()
	}
	logger.Info("shell started", "interactive", interactive)

	sc := bufio.NewScanner(in)
	for {
		if interactive {
			io.WriteString(w, shell.Prompt)
		}
		if !sc.Scan() {
			if interactive {
				io.WriteString(w, "\n")
			}
			return sc.Err()
		}
		if handleInterruptible(ctx, sh, sc.Text()) {
			return nil
		}
	}
}

// handleInterruptible runs one line with Ctrl+C bound to its context.
func handleInterruptible(ctx context.Context, sh *shell.Shell, line string) bool {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	return sh.Handle(ctx, line)
}
