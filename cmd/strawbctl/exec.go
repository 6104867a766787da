package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newExecCmd())
}

func newExecCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exec <command>...",
		Short: "Run commands given as arguments against one kernel",
		Long: `The exec command runs each argument as one console line, in order,
against a single kernel. Execution stops at Salir.

Example:
  strawbctl exec "NuevoProceso A 5" "NuevoProceso B 2" "Ejecutar 3" --tick 0
  strawbctl exec "AsignarMemoria 1 100" MostrarMapaMemoria`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExec(cmd.Context(), cmd.OutOrStdout(), args)
		},
	}
}

func runExec(ctx context.Context, w io.Writer, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	sh := newSession(w, false)
	for _, line := range args {
		if sh.Handle(ctx, line) {
			break
		}
	}
	return nil
}
