package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/internal/shell"
)

var (
	runEncoding string
	runEcho     bool
)

func init() {
	rootCmd.AddCommand(newRunCmd())
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Execute a command script",
		Long: `The run command executes a script of console commands, one per line,
until Salir or the end of the file. Use "-" to read standard input.

Example:
  strawbctl run demo.txt
  strawbctl run demo.txt --echo --tick 0
  strawbctl run legacy.txt --encoding windows-1252`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd.Context(), cmd.OutOrStdout(), args)
		},
	}
	cmd.Flags().StringVar(&runEncoding, "encoding", "utf-8", "Script encoding: utf-8, latin1 or windows-1252")
	cmd.Flags().BoolVar(&runEcho, "echo", false, "Print each command after the prompt before running it")
	return cmd
}

func runScript(ctx context.Context, w io.Writer, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var src io.Reader = os.Stdin
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()
		src = f
	}
	r, err := shell.DecodeReader(src, runEncoding)
	if err != nil {
		return err
	}

	sh := newSession(w, runEcho)
	if !quiet {
		sh.Banner()
	}
	prompt := ""
	if runEcho {
		prompt = shell.Prompt
	}
	if err := sh.Run(ctx, r, prompt); err != nil {
		return fmt.Errorf("script %s: %w", args[0], err)
	}
	return nil
}
