package main

import (
	"io"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newConfigCmd())
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `The config command prints the configuration after applying the
defaults, the --config file and the command line flags. The output is a
valid configuration file.

Example:
  strawbctl config > strawbos.yaml
  strawbctl config --config strawbos.yaml --tick 250ms`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(cmd.OutOrStdout())
		},
	}
}

func runConfig(w io.Writer) error {
	return cfg.Write(w)
}
