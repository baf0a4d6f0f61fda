// Package cli implements the vecstat command tree.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Global flags
	verbose  bool
	cfgFile  string
	output   string
	maxBytes int

	logger = log.New(io.Discard, "[vecstat] ", log.LstdFlags)
)

// NewRootCommand builds the vecstat command tree.
func NewRootCommand() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "vecstat",
		Short: "Inspect growth and failure behaviour of the vector container",
		Long: `vecstat drives a vector through workloads and reports how its length,
capacity and storage activity evolve.

Commands:
  grow      Push N elements and show every capacity transition
  run       Execute a YAML script of vector operations
  compare   Compare two integer sequences lexicographically`,
		Version:       "0.1.0-dev",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logger.SetOutput(cmd.ErrOrStderr())
			} else {
				logger.SetOutput(io.Discard)
			}
			return initConfig(v, cmd)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: vecstat.yaml in ., ./config, $HOME/.vecstat)")
	root.PersistentFlags().StringVarP(&output, "output", "o", "table", "output format (table, json, yaml)")
	root.PersistentFlags().IntVar(&maxBytes, "max-bytes", 0, "storage budget in bytes (0 for none)")

	root.AddCommand(
		newGrowCommand(v),
		newRunCommand(v),
		newCompareCommand(),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
