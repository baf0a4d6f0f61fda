package cli

import (
	"fmt"

	"github.com/pavanmanishd/vector"
	"github.com/pavanmanishd/vector/internal/workload"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newGrowCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Push N elements and show every capacity transition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			rep, err := workload.Grow(cfg)
			if err != nil {
				// Render what was recorded before the failure.
				logger.Printf("grow stopped: %v", err)
				if rerr := workload.Render(cmd.OutOrStdout(), rep, cfg.Output); rerr != nil {
					return rerr
				}
				return err
			}
			return workload.Render(cmd.OutOrStdout(), rep, cfg.Output)
		},
	}
	cmd.Flags().Int("ops", 16, "number of elements to push")
	cmd.Flags().Int("reserve", 0, "reserve this many slots before pushing")
	cmd.Flags().Bool("shrink", false, "shrink to fit after pushing")
	return cmd
}

func newRunCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "run <script.yaml>",
		Short: "Execute a YAML script of vector operations",
		Long: `Execute a YAML script of vector operations against a fresh vector of ints.

Script format:
  name: churn
  steps:
    - op: reserve   # push, pop, resize, fill, reserve, shrink, clear, at, set
      arg: 8
    - op: push
      value: 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			script, err := workload.LoadScript(args[0])
			if err != nil {
				return err
			}
			logger.Printf("running %q: %d steps", script.Name, len(script.Steps))
			rep, err := workload.Run(script, cfg)
			if err != nil {
				return err
			}
			return workload.Render(cmd.OutOrStdout(), rep, cfg.Output)
		},
	}
}

func newCompareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Compare two integer sequences lexicographically",
		Long: `Compare two comma-separated integer sequences and print -1, 0 or 1.

Example:
  vecstat compare 1,2,3 1,2,4   # prints -1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := workload.ParseInts(args[0])
			if err != nil {
				return fmt.Errorf("first sequence: %w", err)
			}
			b, err := workload.ParseInts(args[1])
			if err != nil {
				return fmt.Errorf("second sequence: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), vector.Compare(a, b))
			return nil
		},
	}
}
