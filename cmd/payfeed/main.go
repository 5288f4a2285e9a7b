// main.go sets up the command-line interface for payfeed using the Cobra
// library: a root command that runs the demonstration scenario and prints
// the rendered activity feed.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"payfeed/internal/cli"
	"payfeed/internal/demo"
)

var version = "dev" // set by the linker

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// The error is already printed by Cobra on failure.
		os.Exit(1)
	}
}

// newRootCmd creates and configures a new root cobra command. A fresh
// instance per call keeps tests isolated.
func newRootCmd() *cobra.Command {
	var seedFile string

	cmd := &cobra.Command{
		Use:           "payfeed",
		Short:         "In-memory peer-to-peer payment ledger with a global activity feed",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, seedFile)
		},
	}
	cmd.PersistentFlags().StringVar(&seedFile, "seed-file", "",
		"seed demo accounts from a file (overrides SEED_FILE; empty uses the built-in scenario)")

	cmd.AddCommand(&cobra.Command{
		Use:   "demo",
		Short: "Run the demonstration scenario and print the feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, seedFile)
		},
	})

	return cmd
}

func runDemo(cmd *cobra.Command, seedFile string) error {
	cli.LoadEnvFile()
	cfg := cli.LoadAndValidateConfig()
	logger := cli.SetupLogger(cfg)

	if seedFile == "" {
		seedFile = cfg.SeedFile
	}
	return demo.NewRunner(logger, cmd.OutOrStdout()).Run(seedFile)
}
