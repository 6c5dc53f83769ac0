package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"dpltest/internal/cli"
	"dpltest/internal/cli/commands"
	"dpltest/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "dpltest",
		Short: "Fixture-driven conformance harness for dplang",
		Long: `Runs annotated .dpl fixtures through the dplang interpreter and reports,
statement by statement, whether each printed line matches its "// expect: " annotation.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Load config: defaults, dpltest.yaml, .env and DPLTEST_* variables
	cfg, err := config.Load(config.DefaultProjectPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Execute root command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
