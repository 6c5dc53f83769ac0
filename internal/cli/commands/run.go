package commands

import (
	"errors"
	"fmt"
	"slices"

	"dpltest/internal/config"
	"dpltest/internal/discovery"
	"dpltest/internal/domain"
	"dpltest/internal/execution"
	"dpltest/internal/parser"
	"dpltest/internal/storage"
	"dpltest/internal/ui"

	"github.com/spf13/cobra"
)

// ErrFailures is returned by run --strict when a statement failed
var ErrFailures = errors.New("one or more statements failed")

// RunCommand handles the run command
type RunCommand struct {
	config  *config.Config
	filter  *discovery.Filter
	parser  parser.Parser
	runner  execution.ProcessRunner
	storage storage.Storage
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	filter *discovery.Filter,
	p parser.Parser,
	runner execution.ProcessRunner,
	st storage.Storage,
) *RunCommand {
	return &RunCommand{
		config:  cfg,
		filter:  filter,
		parser:  p,
		runner:  runner,
		storage: st,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	flags := rc.config.Flags

	// Discover fixtures
	fixtures := rc.filter.Seq(newScanner(rc.config).Scan(rc.config.GetFixtureDir()), flags.NameFilter)

	reporter := ui.NewConsoleReporter(cmd.OutOrStdout(), cmd.ErrOrStderr(), flags.WarnMismatch)
	suite := execution.NewSuiteRunner(rc.parser, rc.runner, reporter)

	if flags.Progress {
		// The bar needs a total, so the lazy sequence is drained up front
		paths := slices.Collect(fixtures)
		suite.SetProgress(ui.NewProgressBar(len(paths), cmd.ErrOrStderr()))
		fixtures = slices.Values(paths)
	}

	// Execute fixtures
	results, duration, err := suite.Execute(cmd.Context(), fixtures)
	if err != nil {
		return err
	}

	output := domain.Summarize(results, rc.config.Interpreter, duration)

	// Save results
	if flags.Save {
		if err := rc.storage.Save(&output); err != nil {
			return fmt.Errorf("failed to save run results: %w", err)
		}
	}

	if flags.Summary && len(results) > 0 {
		ui.NewFormatter(rc.config, rc.parser, cmd.OutOrStdout()).PrintSummary(output)
	}

	if flags.Strict && output.Meta.FailedCases > 0 {
		return ErrFailures
	}
	return nil
}
