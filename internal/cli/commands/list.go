package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"dpltest/internal/config"
	"dpltest/internal/discovery"
	"dpltest/internal/parser"
	"dpltest/internal/storage"
	"dpltest/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config  *config.Config
	filter  *discovery.Filter
	parser  parser.Parser
	storage storage.Storage
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	filter *discovery.Filter,
	p parser.Parser,
	st storage.Storage,
) *ListCommand {
	return &ListCommand{
		config:  cfg,
		filter:  filter,
		parser:  p,
		storage: st,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	fixtures := newScanner(lc.config).Collect(lc.config.GetFixtureDir())

	// Filter fixtures
	fixtures = lc.filter.FilterByName(fixtures, lc.config.Flags.NameFilter)

	if len(fixtures) == 0 {
		color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(), "No fixtures found")
		return nil
	}

	// Marks are best effort: no saved run means no marks
	failedPaths, err := lc.storage.FailedPaths()
	if err != nil {
		failedPaths = nil
	}

	formatter := ui.NewFormatter(lc.config, lc.parser, cmd.OutOrStdout())
	return formatter.PrintFixtureList(fixtures, lc.config.Flags.TestCases, failedPaths)
}
