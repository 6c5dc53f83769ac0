package commands

import (
	"dpltest/internal/cli"
	"dpltest/internal/config"
	"dpltest/internal/discovery"
	"dpltest/internal/execution"
	"dpltest/internal/parser"
	"dpltest/internal/storage"
	"dpltest/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Failures *FailuresCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	filter := discovery.NewFilter()
	annotationParser := parser.NewAnnotationParser()
	runner := execution.NewRunner(cfg)
	jsonStorage := storage.NewJSONStorage(cfg)
	errorViewer := ui.NewErrorViewer(jsonStorage)

	return &Commands{
		Run:      NewRunCommand(cfg, filter, annotationParser, runner, jsonStorage),
		List:     NewListCommand(cfg, filter, annotationParser, jsonStorage),
		Failures: NewFailuresCommand(jsonStorage, errorViewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Update config with flags after parsing
	applyFlags := func(cmd *cobra.Command, args []string) error {
		dir := ""
		if len(args) > 0 {
			dir = args[0]
		}
		cfg.ApplyFlags(flags.ToConfigFlags(dir))
		if flags.NoColor {
			color.NoColor = true
		}
		return nil
	}

	// Run command
	runCmd := &cobra.Command{
		Use:   "run [dir]",
		Short: "Run fixtures through the interpreter",
		Long: `Run every fixture in dir (default: current directory) through the interpreter
and compare each "// expect: " annotation with the matching line of output.`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    c.Run.Execute,
		PreRunE: applyFlags,
	}
	runCmd.Flags().StringVarP(&flags.Interpreter, "interpreter", "i", "", "Interpreter executable (default "+config.DefaultInterpreter+")")
	runCmd.Flags().StringVarP(&flags.Extension, "ext", "e", "", "Fixture file extension (default "+config.DefaultExtension+")")
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter fixtures by name pattern (supports wildcards, e.g., '*closures.dpl' or '*string*')")
	runCmd.Flags().BoolVarP(&flags.Recursive, "recursive", "r", false, "Scan subdirectories for fixtures")
	runCmd.Flags().DurationVar(&flags.Timeout, "timeout", 0, "Kill the interpreter after this long per fixture (0 = no limit)")
	runCmd.Flags().BoolVar(&flags.WarnMismatch, "warn-mismatch", false, "Warn on stderr when a fixture's case count differs from its output line count")
	runCmd.Flags().BoolVar(&flags.Summary, "summary", false, "Print run statistics and failing statements at the end")
	runCmd.Flags().BoolVar(&flags.Strict, "strict", false, "Exit with status 1 when any statement fails")
	runCmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar on stderr")
	runCmd.Flags().BoolVar(&flags.Save, "save", false, "Save failing statements for 'list' markers and the 'failures' viewer")
	runCmd.Flags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list [dir]",
		Short:   "List discovered fixtures",
		Long:    "Scan and list fixtures without running them",
		Args:    cobra.MaximumNArgs(1),
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().StringVarP(&flags.Extension, "ext", "e", "", "Fixture file extension (default "+config.DefaultExtension+")")
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter fixtures by name pattern (supports wildcards, e.g., '*closures.dpl' or '*string*')")
	listCmd.Flags().BoolVarP(&flags.Recursive, "recursive", "r", false, "Scan subdirectories for fixtures")
	listCmd.Flags().BoolVarP(&flags.TestCases, "test-cases", "c", false, "List test cases instead of fixture files only")
	listCmd.Flags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")
	rootCmd.AddCommand(listCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View failing statements interactively",
		Long:  "Display failing statements from the last saved run (see 'run --save') in an interactive viewer",
		Args:  cobra.NoArgs,
		RunE:  c.Failures.Execute,
	}
	rootCmd.AddCommand(failuresCmd)
}

func newScanner(cfg *config.Config) *discovery.Scanner {
	return discovery.NewScanner(cfg.Extension, cfg.Recursive, cfg.PathsToIgnore)
}
