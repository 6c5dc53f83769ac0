package ui

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"dpltest/internal/config"
	"dpltest/internal/domain"
	"dpltest/internal/parser"
)

// Formatter formats and displays summaries and fixture listings
type Formatter struct {
	config *config.Config
	parser parser.Parser
	out    io.Writer
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config, p parser.Parser, out io.Writer) *Formatter {
	return &Formatter{
		config: cfg,
		parser: p,
		out:    out,
	}
}

var (
	cyan   = color.New(color.FgCyan)
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
	white  = color.New(color.FgWhite)
)

// PrintSummary prints run statistics and the failing statements
func (f *Formatter) PrintSummary(output domain.RunOutput) {
	meta := output.Meta

	fmt.Fprintln(f.out)
	cyan.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	cyan.Fprintln(f.out, "║                    Fixture Run Statistics                     ║")
	cyan.Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")

	rows := []struct {
		label string
		value string
		c     *color.Color
	}{
		{"Total Fixtures", fmt.Sprint(meta.TotalFixtures), white},
		{"Passed Fixtures", fmt.Sprint(meta.PassedFixtures), green},
		{"Failed Fixtures", fmt.Sprint(meta.FailedFixtures), red},
		{"Fixtures Without Output", fmt.Sprint(meta.SilentFixtures), yellow},
		{"Passed Cases", fmt.Sprint(meta.PassedCases), green},
		{"Failed Cases", fmt.Sprint(meta.FailedCases), red},
		{"Uncompared Cases", fmt.Sprint(meta.UnmatchedCases), yellow},
		{"Duration", fmt.Sprintf("%.2fs", meta.DurationSeconds), white},
	}

	fmt.Fprintln(f.out, "┌─────────────────────────────────┬─────────────────────────────┐")
	for i, row := range rows {
		fmt.Fprintf(f.out, "│ %-31s │ ", row.label)
		row.c.Fprintf(f.out, "%-27s", row.value)
		fmt.Fprintln(f.out, " │")
		if i < len(rows)-1 {
			fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
		}
	}
	fmt.Fprintln(f.out, "└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Fprintln(f.out)
	if meta.FailedCases == 0 {
		green.Fprintln(f.out, "✓ All compared statements passed!")
	} else {
		red.Fprintf(f.out, "✗ %d fixture(s) failed with %d statement failure(s)\n", meta.FailedFixtures, meta.FailedCases)
		fmt.Fprintln(f.out)
		f.printFailures(output.Details)
	}
	if meta.UnmatchedCases > 0 {
		yellow.Fprintf(f.out, "! %d annotated statement(s) had no output line to compare against\n", meta.UnmatchedCases)
	}
}

// printFailures prints failing statements grouped by fixture, in run order
func (f *Formatter) printFailures(failures []domain.CaseFailure) {
	var order []string
	byFixture := make(map[string][]domain.CaseFailure)
	for _, failure := range failures {
		if _, ok := byFixture[failure.FixturePath]; !ok {
			order = append(order, failure.FixturePath)
		}
		byFixture[failure.FixturePath] = append(byFixture[failure.FixturePath], failure)
	}

	for i, path := range order {
		isLastFile := i == len(order)-1
		filePrefix, casePrefix := "├── ", "│   "
		if isLastFile {
			filePrefix, casePrefix = "└── ", "    "
		}
		yellow.Fprintf(f.out, "%s%s\n", filePrefix, path)

		cases := byFixture[path]
		for j, failure := range cases {
			branch := "├── "
			if j == len(cases)-1 {
				branch = "└── "
			}
			fmt.Fprintf(f.out, "%s%s%s %s\n", casePrefix, branch,
				red.Sprintf("%d:", failure.Line), strings.TrimSpace(failure.Statement))
		}
	}
}

// PrintFixtureList prints a list of fixtures, optionally with their test cases.
// Fixtures in failedPaths (from the saved run) are marked with [F].
func (f *Formatter) PrintFixtureList(fixtures []string, showTestCases bool, failedPaths map[string]struct{}) error {
	if showTestCases {
		green.Fprintf(f.out, "Found %d fixture(s) with test cases:\n\n", len(fixtures))
	} else {
		green.Fprintf(f.out, "Found %d fixture(s):\n\n", len(fixtures))
	}

	for i, fixture := range fixtures {
		isLastFile := i == len(fixtures)-1

		failMarker := ""
		if _, ok := failedPaths[domain.FixtureKey(fixture)]; ok {
			failMarker = " " + red.Sprint("[F]")
		}

		connector, childPrefix := "├── ", "│   "
		if isLastFile {
			connector, childPrefix = "└── ", "    "
		}
		fmt.Fprintf(f.out, "%s%s%s\n", connector, cyan.Sprint(f.displayPath(fixture)), failMarker)

		if !showTestCases {
			continue
		}

		_, cases, err := f.parser.ParseFile(fixture)
		if err != nil {
			red.Fprintf(f.out, "%s└── error reading fixture: %v\n", childPrefix, err)
			continue
		}
		f.printCases(cases, childPrefix)

		// Add spacing between files (except for the last one)
		if !isLastFile {
			fmt.Fprintln(f.out)
		}
	}

	return nil
}

// printCases prints a fixture's cases grouped under their descriptions
func (f *Formatter) printCases(cases []domain.TestCase, prefix string) {
	if len(cases) == 0 {
		fmt.Fprintf(f.out, "%s└── %s\n", prefix, red.Sprint("(no test cases found)"))
		return
	}

	type group struct {
		description string
		cases       []domain.TestCase
	}
	var groups []group
	for _, tc := range cases {
		if len(groups) == 0 || groups[len(groups)-1].description != tc.Description {
			groups = append(groups, group{description: tc.Description})
		}
		groups[len(groups)-1].cases = append(groups[len(groups)-1].cases, tc)
	}

	for i, g := range groups {
		isLastGroup := i == len(groups)-1
		connector, childPrefix := "├── ", "│   "
		if isLastGroup {
			connector, childPrefix = "└── ", "    "
		}
		name := g.description
		if name == "" {
			name = "(no description)"
		}
		fmt.Fprintf(f.out, "%s%s%s\n", prefix, connector, yellow.Sprint(name))

		for j, tc := range g.cases {
			branch := "├── "
			if j == len(g.cases)-1 {
				branch = "└── "
			}
			fmt.Fprintf(f.out, "%s%s%s%s => %s\n", prefix, childPrefix, branch,
				strings.TrimSpace(tc.Statement), tc.Expected)
		}
	}
}

// displayPath returns the fixture path relative to the project when possible
func (f *Formatter) displayPath(path string) string {
	if rel, err := filepath.Rel(f.config.ProjectPath, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}
