package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"dpltest/internal/domain"
)

// ConsoleReporter prints the per-fixture report:
//
//	=== <fixture-path>
//	  === <description>
//	   <statement> [OK|FAIL]
type ConsoleReporter struct {
	out          io.Writer
	errOut       io.Writer
	warnMismatch bool

	ok   *color.Color
	fail *color.Color
	warn *color.Color
}

// NewConsoleReporter creates a reporter writing the report to out and warnings to errOut
func NewConsoleReporter(out, errOut io.Writer, warnMismatch bool) *ConsoleReporter {
	return &ConsoleReporter{
		out:          out,
		errOut:       errOut,
		warnMismatch: warnMismatch,
		ok:           color.New(color.FgGreen),
		fail:         color.New(color.FgRed),
		warn:         color.New(color.FgYellow),
	}
}

// StartFixture prints the fixture header
func (r *ConsoleReporter) StartFixture(path string) {
	fmt.Fprintf(r.out, "=== %s\n", path)
}

// Report prints every compared pair of a fixture, grouped by description
func (r *ConsoleReporter) Report(result domain.FixtureResult) {
	var last *string

	for _, m := range result.Matches {
		if last == nil || *last != m.Description {
			fmt.Fprintf(r.out, "  === %s\n", m.Description)
			description := m.Description
			last = &description
		}

		marker := r.ok.Sprint("OK")
		if !m.Pass {
			marker = r.fail.Sprint("FAIL")
		}
		fmt.Fprintf(r.out, "   %s [%s]\n", m.Statement, marker)
	}

	if r.warnMismatch && result.Mismatched() {
		r.warn.Fprintf(r.errOut, "  warning: %s has %d test case(s) but produced %d output line(s); only %d compared\n",
			result.Path, result.Cases, result.OutputLines, len(result.Matches))
	}
}
