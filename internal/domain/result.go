package domain

import "time"

// FixtureResult represents the outcome of running a single fixture
type FixtureResult struct {
	Path        string        // Fixture path as reported
	Matches     []MatchResult // Positionally paired cases, truncated to the shorter side
	Cases       int           // Number of parsed test cases
	OutputLines int           // Number of captured stdout lines
	Stderr      string        // Captured stderr, not used for matching
	ExitCode    int           // Interpreter exit status, not used for matching
	Duration    time.Duration // Time taken to execute
}

// Passed reports whether every compared pair passed
func (r FixtureResult) Passed() bool {
	for _, m := range r.Matches {
		if !m.Pass {
			return false
		}
	}
	return true
}

// Failed returns the compared pairs that did not match
func (r FixtureResult) Failed() []MatchResult {
	var failed []MatchResult
	for _, m := range r.Matches {
		if !m.Pass {
			failed = append(failed, m)
		}
	}
	return failed
}

// Silent reports whether the fixture has test cases but nothing was compared,
// e.g. the interpreter crashed before printing
func (r FixtureResult) Silent() bool {
	return r.Cases > 0 && len(r.Matches) == 0
}

// Mismatched reports whether the case count differs from the output line count
func (r FixtureResult) Mismatched() bool {
	return r.Cases != r.OutputLines
}

// CaseFailure represents a failed statement in a saved run
type CaseFailure struct {
	FixturePath string `json:"fixture_path"`
	Description string `json:"description"`
	Statement   string `json:"statement"`
	Expected    string `json:"expected"`
	Actual      string `json:"actual"`
	Line        int    `json:"line"`
	ExitCode    int    `json:"exit_code"`
	Stderr      string `json:"stderr,omitempty"`
	Resolved    bool   `json:"resolved,omitempty"` // Track if the failure is marked as resolved
}

// RunMeta contains metadata about a run
type RunMeta struct {
	TotalFixtures   int     `json:"total_fixtures"`
	PassedFixtures  int     `json:"passed_fixtures"`
	FailedFixtures  int     `json:"failed_fixtures"`
	SilentFixtures  int     `json:"silent_fixtures"` // Annotated, but no output line to compare
	TotalCases      int     `json:"total_cases"`
	PassedCases     int     `json:"passed_cases"`
	FailedCases     int     `json:"failed_cases"`
	UnmatchedCases  int     `json:"unmatched_cases"`
	Interpreter     string  `json:"interpreter"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// RunOutput is the complete persisted structure of a run
type RunOutput struct {
	Meta    RunMeta       `json:"meta"`
	Details []CaseFailure `json:"details"`
}

// Summarize builds the persisted form of a run from its fixture results
func Summarize(results []FixtureResult, interpreter string, duration time.Duration) RunOutput {
	meta := RunMeta{
		TotalFixtures:   len(results),
		Interpreter:     interpreter,
		Duration:        duration.String(),
		DurationSeconds: duration.Seconds(),
		Timestamp:       time.Now().Format(time.RFC3339),
	}
	details := []CaseFailure{}

	for _, r := range results {
		switch {
		case r.Silent():
			meta.SilentFixtures++
		case r.Passed():
			meta.PassedFixtures++
		default:
			meta.FailedFixtures++
		}
		meta.TotalCases += r.Cases
		if r.Cases > len(r.Matches) {
			meta.UnmatchedCases += r.Cases - len(r.Matches)
		}
		for _, m := range r.Matches {
			if m.Pass {
				meta.PassedCases++
				continue
			}
			meta.FailedCases++
			details = append(details, CaseFailure{
				FixturePath: r.Path,
				Description: m.Description,
				Statement:   m.Statement,
				Expected:    m.Expected,
				Actual:      m.Actual,
				Line:        m.Line,
				ExitCode:    r.ExitCode,
				Stderr:      r.Stderr,
			})
		}
	}

	return RunOutput{Meta: meta, Details: details}
}
