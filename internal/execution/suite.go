package execution

import (
	"context"
	"iter"
	"time"

	"dpltest/internal/domain"
	"dpltest/internal/matching"
	"dpltest/internal/parser"
	"dpltest/internal/ui"
)

// SuiteRunner processes fixtures one at a time: parse, run, match, report
type SuiteRunner struct {
	parser   parser.Parser
	runner   ProcessRunner
	reporter Reporter
	progress *ui.ProgressBar
}

// NewSuiteRunner creates a new SuiteRunner
func NewSuiteRunner(p parser.Parser, runner ProcessRunner, reporter Reporter) *SuiteRunner {
	return &SuiteRunner{
		parser:   p,
		runner:   runner,
		reporter: reporter,
	}
}

// SetProgress sets the progress bar for the suite runner
func (s *SuiteRunner) SetProgress(progress *ui.ProgressBar) {
	s.progress = progress
}

// Execute runs every fixture in order. Each fixture is reported as soon as
// it finishes; nothing is carried from one fixture to the next.
func (s *SuiteRunner) Execute(ctx context.Context, fixtures iter.Seq[string]) ([]domain.FixtureResult, time.Duration, error) {
	var results []domain.FixtureResult
	var passedCases, failedCases int
	startTime := time.Now()

	for path := range fixtures {
		result, err := s.runFixture(ctx, path)
		if err != nil {
			if s.progress != nil {
				s.progress.Clear()
			}
			return results, time.Since(startTime), err
		}
		results = append(results, result)

		for _, m := range result.Matches {
			if m.Pass {
				passedCases++
			} else {
				failedCases++
			}
		}
		if s.progress != nil {
			s.progress.Update(len(results), passedCases, failedCases)
		}
	}

	if s.progress != nil {
		s.progress.Finish()
	}
	return results, time.Since(startTime), nil
}

func (s *SuiteRunner) runFixture(ctx context.Context, path string) (domain.FixtureResult, error) {
	if s.progress != nil {
		s.progress.Clear()
	}
	s.reporter.StartFixture(path)

	start := time.Now()
	output, err := s.runner.Run(ctx, path)
	if err != nil {
		return domain.FixtureResult{}, err
	}

	_, cases, err := s.parser.ParseFile(path)
	if err != nil {
		return domain.FixtureResult{}, err
	}

	result := domain.FixtureResult{
		Path:        path,
		Matches:     matching.Match(cases, output.Lines),
		Cases:       len(cases),
		OutputLines: len(output.Lines),
		Stderr:      output.Stderr,
		ExitCode:    output.ExitCode,
		Duration:    time.Since(start),
	}
	s.reporter.Report(result)
	return result, nil
}
