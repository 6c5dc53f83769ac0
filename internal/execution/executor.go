package execution

import (
	"context"
	"iter"
	"time"

	"dpltest/internal/domain"
)

// Executor runs fixtures and returns their results
type Executor interface {
	Execute(ctx context.Context, fixtures iter.Seq[string]) ([]domain.FixtureResult, time.Duration, error)
}

// ProcessRunner runs the interpreter against a single fixture
type ProcessRunner interface {
	Run(ctx context.Context, fixturePath string) (domain.ExecutionOutput, error)
}

// Reporter receives fixtures as they are processed
type Reporter interface {
	StartFixture(path string)
	Report(result domain.FixtureResult)
}

var (
	_ Executor      = (*SuiteRunner)(nil)
	_ ProcessRunner = (*Runner)(nil)
)
