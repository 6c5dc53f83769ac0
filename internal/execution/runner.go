package execution

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"dpltest/internal/config"
	"dpltest/internal/domain"
	"dpltest/internal/parser"
)

const waitDelay = 2 * time.Second

// Runner executes the interpreter for a single fixture
type Runner struct {
	config *config.Config
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{config: cfg}
}

// Run executes the interpreter with the fixture path as its only argument.
// A non-zero exit status is not an error; it is recorded in the output.
// Failing to start the interpreter, or ctx being cancelled, is.
func (r *Runner) Run(ctx context.Context, fixturePath string) (domain.ExecutionOutput, error) {
	runCtx := ctx
	if r.config.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, r.config.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, r.config.Interpreter, fixturePath)
	// Grandchildren holding the output pipes must not outlive a kill forever
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() != nil {
		return domain.ExecutionOutput{}, fmt.Errorf("run %s: %w", fixturePath, ctx.Err())
	}

	exitCode := 0
	if err != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.As(err, &exitErr):
			exitCode = exitErr.ExitCode()
		case runCtx.Err() != nil:
			exitCode = -1
		default:
			return domain.ExecutionOutput{}, fmt.Errorf("failed to run interpreter %s: %w", r.config.Interpreter, err)
		}
	}
	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		fmt.Fprintf(&stderr, "dpltest: killed after %s\n", r.config.Timeout)
	}

	return domain.ExecutionOutput{
		Lines:    parser.SplitLines(stdout.String()),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}, nil
}
