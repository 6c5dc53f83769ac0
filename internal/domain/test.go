package domain

// Fixture is an annotated source file for the interpreter under test
type Fixture struct {
	Path    string // Path as produced by the locator
	Content string // Raw text, read once per run
}

// TestCase is a single annotated statement within a fixture
type TestCase struct {
	Description string // Active "// [TEST] " description, "" when none precedes it
	Statement   string // Source text before the expectation marker, untrimmed
	Expected    string // Text after the expectation marker
	Line        int    // 1-based source line of the annotation
}

// ExecutionOutput is what the interpreter produced for one fixture
type ExecutionOutput struct {
	Lines    []string // Stdout split into lines
	Stderr   string
	ExitCode int
}

// MatchResult pairs a test case with the output line at the same index
type MatchResult struct {
	Description string
	Statement   string
	Expected    string
	Actual      string
	Line        int
	Pass        bool
}
