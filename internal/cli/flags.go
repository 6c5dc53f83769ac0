package cli

import (
	"time"

	"dpltest/internal/config"
)

// Flags holds command-line flags
type Flags struct {
	Interpreter  string
	Extension    string
	NameFilter   string
	Recursive    bool
	Timeout      time.Duration
	WarnMismatch bool
	Summary      bool
	Strict       bool
	Progress     bool
	Save         bool
	NoColor      bool
	TestCases    bool
}

// ToConfigFlags converts CLI flags to config flags; dir is the optional positional argument
func (f *Flags) ToConfigFlags(dir string) config.Flags {
	return config.Flags{
		FixtureDir:   dir,
		Interpreter:  f.Interpreter,
		Extension:    f.Extension,
		NameFilter:   f.NameFilter,
		Recursive:    f.Recursive,
		Timeout:      f.Timeout,
		WarnMismatch: f.WarnMismatch,
		Summary:      f.Summary,
		Strict:       f.Strict,
		Progress:     f.Progress,
		Save:         f.Save,
		NoColor:      f.NoColor,
		TestCases:    f.TestCases,
	}
}
