package config

import (
	"path/filepath"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	FixtureDir  string

	// Interpreter settings
	Interpreter string
	Timeout     time.Duration

	// Discovery settings
	Extension     string
	Recursive     bool
	PathsToIgnore []string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	FixtureDir   string
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

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:    DefaultProjectPath,
		FixtureDir:     DefaultFixtureDir,
		Interpreter:    DefaultInterpreter,
		Extension:      DefaultExtension,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
	}
	// Copy default paths to ignore
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	return cfg
}

// ApplyFlags stores the flags and lets the ones that were set override the config
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags

	if flags.Interpreter != "" {
		c.Interpreter = flags.Interpreter
	}
	if flags.Extension != "" {
		c.Extension = flags.Extension
	}
	if flags.Recursive {
		c.Recursive = true
	}
	if flags.Timeout > 0 {
		c.Timeout = flags.Timeout
	}
}

// GetFixtureDir returns the fixture directory, using the positional argument if provided
func (c *Config) GetFixtureDir() string {
	dir := c.FixtureDir
	if c.Flags.FixtureDir != "" {
		dir = c.Flags.FixtureDir
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(c.ProjectPath, dir)
}

// GetOutputPath returns the full path to the saved run file.
// Resolves to an absolute path so run, list and failures always agree regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
