package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// fileConfig mirrors the keys accepted in dpltest.yaml and DPLTEST_* variables
type fileConfig struct {
	FixtureDir    string        `mapstructure:"fixture_dir"`
	Interpreter   string        `mapstructure:"interpreter"`
	Extension     string        `mapstructure:"extension"`
	Recursive     bool          `mapstructure:"recursive"`
	Timeout       time.Duration `mapstructure:"timeout"`
	PathsToIgnore []string      `mapstructure:"ignore"`
	OutputDir     string        `mapstructure:"output_dir"`
	OutputFile    string        `mapstructure:"output_file"`
}

// Load creates a config for the project at projectPath.
// Values come from defaults, then dpltest.yaml, then DPLTEST_* environment
// variables (a .env file in the project is loaded first).
func Load(projectPath string) (*Config, error) {
	cfg := New()
	cfg.ProjectPath = projectPath

	// .env file might not exist, that's okay - use environment variables
	_ = godotenv.Load(filepath.Join(projectPath, ".env"))

	v := viper.New()
	v.SetConfigName(ConfigFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(projectPath)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("fixture_dir", cfg.FixtureDir)
	v.SetDefault("interpreter", cfg.Interpreter)
	v.SetDefault("extension", cfg.Extension)
	v.SetDefault("recursive", cfg.Recursive)
	v.SetDefault("timeout", cfg.Timeout)
	v.SetDefault("ignore", cfg.PathsToIgnore)
	v.SetDefault("output_dir", cfg.OutputJSONDir)
	v.SetDefault("output_file", cfg.OutputJSONFile)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read %s config: %w", ConfigFileName, err)
		}
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return nil, fmt.Errorf("decode %s config: %w", ConfigFileName, err)
	}

	cfg.FixtureDir = fc.FixtureDir
	cfg.Interpreter = fc.Interpreter
	cfg.Extension = fc.Extension
	cfg.Recursive = fc.Recursive
	cfg.Timeout = fc.Timeout
	cfg.PathsToIgnore = fc.PathsToIgnore
	cfg.OutputJSONDir = fc.OutputDir
	cfg.OutputJSONFile = fc.OutputFile

	return cfg, nil
}
