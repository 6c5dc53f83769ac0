package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"dpltest/internal/domain"
)

// Save writes a fresh run, carrying over resolved flags of failures that persist.
func (s *JSONStorage) Save(output *domain.RunOutput) error {
	if previous, err := s.Load(); err == nil {
		resolved := make(map[string]bool)
		for _, f := range previous.Details {
			if f.Resolved {
				resolved[failureKey(f)] = true
			}
		}
		for i := range output.Details {
			if resolved[failureKey(output.Details[i])] {
				output.Details[i].Resolved = true
			}
		}
	}
	return s.SaveOutput(output)
}

// Load reads the last run from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.RunOutput, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var output domain.RunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &output, nil
}

// SaveOutput writes the full output to the configured JSON file.
func (s *JSONStorage) SaveOutput(output *domain.RunOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

// FailedPaths returns absolute, slash-separated paths of fixtures with unresolved failures.
func (s *JSONStorage) FailedPaths() (map[string]struct{}, error) {
	output, err := s.Load()
	if err != nil {
		return nil, err
	}
	paths := make(map[string]struct{})
	for _, f := range output.Details {
		if f.Resolved {
			continue
		}
		paths[domain.FixtureKey(f.FixturePath)] = struct{}{}
	}
	return paths, nil
}

func failureKey(f domain.CaseFailure) string {
	return fmt.Sprintf("%s:%d:%s", f.FixturePath, f.Line, f.Statement)
}
