package storage

import (
	"dpltest/internal/config"
	"dpltest/internal/domain"
)

// Storage persists and loads the last run (for list markers and the failures viewer).
type Storage interface {
	Save(output *domain.RunOutput) error
	Load() (*domain.RunOutput, error)
	// SaveOutput writes the output back, e.g. after resolved flags change.
	SaveOutput(output *domain.RunOutput) error
	// FailedPaths returns the fixtures with failing statements in the saved run.
	FailedPaths() (map[string]struct{}, error)
}

// JSONStorage stores the run in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
