package domain

import "path/filepath"

// FixtureKey identifies a fixture across runs and working directories:
// absolute, cleaned and slash-separated
func FixtureKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return filepath.ToSlash(filepath.Clean(path))
}
