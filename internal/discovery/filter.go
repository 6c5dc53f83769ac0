package discovery

import (
	"iter"
	"path/filepath"
	"strings"
)

// Filter filters fixture files by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps fixtures whose base name matches pattern.
// Supports patterns like "*closures.dpl" or "*string*"; a pattern without
// wildcards matches by substring. An empty pattern keeps everything.
func (f *Filter) FilterByName(fixtures []string, pattern string) []string {
	if pattern == "" {
		return fixtures
	}

	var filtered []string
	for _, fixture := range fixtures {
		if f.Matches(fixture, pattern) {
			filtered = append(filtered, fixture)
		}
	}
	return filtered
}

// Seq filters a lazy sequence of fixtures without draining it
func (f *Filter) Seq(fixtures iter.Seq[string], pattern string) iter.Seq[string] {
	if pattern == "" {
		return fixtures
	}
	return func(yield func(string) bool) {
		for fixture := range fixtures {
			if f.Matches(fixture, pattern) && !yield(fixture) {
				return
			}
		}
	}
}

// Matches reports whether a single fixture path matches pattern
func (f *Filter) Matches(fixture, pattern string) bool {
	if pattern == "" {
		return true
	}

	name := filepath.Base(fixture)

	// filepath.Match supports * and ? wildcards
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// "*string*" style patterns: every non-empty part must appear, in order
	parts := strings.Split(pattern, "*")
	rest := name
	found := false
	for _, part := range parts {
		if part == "" {
			continue
		}
		if strings.Contains(part, "?") {
			return false
		}
		idx := strings.Index(rest, part)
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(part):]
		found = true
	}
	return found
}
