package discovery

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"
)

// Scanner locates fixture files in a directory
type Scanner struct {
	extension string
	recursive bool
	skipDirs  map[string]bool
}

// NewScanner creates a new Scanner for files ending in extension.
// skipDirs only matters for recursive scans.
func NewScanner(extension string, recursive bool, skipDirs []string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{
		extension: extension,
		recursive: recursive,
		skipDirs:  skipMap,
	}
}

// Scan yields fixture paths under root lazily.
// A missing or unreadable root yields nothing; that is not an error.
func (s *Scanner) Scan(root string) iter.Seq[string] {
	if s.recursive {
		return s.walk(root)
	}
	return s.list(root)
}

// Collect drains Scan into a slice
func (s *Scanner) Collect(root string) []string {
	var fixtures []string
	for path := range s.Scan(root) {
		fixtures = append(fixtures, path)
	}
	return fixtures
}

func (s *Scanner) list(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		entries, err := os.ReadDir(root)
		if err != nil {
			return
		}
		for _, entry := range entries {
			if entry.IsDir() || !s.isFixture(entry.Name()) {
				continue
			}
			if !yield(filepath.Join(root, entry.Name())) {
				return
			}
		}
	}
}

func (s *Scanner) walk(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		root = filepath.Clean(root)
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable entries are skipped, the same as a missing directory
				if d != nil && d.IsDir() && path != root {
					return filepath.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				if path == root {
					return nil
				}
				name := d.Name()
				// Skip hidden directories (starting with .)
				if strings.HasPrefix(name, ".") {
					return filepath.SkipDir
				}
				if s.skipDirs[name] {
					return filepath.SkipDir
				}
				return nil
			}

			if !s.isFixture(d.Name()) {
				return nil
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// isFixture mirrors a "*<ext>" glob: hidden files never match
func (s *Scanner) isFixture(name string) bool {
	return !strings.HasPrefix(name, ".") && strings.HasSuffix(name, s.extension)
}
