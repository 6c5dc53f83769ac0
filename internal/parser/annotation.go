package parser

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"dpltest/internal/domain"
)

const (
	// DescriptionMarker starts a line that names the following test cases
	DescriptionMarker = "// [TEST] "
	// ExpectationMarker separates a statement from its expected output
	ExpectationMarker = "// expect: "
)

// AnnotationParser parses "// [TEST] " and "// expect: " annotations
type AnnotationParser struct{}

// NewAnnotationParser creates a new AnnotationParser
func NewAnnotationParser() *AnnotationParser {
	return &AnnotationParser{}
}

// Parse returns the test cases of a fixture in source order.
// Both markers are checked on every line; a line can update the description
// and add a test case at the same time.
func (p *AnnotationParser) Parse(content string) []domain.TestCase {
	var cases []domain.TestCase
	description := ""

	for i, line := range SplitLines(content) {
		if strings.HasPrefix(line, DescriptionMarker) {
			description = line[len(DescriptionMarker):]
		}

		idx := strings.Index(line, ExpectationMarker)
		if idx == -1 {
			continue
		}
		cases = append(cases, domain.TestCase{
			Description: description,
			Statement:   line[:idx],
			Expected:    line[idx+len(ExpectationMarker):],
			Line:        i + 1,
		})
	}

	return cases
}

// ParseFile reads a fixture and parses it
func (p *AnnotationParser) ParseFile(path string) (domain.Fixture, []domain.TestCase, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.Fixture{}, nil, fmt.Errorf("error reading fixture %s: %w", path, err)
	}

	fixture := domain.Fixture{Path: path, Content: string(content)}
	return fixture, p.Parse(fixture.Content), nil
}

// SplitLines splits text into lines the way fixtures and interpreter output
// are read: "\r\n" is one terminator, and "\n", "\r", "\v", "\f", "\x1c",
// "\x1d", "\x1e", U+0085, U+2028 and U+2029 each end a line.
// A trailing line terminator does not produce an empty last line.
func SplitLines(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isLineBreak(r) {
			i += size
			continue
		}
		lines = append(lines, text[start:i])
		i += size
		if r == '\r' && i < len(text) && text[i] == '\n' {
			i++
		}
		start = i
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
