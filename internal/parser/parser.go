package parser

import "dpltest/internal/domain"

// Parser extracts test cases from fixture text
type Parser interface {
	Parse(content string) []domain.TestCase
	ParseFile(path string) (domain.Fixture, []domain.TestCase, error)
}

var _ Parser = (*AnnotationParser)(nil)
