// Package matching pairs parsed test cases with interpreter output.
package matching

import "dpltest/internal/domain"

// Match pairs the nth test case with the nth output line.
// Pairing stops at the shorter of the two sequences; leftovers on either
// side are dropped. A pair passes only on exact string equality.
func Match(cases []domain.TestCase, lines []string) []domain.MatchResult {
	n := min(len(cases), len(lines))
	results := make([]domain.MatchResult, 0, n)

	for i := 0; i < n; i++ {
		tc := cases[i]
		results = append(results, domain.MatchResult{
			Description: tc.Description,
			Statement:   tc.Statement,
			Expected:    tc.Expected,
			Actual:      lines[i],
			Line:        tc.Line,
			Pass:        lines[i] == tc.Expected,
		})
	}

	return results
}
