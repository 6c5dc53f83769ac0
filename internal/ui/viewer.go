package ui

import "dpltest/internal/domain"

// Viewer displays saved failures in an interactive TUI
type Viewer interface {
	View(results *domain.RunOutput) error
}
