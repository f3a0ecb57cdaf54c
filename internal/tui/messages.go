package tui

import (
	"github.com/harlowe/quotesmith/internal/model"
	"github.com/harlowe/quotesmith/internal/service"
)

// Renderer lifecycle messages.
type rendererReadyMsg struct {
	err error
}

// Search messages.
type searchResultsMsg struct {
	err     error
	term    string
	entries []model.CatalogEntry
}

// Submission messages.
type submitFinishedMsg struct {
	err   error
	quote *model.Quote
}

// Notification surfaced on the status line.
type notificationMsg struct {
	title    string
	message  string
	severity service.Severity
}

// Celebration trigger.
type celebrationMsg struct{}
