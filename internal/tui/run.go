package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harlowe/quotesmith/internal/common"
)

// Run starts the wizard TUI and blocks until the user quits.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Catalog == nil {
		return fmt.Errorf("%w: catalog service", common.ErrMissingConfig)
	}
	if cfg.Quotes == nil {
		return fmt.Errorf("%w: quote service", common.ErrMissingConfig)
	}
	if cfg.Documents == nil {
		return fmt.Errorf("%w: document store", common.ErrMissingConfig)
	}
	if cfg.Renderer == nil {
		return fmt.Errorf("%w: renderer", common.ErrMissingConfig)
	}

	p := tea.NewProgram(newModel(cfg), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("wizard TUI: %w", err)
	}
	return nil
}
