package wizard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/harlowe/quotesmith/internal/common"
	"github.com/harlowe/quotesmith/internal/document"
	"github.com/harlowe/quotesmith/internal/model"
	"github.com/harlowe/quotesmith/internal/service"
)

// Options configures optional submission pipeline stages.
type Options struct {
	EnableCelebration   bool
	EnableLocalDownload bool
}

// DefaultOptions enables the full pipeline.
func DefaultOptions() Options {
	return Options{
		EnableCelebration:   true,
		EnableLocalDownload: true,
	}
}

// Submitter orchestrates quote submission: quote persistence, document
// generation, document persistence, local delivery, and celebration, in that
// order, each step gating the next.
type Submitter struct {
	quotes     service.QuoteService
	documents  service.DocumentStore
	renderer   service.Renderer
	delivery   service.Delivery
	notifier   service.Notifier
	celebrator service.Celebrator
	now        func() time.Time
	opts       Options
}

// NewSubmitter creates a submitter with the given collaborators. delivery,
// notifier, and celebrator may be nil when their stage is disabled or
// unavailable.
func NewSubmitter(
	quotes service.QuoteService,
	documents service.DocumentStore,
	renderer service.Renderer,
	delivery service.Delivery,
	notifier service.Notifier,
	celebrator service.Celebrator,
	opts Options,
) *Submitter {
	return &Submitter{
		quotes:     quotes,
		documents:  documents,
		renderer:   renderer,
		delivery:   delivery,
		notifier:   notifier,
		celebrator: celebrator,
		now:        time.Now,
		opts:       opts,
	}
}

// Submit runs the full submission pipeline for a reviewing session. On any
// failure it aborts at the failing step and leaves the session in Reviewing
// so the user may retry; no partial state is treated as committed. On
// success the session passes through Confirmed and is reset to a fresh
// Selecting session. The caller receives the persisted quote.
func (s *Submitter) Submit(ctx context.Context, sess *Session) (*model.Quote, error) {
	if sess.Step() != StepReviewing {
		return nil, fmt.Errorf("submit from %s: %w", sess.Step(), common.ErrInvalidTransition)
	}
	if !s.renderer.Ready() {
		return nil, common.NewUserError("Failed to load PDF libraries", common.ErrRendererNotReady)
	}

	draft := sess.Draft()

	quote, err := s.quotes.CreateQuote(ctx, draft.LineItems)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrQuoteNotSaved, err)
	}
	slog.Info("quote created", "quote_id", quote.ID, "name", quote.DisplayName(), "line_items", len(draft.LineItems))

	if s.notifier != nil {
		s.notifier.Notify("Success", fmt.Sprintf("Quote created: %s", quote.DisplayName()), service.SeveritySuccess)
	}

	spec := document.Build(draft.LineItems, draft.GrandTotal, s.now())
	pdf, err := s.renderer.Render(spec)
	if err != nil {
		return nil, fmt.Errorf("render document: %w", err)
	}

	fileName := document.FileName(draft.LineItems, quote.DisplayName())

	if err := s.documents.SaveDocument(ctx, quote.ID, pdf, fileName); err != nil {
		return nil, fmt.Errorf("save document: %w", err)
	}
	slog.Info("document saved", "quote_id", quote.ID, "file_name", fileName, "bytes", len(pdf))

	if s.opts.EnableLocalDownload && s.delivery != nil {
		if err := s.delivery.Deliver(pdf, fileName); err != nil {
			return nil, fmt.Errorf("deliver document: %w", err)
		}
	}

	if s.opts.EnableCelebration && s.celebrator != nil {
		s.celebrator.Celebrate()
	}

	if err := sess.confirm(quote); err != nil {
		return nil, err
	}
	sess.Reset()

	return quote, nil
}
