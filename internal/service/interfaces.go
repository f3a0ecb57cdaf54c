// Package service defines the interfaces for all application collaborators.
package service

import (
	"context"

	"github.com/harlowe/quotesmith/internal/document"
	"github.com/harlowe/quotesmith/internal/model"
)

// CatalogService provides the product price book. Filtering by search term is
// the wizard's job; the service returns every active product.
type CatalogService interface {
	SearchProducts(ctx context.Context) ([]model.CatalogEntry, error)
}

// QuoteService persists quote drafts. Line totals and the grand total are
// recomputed on the service side; the client's totals are not trusted.
type QuoteService interface {
	CreateQuote(ctx context.Context, lineItems []model.LineItem) (*model.Quote, error)
}

// DocumentStore associates a rendered document with a persisted quote.
type DocumentStore interface {
	SaveDocument(ctx context.Context, quoteID string, pdf []byte, fileName string) error
}

// Renderer turns a document spec into final bytes. Init must complete before
// the first Render call; it is idempotent and may be invoked lazily.
type Renderer interface {
	Init(ctx context.Context) error
	Ready() bool
	Render(spec document.Spec) ([]byte, error)
}

// Delivery performs the one-shot local save of a rendered document.
type Delivery interface {
	Deliver(pdf []byte, fileName string) error
}

// Severity classifies a notification.
type Severity int

const (
	SeveritySuccess Severity = iota
	SeverityError
)

// Notifier is the fire-and-forget user notification surface.
type Notifier interface {
	Notify(title, message string, severity Severity)
}

// Celebrator fires the post-submission visual effect. Best-effort; callers
// ignore its absence.
type Celebrator interface {
	Celebrate()
}
