package model

import "time"

// LineItem is a frozen line of a quote draft, materialized from a selected
// product when the wizard advances to review.
type LineItem struct {
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   float64
	LineTotal   float64
}

// QuoteDraft is the review-ready snapshot of the selection: line items with
// quantity > 0 and their grand total, computed once at materialization time.
type QuoteDraft struct {
	LineItems  []LineItem
	GrandTotal float64
}

// NewQuoteDraft builds a draft from line items, summing the grand total.
func NewQuoteDraft(items []LineItem) QuoteDraft {
	var total float64
	for _, item := range items {
		total += item.LineTotal
	}
	return QuoteDraft{LineItems: items, GrandTotal: total}
}

// Quote is a persisted quote as returned by the quote service. Name may be
// empty when the service assigns none; callers fall back to "Quote_" + ID.
type Quote struct {
	CreatedAt  time.Time
	ID         string
	Name       string
	GrandTotal float64
	LineItems  []LineItem
}

// DisplayName returns the quote's name, falling back to "Quote_" + ID.
func (q Quote) DisplayName() string {
	if q.Name != "" {
		return q.Name
	}
	return "Quote_" + q.ID
}
