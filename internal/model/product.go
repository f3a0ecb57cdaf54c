// Package model defines the core data types shared across the application.
package model

// CatalogEntry is a single product as returned by the catalog service.
type CatalogEntry struct {
	ProductID   string
	ProductName string
	UnitPrice   float64
}

// CandidateProduct is a catalog entry annotated with selection state for
// display during search. Candidates are rebuilt on every search; only the
// Selected flag survives across rebuilds, derived from the selection store.
type CandidateProduct struct {
	ProductID   string
	ProductName string
	UnitPrice   float64
	Quantity    int
	LineTotal   float64
	Selected    bool
}

// SelectedProduct is a candidate promoted into the selection set. Quantity is
// mutable; LineTotal is recomputed on every quantity change.
type SelectedProduct struct {
	ProductID   string
	ProductName string
	UnitPrice   float64
	Quantity    int
	LineTotal   float64
}

// SetQuantity updates the quantity and keeps LineTotal consistent.
func (p *SelectedProduct) SetQuantity(quantity int) {
	if quantity < 0 {
		quantity = 0
	}
	p.Quantity = quantity
	p.LineTotal = float64(quantity) * p.UnitPrice
}
