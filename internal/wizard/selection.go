package wizard

import (
	"strconv"
	"strings"

	"github.com/harlowe/quotesmith/internal/model"
)

// Selection is the ordered set of chosen products, unique by product ID. It
// is the source of truth for selection state; candidate lists are derived
// views that get re-annotated after every mutation.
type Selection struct {
	items []model.SelectedProduct
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{}
}

// Contains reports whether the product is currently selected.
func (s *Selection) Contains(productID string) bool {
	return s.indexOf(productID) >= 0
}

// Items returns the selected products in selection order.
func (s *Selection) Items() []model.SelectedProduct {
	return s.items
}

// Len returns the number of selected products.
func (s *Selection) Len() int {
	return len(s.items)
}

// Get returns the selected product with the given ID, or nil.
func (s *Selection) Get(productID string) *model.SelectedProduct {
	if i := s.indexOf(productID); i >= 0 {
		return &s.items[i]
	}
	return nil
}

// Add inserts a candidate into the selection at quantity zero. A product
// already present is left untouched so an ID can never appear twice.
func (s *Selection) Add(candidate model.CandidateProduct) {
	if s.Contains(candidate.ProductID) {
		return
	}
	s.items = append(s.items, model.SelectedProduct{
		ProductID:   candidate.ProductID,
		ProductName: candidate.ProductName,
		UnitPrice:   candidate.UnitPrice,
	})
}

// Remove deletes the product from the selection. Its quantity is discarded;
// re-adding starts over at zero.
func (s *Selection) Remove(productID string) bool {
	i := s.indexOf(productID)
	if i < 0 {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return true
}

// SetQuantity parses raw as a non-negative integer and updates the product's
// quantity and line total. Malformed or negative input coerces to zero; that
// is the designed fallback, not an error.
func (s *Selection) SetQuantity(productID, raw string) {
	item := s.Get(productID)
	if item == nil {
		return
	}
	item.SetQuantity(ParseQuantity(raw))
}

// Reset empties the selection.
func (s *Selection) Reset() {
	s.items = nil
}

func (s *Selection) indexOf(productID string) int {
	for i, item := range s.items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

// ParseQuantity parses a quantity field, coercing malformed or negative
// input to zero.
func ParseQuantity(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
