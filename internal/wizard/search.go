// Package wizard implements the quote wizard core: product search filtering,
// the selection store, the step state machine, and quote submission.
package wizard

import (
	"strings"

	"github.com/harlowe/quotesmith/internal/model"
)

// NormalizeTerm trims and case-folds a raw search term.
func NormalizeTerm(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// FilterCandidates builds the candidate list for a normalized search term by
// case-insensitive substring match on product name. An empty term yields no
// candidates. Candidates whose product is already selected keep their
// Selected annotation; quantity stays with the selection store, candidates
// are a derived view.
func FilterCandidates(entries []model.CatalogEntry, term string, selection *Selection) []model.CandidateProduct {
	if term == "" {
		return nil
	}

	var candidates []model.CandidateProduct
	for _, entry := range entries {
		if !strings.Contains(strings.ToLower(entry.ProductName), term) {
			continue
		}
		candidates = append(candidates, model.CandidateProduct{
			ProductID:   entry.ProductID,
			ProductName: entry.ProductName,
			UnitPrice:   entry.UnitPrice,
			Selected:    selection != nil && selection.Contains(entry.ProductID),
		})
	}
	return candidates
}
