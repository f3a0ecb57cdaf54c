package wizard

import (
	"fmt"

	"github.com/harlowe/quotesmith/internal/common"
	"github.com/harlowe/quotesmith/internal/model"
)

// Step identifies the wizard's current step.
type Step int

const (
	// StepSelecting is the initial search-and-select step.
	StepSelecting Step = iota
	// StepReviewing shows the frozen draft before submission.
	StepReviewing
	// StepConfirmed is reached only after a successful submission.
	StepConfirmed
)

// String returns the step name.
func (s Step) String() string {
	switch s {
	case StepSelecting:
		return "Selecting"
	case StepReviewing:
		return "Reviewing"
	case StepConfirmed:
		return "Confirmed"
	default:
		return fmt.Sprintf("Step(%d)", int(s))
	}
}

// Session holds all wizard state for one user interaction. It is owned by a
// single wizard instance; nothing mutates it concurrently.
type Session struct {
	selection  *Selection
	searchTerm string
	quoteID    string
	quoteName  string
	candidates []model.CandidateProduct
	draft      model.QuoteDraft
	step       Step
}

// NewSession creates a session in its initial Selecting step.
func NewSession() *Session {
	return &Session{selection: NewSelection()}
}

// Step returns the current wizard step.
func (s *Session) Step() Step { return s.step }

// SearchTerm returns the normalized term of the last applied search.
func (s *Session) SearchTerm() string { return s.searchTerm }

// Candidates returns the current candidate list.
func (s *Session) Candidates() []model.CandidateProduct { return s.candidates }

// Selection returns the selection store.
func (s *Session) Selection() *Selection { return s.selection }

// Draft returns the materialized draft. Only meaningful while Reviewing.
func (s *Session) Draft() model.QuoteDraft { return s.draft }

// QuoteID returns the persisted quote's ID after a successful submission.
func (s *Session) QuoteID() string { return s.quoteID }

// QuoteName returns the persisted quote's display name.
func (s *Session) QuoteName() string { return s.quoteName }

// ApplySearch replaces the candidate list with the filtered view of the
// catalog entries for the given term. Selection state survives across
// searches for already-chosen products. A failed catalog lookup must not
// reach this method; the previous candidate list stays untouched in that
// case.
func (s *Session) ApplySearch(term string, entries []model.CatalogEntry) error {
	if s.step != StepSelecting {
		return fmt.Errorf("search while %s: %w", s.step, common.ErrInvalidTransition)
	}
	s.searchTerm = NormalizeTerm(term)
	s.candidates = FilterCandidates(entries, s.searchTerm, s.selection)
	return nil
}

// Toggle flips the selection state of a candidate: selected products are
// removed (quantity discarded), unselected candidates are added at quantity
// zero. Unknown IDs are ignored, matching a click on a stale card.
func (s *Session) Toggle(productID string) error {
	if s.step != StepSelecting {
		return fmt.Errorf("toggle while %s: %w", s.step, common.ErrInvalidTransition)
	}

	if !s.selection.Remove(productID) {
		for _, candidate := range s.candidates {
			if candidate.ProductID == productID {
				s.selection.Add(candidate)
				break
			}
		}
	}

	s.annotateCandidates()
	return nil
}

// SetQuantity updates a selected product's quantity from raw input.
func (s *Session) SetQuantity(productID, raw string) error {
	if s.step != StepSelecting {
		return fmt.Errorf("set quantity while %s: %w", s.step, common.ErrInvalidTransition)
	}
	s.selection.SetQuantity(productID, raw)
	s.annotateCandidates()
	return nil
}

// AdvanceToReview materializes the draft from the selection, keeping only
// products with quantity > 0, and moves to Reviewing. An empty draft is
// allowed; review may show an empty quote.
func (s *Session) AdvanceToReview() error {
	if s.step != StepSelecting {
		return fmt.Errorf("advance from %s: %w", s.step, common.ErrInvalidTransition)
	}

	var items []model.LineItem
	for _, p := range s.selection.Items() {
		if p.Quantity <= 0 {
			continue
		}
		items = append(items, model.LineItem{
			ProductID:   p.ProductID,
			ProductName: p.ProductName,
			Quantity:    p.Quantity,
			UnitPrice:   p.UnitPrice,
			LineTotal:   p.LineTotal,
		})
	}
	s.draft = model.NewQuoteDraft(items)
	s.step = StepReviewing
	return nil
}

// BackToSelecting regresses from Reviewing. The selection is untouched; the
// draft is discarded and rebuilt on the next forward transition.
func (s *Session) BackToSelecting() error {
	if s.step != StepReviewing {
		return fmt.Errorf("back from %s: %w", s.step, common.ErrInvalidTransition)
	}
	s.draft = model.QuoteDraft{}
	s.step = StepSelecting
	return nil
}

// confirm records the persisted quote and moves to Confirmed. Only the
// submitter calls this, after the full pipeline has succeeded; it resets the
// session immediately afterwards so the wizard is ready for the next quote.
func (s *Session) confirm(quote *model.Quote) error {
	if s.step != StepReviewing {
		return fmt.Errorf("confirm from %s: %w", s.step, common.ErrInvalidTransition)
	}
	s.quoteID = quote.ID
	s.quoteName = quote.DisplayName()
	s.step = StepConfirmed
	return nil
}

// Reset returns the session to its initial shape: Selecting step, empty
// search, candidates, selection, and draft.
func (s *Session) Reset() {
	s.searchTerm = ""
	s.candidates = nil
	s.selection.Reset()
	s.draft = model.QuoteDraft{}
	s.quoteID = ""
	s.quoteName = ""
	s.step = StepSelecting
}

// annotateCandidates re-derives the Selected flag on every candidate after a
// selection mutation so highlighting stays consistent.
func (s *Session) annotateCandidates() {
	for i := range s.candidates {
		s.candidates[i].Selected = s.selection.Contains(s.candidates[i].ProductID)
	}
}
