package wizard

import (
	"testing"

	"github.com/harlowe/quotesmith/internal/common"
	"github.com/harlowe/quotesmith/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selectingSession(t *testing.T) *Session {
	t.Helper()
	sess := NewSession()
	require.NoError(t, sess.ApplySearch("get", testCatalog()))
	return sess
}

func TestSessionApplySearch(t *testing.T) {
	sess := NewSession()

	require.NoError(t, sess.ApplySearch("  Widget ", testCatalog()))
	assert.Equal(t, "widget", sess.SearchTerm())
	assert.Len(t, sess.Candidates(), 2)

	// Empty term clears the candidate list without consulting the catalog.
	require.NoError(t, sess.ApplySearch("   ", testCatalog()))
	assert.Empty(t, sess.Candidates())
}

func TestSessionToggle(t *testing.T) {
	sess := selectingSession(t)

	require.NoError(t, sess.Toggle("P1"))
	assert.True(t, sess.Selection().Contains("P1"))

	// Candidates are re-annotated after the mutation.
	for _, c := range sess.Candidates() {
		assert.Equal(t, c.ProductID == "P1", c.Selected)
	}

	// Toggling twice restores prior membership.
	require.NoError(t, sess.Toggle("P1"))
	assert.False(t, sess.Selection().Contains("P1"))
	for _, c := range sess.Candidates() {
		assert.False(t, c.Selected)
	}
}

func TestSessionToggleUnknownID(t *testing.T) {
	sess := selectingSession(t)

	require.NoError(t, sess.Toggle("not-a-candidate"))
	assert.Zero(t, sess.Selection().Len())
}

func TestSessionSelectionSurvivesNewSearch(t *testing.T) {
	sess := selectingSession(t)
	require.NoError(t, sess.Toggle("P2"))
	require.NoError(t, sess.SetQuantity("P2", "4"))

	require.NoError(t, sess.ApplySearch("widget", testCatalog()))

	// P2 is no longer a candidate but stays selected at its quantity.
	assert.True(t, sess.Selection().Contains("P2"))
	assert.Equal(t, 4, sess.Selection().Get("P2").Quantity)

	require.NoError(t, sess.ApplySearch("gadget", testCatalog()))
	require.Len(t, sess.Candidates(), 1)
	assert.True(t, sess.Candidates()[0].Selected)
}

func TestSessionAdvanceToReview(t *testing.T) {
	sess := NewSession()
	require.NoError(t, sess.ApplySearch("e", []model.CatalogEntry{
		{ProductID: "A", ProductName: "Three", UnitPrice: 2},
		{ProductID: "B", ProductName: "Five", UnitPrice: 3},
		{ProductID: "C", ProductName: "Zero", UnitPrice: 100},
		{ProductID: "D", ProductName: "One", UnitPrice: 7.5},
	}))
	for _, id := range []string{"A", "B", "C", "D"} {
		require.NoError(t, sess.Toggle(id))
	}
	require.NoError(t, sess.SetQuantity("A", "3"))
	require.NoError(t, sess.SetQuantity("B", "5"))
	require.NoError(t, sess.SetQuantity("D", "1"))

	require.NoError(t, sess.AdvanceToReview())
	assert.Equal(t, StepReviewing, sess.Step())

	draft := sess.Draft()
	require.Len(t, draft.LineItems, 3)
	for _, item := range draft.LineItems {
		assert.NotEqual(t, "C", item.ProductID)
		assert.Positive(t, item.Quantity)
	}
	assert.Equal(t, 3*2.0+5*3.0+1*7.5, draft.GrandTotal)
}

func TestSessionAdvanceWithEmptySelection(t *testing.T) {
	// Review of an empty quote is permitted.
	sess := NewSession()
	require.NoError(t, sess.AdvanceToReview())
	assert.Equal(t, StepReviewing, sess.Step())
	assert.Empty(t, sess.Draft().LineItems)
	assert.Zero(t, sess.Draft().GrandTotal)
}

func TestSessionBackToSelecting(t *testing.T) {
	sess := selectingSession(t)
	require.NoError(t, sess.Toggle("P2"))
	require.NoError(t, sess.SetQuantity("P2", "2"))
	require.NoError(t, sess.AdvanceToReview())

	require.NoError(t, sess.BackToSelecting())
	assert.Equal(t, StepSelecting, sess.Step())

	// Selection is untouched; the draft is discarded and rebuilt.
	assert.Equal(t, 2, sess.Selection().Get("P2").Quantity)
	assert.Empty(t, sess.Draft().LineItems)

	require.NoError(t, sess.AdvanceToReview())
	assert.Len(t, sess.Draft().LineItems, 1)
}

func TestSessionIllegalTransitions(t *testing.T) {
	sess := NewSession()

	err := sess.BackToSelecting()
	assert.ErrorIs(t, err, common.ErrInvalidTransition)

	err = sess.confirm(&model.Quote{ID: "Q1"})
	assert.ErrorIs(t, err, common.ErrInvalidTransition)

	require.NoError(t, sess.AdvanceToReview())
	assert.ErrorIs(t, sess.AdvanceToReview(), common.ErrInvalidTransition)
	assert.ErrorIs(t, sess.Toggle("P1"), common.ErrInvalidTransition)
	assert.ErrorIs(t, sess.SetQuantity("P1", "2"), common.ErrInvalidTransition)
	assert.ErrorIs(t, sess.ApplySearch("widget", nil), common.ErrInvalidTransition)
}

func TestSessionReset(t *testing.T) {
	sess := selectingSession(t)
	require.NoError(t, sess.Toggle("P1"))
	require.NoError(t, sess.SetQuantity("P1", "3"))
	require.NoError(t, sess.AdvanceToReview())

	sess.Reset()

	assert.Equal(t, StepSelecting, sess.Step())
	assert.Empty(t, sess.SearchTerm())
	assert.Empty(t, sess.Candidates())
	assert.Zero(t, sess.Selection().Len())
	assert.Empty(t, sess.Draft().LineItems)
}
