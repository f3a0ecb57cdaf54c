package wizard

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harlowe/quotesmith/internal/delivery"
	"github.com/harlowe/quotesmith/internal/model"
	"github.com/harlowe/quotesmith/internal/render"
	"github.com/harlowe/quotesmith/internal/testutil"
)

// TestSubmitEndToEnd drives the whole pipeline against real collaborators:
// sqlite storage, the PDF renderer, and file delivery into a temp directory.
func TestSubmitEndToEnd(t *testing.T) {
	ctx := context.Background()

	store := testutil.SetupTestDB(t,
		model.CatalogEntry{ProductID: "P1", ProductName: "Widget", UnitPrice: 10},
		model.CatalogEntry{ProductID: "P2", ProductName: "Gadget", UnitPrice: 5},
	)

	renderer := render.NewPDFRenderer()
	require.NoError(t, renderer.Init(ctx))

	downloads := t.TempDir()
	submitter := NewSubmitter(store, store, renderer, delivery.NewLocalDelivery(downloads), nil, nil, DefaultOptions())

	entries, err := store.SearchProducts(ctx)
	require.NoError(t, err)

	sess := NewSession()
	require.NoError(t, sess.ApplySearch("widget", entries))
	require.Len(t, sess.Candidates(), 1)
	require.NoError(t, sess.Toggle("P1"))
	require.NoError(t, sess.SetQuantity("P1", "3"))
	require.NoError(t, sess.AdvanceToReview())

	quote, err := submitter.Submit(ctx, sess)
	require.NoError(t, err)

	assert.Equal(t, "Q-00001", quote.Name)
	assert.InDelta(t, 30.0, quote.GrandTotal, 0.001)
	assert.Equal(t, StepSelecting, sess.Step())

	pdf, fileName, err := store.GetDocument(ctx, quote.ID)
	require.NoError(t, err)
	assert.Equal(t, "Quote_Widget_Q-00001.pdf", fileName)
	assert.True(t, len(pdf) > 4 && string(pdf[:4]) == "%PDF")

	delivered, err := os.ReadFile(filepath.Join(downloads, fileName))
	require.NoError(t, err)
	assert.Equal(t, pdf, delivered)

	stored, err := store.GetQuote(ctx, quote.ID)
	require.NoError(t, err)
	require.Len(t, stored.LineItems, 1)
	assert.Equal(t, 3, stored.LineItems[0].Quantity)
	assert.InDelta(t, 30.0, stored.LineItems[0].LineTotal, 0.001)
}
