package storage

import (
	"context"
	"testing"

	"github.com/harlowe/quotesmith/internal/common"
	"github.com/harlowe/quotesmith/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	require.NoError(t, store.Migrate(context.Background()))

	t.Cleanup(func() { _ = store.Close() })
	return store
}

func seedProducts(t *testing.T, store *SQLiteStorage) {
	t.Helper()
	ctx := context.Background()
	for _, entry := range []model.CatalogEntry{
		{ProductID: "P1", ProductName: "Widget", UnitPrice: 10},
		{ProductID: "P2", ProductName: "Gadget", UnitPrice: 5},
	} {
		_, err := store.AddProduct(ctx, entry)
		require.NoError(t, err)
	}
}

func TestMigrateIdempotent(t *testing.T) {
	store := setupStorage(t)
	require.NoError(t, store.Migrate(context.Background()))
}

func TestCatalogRoundTrip(t *testing.T) {
	store := setupStorage(t)
	seedProducts(t, store)
	ctx := context.Background()

	entries, err := store.SearchProducts(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Ordered by name.
	assert.Equal(t, "Gadget", entries[0].ProductName)
	assert.Equal(t, "Widget", entries[1].ProductName)

	got, err := store.GetProduct(ctx, "P1")
	require.NoError(t, err)
	assert.Equal(t, "Widget", got.ProductName)
	assert.Equal(t, 10.0, got.UnitPrice)
}

func TestAddProductAssignsID(t *testing.T) {
	store := setupStorage(t)

	entry, err := store.AddProduct(context.Background(), model.CatalogEntry{ProductName: "Sprocket", UnitPrice: 2.5})
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ProductID)
}

func TestAddProductDuplicate(t *testing.T) {
	store := setupStorage(t)
	seedProducts(t, store)

	_, err := store.AddProduct(context.Background(), model.CatalogEntry{ProductID: "P1", ProductName: "Widget", UnitPrice: 10})
	assert.ErrorIs(t, err, common.ErrDuplicateEntry)
}

func TestAddProductValidation(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()

	_, err := store.AddProduct(ctx, model.CatalogEntry{ProductName: "  ", UnitPrice: 1})
	assert.ErrorIs(t, err, ErrInvalidProduct)

	_, err = store.AddProduct(ctx, model.CatalogEntry{ProductName: "Widget", UnitPrice: -1})
	assert.ErrorIs(t, err, ErrInvalidProduct)
}

func TestGetProductNotFound(t *testing.T) {
	store := setupStorage(t)

	_, err := store.GetProduct(context.Background(), "ghost")
	assert.ErrorIs(t, err, common.ErrProductNotFound)
}

func TestCreateQuoteRecomputesTotals(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()

	// Client-supplied totals are wrong on purpose; the server recomputes.
	quote, err := store.CreateQuote(ctx, []model.LineItem{
		{ProductID: "P1", ProductName: "Widget", Quantity: 3, UnitPrice: 10, LineTotal: 999},
		{ProductID: "P2", ProductName: "Gadget", Quantity: 2, UnitPrice: 5, LineTotal: 999},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, quote.ID)
	assert.Equal(t, "Q-00001", quote.Name)
	assert.Equal(t, 40.0, quote.GrandTotal)
	require.Len(t, quote.LineItems, 2)
	assert.Equal(t, 30.0, quote.LineItems[0].LineTotal)
	assert.Equal(t, 10.0, quote.LineItems[1].LineTotal)
}

func TestCreateQuoteSequentialNames(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()
	item := []model.LineItem{{ProductID: "P1", ProductName: "Widget", Quantity: 1, UnitPrice: 10}}

	first, err := store.CreateQuote(ctx, item)
	require.NoError(t, err)
	second, err := store.CreateQuote(ctx, item)
	require.NoError(t, err)

	assert.Equal(t, "Q-00001", first.Name)
	assert.Equal(t, "Q-00002", second.Name)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreateQuoteValidation(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()

	_, err := store.CreateQuote(ctx, []model.LineItem{
		{ProductID: "P1", ProductName: "Widget", Quantity: 0, UnitPrice: 10},
	})
	assert.ErrorIs(t, err, ErrInvalidItem)

	_, err = store.CreateQuote(ctx, []model.LineItem{
		{ProductName: "Widget", Quantity: 1, UnitPrice: 10},
	})
	assert.ErrorIs(t, err, ErrInvalidItem)
}

func TestGetQuoteRoundTrip(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()

	created, err := store.CreateQuote(ctx, []model.LineItem{
		{ProductID: "P1", ProductName: "Widget", Quantity: 3, UnitPrice: 10},
	})
	require.NoError(t, err)

	got, err := store.GetQuote(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, 30.0, got.GrandTotal)
	require.Len(t, got.LineItems, 1)
	assert.Equal(t, "Widget", got.LineItems[0].ProductName)
}

func TestListQuotesNewestFirst(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()
	item := []model.LineItem{{ProductID: "P1", ProductName: "Widget", Quantity: 1, UnitPrice: 10}}

	_, err := store.CreateQuote(ctx, item)
	require.NoError(t, err)
	_, err = store.CreateQuote(ctx, item)
	require.NoError(t, err)

	quotes, err := store.ListQuotes(ctx)
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	assert.Equal(t, "Q-00002", quotes[0].Name)
	assert.Equal(t, "Q-00001", quotes[1].Name)
}

func TestDocumentRoundTrip(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()

	quote, err := store.CreateQuote(ctx, []model.LineItem{
		{ProductID: "P1", ProductName: "Widget", Quantity: 1, UnitPrice: 10},
	})
	require.NoError(t, err)

	require.NoError(t, store.SaveDocument(ctx, quote.ID, []byte("%PDF-1"), "Quote_Widget_Q-00001.pdf"))

	pdf, fileName, err := store.GetDocument(ctx, quote.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1"), pdf)
	assert.Equal(t, "Quote_Widget_Q-00001.pdf", fileName)

	// Re-saving replaces the stored document.
	require.NoError(t, store.SaveDocument(ctx, quote.ID, []byte("%PDF-2"), "Quote_Widget_Q-00001.pdf"))
	pdf, _, err = store.GetDocument(ctx, quote.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-2"), pdf)
}

func TestSaveDocumentValidation(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()

	err := store.SaveDocument(ctx, "q1", nil, "file.pdf")
	assert.ErrorIs(t, err, common.ErrDocumentNotSaved)

	err = store.SaveDocument(ctx, "", []byte("x"), "file.pdf")
	assert.ErrorIs(t, err, ErrEmptyString)
}

func TestGetDocumentNotFound(t *testing.T) {
	store := setupStorage(t)

	_, _, err := store.GetDocument(context.Background(), "ghost")
	assert.ErrorIs(t, err, common.ErrNotFound)
}
