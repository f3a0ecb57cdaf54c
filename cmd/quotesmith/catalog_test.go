package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harlowe/quotesmith/internal/model"
	"github.com/harlowe/quotesmith/internal/testutil"
)

const testPriceBook = `id,name,unit_price
P1,Widget,10.00
,Gadget,5.50
P3,Sprocket,2.25
`

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pricebook.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestReadCatalogCSV(t *testing.T) {
	entries, err := readCatalogCSV(writeTempCSV(t, testPriceBook))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "P1", entries[0].ProductID)
	assert.Equal(t, "Widget", entries[0].ProductName)
	assert.InDelta(t, 10.0, entries[0].UnitPrice, 0.001)

	// Missing ID is preserved as empty; storage assigns one on insert.
	assert.Empty(t, entries[1].ProductID)
	assert.InDelta(t, 5.5, entries[1].UnitPrice, 0.001)
}

func TestReadCatalogCSVNoHeader(t *testing.T) {
	entries, err := readCatalogCSV(writeTempCSV(t, "P1,Widget,10.00\n"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Widget", entries[0].ProductName)
}

func TestReadCatalogCSVBadPrice(t *testing.T) {
	_, err := readCatalogCSV(writeTempCSV(t, "id,name,unit_price\nP1,Widget,ten\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid unit price")
}

func TestRunCatalogImport(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	err := runCatalogImport(ctx, store, writeTempCSV(t, testPriceBook), false)
	require.NoError(t, err)

	entries, err := store.SearchProducts(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
}

func TestRunCatalogImportDuplicates(t *testing.T) {
	store := testutil.SetupTestDB(t, model.CatalogEntry{ProductID: "P1", ProductName: "Widget", UnitPrice: 10})
	ctx := context.Background()
	path := writeTempCSV(t, testPriceBook)

	// Without the flag a duplicate ID aborts the import.
	require.Error(t, runCatalogImport(ctx, store, path, false))

	require.NoError(t, runCatalogImport(ctx, store, path, true))

	entries, err := store.SearchProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}
