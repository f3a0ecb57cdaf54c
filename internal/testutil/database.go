// Package testutil provides shared helpers for tests that need a database.
package testutil

import (
	"context"
	"testing"

	"github.com/harlowe/quotesmith/internal/model"
	"github.com/harlowe/quotesmith/internal/storage"
)

// SetupTestDB creates a migrated in-memory database seeded with the given
// catalog entries and registers cleanup.
func SetupTestDB(t *testing.T, products ...model.CatalogEntry) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	for _, p := range products {
		if _, err := store.AddProduct(ctx, p); err != nil {
			t.Fatalf("failed to seed product %q: %v", p.ProductName, err)
		}
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}
