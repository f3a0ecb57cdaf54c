package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/harlowe/quotesmith/internal/common"
	"github.com/harlowe/quotesmith/internal/model"
)

// SearchProducts returns every active product in the price book, ordered by
// name. Term filtering happens in the wizard, which matches the original
// fetch-all-then-filter contract.
func (s *SQLiteStorage) SearchProducts(ctx context.Context) ([]model.CatalogEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, unit_price
		FROM products
		WHERE active = 1
		ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var entries []model.CatalogEntry
	for rows.Next() {
		var entry model.CatalogEntry
		if err := rows.Scan(&entry.ProductID, &entry.ProductName, &entry.UnitPrice); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	slog.Debug("retrieved products", "count", len(entries))
	return entries, nil
}

// AddProduct inserts a product into the price book, assigning an ID when the
// entry carries none.
func (s *SQLiteStorage) AddProduct(ctx context.Context, entry model.CatalogEntry) (*model.CatalogEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateProduct(entry); err != nil {
		return nil, err
	}

	if strings.TrimSpace(entry.ProductID) == "" {
		entry.ProductID = uuid.NewString()
	}

	query := `INSERT INTO products (id, name, unit_price) VALUES (?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, query, entry.ProductID, entry.ProductName, entry.UnitPrice); err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, fmt.Errorf("product %s: %w", entry.ProductID, common.ErrDuplicateEntry)
		}
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}

	return &entry, nil
}

// GetProduct returns a product by ID.
func (s *SQLiteStorage) GetProduct(ctx context.Context, id string) (*model.CatalogEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	query := `SELECT id, name, unit_price FROM products WHERE id = ? AND active = 1`

	var entry model.CatalogEntry
	err := s.db.QueryRowContext(ctx, query, id).Scan(&entry.ProductID, &entry.ProductName, &entry.UnitPrice)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("product %s: %w", id, common.ErrProductNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &entry, nil
}
