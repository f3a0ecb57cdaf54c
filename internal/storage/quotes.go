package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/harlowe/quotesmith/internal/common"
	"github.com/harlowe/quotesmith/internal/model"
)

// CreateQuote persists a quote with its line items. Line totals and the
// grand total are recomputed here from quantity and unit price; the client's
// figures are not trusted. The assigned display name is Q-<seq> with a
// monotonically increasing sequence.
func (s *SQLiteStorage) CreateQuote(ctx context.Context, lineItems []model.LineItem) (*model.Quote, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateLineItems(lineItems); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `INSERT INTO quote_seq DEFAULT VALUES`)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate quote sequence: %w", err)
	}
	seq, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read quote sequence: %w", err)
	}

	quote := &model.Quote{
		ID:   uuid.NewString(),
		Name: fmt.Sprintf("Q-%05d", seq),
	}

	items := make([]model.LineItem, 0, len(lineItems))
	for _, item := range lineItems {
		item.LineTotal = float64(item.Quantity) * item.UnitPrice
		quote.GrandTotal += item.LineTotal
		items = append(items, item)
	}
	quote.LineItems = items

	_, err = tx.ExecContext(ctx,
		`INSERT INTO quotes (id, seq, name, grand_total) VALUES (?, ?, ?, ?)`,
		quote.ID, seq, quote.Name, quote.GrandTotal)
	if err != nil {
		return nil, fmt.Errorf("failed to insert quote: %w", err)
	}

	for _, item := range quote.LineItems {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO quote_line_items (quote_id, product_id, product_name, quantity, unit_price, line_total)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			quote.ID, item.ProductID, item.ProductName, item.Quantity, item.UnitPrice, item.LineTotal)
		if err != nil {
			return nil, fmt.Errorf("failed to insert line item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit quote: %w", err)
	}

	slog.Info("quote persisted", "quote_id", quote.ID, "name", quote.Name, "grand_total", quote.GrandTotal)
	return quote, nil
}

// GetQuote returns a quote with its line items.
func (s *SQLiteStorage) GetQuote(ctx context.Context, id string) (*model.Quote, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	var quote model.Quote
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, grand_total, created_at FROM quotes WHERE id = ?`, id).
		Scan(&quote.ID, &quote.Name, &quote.GrandTotal, &quote.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("quote %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query quote: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT product_id, product_name, quantity, unit_price, line_total
		 FROM quote_line_items WHERE quote_id = ? ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query line items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item model.LineItem
		if err := rows.Scan(&item.ProductID, &item.ProductName, &item.Quantity, &item.UnitPrice, &item.LineTotal); err != nil {
			return nil, fmt.Errorf("failed to scan line item: %w", err)
		}
		quote.LineItems = append(quote.LineItems, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating line items: %w", err)
	}

	return &quote, nil
}

// ListQuotes returns all quotes, newest first, without line items.
func (s *SQLiteStorage) ListQuotes(ctx context.Context) ([]model.Quote, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, grand_total, created_at FROM quotes ORDER BY seq DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query quotes: %w", err)
	}
	defer rows.Close()

	var quotes []model.Quote
	for rows.Next() {
		var quote model.Quote
		if err := rows.Scan(&quote.ID, &quote.Name, &quote.GrandTotal, &quote.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan quote: %w", err)
		}
		quotes = append(quotes, quote)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating quotes: %w", err)
	}

	slog.Debug("retrieved quotes", "count", len(quotes))
	return quotes, nil
}
