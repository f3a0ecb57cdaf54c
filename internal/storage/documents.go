package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/harlowe/quotesmith/internal/common"
)

// SaveDocument associates a rendered document with a quote. Re-saving for
// the same quote replaces the previous document, matching a user-initiated
// resubmission.
func (s *SQLiteStorage) SaveDocument(ctx context.Context, quoteID string, pdf []byte, fileName string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(quoteID, "quoteID"); err != nil {
		return err
	}
	if err := validateString(fileName, "fileName"); err != nil {
		return err
	}
	if len(pdf) == 0 {
		return fmt.Errorf("%w: empty document", common.ErrDocumentNotSaved)
	}

	query := `
		INSERT INTO quote_documents (quote_id, file_name, content)
		VALUES (?, ?, ?)
		ON CONFLICT(quote_id) DO UPDATE SET
			file_name = excluded.file_name,
			content = excluded.content,
			created_at = CURRENT_TIMESTAMP`

	if _, err := s.db.ExecContext(ctx, query, quoteID, fileName, pdf); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}

	slog.Debug("document stored", "quote_id", quoteID, "file_name", fileName, "bytes", len(pdf))
	return nil
}

// GetDocument returns the stored document for a quote.
func (s *SQLiteStorage) GetDocument(ctx context.Context, quoteID string) (pdf []byte, fileName string, err error) {
	if err := validateContext(ctx); err != nil {
		return nil, "", err
	}
	if err := validateString(quoteID, "quoteID"); err != nil {
		return nil, "", err
	}

	query := `SELECT content, file_name FROM quote_documents WHERE quote_id = ?`
	err = s.db.QueryRowContext(ctx, query, quoteID).Scan(&pdf, &fileName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", fmt.Errorf("document for quote %s: %w", quoteID, common.ErrNotFound)
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to query document: %w", err)
	}

	return pdf, fileName, nil
}
