package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/harlowe/quotesmith/internal/model"
)

// Validation errors.
var (
	ErrNilContext     = errors.New("context cannot be nil")
	ErrEmptyString    = errors.New("string parameter cannot be empty")
	ErrInvalidProduct = errors.New("invalid product")
	ErrInvalidItem    = errors.New("invalid line item")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateProduct validates a catalog entry before insertion.
func validateProduct(entry model.CatalogEntry) error {
	if strings.TrimSpace(entry.ProductName) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidProduct)
	}
	if entry.UnitPrice < 0 {
		return fmt.Errorf("%w: negative unit price", ErrInvalidProduct)
	}
	return nil
}

// validateLineItems validates the line items of a quote submission.
func validateLineItems(items []model.LineItem) error {
	for i, item := range items {
		if strings.TrimSpace(item.ProductID) == "" {
			return fmt.Errorf("%w at index %d: missing product id", ErrInvalidItem, i)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w at index %d: quantity must be positive", ErrInvalidItem, i)
		}
		if item.UnitPrice < 0 {
			return fmt.Errorf("%w at index %d: negative unit price", ErrInvalidItem, i)
		}
	}
	return nil
}
