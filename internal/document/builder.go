// Package document builds the declarative spec for a quote summary document.
// It contains no rendering logic; a Renderer turns a Spec into final bytes.
package document

import (
	"fmt"
	"time"

	"github.com/harlowe/quotesmith/internal/model"
)

// Spec describes a quote summary document. Everything except DateLine is a
// pure function of the line items and grand total.
type Spec struct {
	Title       string
	DateLine    string
	Attribution string
	Footer      string
	Table       Table
}

// Table is the line-item grid. The totals row spans the first three columns
// with TotalLabel and carries TotalValue in the last column.
type Table struct {
	Header     []string
	Rows       [][]string
	TotalLabel string
	TotalValue string
}

// Build constructs the document spec for a set of line items. generatedAt
// only feeds the date line in the header metadata; the table body is
// deterministic for identical input.
func Build(lineItems []model.LineItem, grandTotal float64, generatedAt time.Time) Spec {
	rows := make([][]string, 0, len(lineItems))
	for _, item := range lineItems {
		rows = append(rows, []string{
			item.ProductName,
			fmt.Sprintf("%d", item.Quantity),
			Currency(item.UnitPrice),
			Currency(item.LineTotal),
		})
	}

	return Spec{
		Title:       "Quote Summary",
		DateLine:    fmt.Sprintf("Date: %s", generatedAt.Format("1/2/2006")),
		Attribution: "Prepared By: Quotesmith Quote Generator",
		Footer:      "Thank you for your business!",
		Table: Table{
			Header:     []string{"Product", "Quantity", "Unit Price", "Total Price"},
			Rows:       rows,
			TotalLabel: "Grand Total",
			TotalValue: Currency(grandTotal),
		},
	}
}

// Currency formats an amount with exactly two decimal places.
func Currency(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// FileName derives the output document name from the first line item and the
// quote's display name, collapsing whitespace runs to underscores. A draft
// with no line items uses the "NoProduct" sentinel.
func FileName(lineItems []model.LineItem, quoteName string) string {
	firstProduct := "NoProduct"
	if len(lineItems) > 0 {
		firstProduct = collapseWhitespace(lineItems[0].ProductName)
	}
	return fmt.Sprintf("Quote_%s_%s.pdf", firstProduct, collapseWhitespace(quoteName))
}

func collapseWhitespace(s string) string {
	out := make([]rune, 0, len(s))
	inRun := false
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r':
			if !inRun {
				out = append(out, '_')
				inRun = true
			}
		default:
			out = append(out, r)
			inRun = false
		}
	}
	return string(out)
}
