// Package render produces final PDF bytes from a document spec using the
// fpdf engine. The engine is initialized lazily, exactly once, and is
// read-only after initialization.
package render

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/go-pdf/fpdf"

	"github.com/harlowe/quotesmith/internal/common"
	"github.com/harlowe/quotesmith/internal/document"
)

// Table layout in millimeters, A4 portrait.
var columnWidths = [4]float64{70, 30, 40, 40}

const (
	marginLeft  = 20.0
	titleY      = 15.0
	dateY       = 25.0
	attrY       = 32.0
	tableStartY = 40.0
	rowHeight   = 10.0
	footerGap   = 15.0
)

// PDFRenderer implements service.Renderer on top of fpdf.
type PDFRenderer struct {
	initialized bool
}

// NewPDFRenderer creates an uninitialized renderer. Init must succeed before
// the first Render call.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Init prepares the rendering engine. It is idempotent; repeated calls are
// no-ops. A probe document is produced so engine failures surface here
// rather than mid-submission.
func (r *PDFRenderer) Init(ctx context.Context) error {
	if r.initialized {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	probe := fpdf.New("P", "mm", "A4", "")
	probe.AddPage()
	var buf bytes.Buffer
	if err := probe.Output(&buf); err != nil {
		return common.NewUserError("Failed to load PDF libraries", err)
	}

	r.initialized = true
	slog.Debug("pdf renderer initialized")
	return nil
}

// Ready reports whether Init has completed.
func (r *PDFRenderer) Ready() bool {
	return r.initialized
}

// Render lays out the quote summary: title block, date and attribution
// lines, the line-item grid with a grand-total row, and the closing line.
func (r *PDFRenderer) Render(spec document.Spec) ([]byte, error) {
	if !r.initialized {
		return nil, common.ErrRendererNotReady
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Text(pageWidth/2-pdf.GetStringWidth(spec.Title)/2, titleY, spec.Title)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(marginLeft, dateY, spec.DateLine)
	pdf.Text(marginLeft, attrY, spec.Attribution)

	pdf.SetY(tableStartY)
	r.renderTable(pdf, spec.Table)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 100, 100)
	footerY := pdf.GetY() + footerGap
	pdf.Text(pageWidth/2-pdf.GetStringWidth(spec.Footer)/2, footerY, spec.Footer)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) renderTable(pdf *fpdf.Fpdf, table document.Table) {
	aligns := [4]string{"L", "C", "R", "R"}

	// Header row.
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(41, 128, 185)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetDrawColor(120, 120, 120)
	pdf.SetX(marginLeft)
	for i, h := range table.Header {
		pdf.CellFormat(columnWidths[i], rowHeight, h, "1", 0, aligns[i], true, 0, "")
	}
	pdf.Ln(-1)

	// Body rows with alternating fill.
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for rowIdx, row := range table.Rows {
		if rowIdx%2 == 1 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		pdf.SetX(marginLeft)
		for i, cell := range row {
			pdf.CellFormat(columnWidths[i], rowHeight, cell, "1", 0, aligns[i], true, 0, "")
		}
		pdf.Ln(-1)
	}

	// Grand total row: label spans the first three columns.
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(255, 255, 255)
	pdf.SetX(marginLeft)
	labelWidth := columnWidths[0] + columnWidths[1] + columnWidths[2]
	pdf.CellFormat(labelWidth, rowHeight, table.TotalLabel, "1", 0, "R", true, 0, "")
	pdf.CellFormat(columnWidths[3], rowHeight, table.TotalValue, "1", 0, "R", true, 0, "")
	pdf.Ln(-1)
}
