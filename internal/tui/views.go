package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/harlowe/quotesmith/internal/document"
	"github.com/harlowe/quotesmith/internal/service"
	"github.com/harlowe/quotesmith/internal/wizard"
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	switch {
	case m.done:
		b.WriteString(m.renderConfirmed())
	case m.submitting:
		b.WriteString(m.renderSubmitting())
	case m.session.Step() == wizard.StepReviewing:
		b.WriteString(m.renderReview())
	default:
		b.WriteString(m.renderSelection())
	}

	if m.statusText != "" {
		b.WriteString("\n")
		b.WriteString(m.renderStatus())
	}
	if m.showHelp {
		b.WriteString("\n")
		b.WriteString(m.renderHelp())
	}

	return b.String()
}

func (m Model) renderSelection() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Quote Wizard — Select Products"))
	b.WriteString("\n")
	b.WriteString(m.searchInput.View())
	b.WriteString("\n\n")

	candidates := m.session.Candidates()
	if len(candidates) == 0 {
		if m.session.SearchTerm() == "" {
			b.WriteString(m.theme.Muted.Render("Type a search term and press Enter."))
		} else {
			b.WriteString(m.theme.Muted.Render(fmt.Sprintf("No products match %q.", m.session.SearchTerm())))
		}
	}

	for i, candidate := range candidates {
		marker := "[ ]"
		if candidate.Selected {
			marker = "[x]"
		}

		quantity := ""
		if item := m.session.Selection().Get(candidate.ProductID); item != nil {
			quantity = fmt.Sprintf("  qty %d  %s", item.Quantity, document.Currency(item.LineTotal))
		}

		line := fmt.Sprintf("%s %-30s %10s%s",
			marker, candidate.ProductName, document.Currency(candidate.UnitPrice), quantity)

		switch {
		case i == m.cursor && m.focus != focusSearch:
			line = m.theme.Highlighted.Render(line)
		case candidate.Selected:
			line = m.theme.Selected.Render(line)
		default:
			line = m.theme.Normal.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.focus == focusQuantity {
		b.WriteString("\n")
		b.WriteString(m.theme.Bold.Render("Quantity: "))
		b.WriteString(m.quantityInput.View())
		b.WriteString("\n")
	}

	if n := m.session.Selection().Len(); n > 0 {
		b.WriteString("\n")
		b.WriteString(m.theme.Subtitle.Render(fmt.Sprintf("%d product(s) selected", n)))
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render("/ search · Space select · e quantity · r review · ? help · q quit"))
	return b.String()
}

func (m Model) renderReview() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Quote Wizard — Review"))
	b.WriteString("\n")

	draft := m.session.Draft()
	if len(draft.LineItems) == 0 {
		b.WriteString(m.theme.Muted.Render("This quote has no line items."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderDraftTable())
	}

	if !m.rendererReady {
		b.WriteString("\n")
		b.WriteString(m.theme.StatusError.Render("PDF renderer unavailable — saving will fail."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render("s save quote · b back · ? help · q quit"))
	return b.String()
}

func (m Model) renderDraftTable() string {
	draft := m.session.Draft()

	header := fmt.Sprintf("%-30s %8s %12s %12s", "Product", "Quantity", "Unit Price", "Total Price")

	var b strings.Builder
	b.WriteString(m.theme.TableHeader.Render(header))
	b.WriteString("\n")

	for _, item := range draft.LineItems {
		b.WriteString(m.theme.Normal.Render(fmt.Sprintf("%-30s %8d %12s %12s",
			item.ProductName,
			item.Quantity,
			document.Currency(item.UnitPrice),
			document.Currency(item.LineTotal))))
		b.WriteString("\n")
	}

	b.WriteString(m.theme.TotalRow.Render(fmt.Sprintf("%52s %12s", "Grand Total", document.Currency(draft.GrandTotal))))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderSubmitting() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render("Quote Wizard — Saving"),
		fmt.Sprintf("%s Saving quote and generating document...", m.spinner.View()),
	)
}

func (m Model) renderConfirmed() string {
	var b strings.Builder

	if m.showConfetti {
		b.WriteString(confettiArt(m.theme))
		b.WriteString("\n")
	}

	b.WriteString(m.theme.Title.Render("Quote Saved"))
	b.WriteString("\n")
	if m.lastQuote != nil {
		b.WriteString(m.theme.StatusSuccess.Render(fmt.Sprintf("Quote created: %s", m.lastQuote.DisplayName())))
		b.WriteString("\n")
		b.WriteString(m.theme.Subtitle.Render(fmt.Sprintf("Grand total %s", document.Currency(m.lastQuote.GrandTotal))))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render("n new quote · q quit"))
	return b.String()
}

func (m Model) renderStatus() string {
	if m.statusLevel == service.SeverityError {
		return m.theme.StatusError.Render(m.statusText)
	}
	return m.theme.StatusSuccess.Render(m.statusText)
}

func (m Model) renderHelp() string {
	var lines []string
	for _, group := range m.keymap.FullHelp() {
		var parts []string
		for _, binding := range group {
			parts = append(parts, fmt.Sprintf("%s %s", binding.Help().Key, binding.Help().Desc))
		}
		lines = append(lines, strings.Join(parts, "   "))
	}
	return m.theme.Help.Render(strings.Join(lines, "\n"))
}
