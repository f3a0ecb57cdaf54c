package tui

import (
	"math/rand"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/harlowe/quotesmith/internal/tui/themes"
)

var confettiGlyphs = []rune{'*', '.', 'o', '+', '✦', '·'}

var confettiColors = []lipgloss.Color{
	"#ef4444", "#f59e0b", "#10b981", "#3b82f6", "#a78bfa", "#f472b6",
}

// confettiArt renders a small confetti burst for the confirmation screen.
func confettiArt(_ themes.Theme) string {
	const rows, cols = 4, 48

	var b strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if rand.Intn(3) == 0 {
				glyph := confettiGlyphs[rand.Intn(len(confettiGlyphs))]
				color := confettiColors[rand.Intn(len(confettiColors))]
				b.WriteString(lipgloss.NewStyle().Foreground(color).Render(string(glyph)))
			} else {
				b.WriteRune(' ')
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
