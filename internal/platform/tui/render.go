package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// palette gives every glyph role its terminal look.
var palette = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorFrame:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBody:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorHead:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorFood:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorNotice:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
}

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := palette[c]; ok {
		return style
	}
	return palette[core.ColorDefault]
}

// RenderScreen turns a Screen into styled terminal text. Each run of
// same-colored cells on a row is rendered with one style call.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	var run strings.Builder

	for y := range rows {
		var line strings.Builder
		for x := 0; x < s.Width(); {
			color := s.At(x, y).Color
			run.Reset()
			for ; x < s.Width() && s.At(x, y).Color == color; x++ {
				run.WriteRune(s.At(x, y).Rune)
			}
			line.WriteString(styleFor(color).Render(run.String()))
		}
		rows[y] = line.String()
	}
	return strings.Join(rows, "\n")
}
