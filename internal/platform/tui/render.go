package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/tui-maze/internal/core"
)

// styles holds one foreground style per palette color. Colors are given in
// hex so every surface shows the same shade; lipgloss downsamples them for
// terminals without true color.
var styles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	m := map[core.Color]lipgloss.Style{core.ColorDefault: lipgloss.NewStyle()}
	for c := core.ColorDefault; c.Valid(); c++ {
		if rgb, ok := c.RGB(); ok {
			m[c] = lipgloss.NewStyle().Foreground(hexColor(rgb))
		}
	}
	return m
}

func hexColor(rgb core.RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B))
}

// styleFor returns the style for c, falling back to the terminal default.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := styles[c]; ok {
		return style
	}
	return styles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display,
// one styled segment per run of same-colored cells.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		rows[y] = renderRow(s, y)
	}
	return strings.Join(rows, "\n")
}

func renderRow(s *core.Screen, y int) string {
	var sb strings.Builder
	var run []rune
	runColor := core.ColorDefault

	flush := func() {
		if len(run) > 0 {
			sb.WriteString(styleFor(runColor).Render(string(run)))
			run = run[:0]
		}
	}

	for x := 0; x < s.Width(); x++ {
		cell := s.GetCell(x, y)
		if cell.Color != runColor {
			flush()
			runColor = cell.Color
		}
		run = append(run, cell.Rune)
	}
	flush()
	return sb.String()
}
