package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/shipshoot/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))
	statusDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Background(lipgloss.Color("57"))
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of one color share a single style run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		writeRow(&sb, s, y)
	}
	return sb.String()
}

func writeRow(sb *strings.Builder, s *core.Screen, y int) {
	x := 0
	for x < s.Width() {
		startColor := s.GetCell(x, y).Color

		var run strings.Builder
		for x < s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != startColor {
				break
			}
			run.WriteRune(cell.Rune)
			x++
		}

		style, ok := colorStyles[startColor]
		if !ok {
			style = colorStyles[core.ColorDefault]
		}
		sb.WriteString(style.Render(run.String()))
	}
}

// RenderStatus draws the one-line bar under the playfield.
func RenderStatus(title string, state core.GameState, muted bool, width int) string {
	left := " " + title
	switch {
	case state.GameOver:
		left += fmt.Sprintf("  final %d", state.Score)
	case state.Paused:
		left += "  paused"
	default:
		left += fmt.Sprintf("  %d", state.Score)
	}
	if muted {
		left += "  (muted)"
	}
	right := "esc quit  ctrl+s screenshot "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return statusStyle.Width(width).MaxWidth(width).Render(left)
	}
	return statusStyle.Render(left) +
		statusDimStyle.Render(strings.Repeat(" ", gap)+right)
}
