package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cliprect/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

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
	return sb.String()
}

const transparent rune = 0

// Stage glyphs.
const (
	parentGlyph = '·'
	targetGlyph = '▓'
)

// targetBounds returns the target box centered in a parent of the given
// size, half its width and height and at least one cell each way.
func targetBounds(parentW, parentH int) core.Rect {
	w := core.Max(1, parentW/2)
	h := core.Max(1, parentH/2)
	return core.RectXYWH((parentW-w)/2, (parentH-h)/2, w, h)
}

// drawStage paints the parent, then the target clipped to clip.
// clip is in target-local coordinates.
func drawStage(stage *core.Screen, target core.Rect, clip core.Rect, label string) {
	stage.Fill(parentGlyph, core.ColorGray)

	content := core.NewScreen(target.Width(), target.Height())
	content.Fill(targetGlyph, core.ColorMagenta)
	content.DrawBox(content.Bounds(), core.ColorCyan)
	if label != "" && content.Height() > 2 {
		x := core.Max(1, (content.Width()-len([]rune(label)))/2)
		content.DrawText(x, content.Height()/2, label, core.ColorYellow)
	}
	content.ClipTo(clip, core.Cell{Rune: transparent})

	stage.Blit(content, target.Left, target.Top, transparent)
}
