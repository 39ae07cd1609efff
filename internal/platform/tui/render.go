package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// ScreenRenderer converts Screen buffers to styled strings.
// Styles are cached per color; a renderer is not safe for concurrent use,
// so each session owns one.
type ScreenRenderer struct {
	lg     *lipgloss.Renderer
	styles map[core.Color]lipgloss.Style
}

// NewScreenRenderer creates a renderer. A nil lipgloss renderer uses the
// process default (the local terminal).
func NewScreenRenderer(lg *lipgloss.Renderer) *ScreenRenderer {
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}
	return &ScreenRenderer{
		lg:     lg,
		styles: make(map[core.Color]lipgloss.Style),
	}
}

// style returns the foreground style for a color tag.
// Unparseable tags fall back to the terminal default.
func (r *ScreenRenderer) style(c core.Color) lipgloss.Style {
	if st, ok := r.styles[c]; ok {
		return st
	}

	st := r.lg.NewStyle()
	if c != core.ColorDefault {
		if hex, ok := normalizeHex(c); ok {
			st = st.Foreground(lipgloss.Color(hex))
		}
	}
	r.styles[c] = st
	return st
}

// normalizeHex expands short forms like "#fff" to "#ffffff".
func normalizeHex(c core.Color) (string, bool) {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return "", false
	}
	return col.Hex(), true
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (r *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(r.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
