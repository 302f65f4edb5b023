package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (t Theme) title() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Secondary)
}

func (t Theme) text() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Text)
}

func (t Theme) muted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted)
}

func (t Theme) negative() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Negative)
}

// cursor marks the cell being edited
func (t Theme) cursor() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Background()).Background(t.Primary)
}

func (t Theme) operator() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Accent).Padding(0, 1)
}

func (t Theme) panel(focused bool) lipgloss.Style {
	border := t.Border
	if focused {
		border = t.Primary
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}

// Background picks black or white to contrast with Primary.
func (t Theme) Background() lipgloss.Color {
	r, g, b := parseHex(string(t.Primary))
	if r*299+g*587+b*114 > 128000 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#ffffff")
}

// Title renders a heading in the theme's title color.
func (t Theme) Title(s string) string { return t.title().Render(s) }

// Hint renders muted helper text.
func (t Theme) Hint(s string) string { return t.muted().Render(s) }

// ErrorText renders an error line.
func (t Theme) ErrorText(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Error).Render(s)
}

// KeyHints renders "key action" pairs as a single help line.
func (t Theme) KeyHints(pairs ...string) string {
	key := lipgloss.NewStyle().Bold(true).Foreground(t.Secondary)
	parts := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, key.Render(pairs[i])+" "+t.muted().Render(pairs[i+1]))
	}
	return strings.Join(parts, "  ")
}

// GradientText creates a gradient effect on text using color interpolation
func GradientText(text string, startColor, endColor lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	sr, sg, sb := parseHex(string(startColor))
	er, eg, eb := parseHex(string(endColor))

	var result strings.Builder
	n := len(runes)
	for i, c := range runes {
		f := 0.0
		if n > 1 {
			f = float64(i) / float64(n-1)
		}
		r := int(float64(sr) + f*float64(er-sr))
		g := int(float64(sg) + f*float64(eg-sg))
		b := int(float64(sb) + f*float64(eb-sb))

		style := lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(r, g, b)))
		result.WriteString(style.Render(string(c)))
	}

	return result.String()
}

// Separator draws a muted rule with a centered diamond.
func (t Theme) Separator(width int) string {
	if width < 8 {
		width = 8
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return t.muted().Render(left + " ◆ " + right)
}

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	r = parseHexByte(hex[1:3])
	g = parseHexByte(hex[3:5])
	b = parseHexByte(hex[5:7])
	return
}

func parseHexByte(s string) int {
	var val int
	for _, c := range s {
		val *= 16
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'a' && c <= 'f':
			val += int(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += int(c - 'A' + 10)
		}
	}
	return val
}

func hexColor(r, g, b int) string {
	return "#" + hexByte(r) + hexByte(g) + hexByte(b)
}

func hexByte(v int) string {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	const hex = "0123456789abcdef"
	return string(hex[v/16]) + string(hex[v%16])
}
