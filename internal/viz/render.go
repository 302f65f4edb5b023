package viz

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Cell addresses one matrix element.
type Cell struct {
	Row, Col int
}

// MatrixView describes one matrix panel.
type MatrixView struct {
	Title     string
	Rows      [][]float32
	Precision int
	// Cursor is highlighted when non-nil.
	Cursor  *Cell
	Focused bool
}

// FormatValue prints v with a fixed number of decimals. Negative zero is
// shown as zero.
func FormatValue(v float32, precision int) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(float64(v), 'f', precision, 32)
}

// RenderMatrix draws the grid between tall brackets inside a bordered panel.
func (t Theme) RenderMatrix(v MatrixView) string {
	n := len(v.Rows)
	cells := make([][]string, n)
	width := 1
	for i, row := range v.Rows {
		cells[i] = make([]string, len(row))
		for j, val := range row {
			cells[i][j] = FormatValue(val, v.Precision)
			if w := len(cells[i][j]); w > width {
				width = w
			}
		}
	}

	var b strings.Builder
	for i, row := range cells {
		left, right := bracket(i, n)
		b.WriteString(t.muted().Render(left))
		for j, s := range row {
			b.WriteByte(' ')
			padded := strings.Repeat(" ", width-len(s)) + s
			switch {
			case v.Cursor != nil && v.Cursor.Row == i && v.Cursor.Col == j:
				b.WriteString(t.cursor().Render(padded))
			case math.IsNaN(float64(v.Rows[i][j])) || math.IsInf(float64(v.Rows[i][j]), 0):
				b.WriteString(t.ErrorText(padded))
			case v.Rows[i][j] < 0:
				b.WriteString(t.negative().Render(padded))
			default:
				b.WriteString(t.text().Render(padded))
			}
		}
		b.WriteByte(' ')
		b.WriteString(t.muted().Render(right))
		if i < n-1 {
			b.WriteByte('\n')
		}
	}
	if n == 0 {
		b.WriteString(t.muted().Render("[ ]"))
	}

	body := b.String()
	if v.Title != "" {
		body = t.title().Render(v.Title) + "\n" + body
	}
	return t.panel(v.Focused).Render(body)
}

func bracket(row, n int) (string, string) {
	switch {
	case n == 1:
		return "[", "]"
	case row == 0:
		return "⎡", "⎤"
	case row == n-1:
		return "⎣", "⎦"
	default:
		return "⎢", "⎥"
	}
}

// RenderEquation lays out "left op right = result" on one line, vertically
// centered.
func (t Theme) RenderEquation(left, op, right, result string) string {
	return lipgloss.JoinHorizontal(lipgloss.Center,
		left,
		t.operator().Render(op),
		right,
		t.operator().Render("="),
		result,
	)
}

// Sparkline renders a one-line chart of values sampled to fit width.
func (t Theme) Sparkline(values []float64, width int) string {
	if width <= 0 {
		return ""
	}
	if len(values) == 0 {
		return t.muted().Render(strings.Repeat("─", width))
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	rng := hi - lo
	if rng <= 0 || math.IsInf(rng, 0) || math.IsNaN(rng) {
		rng = 1
	}

	// keep the most recent values when there are more than fit
	if len(values) > width {
		values = values[len(values)-width:]
	}

	var b strings.Builder
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			b.WriteString(t.ErrorText("·"))
			continue
		}
		idx := int(math.Round((v - lo) / rng * float64(len(chars)-1)))
		idx = max(0, min(idx, len(chars)-1))
		b.WriteString(lipgloss.NewStyle().Foreground(t.Secondary).Render(string(chars[idx])))
	}
	return b.String()
}
