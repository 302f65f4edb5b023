package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/matcalc/internal/calc"
	"github.com/san-kum/matcalc/internal/viz"
)

func (m *model[C]) View() string {
	var b strings.Builder

	b.WriteString("\n  " + viz.GradientText("MATCALC", m.theme.Primary, m.theme.Secondary))
	b.WriteString("  " + m.theme.Hint(fmt.Sprintf("%d×%d matrix calculator", m.calc.Order(), m.calc.Order())))
	b.WriteString("\n  " + m.theme.Separator(40) + "\n\n")

	left := m.operandView(calc.Left, "A")
	right := m.operandView(calc.Right, "B")
	result := m.theme.RenderMatrix(viz.MatrixView{
		Title:     "A " + m.calc.Operation().String() + " B",
		Rows:      m.calc.Result().Rows(),
		Precision: m.precision,
	})
	eq := m.theme.RenderEquation(left, m.calc.Operation().String(), right, result)
	b.WriteString(indent(eq, 2) + "\n\n")

	b.WriteString("  " + m.theme.Hint(fmt.Sprintf("op %s  recalcs %d  trace ", m.calc.Operation().Name(), m.calc.Recalcs())))
	b.WriteString(m.theme.Sparkline(m.history, 24) + "\n")

	switch {
	case m.editing:
		cur := viz.FormatValue(m.calc.Operand(m.side).At(m.row, m.col), m.precision)
		b.WriteString("  " + m.theme.Title(fmt.Sprintf("%s[%d,%d] = %s_", m.side, m.row, m.col, m.editBuf)))
		b.WriteString("  " + m.theme.Hint("was "+cur+", enter keeps it") + "\n")
	case m.err != nil:
		b.WriteString("  " + m.theme.ErrorText(m.err.Error()) + "\n")
	case m.status != "":
		b.WriteString("  " + m.theme.Hint(m.status) + "\n")
	default:
		b.WriteString("\n")
	}

	b.WriteString("\n  " + m.theme.KeyHints(
		"hjkl", "move", "tab", "operand", "+/-", fmt.Sprintf("±%g", m.step),
		"enter", "edit", "o", "operator", "z/i", "zero/identity", "t", "theme", "q", "quit",
	) + "\n")

	return b.String()
}

func (m *model[C]) operandView(side calc.Side, title string) string {
	v := viz.MatrixView{
		Title:     title,
		Rows:      m.calc.Operand(side).Rows(),
		Precision: m.precision,
		Focused:   m.side == side,
	}
	if m.side == side {
		v.Cursor = &viz.Cell{Row: m.row, Col: m.col}
	}
	return m.theme.RenderMatrix(v)
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
