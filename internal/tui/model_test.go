package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/matcalc/internal/calc"
	"github.com/san-kum/matcalc/internal/config"
	"github.com/san-kum/matcalc/internal/matrix"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *model[matrix.Size2], keys ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(k)
	}
	return cmd
}

func newTestModel(t *testing.T) *model[matrix.Size2] {
	t.Helper()
	cfg := config.GetPreset("classroom")
	m, err := newModel[matrix.Size2](cfg, calc.NewRegistry())
	if err != nil {
		t.Fatalf("newModel: %v", err)
	}
	return m
}

func TestNewModel_FromConfig(t *testing.T) {
	m := newTestModel(t)

	if got, want := m.calc.Left(), matrix.New(matrix.Size2{1, 2, 3, 4}); got != want {
		t.Errorf("left = %v, want %v", got, want)
	}
	if m.calc.Operation() != calc.Add {
		t.Errorf("operation = %s, want +", m.calc.Operation())
	}
	if got, want := m.calc.Result(), matrix.New(matrix.Size2{6, 8, 10, 12}); got != want {
		t.Errorf("result = %v, want %v", got, want)
	}
	if m.theme.Name != "minimal" || m.step != 1 {
		t.Errorf("theme/step not taken from config: %s %v", m.theme.Name, m.step)
	}
}

func TestNewModel_Errors(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Left = "nope"
	if _, err := New[matrix.Size2](cfg, calc.NewRegistry()); !errors.Is(err, calc.ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}

	cfg = config.DefaultConfig()
	cfg.Step = -1
	if _, err := New[matrix.Size2](cfg, calc.NewRegistry()); !errors.Is(err, config.ErrInvalidStep) {
		t.Errorf("expected ErrInvalidStep, got %v", err)
	}
}

func TestRun_InvalidSize(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Size = 7
	if err := Run(cfg); !errors.Is(err, config.ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize, got %v", err)
	}
}

func TestCursorMovement(t *testing.T) {
	m := newTestModel(t)

	press(m, runes("j"), runes("l"))
	if m.row != 1 || m.col != 1 || m.side != calc.Left {
		t.Fatalf("cursor at %s[%d,%d]", m.side, m.row, m.col)
	}

	// moving right off the left operand lands on the right one
	press(m, tea.KeyMsg{Type: tea.KeyRight})
	if m.side != calc.Right || m.col != 0 {
		t.Errorf("expected right operand col 0, got %s col %d", m.side, m.col)
	}

	press(m, runes("h"))
	if m.side != calc.Left || m.col != 1 {
		t.Errorf("expected left operand col 1, got %s col %d", m.side, m.col)
	}

	press(m, runes("j"), runes("j"), runes("k"), runes("k"), runes("k"))
	if m.row != 0 {
		t.Errorf("row should clamp at 0, got %d", m.row)
	}

	press(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.side != calc.Right {
		t.Error("tab should switch operand")
	}
}

func TestNudge(t *testing.T) {
	m := newTestModel(t)

	press(m, runes("+"), runes("+"))
	if got := m.calc.Left().At(0, 0); got != 3 {
		t.Errorf("left[0,0] = %v, want 3", got)
	}
	if got := m.calc.Result().At(0, 0); got != 8 {
		t.Errorf("result[0,0] = %v, want 8", got)
	}

	press(m, runes("-"))
	if got := m.calc.Left().At(0, 0); got != 2 {
		t.Errorf("left[0,0] = %v, want 2", got)
	}
	if len(m.history) != 4 {
		t.Errorf("expected 4 history entries, got %d", len(m.history))
	}
}

func TestEditValue(t *testing.T) {
	m := newTestModel(t)
	press(m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.editing || m.editBuf != "" {
		t.Fatalf("expected editing with an empty buffer, got %v %q", m.editing, m.editBuf)
	}

	press(m, runes("-2.5x"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.editing {
		t.Error("enter should leave edit mode")
	}
	if got := m.calc.Right().At(0, 0); got != -2.5 {
		t.Errorf("right[0,0] = %v, want -2.5", got)
	}

	press(m, tea.KeyMsg{Type: tea.KeyEnter}, runes("-"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.err == nil {
		t.Error("expected parse error for \"-\"")
	}
	if got := m.calc.Right().At(0, 0); got != -2.5 {
		t.Errorf("invalid input changed the cell to %v", got)
	}

	press(m, tea.KeyMsg{Type: tea.KeyEnter}, runes("9"), tea.KeyMsg{Type: tea.KeyEsc})
	if m.editing || m.calc.Right().At(0, 0) != -2.5 {
		t.Error("esc should cancel without writing")
	}
}

func TestEditValue_KeepsUnroundedValue(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want float32
	}{
		{"enter twice keeps the cell", []tea.KeyMsg{{Type: tea.KeyEnter}, {Type: tea.KeyEnter}}, 0.125},
		{"typed value replaces the cell", []tea.KeyMsg{{Type: tea.KeyEnter}, runes("7"), {Type: tea.KeyEnter}}, 7},
		{"backspace to empty keeps the cell", []tea.KeyMsg{{Type: tea.KeyEnter}, runes("3"), {Type: tea.KeyBackspace}, {Type: tea.KeyEnter}}, 0.125},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			m.calc.SetCell(calc.Left, 0, 0, 0.125)
			recalcs := m.calc.Recalcs()

			press(m, tt.keys...)
			if m.editing {
				t.Fatal("expected edit mode to end")
			}
			if got := m.calc.Left().At(0, 0); got != tt.want {
				t.Errorf("left[0,0] = %v, want %v", got, tt.want)
			}
			if tt.want == 0.125 && m.calc.Recalcs() != recalcs {
				t.Error("unchanged cell should not recalculate")
			}
		})
	}
}

func TestOperatorAndResets(t *testing.T) {
	m := newTestModel(t)

	press(m, runes("o"))
	if m.calc.Operation() != calc.Sub {
		t.Errorf("o after add should select sub, got %s", m.calc.Operation())
	}
	press(m, runes("m"))
	if got, want := m.calc.Result(), matrix.New(matrix.Size2{19, 22, 43, 50}); got != want {
		t.Errorf("mul result = %v, want %v", got, want)
	}

	press(m, runes("z"))
	if m.calc.Result() != (matrix.Mat2{}) {
		t.Errorf("zero left operand should zero the product, got %v", m.calc.Result())
	}
	press(m, runes("i"))
	if got, want := m.calc.Result(), matrix.New(matrix.Size2{5, 6, 7, 8}); got != want {
		t.Errorf("identity left operand: result = %v, want %v", got, want)
	}
}

func TestThemeAndQuit(t *testing.T) {
	m := newTestModel(t)
	before := m.theme.Name
	press(m, runes("t"))
	if m.theme.Name == before {
		t.Error("t should cycle the theme")
	}

	if cmd := press(m, runes("q")); cmd == nil {
		t.Fatal("q should return a command")
	} else if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestView(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	out := m.View()
	for _, want := range []string{"MATCALC", "2×2", "10", "12", "op add"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	press(m, runes("4"))
	view := m.View()
	if !strings.Contains(view, "left[0,0] = 4_") {
		t.Error("view should show the edit buffer")
	}
	if !strings.Contains(view, "was 1") {
		t.Error("view should show the current value while editing")
	}
}
