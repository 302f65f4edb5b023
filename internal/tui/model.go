package tui

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/matcalc/internal/calc"
	"github.com/san-kum/matcalc/internal/config"
	"github.com/san-kum/matcalc/internal/matrix"
	"github.com/san-kum/matcalc/internal/viz"
)

// historyLen bounds the result trace history shown as a sparkline.
const historyLen = 48

type model[C matrix.Cells] struct {
	calc      *calc.Calculator[C]
	side      calc.Side
	row, col  int
	editing   bool
	editBuf   string
	theme     viz.Theme
	precision int
	step      float32
	history   []float64
	status    string
	err       error
	width     int
	height    int
}

// New builds the calculator model from cfg, loading the operand presets it
// names from reg.
func New[C matrix.Cells](cfg *config.Config, reg *calc.Registry) (tea.Model, error) {
	m, err := newModel[C](cfg, reg)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func newModel[C matrix.Cells](cfg *config.Config, reg *calc.Registry) (*model[C], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	left, err := calc.Preset[C](reg, cfg.Left)
	if err != nil {
		return nil, fmt.Errorf("left operand: %w", err)
	}
	right, err := calc.Preset[C](reg, cfg.Right)
	if err != nil {
		return nil, fmt.Errorf("right operand: %w", err)
	}

	c := calc.NewCalculator[C]()
	c.SetOperand(calc.Left, left)
	c.SetOperand(calc.Right, right)
	c.SetOperation(cfg.Op())

	m := &model[C]{
		calc:      c,
		theme:     viz.GetTheme(cfg.Theme),
		precision: cfg.Precision,
		step:      float32(cfg.Step),
		history:   make([]float64, 0, historyLen),
		width:     80,
		height:    24,
	}
	m.record()
	return m, nil
}

// Run starts the full-screen calculator at the order cfg selects.
func Run(cfg *config.Config) error {
	reg := calc.NewRegistry()
	var (
		m   tea.Model
		err error
	)
	switch cfg.Size {
	case 2:
		m, err = New[matrix.Size2](cfg, reg)
	case 3:
		m, err = New[matrix.Size3](cfg, reg)
	case 4:
		m, err = New[matrix.Size4](cfg, reg)
	default:
		err = fmt.Errorf("%w: %d", config.ErrInvalidSize, cfg.Size)
	}
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m *model[C]) Init() tea.Cmd { return nil }

func (m *model[C]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m, m.editKey(msg)
		}
		return m, m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m *model[C]) handleKey(msg tea.KeyMsg) tea.Cmd {
	n := m.calc.Order()
	m.err = nil
	m.status = ""

	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit
	case "up", "k":
		if m.row > 0 {
			m.row--
		}
	case "down", "j":
		if m.row < n-1 {
			m.row++
		}
	case "left", "h":
		if m.col > 0 {
			m.col--
		} else if m.side == calc.Right {
			m.side, m.col = calc.Left, n-1
		}
	case "right", "l":
		if m.col < n-1 {
			m.col++
		} else if m.side == calc.Left {
			m.side, m.col = calc.Right, 0
		}
	case "tab", "shift+tab":
		m.side = m.side.Other()
	case "+", "=", "]":
		m.apply(m.calc.Nudge(m.side, m.row, m.col, m.step))
	case "-", "_", "[":
		m.apply(m.calc.Nudge(m.side, m.row, m.col, -m.step))
	case "enter":
		m.editing, m.editBuf = true, ""
	case "o":
		m.calc.CycleOperation()
		m.record()
	case "m":
		m.apply(m.calc.SetOperation(calc.Mul))
	case "a":
		m.apply(m.calc.SetOperation(calc.Add))
	case "s":
		m.apply(m.calc.SetOperation(calc.Sub))
	case "z":
		m.apply(m.calc.ResetZero(m.side))
		m.status = m.side.String() + " reset to zero"
	case "i":
		m.apply(m.calc.ResetIdentity(m.side))
		m.status = m.side.String() + " reset to identity"
	case "t":
		m.theme = m.theme.Next()
		m.status = "theme " + m.theme.Name
	}
	return nil
}

func (m *model[C]) editKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "enter":
		// confirming an empty buffer keeps the cell as it is
		if m.editBuf == "" {
			m.editing = false
			return nil
		}
		v, err := strconv.ParseFloat(m.editBuf, 32)
		if err != nil {
			m.err = fmt.Errorf("not a number: %q", m.editBuf)
		} else {
			m.apply(m.calc.SetCell(m.side, m.row, m.col, float32(v)))
		}
		m.editing, m.editBuf = false, ""
	case "esc":
		m.editing, m.editBuf = false, ""
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		for _, r := range msg.Runes {
			if (r >= '0' && r <= '9') || r == '.' || r == '-' || r == 'e' || r == '+' {
				m.editBuf += string(r)
			}
		}
	}
	return nil
}

// apply records the result after a mutation that changed something.
func (m *model[C]) apply(changed bool) {
	if changed {
		m.record()
	}
}

func (m *model[C]) record() {
	if len(m.history) == historyLen {
		m.history = m.history[1:]
	}
	m.history = append(m.history, calc.Trace(m.calc.Result()))
}
