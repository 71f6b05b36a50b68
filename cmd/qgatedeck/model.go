package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"qgate"
	"qgate/linalg"
)

// focus represents which input mode has the keyboard.
type focus int

const (
	focusMenu focus = iota
	focusSelectQubits
	focusInputParam
)

// Model is the workbench state: a live register vector plus the operator
// picker machinery.
type Model struct {
	numQubits int
	state     linalg.Vector
	applied   []*linalg.Matrix // operators applied since the last reset, oldest first
	log       []string

	focus    focus
	menuCat  int
	menuItem int

	pending    menuItem
	picked     []int // qubits picked so far: controls first, target last
	cursor     int   // qubit highlighted during selection
	theta      float64
	paramInput textinput.Model

	width, height int
	statusMsg     string
}

func initialModel(numQubits int) Model {
	ti := textinput.New()
	ti.Placeholder = "pi/2"
	ti.CharLimit = 16
	ti.Width = 14

	return Model{
		numQubits:  numQubits,
		state:      linalg.NewBasisVector(1<<numQubits, 0),
		paramInput: ti,
		focus:      focusMenu,
	}
}

// qubitsNeeded returns how many qubits the pending item still wants.
func (m Model) qubitsNeeded() int {
	total := m.pending.controls
	if m.pending.needsQ {
		total++
	}
	return total - len(m.picked)
}

// resetPending clears selection state and returns to the menu.
func (m *Model) resetPending() {
	m.pending = menuItem{}
	m.picked = nil
	m.theta = 0
	m.focus = focusMenu
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" {
			return m, tea.Quit
		}
		m.statusMsg = ""

		switch m.focus {
		case focusMenu:
			switch key {
			case "q":
				return m, tea.Quit
			case "up", "k":
				if m.menuItem > 0 {
					m.menuItem--
				}
			case "down", "j":
				if m.menuItem < len(opMenu[m.menuCat].items)-1 {
					m.menuItem++
				}
			case "left", "h":
				if m.menuCat > 0 {
					m.menuCat--
					m.menuItem = 0
				}
			case "right", "l":
				if m.menuCat < len(opMenu)-1 {
					m.menuCat++
					m.menuItem = 0
				}
			case "u":
				m.checkUnitary()
			case "enter":
				item := opMenu[m.menuCat].items[m.menuItem]
				m.pending = item
				m.picked = nil
				if item.needsParam {
					m.paramInput.SetValue("")
					m.paramInput.Focus()
					m.focus = focusInputParam
					break
				}
				if m.qubitsNeeded() > 0 {
					m.cursor = 0
					m.focus = focusSelectQubits
					break
				}
				m.applyPending()
			}

		case focusInputParam:
			switch key {
			case "esc":
				m.paramInput.Blur()
				m.resetPending()
			case "enter":
				val, ok := parseParamExpr(m.paramInput.Value())
				if !ok {
					m.statusMsg = "bad parameter: " + m.paramInput.Value()
					break
				}
				m.theta = val
				m.paramInput.Blur()
				if m.qubitsNeeded() > 0 {
					m.cursor = 0
					m.focus = focusSelectQubits
					break
				}
				m.applyPending()
			default:
				var cmd tea.Cmd
				m.paramInput, cmd = m.paramInput.Update(msg)
				return m, cmd
			}

		case focusSelectQubits:
			switch key {
			case "esc":
				m.resetPending()
			case "up", "k":
				for next := m.cursor - 1; next >= 0; next-- {
					if !intsContain(m.picked, next) {
						m.cursor = next
						break
					}
				}
			case "down", "j":
				for next := m.cursor + 1; next < m.numQubits; next++ {
					if !intsContain(m.picked, next) {
						m.cursor = next
						break
					}
				}
			case "enter":
				m.picked = append(m.picked, m.cursor)
				if m.qubitsNeeded() == 0 {
					m.applyPending()
					break
				}
				for q := 0; q < m.numQubits; q++ {
					if !intsContain(m.picked, q) {
						m.cursor = q
						break
					}
				}
			}
		}
	}

	return m, nil
}

// applyPending builds the selected operator through the composition engine
// and applies it to the register.
func (m *Model) applyPending() {
	it := m.pending
	n := m.numQubits

	// Presets replace the register outright.
	switch it.opType {
	case "GHZ":
		state, err := qgate.GHZState(n)
		if err != nil {
			m.statusMsg = err.Error()
		} else {
			m.state = state
			m.applied = nil
			m.log = append(m.log, "GHZ preset")
		}
		m.resetPending()
		return
	case "PLUS":
		vs := make([]linalg.Vector, n)
		for i := range vs {
			vs[i] = qgate.Plus
		}
		state, err := qgate.KronVectors(vs)
		if err != nil {
			m.statusMsg = err.Error()
		} else {
			m.state = state
			m.applied = nil
			m.log = append(m.log, "|+⟩ product preset")
		}
		m.resetPending()
		return
	case "RESET":
		m.state = linalg.NewBasisVector(1<<n, 0)
		m.applied = nil
		m.log = append(m.log, "reset to |0…0⟩")
		m.resetPending()
		return
	}

	op, err := m.buildOperator(it)
	if err != nil {
		m.statusMsg = err.Error()
	} else {
		m.state = op.MulVec(m.state)
		m.applied = append(m.applied, op)
		m.log = append(m.log, m.describePending())
	}
	m.resetPending()
}

// buildOperator synthesizes the full-register operator for the pending item.
func (m *Model) buildOperator(it menuItem) (*linalg.Matrix, error) {
	n := m.numQubits
	q := m.picked

	switch it.opType {
	case "H":
		return qgate.Embed(qgate.H, q[0], n)
	case "X":
		return qgate.Embed(qgate.X, q[0], n)
	case "Y":
		return qgate.Embed(qgate.Y, q[0], n)
	case "Z":
		return qgate.Embed(qgate.Z, q[0], n)
	case "S":
		return qgate.Embed(qgate.S, q[0], n)
	case "T":
		return qgate.Embed(qgate.T, q[0], n)
	case "RX":
		return qgate.Embed(qgate.RX(m.theta), q[0], n)
	case "RY":
		return qgate.Embed(qgate.RY(m.theta), q[0], n)
	case "RZ":
		return qgate.Embed(qgate.RZ(m.theta), q[0], n)
	case "SWAP":
		// Swaps the picked qubit with the one directly after it.
		return qgate.Embed(qgate.SWAPGate, q[0], n)
	case "CX":
		return qgate.CNOT(q[0], q[1], n)
	case "CXADJ":
		return qgate.AdjacentCNOT(q[0], q[1], n)
	case "CZ":
		return qgate.Controlled(qgate.Z, q[0], q[1], n)
	case "CH":
		return qgate.Controlled(qgate.H, q[0], q[1], n)
	case "CRZ":
		return qgate.Controlled(qgate.RZ(m.theta), q[0], q[1], n)
	case "CCX":
		return qgate.Toffoli(q[0], q[1], q[2], n)
	case "CCZ":
		return qgate.ControlledControlled(qgate.Z, q[0], q[1], q[2], n)
	default:
		return nil, fmt.Errorf("unknown operator %q", it.opType)
	}
}

// describePending formats a log entry for the operator just applied.
func (m *Model) describePending() string {
	it := m.pending
	name := it.opType
	if it.needsParam {
		name = fmt.Sprintf("%s(%s)", it.opType, formatParam(m.theta))
	}
	qs := make([]string, len(m.picked))
	for i, q := range m.picked {
		qs[i] = fmt.Sprintf("q%d", q)
	}
	return name + " " + strings.Join(qs, ",")
}

// checkUnitary folds the applied operators into the composed register
// operator and verifies O·O† = I.
func (m *Model) checkUnitary() {
	// Dot folds left to right, and the operator applied last is the
	// leftmost factor of the composition.
	ops := make([]*linalg.Matrix, 0, len(m.applied))
	for i := len(m.applied) - 1; i >= 0; i-- {
		ops = append(ops, m.applied[i])
	}
	total, err := qgate.Dot(ops)
	if err != nil {
		m.statusMsg = "no operators applied yet"
		return
	}
	if total.IsUnitary(1e-9) {
		m.statusMsg = fmt.Sprintf("composed operator (%d gates) is unitary", len(m.applied))
	} else {
		m.statusMsg = fmt.Sprintf("composed operator (%d gates) is NOT unitary", len(m.applied))
	}
}

func intsContain(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
