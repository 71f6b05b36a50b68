package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"qgate/linalg"
)

const probEpsilon = 1e-10

// renderStatePanel lists the basis states carrying probability, with
// amplitude, probability, and a bar.
func (m Model) renderStatePanel(width int) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(fmt.Sprintf("Register (%d qubits)", m.numQubits)))
	sb.WriteString("\n\n")

	shown := 0
	for i := range m.state {
		prob := m.state.Prob(i)
		if prob < probEpsilon {
			continue
		}
		label := fmt.Sprintf("|%0*b⟩", m.numQubits, i)
		amp := linalg.FormatComplex(m.state[i], 4)
		bar := strings.Repeat("█", int(prob*16+0.5))
		sb.WriteString(qubitLabelStyle.Render(label))
		fmt.Fprintf(&sb, "  %-16s p=%.4f ", amp, prob)
		sb.WriteString(barStyle.Render(bar))
		sb.WriteString("\n")
		shown++
	}
	if shown == 0 {
		sb.WriteString(dimStyle.Render("(no amplitudes above threshold)"))
		sb.WriteString("\n")
	}

	return statePanelStyle.Width(width).Render(sb.String())
}

// renderMenuPanel renders the picker plus whatever selection prompt is
// active.
func (m Model) renderMenuPanel(width int) string {
	var sb strings.Builder
	sb.WriteString(m.renderMenu())

	switch m.focus {
	case focusSelectQubits:
		sb.WriteString("\n")
		sb.WriteString(m.renderQubitPicker())
	case focusInputParam:
		sb.WriteString("\n")
		sb.WriteString(titleStyle.Render("Angle"))
		sb.WriteString(" ")
		sb.WriteString(m.paramInput.View())
		sb.WriteString("\n")
		sb.WriteString(dimStyle.Render("Examples: pi/2, 3*pi/4, 1.57"))
	}

	return menuPanelStyle.Width(width).Render(sb.String())
}

// renderQubitPicker renders the qubit selection list. Controls are picked
// before the target.
func (m Model) renderQubitPicker() string {
	var sb strings.Builder

	role := "target"
	if len(m.picked) < m.pending.controls {
		role = fmt.Sprintf("control %d", len(m.picked)+1)
	}
	sb.WriteString(titleStyle.Render(fmt.Sprintf("Pick %s for %s", role, m.pending.name)))
	sb.WriteString("\n")

	for q := 0; q < m.numQubits; q++ {
		switch {
		case q == m.cursor:
			sb.WriteString(menuSelectedStyle.Render(fmt.Sprintf(" ▸ q%d", q)))
		case intsContain(m.picked, q):
			sb.WriteString(activeOpStyle.Render(fmt.Sprintf(" ● q%d", q)))
		default:
			sb.WriteString(menuNormalStyle.Render(fmt.Sprintf("   q%d", q)))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(dimStyle.Render("↑↓ Select  ⏎ Ok  Esc ✕"))

	return sb.String()
}

// renderLogPanel shows the most recent applied operators and the status
// line.
func (m Model) renderLogPanel(width, rows int) string {
	var sb strings.Builder

	sb.WriteString(activeOpStyle.Render("Applied: "))
	if len(m.log) == 0 {
		sb.WriteString(dimStyle.Render("(nothing yet)"))
	} else {
		start := max(len(m.log)-rows, 0)
		sb.WriteString(strings.Join(m.log[start:], "  ·  "))
	}
	sb.WriteString("\n")

	if m.statusMsg != "" {
		sb.WriteString(errorStyle.Render(m.statusMsg))
	} else {
		sb.WriteString(dimStyle.Render("↑↓←→/hjkl Navigate  ⏎ Apply  u Unitarity  q/^C Quit"))
	}

	return controlsStyle.Width(width).Render(sb.String())
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	menuWidth := min(m.width/2-2, 56)
	stateWidth := m.width - menuWidth - 6

	menuPanel := m.renderMenuPanel(menuWidth)
	statePanel := m.renderStatePanel(stateWidth)
	logPanel := m.renderLogPanel(m.width-4, 4)

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, menuPanel, statePanel)
	return lipgloss.JoinVertical(lipgloss.Left, topRow, logPanel)
}
