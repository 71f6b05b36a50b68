package main

import (
	"fmt"
	"strings"
)

// menuItem is a single operator choice in the picker.
type menuItem struct {
	name       string
	opType     string
	symbol     string
	controls   int  // number of control qubits to select before the target
	needsQ     bool // selects a target qubit
	needsParam bool
	paramHint  string
}

// menuCategory groups related operators under a tab.
type menuCategory struct {
	name  string
	items []menuItem
}

// opMenu defines the operator picker categories and items.
var opMenu = []menuCategory{
	{
		name: "Single Qubit",
		items: []menuItem{
			{name: "Hadamard", opType: "H", symbol: "H", needsQ: true},
			{name: "Pauli-X (NOT)", opType: "X", symbol: "X", needsQ: true},
			{name: "Pauli-Y", opType: "Y", symbol: "Y", needsQ: true},
			{name: "Pauli-Z", opType: "Z", symbol: "Z", needsQ: true},
			{name: "Phase (S)", opType: "S", symbol: "S", needsQ: true},
			{name: "π/8 (T)", opType: "T", symbol: "T", needsQ: true},
		},
	},
	{
		name: "Rotation",
		items: []menuItem{
			{name: "Rotate X", opType: "RX", symbol: "RX", needsQ: true, needsParam: true, paramHint: "pi/2"},
			{name: "Rotate Y", opType: "RY", symbol: "RY", needsQ: true, needsParam: true, paramHint: "pi/2"},
			{name: "Rotate Z", opType: "RZ", symbol: "RZ", needsQ: true, needsParam: true, paramHint: "pi/4"},
		},
	},
	{
		name: "Controlled",
		items: []menuItem{
			{name: "CNOT", opType: "CX", symbol: "●─⊕", controls: 1, needsQ: true},
			{name: "CNOT (adjacent)", opType: "CXADJ", symbol: "●⊕", controls: 1, needsQ: true},
			{name: "Controlled-Z", opType: "CZ", symbol: "●─●", controls: 1, needsQ: true},
			{name: "Controlled-H", opType: "CH", symbol: "●─H", controls: 1, needsQ: true},
			{name: "C-Rotate Z", opType: "CRZ", symbol: "●─RZ", controls: 1, needsQ: true, needsParam: true, paramHint: "pi/2"},
			{name: "SWAP (adjacent)", opType: "SWAP", symbol: "×─×", needsQ: true},
		},
	},
	{
		name: "Three Qubit",
		items: []menuItem{
			{name: "Toffoli (CCX)", opType: "CCX", symbol: "●─●─⊕", controls: 2, needsQ: true},
			{name: "CC-Z", opType: "CCZ", symbol: "●─●─●", controls: 2, needsQ: true},
		},
	},
	{
		name: "Presets",
		items: []menuItem{
			{name: "GHZ state", opType: "GHZ", symbol: "|GHZ⟩"},
			{name: "Plus state", opType: "PLUS", symbol: "|+⟩ⁿ"},
			{name: "Reset", opType: "RESET", symbol: "|0⟩ⁿ"},
		},
	},
}

// renderMenu renders the operator picker panel.
func (m Model) renderMenu() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Operators"))
	sb.WriteString("\n")

	// Category tabs
	for i, cat := range opMenu {
		name := " " + cat.name + " "
		if i == m.menuCat {
			sb.WriteString(activeOpStyle.Render(name))
		} else {
			sb.WriteString(dimStyle.Render(name))
		}
		if i < len(opMenu)-1 {
			sb.WriteString(dimStyle.Render("│"))
		}
	}
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(strings.Repeat("─", 48)))
	sb.WriteString("\n")

	// Items in the selected category
	cat := opMenu[m.menuCat]
	for i, item := range cat.items {
		if i == m.menuItem {
			sb.WriteString(menuSelectedStyle.Render(" ▸ "))
			sb.WriteString(menuSelectedStyle.Render(fmt.Sprintf("%-16s", item.name)))
			sb.WriteString(opStyle.Render(item.symbol))
		} else {
			sb.WriteString("   ")
			sb.WriteString(menuNormalStyle.Render(fmt.Sprintf("%-16s", item.name)))
			sb.WriteString(dimStyle.Render(item.symbol))
		}
		if item.controls > 0 {
			sb.WriteString(dimStyle.Render(fmt.Sprintf(" →%d ctrl", item.controls)))
		}
		if item.needsParam {
			sb.WriteString(dimStyle.Render(fmt.Sprintf(" (%s)", item.paramHint)))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
