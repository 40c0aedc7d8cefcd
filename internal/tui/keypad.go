package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/driizzyy/deskcalc/internal/model"
)

// keypadLayouts mirror the desktop button grid per mode, rendered as a
// reference panel rather than clickable buttons.
var keypadLayouts = map[model.Mode][][]string{
	model.ModeStandard: {
		{"7", "8", "9", "/", "MC"},
		{"4", "5", "6", "*", "MR"},
		{"1", "2", "3", "-", "MS"},
		{"0", ".", "%", "+", "M+"},
		{"(", ")", "sqrt", "=", "M-"},
	},
	model.ModeScientific: {
		{"sin", "cos", "tan", "pi", "e"},
		{"asin", "acos", "atan", "phi", "tau"},
		{"ln", "log10", "log2", "^", "!"},
		{"sqrt", "abs", "floor", "ceil", "round"},
		{"min", "max", "(", ")", "="},
	},
	model.ModeProgrammer: {
		{"A", "B", "C", "D", "E", "F"},
		{"&", "|", "^", "~", "<<", ">>"},
		{"7", "8", "9", "4", "5", "6"},
		{"1", "2", "3", "0", "%", "="},
	},
}

// renderKeypad draws the button grid with uniform cell widths.
func renderKeypad(theme Theme, mode model.Mode) string {
	layout, ok := keypadLayouts[mode]
	if !ok {
		return ""
	}
	cellWidth := 0
	for _, row := range layout {
		for _, key := range row {
			if w := runewidth.StringWidth(key); w > cellWidth {
				cellWidth = w
			}
		}
	}
	lines := make([]string, 0, len(layout))
	for _, row := range layout {
		cells := make([]string, 0, len(row))
		for _, key := range row {
			cells = append(cells, runewidth.FillRight(key, cellWidth))
		}
		lines = append(lines, theme.KeyLabel.Render(strings.Join(cells, "  ")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
