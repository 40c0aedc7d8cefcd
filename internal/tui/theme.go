package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the lipgloss styles for one color scheme.
type Theme struct {
	Name string

	Display  lipgloss.Style
	Preview  lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
	History  lipgloss.Style
	KeyLabel lipgloss.Style
	Accent   lipgloss.Style
	Frame    lipgloss.Style
}

func buildTheme(name, fg, muted, accent, errColor, border string) Theme {
	return Theme{
		Name: name,
		Display: lipgloss.NewStyle().
			Foreground(lipgloss.Color(fg)).
			Bold(true),
		Preview:  lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color(errColor)),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
		History:  lipgloss.NewStyle().Foreground(lipgloss.Color(fg)),
		KeyLabel: lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
		Accent: lipgloss.NewStyle().
			Foreground(lipgloss.Color(accent)).
			Bold(true),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color(border)).
			Padding(0, 1),
	}
}

var themes = map[string]Theme{
	"dark":  buildTheme("dark", "#F0F0F0", "#8C8C8C", "#C89A3A", "#FF4D4F", "#4A4A4A"),
	"light": buildTheme("light", "#1A1A1A", "#6E6E6E", "#B8860B", "#C62828", "#9E9E9E"),
	"blue":  buildTheme("blue", "#E6F0FA", "#7FA8C9", "#64B5F6", "#FF6B6B", "#2C5A82"),
	"green": buildTheme("green", "#E8F5E9", "#81A886", "#66BB6A", "#FF6B6B", "#2E5C34"),
}

// DefaultTheme is used when no theme is configured.
const DefaultTheme = "dark"

// ParseTheme resolves a theme name, case-insensitively.
func ParseTheme(name string) (Theme, error) {
	if name == "" {
		name = DefaultTheme
	}
	theme, ok := themes[strings.ToLower(name)]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (themes: %s)", name, strings.Join(ThemeNames(), ", "))
	}
	return theme, nil
}

// ThemeNames lists the available theme names, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
