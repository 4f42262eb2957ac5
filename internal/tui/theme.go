package tui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Clock     lipgloss.Style
	Break     lipgloss.Style
	Input     lipgloss.Style
	Error     lipgloss.Style
	Ground    lipgloss.Style
	Object    lipgloss.Style
	Cursor    lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("63"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Underline(true).Padding(0, 1),
		Clock:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Break:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(40),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Ground:    lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
		Object:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Cursor:    lipgloss.NewStyle().Reverse(true),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("62"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true).Underline(true).Padding(0, 1),
		Clock:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Break:     lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(40),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Ground:    lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Object:    lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		Cursor:    lipgloss.NewStyle().Reverse(true),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
	},
}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["default"]

var currentThemeKey = "default"

// SetTheme switches themes; unknown names are ignored.
func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
		currentThemeKey = name
	}
}

// ThemeNames returns the registered theme keys in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func nextThemeName() string {
	names := ThemeNames()
	for i, name := range names {
		if name == currentThemeKey {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
