package ui

import (
	"os"
	"slices"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// DefaultThemeName is used when no theme is configured.
const DefaultThemeName = "dark"

// Theme is a colour scheme shared by the CLI output and the dashboard.
// The escape-code fields serve the plain CLI; TUI holds the lipgloss
// palette of the same scheme.
type Theme struct {
	Name string

	Primary   string // accent for engine names and headings
	Secondary string // file paths and less prominent values
	Success   string
	Warning   string // timings and zero counts
	Error     string
	Info      string
	Bold      string
	Underline string
	Reset     string

	TUI TUITheme
}

// TUITheme holds lipgloss colours for the dashboard panels.
type TUITheme struct {
	Bg      lipgloss.TerminalColor
	Text    lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
	Info    lipgloss.TerminalColor
}

var (
	// DarkTheme suits dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",
		Secondary: "\033[38;5;245m",
		Success:   "\033[38;5;82m",
		Warning:   "\033[38;5;220m",
		Error:     "\033[38;5;196m",
		Info:      "\033[38;5;141m",
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
		TUI: TUITheme{
			Bg:      lipgloss.Color("#000000"),
			Text:    lipgloss.Color("#E0E0E0"),
			Border:  lipgloss.Color("#3A7BD5"),
			Accent:  lipgloss.Color("#5FAFFF"),
			Success: lipgloss.Color("#9ece6a"),
			Warning: lipgloss.Color("#FFD75F"),
			Error:   lipgloss.Color("#FF4444"),
			Dim:     lipgloss.Color("#666666"),
			Info:    lipgloss.Color("#AF87FF"),
		},
	}

	// LightTheme uses darker tones for light backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;27m",
		Secondary: "\033[38;5;240m",
		Success:   "\033[38;5;28m",
		Warning:   "\033[38;5;130m",
		Error:     "\033[38;5;124m",
		Info:      "\033[38;5;54m",
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
		TUI: TUITheme{
			Bg:      lipgloss.Color("#FFFFFF"),
			Text:    lipgloss.Color("#1C1C1C"),
			Border:  lipgloss.Color("#005FD7"),
			Accent:  lipgloss.Color("#005FAF"),
			Success: lipgloss.Color("#008700"),
			Warning: lipgloss.Color("#AF5F00"),
			Error:   lipgloss.Color("#AF0000"),
			Dim:     lipgloss.Color("#8A8A8A"),
			Info:    lipgloss.Color("#5F0087"),
		},
	}

	// OrangeTheme is the warm btop-like palette.
	OrangeTheme = Theme{
		Name:      "orange",
		Primary:   "\033[38;5;208m",
		Secondary: "\033[38;5;245m",
		Success:   "\033[38;5;82m",
		Warning:   "\033[38;5;214m",
		Error:     "\033[38;5;196m",
		Info:      "\033[38;5;69m",
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
		TUI: TUITheme{
			Bg:      lipgloss.Color("#000000"),
			Text:    lipgloss.Color("#E0E0E0"),
			Border:  lipgloss.Color("#FF6600"),
			Accent:  lipgloss.Color("#FF8C00"),
			Success: lipgloss.Color("#9ece6a"),
			Warning: lipgloss.Color("#FFB347"),
			Error:   lipgloss.Color("#FF4444"),
			Dim:     lipgloss.Color("#666666"),
			Info:    lipgloss.Color("#4488FF"),
		},
	}

	// NoColorTheme disables every colour. It is selected by -no-color or
	// NO_COLOR, never by name.
	NoColorTheme = Theme{
		Name: "none",
		TUI: TUITheme{
			Bg:      lipgloss.NoColor{},
			Text:    lipgloss.NoColor{},
			Border:  lipgloss.NoColor{},
			Accent:  lipgloss.NoColor{},
			Success: lipgloss.NoColor{},
			Warning: lipgloss.NoColor{},
			Error:   lipgloss.NoColor{},
			Dim:     lipgloss.NoColor{},
			Info:    lipgloss.NoColor{},
		},
	}

	namedThemes = map[string]Theme{
		DarkTheme.Name:   DarkTheme,
		LightTheme.Name:  LightTheme,
		OrangeTheme.Name: OrangeTheme,
	}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// ThemeNames lists the selectable theme names in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(namedThemes))
	for name := range namedThemes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// LookupTheme returns the theme registered under name.
func LookupTheme(name string) (Theme, bool) {
	t, ok := namedThemes[name]
	return t, ok
}

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// GetCurrentTUITheme returns the dashboard palette of the active theme.
func GetCurrentTUITheme() TUITheme {
	return GetCurrentTheme().TUI
}

// SetCurrentTheme replaces the active theme. Tests use it to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// InitTheme activates the named theme, or the default one when name is
// empty or unknown. noColor and a NO_COLOR environment variable
// (https://no-color.org/) take precedence over the name.
func InitTheme(name string, noColor bool) {
	t, ok := LookupTheme(name)
	if !ok {
		t = DarkTheme
	}
	if _, set := os.LookupEnv("NO_COLOR"); noColor || set {
		t = NoColorTheme
	}
	SetCurrentTheme(t)
}
