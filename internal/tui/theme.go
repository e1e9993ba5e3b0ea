package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the palette of a display theme.
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Success lipgloss.Color
	Danger  lipgloss.Color
	Warning lipgloss.Color
	Info    lipgloss.Color
	Muted   lipgloss.Color
	Text    lipgloss.Color
}

// Themes follow the bootstrap palettes of the same name.
var themes = map[string]Theme{
	"cosmo": {
		Name:    "cosmo",
		Primary: lipgloss.Color("#2780E3"),
		Success: lipgloss.Color("#3FB618"),
		Danger:  lipgloss.Color("#FF0039"),
		Warning: lipgloss.Color("#FF7518"),
		Info:    lipgloss.Color("#9954BB"),
		Muted:   lipgloss.Color("#868E96"),
		Text:    lipgloss.Color("#F0F0F0"),
	},
	"pulse": {
		Name:    "pulse",
		Primary: lipgloss.Color("#593196"),
		Success: lipgloss.Color("#13B955"),
		Danger:  lipgloss.Color("#FC3939"),
		Warning: lipgloss.Color("#EFA31D"),
		Info:    lipgloss.Color("#009CDC"),
		Muted:   lipgloss.Color("#A991D4"),
		Text:    lipgloss.Color("#F0F0F0"),
	},
	"darkly": {
		Name:    "darkly",
		Primary: lipgloss.Color("#375A7F"),
		Success: lipgloss.Color("#00BC8C"),
		Danger:  lipgloss.Color("#E74C3C"),
		Warning: lipgloss.Color("#F39C12"),
		Info:    lipgloss.Color("#3498DB"),
		Muted:   lipgloss.Color("#6E6E6E"),
		Text:    lipgloss.Color("#DEE2E6"),
	},
}

// ThemeNames lists the available theme names.
func ThemeNames() []string {
	return []string{"cosmo", "pulse", "darkly"}
}

// LookupTheme returns the theme with the given name.
func LookupTheme(name string) (Theme, error) {
	t, ok := themes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(ThemeNames(), ", "))
	}
	return t, nil
}

type styles struct {
	header    lipgloss.Style
	title     lipgloss.Style
	text      lipgloss.Style
	accent    lipgloss.Style
	label     lipgloss.Style
	button    lipgloss.Style
	footer    lipgloss.Style
	errorLine lipgloss.Style
	warning   lipgloss.Style
	status    map[statusKey]lipgloss.Style
	preview   lipgloss.Style
}

type statusKey int

const (
	statusNone statusKey = iota
	statusCorrect
	statusIncorrect
	statusUnparseable
)

func newStyles(t Theme) styles {
	return styles{
		header:    lipgloss.NewStyle().Foreground(t.Muted),
		title:     lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		text:      lipgloss.NewStyle().Foreground(t.Text),
		accent:    lipgloss.NewStyle().Foreground(t.Info).Bold(true),
		label:     lipgloss.NewStyle().Foreground(t.Text),
		button:    lipgloss.NewStyle().Foreground(t.Text).Background(t.Primary).Padding(0, 2),
		footer:    lipgloss.NewStyle().Foreground(t.Muted),
		errorLine: lipgloss.NewStyle().Foreground(t.Danger),
		warning:   lipgloss.NewStyle().Foreground(t.Warning),
		status: map[statusKey]lipgloss.Style{
			statusNone:        lipgloss.NewStyle().Foreground(t.Info),
			statusCorrect:     lipgloss.NewStyle().Foreground(t.Success),
			statusIncorrect:   lipgloss.NewStyle().Foreground(t.Danger),
			statusUnparseable: lipgloss.NewStyle().Foreground(t.Warning),
		},
		preview: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(t.Muted),
	}
}
