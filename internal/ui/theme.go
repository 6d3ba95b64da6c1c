package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the palette and checkbox symbols. All renderers pull from
// `current`.
//
// The screen must stay readable on both light and dark terminal
// backgrounds, so the default palette uses lipgloss.AdaptiveColor pairs.
type Theme struct {
	Title    lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Pending  lipgloss.Style
	Selected lipgloss.Style
	Done     lipgloss.Style
	Help     lipgloss.Style

	// Banner is the transient undo bar at the bottom of the screen.
	Banner     lipgloss.Style
	BannerHint lipgloss.Style

	Border lipgloss.TerminalColor

	BoxUnchecked, BoxChecked string
	SymOK, SymFail           string
}

var current Theme

func init() { SetTheme("auto") }

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// SetTheme selects a palette by name. Unknown names fall back to "auto".
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "mono":
		current = Theme{
			Title:      lipgloss.NewStyle().Bold(true),
			Muted:      lipgloss.NewStyle().Faint(true),
			Accent:     lipgloss.NewStyle(),
			Success:    lipgloss.NewStyle(),
			Error:      lipgloss.NewStyle().Bold(true),
			Pending:    lipgloss.NewStyle(),
			Selected:   lipgloss.NewStyle().Bold(true).Reverse(true),
			Done:       lipgloss.NewStyle().Strikethrough(true),
			Help:       lipgloss.NewStyle().Faint(true),
			Banner:     lipgloss.NewStyle().Reverse(true).Padding(0, 1),
			BannerHint: lipgloss.NewStyle().Faint(true),
			Border:     lipgloss.NoColor{},

			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			SymOK: "ok", SymFail: "error",
		}
	default: // auto
		current = Theme{
			Title:      lipgloss.NewStyle().Bold(true),
			Muted:      lipgloss.NewStyle().Foreground(ac("240", "243")),
			Accent:     lipgloss.NewStyle().Foreground(ac("27", "12")),
			Success:    lipgloss.NewStyle().Foreground(ac("28", "42")),
			Error:      lipgloss.NewStyle().Foreground(ac("124", "9")).Bold(true),
			Pending:    lipgloss.NewStyle().Foreground(ac("166", "214")),
			Selected:   lipgloss.NewStyle().Bold(true).Reverse(true),
			Done:       lipgloss.NewStyle().Foreground(ac("245", "240")).Strikethrough(true),
			Help:       lipgloss.NewStyle().Foreground(ac("241", "243")),
			Banner:     lipgloss.NewStyle().Foreground(ac("255", "235")).Background(ac("27", "62")).Padding(0, 1),
			BannerHint: lipgloss.NewStyle().Foreground(ac("252", "250")).Background(ac("27", "62")).Faint(true),
			Border:     ac("250", "8"),

			BoxUnchecked: "☐", BoxChecked: "☑",
			SymOK: "✔", SymFail: "✖",
		}
	}
}

// Current returns the active theme.
func Current() Theme { return current }
