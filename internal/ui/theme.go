package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the dashboard.
type Theme struct {
	Name string

	Background string
	Surface    string

	SelectionBg   string
	SelectionText string

	Border      string
	BorderFocus string

	Text   string
	Muted  string
	Accent string
	Match  string

	// HealthColors maps cluster and index health values (green, yellow,
	// red) to display colors. Lookup is case-insensitive.
	HealthColors map[string]string
}

// Styles returns pre-built lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Base: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)).
			Foreground(lipgloss.Color(t.Text)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		MatchText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Match)).
			Bold(true),

		ErrorText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.HealthColors["red"])).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)),

		BorderFocus: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)),

		TabActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true).
			Underline(true),

		TabInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		healthColors: t.HealthColors,
		muted:        t.Muted,
	}
}

// Styles contains pre-built lipgloss styles for a theme.
type Styles struct {
	Base       lipgloss.Style
	Text       lipgloss.Style
	MutedText  lipgloss.Style
	AccentText lipgloss.Style
	MatchText  lipgloss.Style
	ErrorText  lipgloss.Style

	Header   lipgloss.Style
	Footer   lipgloss.Style
	Selected lipgloss.Style

	Border      lipgloss.Style
	BorderFocus lipgloss.Style

	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	healthColors map[string]string
	muted        string
}

// HealthStyle returns a style for the given health or status value.
// Unknown values fall back to the muted color.
func (s Styles) HealthStyle(health string) lipgloss.Style {
	color := s.healthColors[strings.ToLower(health)]
	if color == "" {
		color = s.muted
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
}

var themes = map[string]Theme{
	"Slate": slateTheme(),
	"Ink":   inkTheme(),
}

var themeOrder = []string{"Slate", "Ink"}

// GetTheme returns a theme by name, defaulting to Slate.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return slateTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) Theme {
	for i, name := range themeOrder {
		if name == current {
			return themes[themeOrder[(i+1)%len(themeOrder)]]
		}
	}
	return themes[themeOrder[0]]
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900

		SelectionBg:   "#0284c7", // sky-600
		SelectionText: "#f8fafc", // slate-50

		Border:      "#334155", // slate-700
		BorderFocus: "#38bdf8", // sky-400

		Text:   "#f1f5f9", // slate-100
		Muted:  "#64748b", // slate-500
		Accent: "#38bdf8", // sky-400
		Match:  "#f59e0b", // amber-500

		HealthColors: map[string]string{
			"green":  "#22c55e", // green-500
			"yellow": "#f59e0b", // amber-500
			"red":    "#ef4444", // red-500
		},
	}
}

func inkTheme() Theme {
	// High-contrast monochrome with a single cyan accent.
	return Theme{
		Name: "Ink",

		Background: "#0b0b0f",
		Surface:    "#14141a",

		SelectionBg:   "#2f2f3a",
		SelectionText: "#ffffff",

		Border:      "#3a3a46",
		BorderFocus: "#22d3ee",

		Text:   "#e4e4e7",
		Muted:  "#71717a",
		Accent: "#22d3ee",
		Match:  "#fbbf24",

		HealthColors: map[string]string{
			"green":  "#4ade80",
			"yellow": "#fbbf24",
			"red":    "#f87171",
		},
	}
}
