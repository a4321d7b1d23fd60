package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pokex/internal/state"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header and footer bars
	SurfaceAlt string // Card and panel fill
	FocusBg    string // Focused card fill

	// Selection colors
	SelectionBg   string
	SelectionText string

	// Border colors
	Border      string
	BorderFocus string

	// Text colors
	Text     string
	Muted    string
	Faint    string
	Accent   string
	Success  string
	Warning  string
	Danger   string
	Favorite string

	// Badge text sits on top of TypeColors.
	BadgeText  string
	TypeColors map[string]string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		FavoriteText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Favorite)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		typeColors: t.TypeColors,
		badgeText:  t.BadgeText,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Surface lipgloss.Style

	// Text
	Text         lipgloss.Style
	MutedText    lipgloss.Style
	FaintText    lipgloss.Style
	AccentText   lipgloss.Style
	SuccessText  lipgloss.Style
	WarningText  lipgloss.Style
	DangerText   lipgloss.Style
	FavoriteText lipgloss.Style

	// Components
	Header lipgloss.Style
	Footer lipgloss.Style
	Logo   lipgloss.Style

	typeColors map[string]string
	badgeText  string
}

// TypeBadge returns the badge style for a category label.
func (s Styles) TypeBadge(typ string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.badgeText)).
		Background(lipgloss.Color(typeColor(s.typeColors, typ))).
		Padding(0, 1)
}

// TypeColor returns the badge color for typ, falling back to "normal".
func (t Theme) TypeColor(typ string) string {
	return typeColor(t.TypeColors, typ)
}

func typeColor(colors map[string]string, typ string) string {
	if c, ok := colors[strings.ToLower(strings.TrimSpace(typ))]; ok {
		return c
	}
	return colors["normal"]
}

// GetTheme returns the palette for a theme flag.
func GetTheme(t state.Theme) Theme {
	if t == state.ThemeDark {
		return darkTheme()
	}
	return lightTheme()
}

// typeColors is shared by both palettes; badges carry their own contrast.
func typeColors() map[string]string {
	return map[string]string{
		"normal":   "#A8A77A",
		"fire":     "#EE8130",
		"water":    "#6390F0",
		"electric": "#F7D02C",
		"grass":    "#7AC74C",
		"ice":      "#96D9D6",
		"fighting": "#C22E28",
		"poison":   "#A33EA1",
		"ground":   "#E2BF65",
		"flying":   "#A98FF3",
		"psychic":  "#F95587",
		"bug":      "#A6B91A",
		"rock":     "#B6A136",
		"ghost":    "#735797",
		"dragon":   "#6F35FC",
		"dark":     "#705746",
		"steel":    "#B7B7CE",
		"fairy":    "#D685AD",
	}
}

func lightTheme() Theme {
	// Tailwind CSS slate scale: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Light",

		Background: "#ffffff",
		Surface:    "#f1f5f9", // slate-100
		SurfaceAlt: "#f8fafc", // slate-50
		FocusBg:    "#e0f2fe", // sky-100

		SelectionBg:   "#0284c7", // sky-600
		SelectionText: "#f8fafc",

		Border:      "#cbd5e1", // slate-300
		BorderFocus: "#0284c7", // sky-600

		Text:     "#0f172a", // slate-900
		Muted:    "#475569", // slate-600
		Faint:    "#94a3b8", // slate-400
		Accent:   "#0284c7",
		Success:  "#16a34a",
		Warning:  "#d97706",
		Danger:   "#dc2626",
		Favorite: "#e11d48", // rose-600

		BadgeText:  "#ffffff",
		TypeColors: typeColors(),
	}
}

func darkTheme() Theme {
	return Theme{
		Name: "Dark",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		SurfaceAlt: "#1e293b", // slate-800
		FocusBg:    "#283548",

		SelectionBg:   "#0284c7",
		SelectionText: "#f8fafc",

		Border:      "#334155", // slate-700
		BorderFocus: "#38bdf8", // sky-400

		Text:     "#f1f5f9", // slate-100
		Muted:    "#94a3b8", // slate-400
		Faint:    "#64748b", // slate-500
		Accent:   "#38bdf8",
		Success:  "#22c55e",
		Warning:  "#f59e0b",
		Danger:   "#ef4444",
		Favorite: "#fb7185", // rose-400

		BadgeText:  "#020617",
		TypeColors: typeColors(),
	}
}
