package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pokex/internal/dex"
)

// detailSize is the viewport size inside the detail box.
func (m Model) detailSize() (int, int) {
	w := m.width - 4 // borders + one column of padding each side
	if w < MinStatBarWidth {
		w = MinStatBarWidth
	}
	h := m.contentHeight() - 2
	if h < 1 {
		h = 1
	}
	return w, h
}

// syncDetail rebuilds the detail viewport for the selected record. The
// scroll position resets only when a different record is opened.
func (m *Model) syncDetail() {
	rec, ok := m.st.Selected()
	if !ok || !m.ready {
		m.detailFor = 0
		return
	}
	w, h := m.detailSize()
	m.detailViewport.Width = w
	m.detailViewport.Height = h
	m.detailViewport.SetContent(m.renderDetailContent(rec, w))
	if m.detailFor != rec.ID {
		m.detailViewport.GotoTop()
		m.detailFor = rec.ID
	}
}

// renderDetail renders the detail box around the viewport.
func (m Model) renderDetail() string {
	rec, ok := m.st.Selected()
	if !ok {
		return m.renderGrid()
	}
	title := fmt.Sprintf("%s %s", dexNumber(rec.ID), titleCase(rec.Name))

	bg := NewBgStyle(m.theme.FocusBg)
	var lines []string
	for _, line := range strings.Split(m.detailViewport.View(), "\n") {
		lines = append(lines, bg.Space()+line)
	}
	return m.renderTitledBox(title, strings.Join(lines, "\n"), m.width, m.contentHeight(), true)
}

// renderDetailContent renders the full profile of rec at the given width.
func (m Model) renderDetailContent(rec dex.Record, width int) string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.FocusBg)
	label := func(s string) string { return bg.Render(padRight(s, 9), styles.MutedText) }
	section := func(s string) string { return bg.Render(s, styles.AccentText.Bold(true)) }

	var b strings.Builder

	// Name + favorite
	b.WriteString(bg.Render(titleCase(rec.Name), styles.Text.Bold(true)))
	b.WriteString(bg.Spaces(2))
	if m.st.IsFavorite(rec.ID) {
		b.WriteString(bg.Render("♥ Favorite", styles.FavoriteText))
	} else {
		b.WriteString(bg.Render("♡ press f to favorite", styles.FaintText))
	}
	b.WriteString("\n")
	b.WriteString(m.typeBadges(rec.Types, bg))
	b.WriteString("\n\n")

	// Vitals
	b.WriteString(label("Height") + bg.Render(heightLabel(rec.Height), styles.Text) + "\n")
	b.WriteString(label("Weight") + bg.Render(weightLabel(rec.Weight), styles.Text) + "\n")
	if rec.Image != "" {
		b.WriteString(label("Artwork") + bg.Render(truncate(rec.Image, width-9), styles.FaintText) + "\n")
	}

	// Stats
	b.WriteString("\n")
	b.WriteString(section("Base Stats"))
	b.WriteString("\n")
	if len(rec.Stats) == 0 {
		b.WriteString(bg.Render("No stats reported", styles.FaintText) + "\n")
	}
	for _, st := range rec.Stats {
		b.WriteString(m.renderStatLine(st, width, bg))
		b.WriteString("\n")
	}

	// Abilities
	b.WriteString("\n")
	b.WriteString(section("Abilities"))
	b.WriteString("\n")
	if len(rec.Abilities) == 0 {
		b.WriteString(bg.Render("None", styles.FaintText))
	} else {
		badge := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.theme.Accent)).
			Background(lipgloss.Color(m.theme.Surface)).
			Padding(0, 1)
		badges := make([]string, 0, len(rec.Abilities))
		for _, a := range rec.Abilities {
			badges = append(badges, badge.Render(abilityLabel(a)))
		}
		b.WriteString(strings.Join(badges, bg.Space()))
	}

	return b.String()
}

// statLineFixed is the width of everything on a stat line except the bar:
// icon, space, label(8), space, space, value(3), two spaces, percent(6).
const statLineFixed = 1 + 1 + 8 + 1 + 1 + 3 + 2 + 6

// renderStatLine renders "♥ HP       ████░░░░  45  17.6%".
func (m Model) renderStatLine(st dex.Stat, width int, bg BgStyle) string {
	styles := m.theme.Styles()
	barWidth := width - statLineFixed - 1
	if barWidth < MinStatBarWidth {
		barWidth = MinStatBarWidth
	}
	filled := int(math.Round(dex.StatFill(st.Value) * float64(barWidth)))

	bar := bg.Render(strings.Repeat("█", filled), lipgloss.NewStyle().Foreground(lipgloss.Color(statColor(m.theme, st.Value)))) +
		bg.Render(strings.Repeat("░", barWidth-filled), styles.FaintText)

	return bg.Render(statIcon(st.Name), styles.AccentText) + bg.Space() +
		bg.Render(padRight(statLabel(st.Name), 8), styles.MutedText) + bg.Space() +
		bar + bg.Space() +
		bg.Render(fmt.Sprintf("%3d", st.Value), styles.Text.Bold(true)) + bg.Spaces(2) +
		bg.Render(statPercent(st.Value), styles.FaintText)
}

// statColor grades a stat: weak, average, strong.
func statColor(t Theme, value int) string {
	switch {
	case value >= 100:
		return t.Success
	case value >= 60:
		return t.Accent
	default:
		return t.Warning
	}
}
