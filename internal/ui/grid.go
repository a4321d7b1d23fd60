package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pokex/internal/dex"
)

// gridColumns is how many cards fit side by side.
func (m Model) gridColumns() int {
	cols := m.width / CardWidth
	if cols < 1 {
		return 1
	}
	return cols
}

// gridRows is how many card rows fit in the content area.
func (m Model) gridRows() int {
	rows := m.contentHeight() / CardHeight
	if rows < 1 {
		return 1
	}
	return rows
}

// renderGrid renders the visible records as cards, scrolled so the cursor
// row is on screen.
func (m Model) renderGrid() string {
	height := m.contentHeight()
	visible := m.st.Visible()

	if len(visible) == 0 {
		return m.renderGridPlaceholder(height)
	}

	cols, rows := m.gridColumns(), m.gridRows()
	cursorRow := m.cursor / cols
	firstRow := 0
	if cursorRow >= rows {
		firstRow = cursorRow - rows + 1
	}

	var lines []string
	for r := firstRow; r < firstRow+rows; r++ {
		start := r * cols
		if start >= len(visible) {
			break
		}
		end := start + cols
		if end > len(visible) {
			end = len(visible)
		}
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, m.renderCard(visible[i], i == m.cursor))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	body := strings.Join(lines, "\n")
	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Background)).
		Width(m.width).
		Height(height).
		MaxHeight(height).
		Render(body)
}

// renderCard renders one record as a grid card.
func (m Model) renderCard(rec dex.Record, focused bool) string {
	styles := m.theme.Styles()
	bgColor := m.theme.SurfaceAlt
	if focused {
		bgColor = m.theme.FocusBg
	}
	bg := NewBgStyle(bgColor)
	inner := CardWidth - 2

	heart := bg.Render("♡", styles.FaintText)
	if m.st.IsFavorite(rec.ID) {
		heart = bg.Render("♥", styles.FavoriteText)
	}
	name := bg.Render(truncate(titleCase(rec.Name), inner-3), styles.Text.Bold(true))

	lines := []string{
		bg.Space() + heart + bg.Space() + name,
		bg.Space() + m.typeBadges(rec.Types, bg),
		bg.Space() + bg.Render(fmt.Sprintf("%s · %s", heightLabel(rec.Height), weightLabel(rec.Weight)), styles.FaintText),
	}
	return m.renderTitledBox(dexNumber(rec.ID), strings.Join(lines, "\n"), CardWidth, CardHeight, focused)
}

// typeBadges renders each type as a colored badge.
func (m Model) typeBadges(types []string, bg BgStyle) string {
	styles := m.theme.Styles()
	badges := make([]string, 0, len(types))
	for _, t := range types {
		badges = append(badges, styles.TypeBadge(t).Render(t))
	}
	return strings.Join(badges, bg.Space())
}

// renderGridPlaceholder explains an empty grid.
func (m Model) renderGridPlaceholder(height int) string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Background)

	var msg string
	switch {
	case m.st.LoadErr != nil:
		msg = bg.Render("No Pokemon to show.", styles.MutedText) + "\n" +
			bg.Render("Press r to retry.", styles.WarningText)
	case m.st.Loading():
		msg = bg.Render(m.spinner.View()+" Fetching Pokemon...", styles.MutedText)
	case m.st.Search != "":
		msg = bg.Render(fmt.Sprintf("No Pokemon match %q.", m.st.Search), styles.MutedText)
	default:
		msg = bg.Render("No Pokemon.", styles.MutedText)
	}

	return lipgloss.Place(
		m.width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		msg,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.Background)),
	)
}
