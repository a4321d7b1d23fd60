package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/five82/pokex/internal/state"
)

// renderHeader renders the title bar: logo, load status, counts and theme.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	sep := "  "

	parts := []string{bg.Render("◓ Pokemon Explorer", styles.Logo)}

	switch {
	case m.st.LoadErr != nil:
		parts = append(parts,
			bg.Render("Could not load Pokemon: "+m.st.LoadErr.Error(), styles.DangerText),
			bg.Render("press r to retry", styles.WarningText.Bold(true)),
		)
	case m.st.Loading():
		parts = append(parts,
			bg.Render(m.spinner.View()+" Loading Pokemon...", styles.WarningText.Bold(true)),
		)
	default:
		total := m.st.Records.Len()
		count := fmt.Sprintf("%d Pokemon", total)
		if m.st.Search != "" {
			count = fmt.Sprintf("%d of %d Pokemon", len(m.st.Visible()), total)
		}
		parts = append(parts, bg.Render(count, styles.Text))
		if n := m.st.Favorites.Len(); n > 0 {
			parts = append(parts, bg.Render(fmt.Sprintf("♥ %d", n), styles.FavoriteText))
		}
	}

	parts = append(parts, bg.Render(themeIndicator(m.theme), styles.MutedText))

	return styles.Header.Width(m.width).MaxHeight(1).Render(bg.Join(parts, sep))
}

func themeIndicator(t Theme) string {
	if t.Name == "Dark" {
		return "☾ Dark"
	}
	return "☀ Light"
}

// renderSearchBar renders the search input line.
func (m Model) renderSearchBar() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	var line string
	switch {
	case m.searching:
		line = m.search.View()
	case m.st.Search != "":
		line = bg.Render("/ "+m.st.Search, styles.AccentText) + bg.Spaces(2) +
			bg.Render("esc clears", styles.FaintText)
	default:
		line = bg.Render("press / to search by name or type", styles.FaintText)
	}
	return styles.Header.Width(m.width).MaxHeight(1).Render(line)
}

// renderFooter lists the bindings that apply to the current view.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	var bindings []key.Binding
	switch {
	case m.searching:
		bindings = []key.Binding{m.keys.Confirm, m.keys.Cancel}
	case m.st.Mode() == state.ModeDetail:
		bindings = []key.Binding{m.keys.Back, m.keys.Favorite, m.keys.Up, m.keys.Down, m.keys.ToggleTheme, m.keys.Help, m.keys.Quit}
	default:
		bindings = []key.Binding{m.keys.Open, m.keys.Favorite, m.keys.Search, m.keys.ToggleTheme, m.keys.Logs, m.keys.Help, m.keys.Quit}
		if m.st.LoadErr != nil {
			bindings = append([]key.Binding{m.keys.Retry}, bindings...)
		}
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, bg.Render(h.Key, styles.AccentText)+bg.Space()+bg.Render(strings.ToLower(h.Desc), styles.MutedText))
	}
	return styles.Footer.Width(m.width).MaxHeight(1).Render(bg.Join(hints, "  "))
}
