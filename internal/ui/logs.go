package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderLogOverlay shows the tail of the session log, newest at the bottom.
func (m Model) renderLogOverlay() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.SurfaceAlt)
	height := m.height
	if height < 3 {
		height = 3
	}
	inner := m.width - 4

	var lines []string
	switch {
	case m.logPath == "":
		lines = []string{bg.Render("Session logging is off. Start pokex with -log PATH to enable it.", styles.MutedText)}
	case m.logErr != nil:
		lines = []string{bg.Render("Could not read log: "+m.logErr.Error(), styles.DangerText)}
	case len(m.logLines) == 0:
		lines = []string{bg.Render("Log is empty.", styles.MutedText)}
	default:
		rows := m.logLines
		if limit := height - 2; len(rows) > limit {
			rows = rows[len(rows)-limit:]
		}
		for _, row := range rows {
			lines = append(lines, bg.Space()+bg.Render(truncate(row, inner), styleForLogLine(styles, row)))
		}
	}

	return m.renderTitledBox("Session Log (any key closes)", strings.Join(lines, "\n"), m.width, height, false)
}

// styleForLogLine highlights failures in the session log.
func styleForLogLine(styles Styles, line string) lipgloss.Style {
	lower := strings.ToLower(line)
	switch {
	case strings.Contains(lower, "error"), strings.Contains(lower, "fail"):
		return styles.DangerText
	case strings.Contains(lower, "retry"):
		return styles.WarningText
	default:
		return styles.Text
	}
}
