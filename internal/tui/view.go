//go:build linux

package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m MainModel) View() string {
	if m.quitting {
		return ""
	}

	outerStyle := baseStyle.
		Width(m.width - 2).
		Height(m.height - 2).
		Padding(0, 1)

	title := titleStyle.Render("fdmon " + m.version)

	if m.state == stateReport {
		header := title
		if m.report != nil {
			header = lipgloss.JoinHorizontal(lipgloss.Top, title, "  ",
				tableHeaderStyle.Render(fmt.Sprintf("fd table of pid %d", m.report.PID)))
		}

		footer := footerStyle.Render("esc back | r re-snapshot | q quit")

		return outerStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			header,
			"",
			m.viewport.View(),
			"",
			footer,
		))
	}

	status := "Mode: Navigation (Press / to search)"
	if m.input.Focused() {
		status = "Mode: Searching (Press Esc/Enter to stop)"
	}
	if m.statusMsg != "" {
		status = errorStyle.Render(m.statusMsg)
	}

	footer := footerStyle.Render("enter snapshot fds | r refresh | q quit    " + status)

	return outerStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		m.input.View(),
		"",
		m.table.View(),
		"",
		footer,
	))
}
