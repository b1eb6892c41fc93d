//go:build linux

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wrap"

	"github.com/oblaser/fdmon/internal/output"
	"github.com/oblaser/fdmon/pkg/model"
)

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(m.height-9, 3))
		m.viewport.Width = max(m.width-6, 10)
		m.viewport.Height = max(m.height-8, 3)
		if m.report != nil {
			m.viewport.SetContent(m.renderReport(*m.report))
		}
		return m, nil

	case processesMsg:
		m.processes = msg
		m.applyFilter()
		return m, nil

	case reportMsg:
		rep := model.Report(msg)
		m.report = &rep
		m.state = stateReport
		m.viewport.SetContent(m.renderReport(rep))
		m.viewport.GotoTop()
		return m, nil

	case error:
		m.statusMsg = msg.Error()
		return m, nil

	case tea.KeyMsg:
		m.statusMsg = ""

		if m.state == stateReport {
			switch msg.String() {
			case "q", "ctrl+c":
				m.quitting = true
				return m, tea.Quit
			case "esc", "backspace":
				m.state = stateList
				return m, m.refreshProcesses()
			case "r":
				if m.report != nil {
					return m, m.fetchReport(m.report.PID)
				}
				return m, nil
			}
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

		if m.input.Focused() {
			switch msg.String() {
			case "esc", "enter":
				m.input.Blur()
				return m, nil
			case "ctrl+c":
				m.quitting = true
				return m, tea.Quit
			}
			m.input, cmd = m.input.Update(msg)
			m.applyFilter()
			return m, cmd
		}

		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "/":
			m.input.Focus()
			return m, textinput.Blink
		case "r":
			return m, m.refreshProcesses()
		case "enter":
			row := m.table.SelectedRow()
			if len(row) == 0 {
				return m, nil
			}
			pid, err := strconv.Atoi(row[0])
			if err != nil {
				return m, nil
			}
			return m, m.fetchReport(pid)
		}

		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	return m, nil
}

// renderReport builds the viewport body: warnings first, then one line per
// group, wrapped to the viewport width.
func (m MainModel) renderReport(rep model.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "pid %d: %d distinct target(s)\n\n", rep.PID, len(rep.Groups))

	for _, w := range rep.Warnings {
		b.WriteString(warningStyle.Render(w))
		b.WriteString("\n")
	}
	if len(rep.Warnings) > 0 {
		b.WriteString("\n")
	}

	for _, g := range rep.Groups {
		b.WriteString(output.FormatGroup(g))
		b.WriteString("\n")
	}

	width := m.viewport.Width
	if width <= 0 {
		return b.String()
	}
	return wrap.String(b.String(), width)
}
