//go:build linux

package tui

import (
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oblaser/fdmon/internal/pipeline"
	procpkg "github.com/oblaser/fdmon/internal/proc"
	"github.com/oblaser/fdmon/pkg/model"
)

type processesMsg []procRow

type reportMsg model.Report

func (m MainModel) refreshProcesses() tea.Cmd {
	return func() tea.Msg {
		procs, err := procpkg.ProcRegistry{}.Processes()
		if err != nil {
			return err
		}

		rows := make([]procRow, 0, len(procs))
		for _, p := range procs {
			rows = append(rows, procRow{
				PID:     p.PID,
				Command: p.Command,
				NumFDs:  procpkg.NumFDs(p.PID),
			})
		}

		sort.Slice(rows, func(i, j int) bool { return rows[i].NumFDs > rows[j].NumFDs })

		return processesMsg(rows)
	}
}

func (m MainModel) fetchReport(pid int) tea.Cmd {
	return func() tea.Msg {
		rep, err := pipeline.Analyze(pipeline.AnalyzeConfig{
			Identifier: strconv.Itoa(pid),
		})
		if err != nil {
			return err
		}
		return reportMsg(rep)
	}
}

// applyFilter narrows the process list by the search text (matched against
// the pid string and the command, case-insensitive) and pushes the result
// into the table.
func (m *MainModel) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.input.Value()))

	if query == "" {
		m.filtered = m.processes
	} else {
		m.filtered = make([]procRow, 0, len(m.processes))
		for _, p := range m.processes {
			if strings.Contains(strconv.Itoa(p.PID), query) ||
				strings.Contains(strings.ToLower(p.Command), query) {
				m.filtered = append(m.filtered, p)
			}
		}
	}

	rows := make([]table.Row, 0, len(m.filtered))
	for _, p := range m.filtered {
		rows = append(rows, table.Row{
			strconv.Itoa(p.PID),
			strconv.Itoa(p.NumFDs),
			p.Command,
		})
	}
	m.table.SetRows(rows)

	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
}
