//go:build linux

package proc

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ProcRegistry reads the live process table from /proc.
type ProcRegistry struct {
	// Root is the procfs mount point. Empty means /proc.
	Root string
}

func (r ProcRegistry) root() string {
	if r.Root == "" {
		return "/proc"
	}
	return r.Root
}

// Processes lists every /proc entry whose name is a pid. The command name is
// argv[0] from /proc/<pid>/cmdline; kernel threads and processes whose
// cmdline cannot be read are skipped. Iteration order is whatever os.ReadDir
// yields, which is what first-match name resolution is defined against.
func (r ProcRegistry) Processes() ([]Entry, error) {
	entries, err := os.ReadDir(r.root())
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", r.root(), err)
	}

	procs := make([]Entry, 0, len(entries))
	for _, e := range entries {
		pid, err := strconv.Atoi(e.Name())
		if err != nil {
			continue
		}

		cmdline, err := os.ReadFile(r.root() + "/" + e.Name() + "/cmdline")
		if err != nil || len(cmdline) == 0 {
			continue
		}

		// cmdline is NUL-separated; the command name is argv[0].
		command, _, _ := strings.Cut(string(cmdline), "\x00")

		procs = append(procs, Entry{PID: pid, Command: command})
	}

	return procs, nil
}
