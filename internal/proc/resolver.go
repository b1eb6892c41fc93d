package proc

import (
	"errors"
	"strconv"
)

// ErrNotFound is returned by Resolve when no registry entry's command name
// matches the identifier.
var ErrNotFound = errors.New("process not found")

// Resolve turns a user-supplied identifier into a pid.
//
// A fully numeric, non-negative identifier is taken as the pid itself and
// returned without consulting the registry; whether such a process exists
// surfaces later, when its fd table is read. Anything else is matched
// against the registry's command names, byte for byte, and the first match
// in registry iteration order wins. Two processes with the same command name
// therefore resolve to whichever the registry happens to list first; the
// tool does not try to disambiguate.
func Resolve(identifier string, reg Registry) (int, error) {
	if pid, err := strconv.Atoi(identifier); err == nil && pid >= 0 {
		return pid, nil
	}

	procs, err := reg.Processes()
	if err != nil {
		return 0, err
	}

	for _, p := range procs {
		if p.Command == identifier {
			return p.PID, nil
		}
	}

	return 0, ErrNotFound
}
