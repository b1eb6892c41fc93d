//go:build linux

package proc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/oblaser/fdmon/pkg/model"
)

// Snapshot is one read of a process's fd table: the descriptors in the order
// the kernel enumerated them, plus a warning per entry that could not be
// interpreted.
type Snapshot struct {
	Descriptors []model.Descriptor
	Warnings    []string
}

// ListDescriptors reads /proc/<pid>/fd once. Each directory entry should be
// a numerically named symlink to the open resource; entries that are not
// (non-numeric name, not a symlink, closed between listing and readlink) are
// skipped with a warning rather than failing the snapshot. The directory
// read order is kept as the discovery order.
func ListDescriptors(pid int) (Snapshot, error) {
	fdDir := fmt.Sprintf("/proc/%d/fd", pid)

	entries, err := os.ReadDir(fdDir)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read fd table of pid %d: %w", pid, err)
	}

	snap := Snapshot{Descriptors: make([]model.Descriptor, 0, len(entries))}

	for _, e := range entries {
		entryPath := fdDir + "/" + e.Name()

		fd, err := strconv.Atoi(e.Name())
		if err != nil || fd < 0 {
			snap.Warnings = append(snap.Warnings, fmt.Sprintf("entry %q is not a file descriptor", entryPath))
			continue
		}

		kind := kindOf(entryPath)

		if e.Type()&fs.ModeSymlink == 0 {
			snap.Warnings = append(snap.Warnings, fmt.Sprintf("entry %q (%s) is not a symlink", entryPath, kind))
			continue
		}

		target, err := os.Readlink(entryPath)
		if err != nil {
			// Descriptor closed between listing and readlink.
			snap.Warnings = append(snap.Warnings, fmt.Sprintf("entry %q vanished during read", entryPath))
			continue
		}

		snap.Descriptors = append(snap.Descriptors, model.Descriptor{
			FD:     fd,
			Target: model.Target{Path: target, Kind: kind},
		})
	}

	return snap, nil
}

// kindOf stats the fd link, following it, so the kind is that of the open
// resource itself. A dangling link (target deleted) reports not_found.
func kindOf(entryPath string) model.Kind {
	fi, err := os.Stat(entryPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.KindNotFound
		}
		return model.KindUnknown
	}

	switch fi.Mode().Type() {
	case 0:
		return model.KindRegular
	case fs.ModeDir:
		return model.KindDirectory
	case fs.ModeSymlink:
		return model.KindSymlink
	case fs.ModeDevice | fs.ModeCharDevice:
		return model.KindCharacter
	case fs.ModeDevice:
		return model.KindBlock
	case fs.ModeNamedPipe:
		return model.KindFIFO
	case fs.ModeSocket:
		return model.KindSocket
	}
	return model.KindUnknown
}

// NumFDs returns how many descriptors a process currently holds open, or 0
// if its fd table cannot be read.
func NumFDs(pid int) int {
	entries, err := os.ReadDir(fmt.Sprintf("/proc/%d/fd", pid))
	if err != nil {
		return 0
	}
	return len(entries)
}
