//go:build linux

package proc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oblaser/fdmon/pkg/model"
)

func TestListDescriptorsSelf(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "fdmon-*.dat")
	if err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	defer f.Close()

	// The fd link target is fully resolved, so compare against the
	// symlink-free form of the temp path.
	realPath, err := filepath.EvalSymlinks(f.Name())
	if err != nil {
		t.Fatalf("resolve temp path: %v", err)
	}

	snap, err := ListDescriptors(os.Getpid())
	if err != nil {
		t.Fatalf("ListDescriptors(self) error: %v", err)
	}
	if len(snap.Descriptors) == 0 {
		t.Fatal("a running process holds at least its std descriptors")
	}

	var found bool
	for _, d := range snap.Descriptors {
		if d.FD == int(f.Fd()) {
			found = true
			if d.Target.Kind != model.KindRegular {
				t.Errorf("temp file kind = %s, want regular", d.Target.Kind)
			}
			if d.Target.Path != realPath {
				t.Errorf("temp file path = %q, want %q", d.Target.Path, realPath)
			}
		}
		if d.FD < 0 {
			t.Errorf("negative fd %d in snapshot", d.FD)
		}
	}
	if !found {
		t.Errorf("open temp file (fd %d) missing from snapshot", f.Fd())
	}
}

func TestListDescriptorsNoSuchPID(t *testing.T) {
	// Negative pids never exist; the snapshot must fail, not panic.
	if _, err := ListDescriptors(-1); err == nil {
		t.Fatal("expected an error for a nonexistent pid")
	}
}

func TestNumFDsSelf(t *testing.T) {
	if n := NumFDs(os.Getpid()); n < 3 {
		t.Errorf("NumFDs(self) = %d, want at least the std descriptors", n)
	}
	if n := NumFDs(-1); n != 0 {
		t.Errorf("NumFDs of a nonexistent pid = %d, want 0", n)
	}
}

func TestProcRegistryFakeRoot(t *testing.T) {
	root := t.TempDir()

	write := func(pid, cmdline string) {
		dir := filepath.Join(root, pid)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
		if err := os.WriteFile(filepath.Join(dir, "cmdline"), []byte(cmdline), 0o644); err != nil {
			t.Fatalf("write cmdline: %v", err)
		}
	}

	write("11", "alpha\x00--flag\x00value")
	write("12", "beta")
	write("13", "alpha")
	write("14", "") // kernel-thread style: empty cmdline, skipped

	// Non-pid entries are ignored.
	if err := os.MkdirAll(filepath.Join(root, "sys"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "uptime"), []byte("1 1"), 0o644); err != nil {
		t.Fatal(err)
	}

	procs, err := ProcRegistry{Root: root}.Processes()
	if err != nil {
		t.Fatalf("Processes: %v", err)
	}

	want := []Entry{
		{PID: 11, Command: "alpha"},
		{PID: 12, Command: "beta"},
		{PID: 13, Command: "alpha"},
	}
	if len(procs) != len(want) {
		t.Fatalf("got %d entries (%+v), want %d", len(procs), procs, len(want))
	}
	for i, w := range want {
		if procs[i] != w {
			t.Errorf("entry %d = %+v, want %+v", i, procs[i], w)
		}
	}

	// End to end with the resolver: first match in iteration order wins.
	pid, err := Resolve("alpha", ProcRegistry{Root: root})
	if err != nil {
		t.Fatalf("Resolve(alpha): %v", err)
	}
	if pid != 11 {
		t.Errorf("Resolve(alpha) = %d, want 11", pid)
	}
}

func TestProcRegistryCommandIsArgvZero(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "7")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "cmdline"), []byte("/usr/bin/daemon\x00-v\x00"), 0o644); err != nil {
		t.Fatal(err)
	}

	procs, err := ProcRegistry{Root: root}.Processes()
	if err != nil {
		t.Fatal(err)
	}
	if len(procs) != 1 || procs[0].Command != "/usr/bin/daemon" {
		t.Errorf("got %+v, want command %q", procs, "/usr/bin/daemon")
	}
	if strings.Contains(procs[0].Command, "\x00") {
		t.Error("command must not carry NUL separators")
	}
}
