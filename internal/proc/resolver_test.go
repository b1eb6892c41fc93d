package proc

import (
	"errors"
	"testing"
)

type fakeRegistry struct {
	entries []Entry
	err     error
	calls   int
}

func (r *fakeRegistry) Processes() ([]Entry, error) {
	r.calls++
	return r.entries, r.err
}

func TestResolveNumericIdentifier(t *testing.T) {
	// A numeric identifier is the pid; the registry must not be consulted,
	// and no existence check happens here.
	reg := &fakeRegistry{err: errors.New("registry must not be read")}

	pid, err := Resolve("1234", reg)
	if err != nil {
		t.Fatalf("Resolve(\"1234\") error: %v", err)
	}
	if pid != 1234 {
		t.Errorf("pid = %d, want 1234", pid)
	}
	if reg.calls != 0 {
		t.Errorf("registry consulted %d time(s) for a numeric identifier", reg.calls)
	}
}

func TestResolveByNameFirstMatch(t *testing.T) {
	reg := &fakeRegistry{entries: []Entry{
		{PID: 11, Command: "alpha"},
		{PID: 12, Command: "beta"},
		{PID: 13, Command: "alpha"},
	}}

	pid, err := Resolve("alpha", reg)
	if err != nil {
		t.Fatalf("Resolve(\"alpha\") error: %v", err)
	}
	if pid != 11 {
		t.Errorf("pid = %d, want 11 (first match in iteration order)", pid)
	}
}

func TestResolveExactMatchOnly(t *testing.T) {
	reg := &fakeRegistry{entries: []Entry{
		{PID: 20, Command: "alphabet"},
		{PID: 21, Command: "Alpha"},
	}}

	if _, err := Resolve("alpha", reg); !errors.Is(err, ErrNotFound) {
		t.Errorf("substring/case matches must not resolve, got err = %v", err)
	}
}

func TestResolveNotFound(t *testing.T) {
	reg := &fakeRegistry{entries: []Entry{{PID: 1, Command: "systemd"}}}

	_, err := Resolve("nosuchproc", reg)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestResolveNegativeNumberIsAName(t *testing.T) {
	reg := &fakeRegistry{entries: []Entry{{PID: 42, Command: "-5"}}}

	pid, err := Resolve("-5", reg)
	if err != nil {
		t.Fatalf("Resolve(\"-5\") error: %v", err)
	}
	if pid != 42 {
		t.Errorf("pid = %d, want 42 (negative numbers resolve via the registry)", pid)
	}
}

func TestResolveRegistryError(t *testing.T) {
	reg := &fakeRegistry{err: errors.New("proc unreadable")}

	if _, err := Resolve("alpha", reg); err == nil {
		t.Fatal("expected registry error to propagate")
	}
}
