package proc

// Entry is one process known to the registry: its pid and the command name
// the registry records for it.
type Entry struct {
	PID     int
	Command string
}

// Registry enumerates the operating system's process table. It is an
// interface so the resolver can be tested against a fixed table without a
// real /proc.
type Registry interface {
	Processes() ([]Entry, error)
}
