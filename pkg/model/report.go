package model

// Target is the identity of whatever a descriptor points to: the resolved
// link target as reported by the fd table, plus its file kind. Targets are
// plain values; equality is structural.
type Target struct {
	Path string
	Kind Kind
}

// Descriptor is one entry of a process's open-file table at snapshot time.
type Descriptor struct {
	FD     int
	Target Target
}

// Group collects every descriptor that points at the same target. FDs keeps
// discovery order: the order the fd table enumerated them.
type Group struct {
	Target Target
	FDs    []int
}

func (g Group) Count() int {
	return len(g.FDs)
}

// Report is the result of one snapshot/group cycle for one process.
type Report struct {
	PID        int
	Identifier string // what the user asked for (name or pid string)
	Resolved   bool   // true when Identifier was a name resolved via the registry
	Groups     []Group
	Warnings   []string
}
