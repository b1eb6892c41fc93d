package fdtable

import "github.com/oblaser/fdmon/pkg/model"

// Group partitions descriptors by the resource they point at. It is a single
// order-preserving pass: each descriptor joins the first existing group with
// an equivalent target, or opens a new group at the end. Groups therefore
// appear in discovery order, and so do the fd numbers within a group.
//
// Every descriptor takes part, including the first one enumerated; nothing
// is skipped by convention.
//
// The scan is O(descriptors × groups), which is fine for fd tables of the
// sizes processes actually have.
func Group(descs []model.Descriptor, eq Equivalence) []model.Group {
	var groups []model.Group

	for _, d := range descs {
		idx := -1
		for i := range groups {
			if equivalent(groups[i].Target, d.Target, eq) {
				idx = i
				break
			}
		}

		if idx >= 0 {
			groups[idx].FDs = append(groups[idx].FDs, d.FD)
		} else {
			groups = append(groups, model.Group{Target: d.Target, FDs: []int{d.FD}})
		}
	}

	return groups
}

// equivalent applies the kind-gated equivalence rule: kinds must match
// exactly, identical path strings always match, and only regular files and
// directories are worth asking the filesystem whether two different strings
// name the same object. A failed probe (e.g. the path raced with a delete)
// counts as not equivalent; under-grouping beats a crashed report.
func equivalent(r, t model.Target, eq Equivalence) bool {
	if r.Kind != t.Kind {
		return false
	}
	if r.Path == t.Path {
		return true
	}
	if !t.Kind.Probeable() {
		return false
	}

	same, err := eq.SameObject(r.Path, t.Path)
	if err != nil {
		return false
	}
	return same
}
