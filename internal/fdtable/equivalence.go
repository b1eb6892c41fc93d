package fdtable

import "os"

// Equivalence answers whether two path strings name the same underlying
// filesystem object. It is an interface so the grouper can be tested with a
// fixed answer table instead of a real filesystem.
type Equivalence interface {
	SameObject(a, b string) (bool, error)
}

// StatEquivalence compares the files behind two paths by device and inode.
type StatEquivalence struct{}

func (StatEquivalence) SameObject(a, b string) (bool, error) {
	fa, err := os.Stat(a)
	if err != nil {
		return false, err
	}
	fb, err := os.Stat(b)
	if err != nil {
		return false, err
	}
	return os.SameFile(fa, fb), nil
}
