package model

// Kind classifies what a file descriptor points at. The values mirror the
// file types the kernel can report for an fd link target.
type Kind int

const (
	KindNone Kind = iota
	KindNotFound
	KindRegular
	KindDirectory
	KindSymlink
	KindBlock
	KindCharacter
	KindFIFO
	KindSocket
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNotFound:
		return "not_found"
	case KindRegular:
		return "regular"
	case KindDirectory:
		return "directory"
	case KindSymlink:
		return "symlink"
	case KindBlock:
		return "block"
	case KindCharacter:
		return "character"
	case KindFIFO:
		return "fifo"
	case KindSocket:
		return "socket"
	case KindUnknown:
		return "unknown"
	}
	return "unrecognized"
}

// MarshalJSON emits the kind name rather than the raw enum value.
func (k Kind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// Probeable reports whether two different path strings of this kind can
// legitimately name the same underlying object (hard links, relative vs.
// absolute resolution). Only those kinds are worth an equivalence probe;
// sockets, pipes and the rest are not path-addressable that way.
func (k Kind) Probeable() bool {
	return k == KindRegular || k == KindDirectory
}
