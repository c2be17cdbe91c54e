package document

import (
	"strconv"
	"strings"
)

// Path locates a node within a document tree as an ordered list of key
// names, root first.
type Path []string

// Child returns a new path extended by one segment. The receiver is not
// modified; the result does not share its backing array with it.
func (p Path) Child(segment string) Path {
	child := make(Path, len(p), len(p)+1)
	copy(child, p)
	return append(child, segment)
}

// Leaf returns the final segment, or the empty string for the root path.
func (p Path) Leaf() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Equal reports whether both paths have the same segments in order.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders the path as a bracketed list of quoted segments,
// e.g. ["field0", "values"].
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, segment := range p {
		parts[i] = strconv.Quote(segment)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
