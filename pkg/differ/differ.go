// Package differ compares two parsed document trees and reports their
// differences as a flat, path-qualified changeset.
package differ

import (
	"github.com/configtools/difftoml/pkg/document"
	"github.com/configtools/difftoml/pkg/errors"
)

// DefaultMaxDepth bounds recursion so a pathological document fails with
// ErrTooDeep instead of exhausting the stack.
const DefaultMaxDepth = 1000

// Differ handles change detection between two document trees.
type Differ interface {
	// Tables compares two parsed trees and returns the changeset.
	Tables(left, right document.Table) (*Changeset, error)

	// Documents compares two loaded documents.
	Documents(left, right *document.Document) (*Changeset, error)
}

// differ is the default implementation of Differ.
type differ struct {
	excluded     map[string]bool
	includeEqual bool
	maxDepth     int
}

// New creates a Differ with default settings.
func New(opts ...Option) Differ {
	d := &differ{
		excluded: make(map[string]bool),
		maxDepth: DefaultMaxDepth,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Documents compares two loaded documents.
func (d *differ) Documents(left, right *document.Document) (*Changeset, error) {
	return d.Tables(left.Root, right.Root)
}

// Tables compares two parsed trees and returns the changeset.
func (d *differ) Tables(left, right document.Table) (*Changeset, error) {
	var records []Record
	if err := d.walk(nil, left, right, 0, &records); err != nil {
		return nil, err
	}
	return newChangeset(records), nil
}

// walk recurses depth-first through both tables in lockstep. At each level
// it visits the left table's keys first, then the keys present only on the
// right, so every key from either side is visited exactly once in a stable
// order.
func (d *differ) walk(path document.Path, left, right document.Table, depth int, records *[]Record) error {
	if depth >= d.maxDepth {
		return errors.NewDepthError(path, d.maxDepth)
	}

	for _, key := range enumerate(left, right) {
		// Exclusion is by bare key name, at any depth, before any
		// comparison or recursion.
		if d.excluded[key] {
			continue
		}

		keyPath := path.Child(key)
		leftVal, inLeft := left[key]
		rightVal, inRight := right[key]

		switch {
		case inLeft && !inRight:
			// The whole subtree is reported as a single record.
			*records = append(*records, Record{Kind: OnlyInLeft, Path: keyPath, Left: leftVal})
		case !inLeft && inRight:
			*records = append(*records, Record{Kind: OnlyInRight, Path: keyPath, Right: rightVal})
		default:
			leftTable, leftIsTable := leftVal.Table()
			rightTable, rightIsTable := rightVal.Table()
			if leftIsTable && rightIsTable {
				if err := d.walk(keyPath, leftTable, rightTable, depth+1, records); err != nil {
					return err
				}
				continue
			}
			// A table on one side against a scalar or array on the
			// other is an ordinary inequality, not an error.
			if leftVal.Equal(rightVal) {
				if d.includeEqual {
					*records = append(*records, Record{Kind: Equal, Path: keyPath, Left: leftVal, Right: rightVal})
				}
				continue
			}
			*records = append(*records, Record{Kind: Unequal, Path: keyPath, Left: leftVal, Right: rightVal})
		}
	}

	return nil
}

// enumerate lists left's keys in sorted order followed by the keys present
// only in right, also sorted.
func enumerate(left, right document.Table) []string {
	keys := left.Keys()
	for _, key := range right.Keys() {
		if _, ok := left[key]; !ok {
			keys = append(keys, key)
		}
	}
	return keys
}
