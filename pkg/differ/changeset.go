package differ

import (
	"fmt"
	"strings"

	"github.com/configtools/difftoml/pkg/document"
)

// Kind represents the kind of a diff record.
type Kind string

const (
	// OnlyInLeft indicates a key present only in the left document.
	OnlyInLeft Kind = "only-in-left"
	// OnlyInRight indicates a key present only in the right document.
	OnlyInRight Kind = "only-in-right"
	// Unequal indicates a key present on both sides with differing values.
	Unequal Kind = "unequal"
	// Equal indicates a key present on both sides with equal values.
	Equal Kind = "equal"
)

// Record is one reported difference (or equality) at a specific path.
// Left is set for OnlyInLeft, Unequal, and Equal records; Right is set
// for OnlyInRight, Unequal, and Equal records.
type Record struct {
	Kind  Kind
	Path  document.Path
	Left  document.Value
	Right document.Value
}

// Changeset holds the result of comparing two trees: the full record
// stream in traversal order, plus the records grouped by kind. Each group
// preserves traversal order.
type Changeset struct {
	Records     []Record
	OnlyInLeft  []Record
	OnlyInRight []Record
	Unequal     []Record
	Equal       []Record
	Summary     Summary
}

// Summary provides summary statistics for a changeset.
type Summary struct {
	OnlyInLeft       int
	OnlyInRight      int
	Unequal          int
	Equal            int
	TotalDifferences int
}

// newChangeset groups the ordered record stream and computes the summary.
func newChangeset(records []Record) *Changeset {
	c := &Changeset{Records: records}

	for _, record := range records {
		switch record.Kind {
		case OnlyInLeft:
			c.OnlyInLeft = append(c.OnlyInLeft, record)
		case OnlyInRight:
			c.OnlyInRight = append(c.OnlyInRight, record)
		case Unequal:
			c.Unequal = append(c.Unequal, record)
		case Equal:
			c.Equal = append(c.Equal, record)
		}
	}

	c.Summary = Summary{
		OnlyInLeft:  len(c.OnlyInLeft),
		OnlyInRight: len(c.OnlyInRight),
		Unequal:     len(c.Unequal),
		Equal:       len(c.Equal),
	}
	c.Summary.TotalDifferences = c.Summary.OnlyInLeft + c.Summary.OnlyInRight + c.Summary.Unequal

	return c
}

// HasDifferences returns true if the changeset contains any difference.
// Equal records do not count as differences.
func (c *Changeset) HasDifferences() bool {
	return c.Summary.TotalDifferences > 0
}

// IsEmpty returns true if the changeset contains no records at all.
func (c *Changeset) IsEmpty() bool {
	return len(c.Records) == 0
}

// String returns a human-readable summary of the changeset.
func (c *Changeset) String() string {
	if !c.HasDifferences() {
		return "No differences detected"
	}

	var parts []string
	if c.Summary.OnlyInLeft > 0 {
		parts = append(parts, fmt.Sprintf("%d only in left", c.Summary.OnlyInLeft))
	}
	if c.Summary.OnlyInRight > 0 {
		parts = append(parts, fmt.Sprintf("%d only in right", c.Summary.OnlyInRight))
	}
	if c.Summary.Unequal > 0 {
		parts = append(parts, fmt.Sprintf("%d unequal", c.Summary.Unequal))
	}

	return fmt.Sprintf("Differences: %s (total: %d)", strings.Join(parts, ", "), c.Summary.TotalDifferences)
}
