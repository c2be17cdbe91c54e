// Package output renders a changeset as a grouped, human-readable report.
package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/configtools/difftoml/pkg/differ"
)

// Renderer writes a changeset report to Out. Groups appear in a fixed
// order: keys only in the left file, keys only in the right file, unequal
// pairs, then equal pairs when present. Records keep traversal order
// within each group.
type Renderer struct {
	Out   io.Writer
	Color bool

	leftColor  *color.Color
	rightColor *color.Color
	diffColor  *color.Color
}

// New creates a Renderer writing to w. Color output is off unless enabled.
func New(w io.Writer, colorize bool) *Renderer {
	r := &Renderer{
		Out:        w,
		Color:      colorize,
		leftColor:  color.New(color.FgRed),
		rightColor: color.New(color.FgGreen),
		diffColor:  color.New(color.FgYellow),
	}
	if colorize {
		r.leftColor.EnableColor()
		r.rightColor.EnableColor()
		r.diffColor.EnableColor()
	} else {
		r.leftColor.DisableColor()
		r.rightColor.DisableColor()
		r.diffColor.DisableColor()
	}
	return r
}

// Render writes the full report. leftID and rightID identify the two input
// files in the section headers.
func (r *Renderer) Render(changeset *differ.Changeset, leftID, rightID string) error {
	if err := r.renderSideOnly(changeset.OnlyInLeft, leftID, r.leftColor); err != nil {
		return err
	}
	if err := r.renderSideOnly(changeset.OnlyInRight, rightID, r.rightColor); err != nil {
		return err
	}
	if err := r.renderPairs(changeset.Unequal, "Unequal", r.diffColor); err != nil {
		return err
	}
	if err := r.renderPairs(changeset.Equal, "Equal", nil); err != nil {
		return err
	}

	_, err := fmt.Fprintf(r.Out, "\n%s\n", changeset.String())
	return err
}

// renderSideOnly writes one "Entries only found in <file>" section. Empty
// groups produce no output.
func (r *Renderer) renderSideOnly(records []differ.Record, fileID string, c *color.Color) error {
	if len(records) == 0 {
		return nil
	}

	if _, err := fmt.Fprintf(r.Out, "\nEntries only found in %s\n", fileID); err != nil {
		return err
	}
	for _, record := range records {
		value := record.Left
		if record.Kind == differ.OnlyInRight {
			value = record.Right
		}
		line := fmt.Sprintf("%s: %s", record.Path, value)
		if _, err := fmt.Fprintln(r.Out, c.Sprint(line)); err != nil {
			return err
		}
	}
	return nil
}

// renderPairs writes the unequal or equal section: a heading line per key
// followed by the two values on "<:" and ">:" lines.
func (r *Renderer) renderPairs(records []differ.Record, label string, c *color.Color) error {
	if len(records) == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(r.Out); err != nil {
		return err
	}
	for _, record := range records {
		heading := fmt.Sprintf("%s value for key %s", label, record.Path)
		if c != nil {
			heading = c.Sprint(heading)
		}
		if _, err := fmt.Fprintln(r.Out, heading); err != nil {
			return err
		}
		left := fmt.Sprintf("<: %s", record.Left)
		right := fmt.Sprintf(">: %s", record.Right)
		if c != nil {
			left = r.leftColor.Sprint(left)
			right = r.rightColor.Sprint(right)
		}
		if _, err := fmt.Fprintln(r.Out, left); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(r.Out, right); err != nil {
			return err
		}
	}
	return nil
}
