package app

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/configtools/difftoml/internal/cmd/output"
	"github.com/configtools/difftoml/pkg/differ"
	"github.com/configtools/difftoml/pkg/document"
)

// runDiff loads both documents, diffs them, and renders the report.
// Differences found are not an error condition.
func (a *App) runDiff(cmd *cobra.Command, args []string) error {
	format, err := document.ParseFormat(a.config.Format)
	if err != nil {
		return err
	}

	left, right, err := document.LoadPair(cmd.Context(), args[0], args[1], format)
	if err != nil {
		return err
	}

	a.logger.Debug().
		Str("left", left.Path).
		Str("right", right.Path).
		Int("excluded_keys", len(a.config.Exclude)).
		Msg("Documents loaded")

	d := differ.New(
		differ.WithExcludedKeys(a.config.Exclude...),
		differ.WithEqual(a.config.Equal),
	)

	changeset, err := d.Documents(left, right)
	if err != nil {
		return err
	}

	a.logger.Debug().
		Int("records", len(changeset.Records)).
		Int("differences", changeset.Summary.TotalDifferences).
		Msg("Comparison complete")

	w := cmd.OutOrStdout()
	renderer := output.New(w, a.colorEnabled(w))
	return renderer.Render(changeset, left.Path, right.Path)
}

// colorEnabled decides whether the report is colorized. --no-color (or
// NO_COLOR) always wins; an explicit -c always colors; a configured
// default colors only when writing to a terminal.
func (a *App) colorEnabled(w io.Writer) bool {
	if a.config.NoColor {
		return false
	}
	if a.config.ForceColor {
		return true
	}
	if !a.config.Color {
		return false
	}
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
