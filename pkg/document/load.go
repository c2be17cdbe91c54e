package document

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	toml "github.com/pelletier/go-toml/v2"
	"golang.org/x/sync/errgroup"

	"github.com/configtools/difftoml/pkg/errors"
)

// Format identifies a supported document syntax.
type Format string

const (
	// FormatAuto selects the format from the file extension.
	FormatAuto Format = "auto"
	// FormatTOML forces TOML parsing.
	FormatTOML Format = "toml"
	// FormatYAML forces YAML parsing.
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatAuto, Format(""):
		return FormatAuto, nil
	case FormatTOML:
		return FormatTOML, nil
	case FormatYAML:
		return FormatYAML, nil
	}
	return "", errors.NewValidationError("format", s, "must be one of auto, toml, yaml")
}

// Document is the parsed in-memory representation of one input file,
// rooted at a single table.
type Document struct {
	Path string
	Root Table
}

// DetectFormat infers the document format from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %s (expected a .toml, .yaml, or .yml file)", errors.ErrUnknownFormat, path)
}

// Load reads and parses a single document. With FormatAuto the format is
// inferred from the file extension.
func Load(path string, format Format) (*Document, error) {
	if format == FormatAuto {
		detected, err := DetectFormat(path)
		if err != nil {
			return nil, err
		}
		format = detected
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.WrapIO("read", path, errors.ErrNotFound)
		}
		return nil, errors.WrapIO("read", path, err)
	}

	var root Table
	switch format {
	case FormatTOML:
		root, err = parseTOML(path, data)
	case FormatYAML:
		root, err = parseYAML(path, data)
	default:
		return nil, errors.NewValidationError("format", string(format), "must be one of auto, toml, yaml")
	}
	if err != nil {
		return nil, err
	}

	return &Document{Path: path, Root: root}, nil
}

// LoadPair loads both input documents, one goroutine per side.
func LoadPair(ctx context.Context, leftPath, rightPath string, format Format) (*Document, *Document, error) {
	g, _ := errgroup.WithContext(ctx)

	var left, right *Document
	g.Go(func() error {
		var err error
		left, err = Load(leftPath, format)
		return err
	})
	g.Go(func() error {
		var err error
		right, err = Load(rightPath, format)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

// parseTOML decodes TOML data into a Table, carrying the decoder's
// row/column position into the ParseError when the input is malformed.
func parseTOML(path string, data []byte) (Table, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		parseErr := errors.NewParseError("toml", path, err.Error(), err)
		var decodeErr *toml.DecodeError
		if stderrors.As(err, &decodeErr) {
			parseErr.Line, parseErr.Column = decodeErr.Position()
		}
		return nil, parseErr
	}
	return decodeRoot(raw)
}

// parseYAML decodes YAML data into a Table.
func parseYAML(path string, data []byte) (Table, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.NewParseError("yaml", path, err.Error(), err)
	}
	return decodeRoot(raw)
}

// decodeRoot converts the decoded top-level map into a Table. An empty
// document yields an empty table rather than nil.
func decodeRoot(raw map[string]any) (Table, error) {
	if raw == nil {
		return Table{}, nil
	}
	return tableFromMap(raw)
}
