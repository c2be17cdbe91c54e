package errors_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/configtools/difftoml/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestIOError(t *testing.T) {
	t.Run("with path", func(t *testing.T) {
		err := pkgerrors.NewIOError("read", "config.toml", fs.ErrNotExist)
		assert.Equal(t, "failed to read config.toml: file does not exist", err.Error())
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("without path", func(t *testing.T) {
		err := pkgerrors.NewIOError("read", "", errors.New("broken pipe"))
		assert.Equal(t, "failed to read: broken pipe", err.Error())
	})

	t.Run("wrap nil", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapIO("read", "a.toml", nil))
	})

	t.Run("wrap non-nil", func(t *testing.T) {
		err := pkgerrors.WrapIO("open", "a.toml", fs.ErrPermission)
		require.Error(t, err)
		var ioErr *pkgerrors.IOError
		require.ErrorAs(t, err, &ioErr)
		assert.Equal(t, "open", ioErr.Operation)
		assert.Equal(t, "a.toml", ioErr.Path)
	})
}

func TestParseError(t *testing.T) {
	t.Run("with position", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "toml",
			File:    "left.toml",
			Line:    3,
			Column:  7,
			Message: "unexpected token",
		}
		assert.Equal(t, "parse error in toml at left.toml:3:7: unexpected token", err.Error())
		assert.True(t, pkgerrors.IsParseError(err))
	})

	t.Run("without position", func(t *testing.T) {
		err := pkgerrors.NewParseError("yaml", "right.yaml", "mapping values are not allowed", nil)
		assert.Equal(t, "parse error in yaml file right.yaml: mapping values are not allowed", err.Error())
	})

	t.Run("without file", func(t *testing.T) {
		err := pkgerrors.NewParseError("toml", "", "bad input", nil)
		assert.Equal(t, "toml parse error: bad input", err.Error())
	})

	t.Run("unwrap", func(t *testing.T) {
		cause := errors.New("decoder failure")
		err := pkgerrors.NewParseError("toml", "a.toml", "bad input", cause)
		assert.True(t, errors.Is(err, cause))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("format", "ini", "must be toml or yaml")
		assert.Equal(t, "validation failed for format: must be toml or yaml", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "two input files required"}
		assert.Equal(t, "validation failed: two input files required", err.Error())
	})
}

func TestConfigError(t *testing.T) {
	cause := errors.New("yaml: unmarshal error")
	err := pkgerrors.NewConfigError("viper", "could not read config file", cause)
	assert.Equal(t, "configuration error in viper: could not read config file", err.Error())
	assert.True(t, errors.Is(err, cause))

	bare := &pkgerrors.ConfigError{Message: "missing value"}
	assert.Equal(t, "configuration error: missing value", bare.Error())
}

func TestDepthError(t *testing.T) {
	err := pkgerrors.NewDepthError([]string{"a", "b", "c"}, 1000)
	assert.Equal(t, "maximum nesting depth 1000 exceeded at [a b c]", err.Error())
	assert.True(t, errors.Is(err, pkgerrors.ErrTooDeep))
	assert.True(t, pkgerrors.IsTooDeep(err))
	assert.False(t, pkgerrors.IsTooDeep(errors.New("other")))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, pkgerrors.IsNotFound(pkgerrors.ErrNotFound))
	wrapped := pkgerrors.WrapIO("open", "missing.toml", pkgerrors.ErrNotFound)
	assert.True(t, pkgerrors.IsNotFound(wrapped))
	assert.False(t, pkgerrors.IsNotFound(errors.New("boom")))
}
