package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("entry", "abc-123")
	assert.Equal(t, "entry with ID abc-123 not found", err.Error())
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, IsNotFound(err))
	assert.False(t, IsValidationError(err))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("year", "abc", "must be an integer")
	assert.Equal(t, "validation failed for field year: must be an integer", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.True(t, IsValidationError(err))

	// Field-less variant
	bare := &ValidationError{Message: "something wrong"}
	assert.Equal(t, "validation failed: something wrong", bare.Error())
}

func TestLoadError(t *testing.T) {
	cause := errors.New("file does not exist")
	err := NewLoadError("games.json", cause)
	assert.Contains(t, err.Error(), "games.json")
	assert.True(t, errors.Is(err, ErrLoadFailed))
	assert.True(t, IsLoadError(err))
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestParseError(t *testing.T) {
	cause := errors.New("unexpected token")
	err := NewParseError("json", "games.json", cause)
	assert.Contains(t, err.Error(), "games.json")
	assert.Contains(t, err.Error(), "json")
	assert.True(t, IsLoadError(err))
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestWrapHelpers(t *testing.T) {
	assert.NoError(t, WrapIO("games.json", nil))
	assert.NoError(t, WrapParse("json", "games.json", nil))
	assert.NoError(t, WrapValidation("title", nil))

	wrapped := WrapIO("games.json", fmt.Errorf("boom"))
	assert.True(t, IsLoadError(wrapped))

	var loadErr *LoadError
	assert.True(t, errors.As(wrapped, &loadErr))
	assert.Equal(t, "games.json", loadErr.Path)
}
