package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("pyboot.yaml", 7, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "pyboot.yaml", parseErr.Path)
	require.Equal(t, 7, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "pyboot.yaml")
}

func TestValidationErrorReportsField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("manifests", "at most 26 entries supported", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "manifests", validationErr.Field)
	require.Contains(t, validationErr.Message, "at most 26 entries")
}

func TestExecutionErrorIncludesStepContext(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("pip exited with status 1")
	err := NewExecutionError("install_dependencies", underlying)

	var executionErr *ExecutionError
	require.ErrorAs(t, err, &executionErr)
	require.Equal(t, "install_dependencies", executionErr.Step)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "install_dependencies")
}
