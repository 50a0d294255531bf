package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	pyerrors "github.com/alexisbeaulieu97/pyboot/pkg/errors"
)

func newTestSelector(input string) (*Selector, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewSelector(strings.NewReader(input), out, nil), out
}

func mustOptions(t *testing.T, labels ...string) OptionList {
	t.Helper()
	opts, err := NewOptionList(labels)
	require.NoError(t, err)
	return opts
}

func TestNewOptionListEnforcesCeiling(t *testing.T) {
	t.Parallel()

	labels := make([]string, 27)
	for i := range labels {
		labels[i] = "group"
	}

	_, err := NewOptionList(labels)
	var validationErr *pyerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	_, err = NewOptionList(nil)
	require.ErrorAs(t, err, &validationErr)

	opts, err := NewOptionList(labels[:26])
	require.NoError(t, err)
	require.Equal(t, "Z", opts.Letter(25))
}

func TestSelectMultiParsesLetters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		def     string
		want    []int
		invalid bool
	}{
		{name: "single letter", input: "A\n", want: []int{0}},
		{name: "multiple letters", input: "A,C\n", want: []int{0, 2}},
		{name: "lowercase and whitespace", input: "a, b\n", want: []int{0, 1}},
		{name: "empty input uses default", input: "\n", def: "A", want: []int{0}},
		{name: "duplicates preserved in order", input: "C,A,C\n", want: []int{2, 0, 2}},
		{name: "out of range invalidates all", input: "A,D\n", invalid: true},
		{name: "non letter token invalidates all", input: "A,1\n", invalid: true},
		{name: "multi character token invalidates all", input: "AB\n", invalid: true},
		{name: "empty input with empty default", input: "\n", invalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sel, _ := newTestSelector(tt.input)
			opts := mustOptions(t, "Core", "Dev", "Plot")

			result, err := sel.Select("Select dependency groups", opts, tt.def, true)
			require.NoError(t, err)
			require.Equal(t, tt.invalid, result.Invalid)
			if tt.invalid {
				require.Empty(t, result.Indices, "invalid input must not yield partial indices")
			} else {
				require.Equal(t, tt.want, result.Indices)
			}
		})
	}
}

func TestSelectExclusiveRejectsMultipleTokens(t *testing.T) {
	t.Parallel()

	sel, _ := newTestSelector("A,B\n")
	opts := mustOptions(t, "Yes", "No")

	result, err := sel.Select("Install the UI?", opts, "B", false)
	require.NoError(t, err)
	require.True(t, result.Invalid)
	require.Equal(t, -1, result.Single())
}

func TestSelectExclusiveAcceptsDefault(t *testing.T) {
	t.Parallel()

	sel, _ := newTestSelector("\n")
	opts := mustOptions(t, "Yes", "No")

	result, err := sel.Select("Install the UI?", opts, "B", false)
	require.NoError(t, err)
	require.Equal(t, 1, result.Single())
}

func TestSelectRendersOptionsAndInstruction(t *testing.T) {
	t.Parallel()

	sel, out := newTestSelector("B\n")
	opts := mustOptions(t, "Core", "Dev")

	_, err := sel.Select("Select dependency groups", opts, "A", true)
	require.NoError(t, err)

	rendered := out.String()
	require.Contains(t, rendered, "A.")
	require.Contains(t, rendered, "Core")
	require.Contains(t, rendered, "B.")
	require.Contains(t, rendered, "Dev")
	require.Contains(t, rendered, "separated by commas")
}

func TestSelectorSurvivesConsecutivePrompts(t *testing.T) {
	t.Parallel()

	sel, _ := newTestSelector("A\nB\ny\n")
	opts := mustOptions(t, "Core", "Dev")

	first, err := sel.Select("first", opts, "A", true)
	require.NoError(t, err)
	require.Equal(t, []int{0}, first.Indices)

	second, err := sel.Select("second", opts, "A", false)
	require.NoError(t, err)
	require.Equal(t, 1, second.Single())

	ok, err := sel.Confirm("Open the session log?")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestConfirmOnlyAcceptsY(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{input: "Y\n", want: true},
		{input: "y\n", want: true},
		{input: "yes\n", want: false},
		{input: "n\n", want: false},
		{input: "\n", want: false},
	}

	for _, tt := range tests {
		sel, _ := newTestSelector(tt.input)
		got, err := sel.Confirm("Open the session log?")
		require.NoError(t, err)
		require.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestSelectHandlesEOFWithoutNewline(t *testing.T) {
	t.Parallel()

	sel, _ := newTestSelector("A")
	opts := mustOptions(t, "Core")

	result, err := sel.Select("last line", opts, "A", false)
	require.NoError(t, err)
	require.Equal(t, 0, result.Single())
}
