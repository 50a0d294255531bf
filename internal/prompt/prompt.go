package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexisbeaulieu97/pyboot/internal/logger"
	pyerrors "github.com/alexisbeaulieu97/pyboot/pkg/errors"
)

// maxOptions is the ceiling imposed by single-letter addressing (A..Z).
const maxOptions = 26

// ErrInvalidSelection is returned when operator input cannot be mapped to a
// valid set of option indices.
var ErrInvalidSelection = errors.New("invalid selection")

// OptionList is an ordered sequence of human-readable labels. Each entry is
// addressable by a single letter: A selects index 0, B index 1, and so on.
type OptionList []string

// NewOptionList validates the label set against the single-letter ceiling.
func NewOptionList(labels []string) (OptionList, error) {
	if len(labels) == 0 {
		return nil, pyerrors.NewValidationError("options", "at least one option required", nil)
	}
	if len(labels) > maxOptions {
		return nil, pyerrors.NewValidationError("options", fmt.Sprintf("at most %d options supported, got %d", maxOptions, len(labels)), nil)
	}
	return OptionList(labels), nil
}

// Letter returns the single-letter address for an option index.
func (o OptionList) Letter(i int) string {
	return string(rune('A' + i))
}

// Selection holds the outcome of one prompt. When Invalid is set no indices
// are present, even if parts of the input were well formed.
type Selection struct {
	Indices []int
	Invalid bool
}

// Single returns the index of an exclusive selection, or -1 when the
// selection is invalid or not exactly one index.
func (s Selection) Single() int {
	if s.Invalid || len(s.Indices) != 1 {
		return -1
	}
	return s.Indices[0]
}

// Selector reads operator choices from a line-oriented input source. The
// reader is retained across prompts so buffered input is never lost between
// questions.
type Selector struct {
	in  *bufio.Reader
	out io.Writer
	log *logger.Logger
}

// NewSelector creates a Selector bound to the given input and output streams.
func NewSelector(in io.Reader, out io.Writer, log *logger.Logger) *Selector {
	return &Selector{in: bufio.NewReader(in), out: out, log: log}
}

// Select displays the prompt text and enumerated options, reads one line of
// input and parses it into option indices. Empty input substitutes
// defaultChoice before parsing. Any invalid token invalidates the entire
// selection.
func (s *Selector) Select(text string, options OptionList, defaultChoice string, allowMultiple bool) (Selection, error) {
	s.log.Prompt(text)

	for i, label := range options {
		fmt.Fprintf(s.out, "  %s %s\n", letterStyle.Render(options.Letter(i)+"."), label)
	}

	instruction := fmt.Sprintf("Enter one letter [default: %s]: ", defaultChoice)
	if allowMultiple {
		instruction = fmt.Sprintf("Enter letters separated by commas, e.g. A,C [default: %s]: ", defaultChoice)
	}
	fmt.Fprint(s.out, instructionStyle.Render(instruction))

	raw, err := s.readLine()
	if err != nil {
		return Selection{Invalid: true}, err
	}
	if strings.TrimSpace(raw) == "" {
		raw = defaultChoice
	}

	if allowMultiple {
		return parseMulti(raw, len(options)), nil
	}
	return parseSingle(raw, len(options)), nil
}

// Confirm asks a yes/no question. Only Y or y counts as an affirmative.
func (s *Selector) Confirm(text string) (bool, error) {
	s.log.Prompt(text)
	fmt.Fprint(s.out, instructionStyle.Render(text+" [y/N]: "))

	raw, err := s.readLine()
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(raw), "y"), nil
}

func (s *Selector) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// parseMulti maps a comma-separated list of letters onto option indices.
// Validation is all-or-nothing: one bad token discards every index. Order and
// duplicates are preserved.
func parseMulti(raw string, optionCount int) Selection {
	tokens := strings.Split(raw, ",")
	indices := make([]int, 0, len(tokens))
	for _, token := range tokens {
		idx, ok := letterIndex(token, optionCount)
		if !ok {
			return Selection{Invalid: true}
		}
		indices = append(indices, idx)
	}
	return Selection{Indices: indices}
}

// parseSingle accepts exactly one letter. Multi-token input is rejected even
// when every token is individually valid.
func parseSingle(raw string, optionCount int) Selection {
	idx, ok := letterIndex(raw, optionCount)
	if !ok {
		return Selection{Invalid: true}
	}
	return Selection{Indices: []int{idx}}
}

func letterIndex(token string, optionCount int) (int, bool) {
	token = strings.ToUpper(strings.TrimSpace(token))
	if len(token) != 1 || token[0] < 'A' || token[0] > 'Z' {
		return 0, false
	}
	idx := int(token[0] - 'A')
	if idx >= optionCount {
		return 0, false
	}
	return idx, true
}
