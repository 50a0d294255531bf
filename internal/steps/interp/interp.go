// Package interp resolves the Python interpreter the rest of the pipeline
// builds on.
package interp

import (
	"context"

	"github.com/alexisbeaulieu97/pyboot/internal/engine"
	"github.com/alexisbeaulieu97/pyboot/internal/python"
)

type step struct {
	locator *python.Locator
}

// New creates the interpreter-check step.
func New(locator *python.Locator) engine.Step {
	return &step{locator: locator}
}

var _ engine.Step = (*step)(nil)

func (s *step) Name() string { return "locate_interpreter" }

func (s *step) Check(_ context.Context, execCtx *engine.ExecutionContext) (bool, error) {
	return execCtx.Interpreter.Path != "", nil
}

func (s *step) Apply(ctx context.Context, execCtx *engine.ExecutionContext) error {
	interp, err := s.locator.Locate(ctx)
	if err != nil {
		return err
	}
	execCtx.Interpreter = interp
	return nil
}

func (s *step) Fatal() bool { return true }
