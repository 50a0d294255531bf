// Package venv creates the project virtual environment.
package venv

import (
	"context"
	"fmt"
	"os"

	"github.com/alexisbeaulieu97/pyboot/internal/engine"
	"github.com/alexisbeaulieu97/pyboot/internal/steps/envpath"
	"github.com/alexisbeaulieu97/pyboot/internal/steps/toolexec"
)

type step struct {
	run toolexec.RunFunc
}

// New creates the environment-creation step.
func New() engine.Step {
	return &step{run: toolexec.Run}
}

var _ engine.Step = (*step)(nil)

func (s *step) Name() string { return "create_environment" }

// Check reports whether the environment's activation entry point already
// exists on disk.
func (s *step) Check(_ context.Context, execCtx *engine.ExecutionContext) (bool, error) {
	return activationExists(execCtx.EnvDir)
}

func (s *step) Apply(ctx context.Context, execCtx *engine.ExecutionContext) error {
	execCtx.Logger.Info(fmt.Sprintf("creating virtual environment at %s", execCtx.EnvDir))

	if err := s.run(ctx, execCtx.WorkDir, execCtx.Interpreter.Path, "-m", "venv", execCtx.EnvDir); err != nil {
		return fmt.Errorf("environment creation failed: %w", err)
	}

	// The tool can exit zero without producing a usable environment, so the
	// predicate is re-checked after creation.
	present, err := activationExists(execCtx.EnvDir)
	if err != nil {
		return err
	}
	if !present {
		return fmt.Errorf("environment creation left no activation entry point at %s", envpath.Activate(execCtx.EnvDir))
	}
	return nil
}

func (s *step) Fatal() bool { return true }

func activationExists(envDir string) (bool, error) {
	_, err := os.Stat(envpath.Activate(envDir))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
