// Package app installs the application itself in editable mode.
package app

import (
	"context"

	"github.com/alexisbeaulieu97/pyboot/internal/engine"
	"github.com/alexisbeaulieu97/pyboot/internal/steps/envpath"
	"github.com/alexisbeaulieu97/pyboot/internal/steps/toolexec"
)

type step struct {
	run toolexec.RunFunc
}

// New creates the application-install step.
func New() engine.Step {
	return &step{run: toolexec.Run}
}

var _ engine.Step = (*step)(nil)

func (s *step) Name() string { return "install_application" }

// Check always requires action: an editable install must track the current
// working tree, and pip handles the already-installed case itself.
func (s *step) Check(_ context.Context, _ *engine.ExecutionContext) (bool, error) {
	return false, nil
}

func (s *step) Apply(ctx context.Context, execCtx *engine.ExecutionContext) error {
	execCtx.Logger.Info("installing application in editable mode")
	return s.run(ctx, execCtx.WorkDir, envpath.Pip(execCtx.EnvDir), "install", "-e", ".")
}

func (s *step) Fatal() bool { return true }
