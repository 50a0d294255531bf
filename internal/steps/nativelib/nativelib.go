// Package nativelib installs the prebuilt native technical-analysis library
// from the local wheelhouse. The step is best-effort: the batched dependency
// install that follows may satisfy the same requirement on its own.
package nativelib

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexisbeaulieu97/pyboot/internal/engine"
	"github.com/alexisbeaulieu97/pyboot/internal/steps/envpath"
	"github.com/alexisbeaulieu97/pyboot/internal/steps/toolexec"
)

type step struct {
	run toolexec.RunFunc
}

// New creates the native-library step.
func New() engine.Step {
	return &step{run: toolexec.Run}
}

var _ engine.Step = (*step)(nil)

func (s *step) Name() string { return "install_native_library" }

// Check reports whether the library's package directory is already present
// in the environment.
func (s *step) Check(_ context.Context, execCtx *engine.ExecutionContext) (bool, error) {
	sitePackages := envpath.SitePackages(execCtx.EnvDir, execCtx.Interpreter.Version)
	_, err := os.Stat(filepath.Join(sitePackages, execCtx.Config.NativeImportDir))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *step) Apply(ctx context.Context, execCtx *engine.ExecutionContext) error {
	cfg := execCtx.Config
	execCtx.Logger.Info(fmt.Sprintf("installing %s from %s", cfg.NativePackage, cfg.Wheelhouse))

	return s.run(ctx, execCtx.WorkDir, envpath.Pip(execCtx.EnvDir),
		"install",
		"--no-index",
		"--find-links", cfg.Wheelhouse,
		"--prefer-binary",
		cfg.NativePackage,
	)
}

// Fatal is false: a missed native-library install is logged and the pipeline
// continues.
func (s *step) Fatal() bool { return false }
