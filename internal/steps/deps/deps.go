// Package deps prompts for dependency groups and installs them in one
// batched pip invocation.
package deps

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexisbeaulieu97/pyboot/internal/engine"
	"github.com/alexisbeaulieu97/pyboot/internal/prompt"
	"github.com/alexisbeaulieu97/pyboot/internal/steps/envpath"
	"github.com/alexisbeaulieu97/pyboot/internal/steps/toolexec"
)

// ErrManifestNotFound indicates a selected manifest file is missing from the
// project root. This is a broken install tree, not an input error, and is
// fatal.
var ErrManifestNotFound = errors.New("dependency manifest not found")

type step struct {
	selector *prompt.Selector
	run      toolexec.RunFunc
}

// New creates the dependency-selection-and-install step.
func New(selector *prompt.Selector) engine.Step {
	return &step{selector: selector, run: toolexec.Run}
}

var _ engine.Step = (*step)(nil)

func (s *step) Name() string { return "install_dependencies" }

// Check always requires action: pip itself is idempotent per package, so
// selection and install run on every provision.
func (s *step) Check(_ context.Context, _ *engine.ExecutionContext) (bool, error) {
	return false, nil
}

func (s *step) Apply(ctx context.Context, execCtx *engine.ExecutionContext) error {
	manifests := execCtx.Config.Manifests

	labels := make([]string, len(manifests))
	for i, manifest := range manifests {
		labels[i] = fmt.Sprintf("%s (%s)", manifest.Label, manifest.File)
	}

	options, err := prompt.NewOptionList(labels)
	if err != nil {
		return err
	}

	selection, err := s.selector.Select("Select dependency groups to install", options, options.Letter(0), true)
	if err != nil {
		return err
	}
	if selection.Invalid {
		return fmt.Errorf("dependency selection: %w", prompt.ErrInvalidSelection)
	}

	args := []string{"install"}
	for _, idx := range selection.Indices {
		path := filepath.Join(execCtx.WorkDir, manifests[idx].File)
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("%w: %s", ErrManifestNotFound, manifests[idx].File)
			}
			return err
		}
		args = append(args, "-r", path)
	}

	execCtx.Logger.Info(fmt.Sprintf("installing %d dependency group(s)", len(selection.Indices)))
	return s.run(ctx, execCtx.WorkDir, envpath.Pip(execCtx.EnvDir), args...)
}

func (s *step) Fatal() bool { return true }
