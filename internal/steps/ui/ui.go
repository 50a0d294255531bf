// Package ui optionally runs the application's own UI install command.
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/pyboot/internal/engine"
	"github.com/alexisbeaulieu97/pyboot/internal/prompt"
	"github.com/alexisbeaulieu97/pyboot/internal/steps/envpath"
	"github.com/alexisbeaulieu97/pyboot/internal/steps/toolexec"
)

const (
	choiceYes = 0
	choiceNo  = 1
)

type step struct {
	selector *prompt.Selector
	run      toolexec.RunFunc
}

// New creates the UI-install step.
func New(selector *prompt.Selector) engine.Step {
	return &step{selector: selector, run: toolexec.Run}
}

var _ engine.Step = (*step)(nil)

func (s *step) Name() string { return "install_ui" }

// Check always requires action: the decision is the operator's, every run.
func (s *step) Check(_ context.Context, _ *engine.ExecutionContext) (bool, error) {
	return false, nil
}

func (s *step) Apply(ctx context.Context, execCtx *engine.ExecutionContext) error {
	options, err := prompt.NewOptionList([]string{"Yes", "No"})
	if err != nil {
		return err
	}

	selection, err := s.selector.Select("Install the optional UI component?", options, options.Letter(choiceNo), false)
	if err != nil {
		return err
	}

	switch selection.Single() {
	case choiceNo:
		execCtx.Logger.Info("skipping UI install")
		return nil
	case choiceYes:
		argv := execCtx.Config.UICommand
		program := envpath.Script(execCtx.EnvDir, argv[0])
		execCtx.Logger.Info(fmt.Sprintf("installing UI component: %s", strings.Join(argv, " ")))
		if err := s.run(ctx, execCtx.WorkDir, program, argv[1:]...); err != nil {
			return fmt.Errorf("ui install failed: %w", err)
		}
		return nil
	default:
		// Invalid input lands here. So would any index other than Yes/No,
		// which exclusive-select validation makes unreachable; the check
		// stays as an invariant assertion.
		return fmt.Errorf("ui selection: %w", prompt.ErrInvalidSelection)
	}
}

func (s *step) Fatal() bool { return true }
