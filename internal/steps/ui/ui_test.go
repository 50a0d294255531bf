package ui

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/pyboot/internal/config"
	"github.com/alexisbeaulieu97/pyboot/internal/engine"
	"github.com/alexisbeaulieu97/pyboot/internal/prompt"
	"github.com/alexisbeaulieu97/pyboot/internal/steps/envpath"
)

type recordedRun struct {
	name string
	args []string
}

func newStep(input string, record *recordedRun) *step {
	selector := prompt.NewSelector(strings.NewReader(input), &bytes.Buffer{}, nil)
	return &step{
		selector: selector,
		run: func(_ context.Context, _, name string, args ...string) error {
			record.name = name
			record.args = args
			return nil
		},
	}
}

func newExecCtx(t *testing.T) *engine.ExecutionContext {
	t.Helper()
	wd := t.TempDir()
	cfg := config.Default()
	cfg.UICommand = []string{"trader", "install-ui"}
	return &engine.ExecutionContext{
		WorkDir: wd,
		EnvDir:  filepath.Join(wd, ".venv"),
		Config:  cfg,
	}
}

func TestApplyRunsUICommandOnYes(t *testing.T) {
	t.Parallel()

	execCtx := newExecCtx(t)

	var record recordedRun
	s := newStep("A\n", &record)

	require.NoError(t, s.Apply(context.Background(), execCtx))
	require.Equal(t, envpath.Script(execCtx.EnvDir, "trader"), record.name)
	require.Equal(t, []string{"install-ui"}, record.args)
}

func TestApplySkipsOnNo(t *testing.T) {
	t.Parallel()

	var record recordedRun
	s := newStep("B\n", &record)

	require.NoError(t, s.Apply(context.Background(), newExecCtx(t)))
	require.Empty(t, record.name, "No must not run the UI install command")
}

func TestApplyDefaultsToNo(t *testing.T) {
	t.Parallel()

	var record recordedRun
	s := newStep("\n", &record)

	require.NoError(t, s.Apply(context.Background(), newExecCtx(t)))
	require.Empty(t, record.name)
}

func TestApplyFailsOnInvalidSelection(t *testing.T) {
	t.Parallel()

	var record recordedRun
	s := newStep("A,B\n", &record)

	err := s.Apply(context.Background(), newExecCtx(t))
	require.ErrorIs(t, err, prompt.ErrInvalidSelection)
	require.Empty(t, record.name)
}

func TestStepIsFatal(t *testing.T) {
	t.Parallel()

	require.True(t, New(nil).Fatal())
}
