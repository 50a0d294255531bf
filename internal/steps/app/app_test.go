package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/pyboot/internal/engine"
	"github.com/alexisbeaulieu97/pyboot/internal/steps/envpath"
)

func TestApplyRunsEditableInstall(t *testing.T) {
	t.Parallel()

	wd := t.TempDir()
	execCtx := &engine.ExecutionContext{WorkDir: wd, EnvDir: filepath.Join(wd, ".venv")}

	var gotDir, gotName string
	var gotArgs []string
	s := &step{run: func(_ context.Context, dir, name string, args ...string) error {
		gotDir = dir
		gotName = name
		gotArgs = args
		return nil
	}}

	require.NoError(t, s.Apply(context.Background(), execCtx))
	require.Equal(t, wd, gotDir)
	require.Equal(t, envpath.Pip(execCtx.EnvDir), gotName)
	require.Equal(t, []string{"install", "-e", "."}, gotArgs)
}

func TestApplyPropagatesInstallFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("build backend failed")
	s := &step{run: func(_ context.Context, _, _ string, _ ...string) error { return boom }}

	err := s.Apply(context.Background(), &engine.ExecutionContext{})
	require.ErrorIs(t, err, boom)
}

func TestCheckAlwaysRequiresAction(t *testing.T) {
	t.Parallel()

	ok, err := New().Check(context.Background(), nil)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestStepIsFatal(t *testing.T) {
	t.Parallel()

	require.True(t, New().Fatal())
}
