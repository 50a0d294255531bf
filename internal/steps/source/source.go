// Package source refreshes the working tree from the configured remote.
package source

import (
	"context"
	"errors"
	"fmt"

	git "github.com/go-git/go-git/v5"

	"github.com/alexisbeaulieu97/pyboot/internal/engine"
)

type step struct{}

// New creates the source-sync step.
func New() engine.Step {
	return &step{}
}

var _ engine.Step = (*step)(nil)

func (s *step) Name() string { return "sync_source" }

// Check treats a dirty working tree as nothing-to-do: local modifications
// are never overwritten by a sync. A directory that is not a git repository
// is likewise skipped.
func (s *step) Check(_ context.Context, execCtx *engine.ExecutionContext) (bool, error) {
	repo, err := git.PlainOpen(execCtx.WorkDir)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			execCtx.Logger.Warn("not a git repository, skipping source sync")
			return true, nil
		}
		return false, err
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return false, err
	}

	status, err := worktree.Status()
	if err != nil {
		return false, err
	}

	if !status.IsClean() {
		execCtx.Logger.Warn("working tree has local modifications, skipping source sync")
		return true, nil
	}

	return false, nil
}

func (s *step) Apply(ctx context.Context, execCtx *engine.ExecutionContext) error {
	repo, err := git.PlainOpen(execCtx.WorkDir)
	if err != nil {
		return err
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return err
	}

	remote := execCtx.Config.Remote
	execCtx.Logger.Info(fmt.Sprintf("pulling latest source from %s", remote))

	err = worktree.PullContext(ctx, &git.PullOptions{RemoteName: remote})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		execCtx.Logger.Info("source already up to date")
		return nil
	}
	if err != nil {
		return fmt.Errorf("sync from %s failed: %w", remote, err)
	}
	return nil
}

func (s *step) Fatal() bool { return true }
