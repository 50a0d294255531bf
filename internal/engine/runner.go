package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/pyboot/internal/logger"
	"github.com/alexisbeaulieu97/pyboot/internal/model"
	pyerrors "github.com/alexisbeaulieu97/pyboot/pkg/errors"
)

// Step is one unit of provisioning work. Steps execute in a fixed total
// order, at most once per run.
type Step interface {
	// Name identifies the step in logs and results.
	Name() string
	// Check is the idempotency predicate: true means the step's effect is
	// already present and the action is skipped.
	Check(ctx context.Context, execCtx *ExecutionContext) (bool, error)
	// Apply performs the step's work.
	Apply(ctx context.Context, execCtx *ExecutionContext) error
	// Fatal reports whether a failure halts the remaining pipeline. Steps
	// are never retried either way.
	Fatal() bool
}

// Runner drives steps strictly sequentially, halting on the first fatal
// failure.
type Runner struct {
	log *logger.Logger
}

// NewRunner creates a Runner that reports through log.
func NewRunner(log *logger.Logger) *Runner {
	return &Runner{log: log}
}

// Run executes the steps in order. It returns the results accumulated so far
// and the first fatal error, if any. No step runs after a fatal failure and
// no step is retried. Non-fatal failures are logged as warnings and execution
// continues.
func (r *Runner) Run(ctx context.Context, execCtx *ExecutionContext, steps []Step) ([]model.StepResult, error) {
	results := make([]model.StepResult, 0, len(steps))

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		start := time.Now()

		satisfied, err := step.Check(ctx, execCtx)
		if err == nil && satisfied {
			r.log.Info(fmt.Sprintf("%s: already satisfied, skipping", step.Name()))
			results = append(results, result(step, model.StatusSkipped, "already satisfied", nil, start))
			continue
		}

		if err == nil {
			err = step.Apply(ctx, execCtx)
		}

		if err != nil {
			if step.Fatal() {
				r.log.Error(err, fmt.Sprintf("%s failed", step.Name()))
				results = append(results, result(step, model.StatusFailed, err.Error(), err, start))
				return results, pyerrors.NewExecutionError(step.Name(), err)
			}
			r.log.Warn(fmt.Sprintf("%s failed, continuing: %v", step.Name(), err))
			results = append(results, result(step, model.StatusWarned, err.Error(), err, start))
			continue
		}

		results = append(results, result(step, model.StatusSuccess, "completed", nil, start))
	}

	return results, nil
}

// CheckOnly evaluates every step's idempotency predicate without applying
// anything. Predicate errors are reported in the result rather than halting
// the report.
func (r *Runner) CheckOnly(ctx context.Context, execCtx *ExecutionContext, steps []Step) []model.StepResult {
	results := make([]model.StepResult, 0, len(steps))

	for _, step := range steps {
		start := time.Now()

		satisfied, err := step.Check(ctx, execCtx)
		switch {
		case err != nil:
			results = append(results, result(step, model.StatusFailed, err.Error(), err, start))
		case satisfied:
			results = append(results, result(step, model.StatusSatisfied, "effect already present", nil, start))
		default:
			results = append(results, result(step, model.StatusPendingAction, "would run on provision", nil, start))
		}
	}

	return results
}

func result(step Step, status, message string, err error, start time.Time) model.StepResult {
	return model.StepResult{
		Name:      step.Name(),
		Status:    status,
		Message:   message,
		Error:     err,
		Duration:  time.Since(start),
		Timestamp: time.Now(),
	}
}
