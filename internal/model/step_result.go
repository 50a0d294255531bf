package model

import (
	"time"
)

const (
	// StatusSuccess marks a step whose action ran and completed.
	StatusSuccess = "success"
	// StatusSkipped marks a step whose effect was already present.
	StatusSkipped = "skipped"
	// StatusFailed marks a failure during step execution.
	StatusFailed = "failed"
	// StatusWarned marks a non-fatal failure the pipeline continued past.
	StatusWarned = "warned"
	// StatusSatisfied marks a predicate that holds in check-only mode.
	StatusSatisfied = "satisfied"
	// StatusPendingAction marks a predicate that does not hold in check-only mode.
	StatusPendingAction = "pending action"
)

// StepResult captures the outcome of executing a single pipeline step.
type StepResult struct {
	Name      string
	Status    string
	Message   string
	Error     error
	Duration  time.Duration
	Timestamp time.Time
}
