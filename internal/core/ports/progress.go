package ports

import (
	"context"
	"time"

	"go.trai.ch/idgov/internal/core/domain"
)

// ProgressRenderer is the abstraction for user-visible operation progress.
// It decouples the engine from presentation, allowing the same event stream
// to drive either the interactive browser or linear CI logs.
//
//go:generate mockgen -source=progress.go -destination=mocks/mock_progress.go -package=mocks
type ProgressRenderer interface {
	// Start initializes the renderer and begins its lifecycle. For
	// asynchronous renderers (the TUI), this may launch goroutines.
	Start(ctx context.Context) error

	// Stop signals the renderer to stop accepting events and flush output.
	Stop() error

	// Wait blocks until the renderer has fully terminated. Synchronous
	// renderers return immediately.
	Wait() error

	// OnJobStart is called when an operation has started a remote job.
	OnJobStart(jobID, label string, kind domain.JobKind)

	// OnJobPoll is called once per poll iteration. Observational only.
	OnJobPoll(jobID string, attempt int, status domain.JobStatus)

	// OnJobDone is called with the final report of an operation. Cancelled
	// reports carry no text and render nothing.
	OnJobDone(jobID string, report domain.OutcomeReport)

	// OnSpanStart is called by the telemetry bridge when a traced operation
	// begins. parentID is empty for root spans.
	OnSpanStart(spanID, parentID, name string, start time.Time)

	// OnSpanEnd is called when a traced operation completes. err is non-nil
	// when the span recorded an error status.
	OnSpanEnd(spanID string, end time.Time, err error)
}
