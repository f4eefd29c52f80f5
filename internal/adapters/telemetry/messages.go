package telemetry

import (
	"time"

	"go.trai.ch/idgov/internal/core/domain"
)

// MsgSpanStart indicates a traced operation has started.
type MsgSpanStart struct {
	SpanID    string
	ParentID  string // May be empty if root
	Name      string
	StartTime time.Time
}

// MsgSpanEnd indicates a traced operation has finished.
type MsgSpanEnd struct {
	SpanID  string
	EndTime time.Time
	Err     error
}

// MsgJobStart indicates a remote job has been started.
type MsgJobStart struct {
	JobID string
	Label string
	Kind  domain.JobKind
}

// MsgJobPoll carries one poll observation for a running job.
type MsgJobPoll struct {
	JobID   string
	Attempt int
	Status  domain.JobStatus
}

// MsgJobDone carries the final report of an operation.
type MsgJobDone struct {
	JobID  string
	Report domain.OutcomeReport
}
