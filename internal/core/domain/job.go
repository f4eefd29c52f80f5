package domain

import "strings"

// JobKind identifies a long-running backend job type.
type JobKind string

const (
	// JobAccountAggregation pulls accounts from a source.
	JobAccountAggregation JobKind = "ACCOUNT_AGGREGATION"
	// JobEntitlementAggregation pulls entitlements from a source.
	JobEntitlementAggregation JobKind = "ENTITLEMENT_AGGREGATION"
	// JobAccountReset removes all accounts loaded from a source.
	JobAccountReset JobKind = "ACCOUNT_RESET"
	// JobEntitlementReset removes all entitlements loaded from a source.
	JobEntitlementReset JobKind = "ENTITLEMENT_RESET"
)

// JobStatus is the remote-reported state of a job.
type JobStatus string

const (
	// JobPending indicates the job is queued and has not started.
	JobPending JobStatus = "PENDING"
	// JobRunning indicates the job is executing.
	JobRunning JobStatus = "RUNNING"
	// JobSuccess indicates the job finished cleanly.
	JobSuccess JobStatus = "SUCCESS"
	// JobWarning indicates the job finished with diagnostics.
	JobWarning JobStatus = "WARNING"
	// JobFailure indicates the job failed.
	JobFailure JobStatus = "FAILURE"
)

// IsTerminal reports whether no further status transition can occur.
func (s JobStatus) IsTerminal() bool {
	switch s {
	case JobSuccess, JobWarning, JobFailure:
		return true
	default:
		return false
	}
}

// JobMessage is one diagnostic attached to a terminal job.
type JobMessage struct {
	// Key is the machine-readable diagnostic code.
	Key string
	// Text is the human-readable diagnostic text.
	Text string
}

// Job is the remote job record as reported by the tenant.
type Job struct {
	ID       string
	TargetID string
	Kind     JobKind
	Status   JobStatus
	Messages []JobMessage
}

// FirstMessage returns the first diagnostic, or a zero message if none exist.
func (j *Job) FirstMessage() JobMessage {
	if len(j.Messages) == 0 {
		return JobMessage{}
	}
	return j.Messages[0]
}

// JoinedMessages returns all diagnostic texts joined with "; ".
func (j *Job) JoinedMessages() string {
	if len(j.Messages) == 0 {
		return ""
	}
	parts := make([]string, len(j.Messages))
	for i, m := range j.Messages {
		parts[i] = m.Text
	}
	return strings.Join(parts, "; ")
}

// OutcomeCategory classifies a finished operation for presentation.
type OutcomeCategory string

const (
	// OutcomeSuccess means the job reached SUCCESS.
	OutcomeSuccess OutcomeCategory = "Success"
	// OutcomeWarning means the job reached WARNING.
	OutcomeWarning OutcomeCategory = "Warning"
	// OutcomeFailure means the job reached FAILURE.
	OutcomeFailure OutcomeCategory = "Failure"
	// OutcomeCancelled means the operator cancelled the local wait.
	// The remote job itself is not cancelled.
	OutcomeCancelled OutcomeCategory = "Cancelled"
)

// CategoryFor maps a terminal job status to its outcome category.
// Non-terminal statuses have no category; callers must only classify
// terminal jobs.
func CategoryFor(s JobStatus) OutcomeCategory {
	switch s {
	case JobWarning:
		return OutcomeWarning
	case JobFailure:
		return OutcomeFailure
	default:
		return OutcomeSuccess
	}
}

// OutcomeReport is the formatted, categorized result of one operation.
// It is produced once and never mutated.
type OutcomeReport struct {
	Category OutcomeCategory
	Text     string
}
