package app

import (
	"context"
	"strings"

	"go.trai.ch/idgov/internal/core/domain"
	"go.trai.ch/idgov/internal/core/ports"
	"go.trai.ch/idgov/internal/engine/poll"
	"go.trai.ch/idgov/internal/engine/report"
)

// operator binds one session to the run-scoped presentation dependencies:
// the tracer feeding the renderer bridge, the renderer itself, and metrics.
type operator struct {
	session  *Session
	tracer   ports.Tracer
	renderer ports.ProgressRenderer
	metrics  ports.Metrics
}

// AggregateAccounts pulls accounts from the named source. Returns the
// terminal job record, or nil when the wait was cancelled.
func (o *operator) AggregateAccounts(ctx context.Context, name string) (*domain.Job, error) {
	_, job, err := o.resolveAndRun(ctx, domain.JobAccountAggregation, name)
	return job, err
}

// AggregateEntitlements pulls entitlements from the named source.
func (o *operator) AggregateEntitlements(ctx context.Context, name string) (*domain.Job, error) {
	_, job, err := o.resolveAndRun(ctx, domain.JobEntitlementAggregation, name)
	return job, err
}

// ResetAccounts removes all accounts loaded from the named source.
func (o *operator) ResetAccounts(ctx context.Context, name string) (*domain.Job, error) {
	_, job, err := o.resolveAndRun(ctx, domain.JobAccountReset, name)
	return job, err
}

// ResetEntitlements removes all entitlements loaded from the named source.
func (o *operator) ResetEntitlements(ctx context.Context, name string) (*domain.Job, error) {
	_, job, err := o.resolveAndRun(ctx, domain.JobEntitlementReset, name)
	return job, err
}

// ResetSource performs the two-phase composite reset: accounts first, then
// entitlements. The entitlement phase runs only when the account phase
// classified as Success; Warning, Failure and Cancelled short-circuit.
func (o *operator) ResetSource(ctx context.Context, name string) error {
	targetID, err := o.session.ResolveID(ctx, domain.TypeSource, name)
	if err != nil {
		return err
	}

	category, _, err := o.runJob(ctx, domain.JobAccountReset, name, targetID)
	if err != nil {
		return err
	}
	if category != domain.OutcomeSuccess {
		return nil
	}

	_, _, err = o.runJob(ctx, domain.JobEntitlementReset, name, targetID)
	return err
}

func (o *operator) resolveAndRun(ctx context.Context, kind domain.JobKind, name string) (domain.OutcomeCategory, *domain.Job, error) {
	targetID, err := o.session.ResolveID(ctx, domain.TypeSource, name)
	if err != nil {
		return "", nil, err
	}
	return o.runJob(ctx, kind, name, targetID)
}

// runJob drives one remote job from start to its classified outcome: start,
// poll to a terminal state, format, hand the single report to the renderer.
// Start and poll errors propagate; a terminal Failure is a classified report,
// not an error.
func (o *operator) runJob(ctx context.Context, kind domain.JobKind, label, targetID string) (domain.OutcomeCategory, *domain.Job, error) {
	ctx, span := o.tracer.Start(ctx, spanName(kind, label),
		ports.WithAttribute("target_id", targetID))
	defer span.End()

	jobID, err := o.session.client.StartJob(ctx, kind, targetID)
	if err != nil {
		span.RecordError(err)
		return "", nil, err
	}
	span.SetAttribute("job_id", jobID)
	o.renderer.OnJobStart(jobID, label, kind)

	tenant := o.session.Tenant()
	poller := poll.New(o.session.client.GetJobStatus,
		poll.WithInterval(tenant.PollInterval),
		poll.WithTimeout(tenant.PollTimeout),
		poll.WithProgress(o.renderer),
		poll.WithMetrics(o.metrics),
	)

	category, job, err := poller.Poll(ctx, jobID)
	if err != nil {
		span.RecordError(err)
		return "", nil, err
	}

	if o.metrics != nil {
		o.metrics.JobOutcome(kind, category)
	}
	o.renderer.OnJobDone(jobID, report.Format(category, label, job, templatesFor(kind)))

	return category, job, nil
}

func spanName(kind domain.JobKind, label string) string {
	return strings.ToLower(strings.ReplaceAll(string(kind), "_", " ")) + " " + label
}
