// Package poll implements the cancellable job status poll loop.
package poll

import (
	"context"
	"time"

	"go.trai.ch/idgov/internal/core/domain"
	"go.trai.ch/idgov/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// DefaultInterval is the delay between two status fetches.
	DefaultInterval = 2 * time.Second
	// DefaultTimeout bounds the total poll duration. The upstream API gives
	// no signal for a stuck job, so the loop must not be unbounded.
	DefaultTimeout = 10 * time.Minute
)

// StatusFunc fetches the current job record by id.
type StatusFunc func(ctx context.Context, jobID string) (*domain.Job, error)

// Option configures a Poller.
type Option func(*Poller)

// WithInterval sets the delay between status fetches.
func WithInterval(d time.Duration) Option {
	return func(p *Poller) { p.interval = d }
}

// WithTimeout sets the maximum total poll duration.
func WithTimeout(d time.Duration) Option {
	return func(p *Poller) { p.timeout = d }
}

// WithProgress sets the renderer receiving one notification per iteration.
func WithProgress(r ports.ProgressRenderer) Option {
	return func(p *Poller) { p.progress = r }
}

// WithMetrics sets the metrics sink for poll ticks.
func WithMetrics(m ports.Metrics) Option {
	return func(p *Poller) { p.metrics = m }
}

// Poller repeatedly fetches a job's status until it is terminal, the caller
// cancels, or the poll timeout elapses. Iterations are strictly sequential;
// there is never more than one outstanding status fetch per Poll call.
type Poller struct {
	status   StatusFunc
	interval time.Duration
	timeout  time.Duration
	progress ports.ProgressRenderer
	metrics  ports.Metrics
}

// New creates a Poller around the given status fetch.
func New(status StatusFunc, opts ...Option) *Poller {
	p := &Poller{
		status:   status,
		interval: DefaultInterval,
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Poll drives the job to a terminal state and classifies it.
//
// Cancellation is client-side only: a cancelled ctx stops the local loop and
// yields OutcomeCancelled with a nil job; the remote job keeps running. The
// cancellation check precedes the status fetch, so a context cancelled
// before Poll is entered performs zero fetches. A status fetch error or an
// elapsed timeout is returned as an error with no category; the caller may
// retry with the same job id.
func (p *Poller) Poll(ctx context.Context, jobID string) (domain.OutcomeCategory, *domain.Job, error) {
	deadline := time.NewTimer(p.timeout)
	defer deadline.Stop()

	for attempt := 1; ; attempt++ {
		if ctx.Err() != nil {
			return domain.OutcomeCancelled, nil, nil
		}

		job, err := p.status(ctx, jobID)
		if err != nil {
			// A fetch torn down by the caller's cancellation is a
			// cancellation, not a failure.
			if ctx.Err() != nil {
				return domain.OutcomeCancelled, nil, nil
			}
			return "", nil, err
		}

		if p.metrics != nil {
			p.metrics.PollTick(job.Kind)
		}
		if p.progress != nil {
			p.progress.OnJobPoll(jobID, attempt, job.Status)
		}

		if job.Status.IsTerminal() {
			return domain.CategoryFor(job.Status), job, nil
		}

		wait := time.NewTimer(p.interval)
		select {
		case <-ctx.Done():
			wait.Stop()
			return domain.OutcomeCancelled, nil, nil
		case <-deadline.C:
			wait.Stop()
			return "", nil, zerr.With(domain.ErrJobPollTimeout, "job_id", jobID)
		case <-wait.C:
		}
	}
}
