package poll_test

import (
	"context"
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/idgov/internal/core/domain"
	"go.trai.ch/idgov/internal/core/ports/mocks"
	"go.trai.ch/idgov/internal/engine/poll"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func jobWithStatus(s domain.JobStatus) *domain.Job {
	return &domain.Job{ID: "job-1", Kind: domain.JobAccountAggregation, Status: s}
}

func TestPoller_TerminalOnFirstFetch(t *testing.T) {
	var fetches atomic.Int32
	p := poll.New(func(_ context.Context, jobID string) (*domain.Job, error) {
		fetches.Add(1)
		assert.Equal(t, "job-1", jobID)
		return jobWithStatus(domain.JobSuccess), nil
	})

	category, job, err := p.Poll(t.Context(), "job-1")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSuccess, category)
	require.NotNil(t, job)
	assert.Equal(t, domain.JobSuccess, job.Status)
	assert.Equal(t, int32(1), fetches.Load(), "a terminal first response needs exactly one fetch")
}

func TestPoller_CancelledBeforeFirstFetch(t *testing.T) {
	var fetches atomic.Int32
	p := poll.New(func(_ context.Context, _ string) (*domain.Job, error) {
		fetches.Add(1)
		return jobWithStatus(domain.JobRunning), nil
	})

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	category, job, err := p.Poll(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeCancelled, category)
	assert.Nil(t, job)
	assert.Equal(t, int32(0), fetches.Load(), "cancellation must win before any fetch")
}

func TestPoller_PollsUntilTerminal(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		statuses := []domain.JobStatus{domain.JobPending, domain.JobRunning, domain.JobRunning, domain.JobWarning}
		var fetches atomic.Int32
		p := poll.New(func(_ context.Context, _ string) (*domain.Job, error) {
			n := fetches.Add(1)
			j := jobWithStatus(statuses[n-1])
			if j.Status == domain.JobWarning {
				j.Messages = []domain.JobMessage{{Key: "PARTIAL", Text: "2 accounts skipped"}}
			}
			return j, nil
		}, poll.WithInterval(2*time.Second))

		start := time.Now()
		category, job, err := p.Poll(context.Background(), "job-1")
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeWarning, category)
		require.NotNil(t, job)
		assert.Equal(t, "PARTIAL", job.FirstMessage().Key)
		assert.Equal(t, int32(4), fetches.Load())
		// Three inter-poll waits of the fixed interval.
		assert.Equal(t, 6*time.Second, time.Since(start))
	})
}

func TestPoller_CancelledDuringWait(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var fetches atomic.Int32
		p := poll.New(func(_ context.Context, _ string) (*domain.Job, error) {
			fetches.Add(1)
			return jobWithStatus(domain.JobRunning), nil
		}, poll.WithInterval(time.Minute))

		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(time.Second)
			cancel()
		}()

		category, job, err := p.Poll(ctx, "job-1")
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeCancelled, category)
		assert.Nil(t, job)
		assert.Equal(t, int32(1), fetches.Load())
	})
}

func TestPoller_Timeout(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		p := poll.New(func(_ context.Context, _ string) (*domain.Job, error) {
			return jobWithStatus(domain.JobRunning), nil
		}, poll.WithInterval(time.Second), poll.WithTimeout(5*time.Second))

		category, job, err := p.Poll(context.Background(), "job-1")
		require.ErrorContains(t, err, domain.ErrJobPollTimeout.Error())
		assert.Empty(t, category)
		assert.Nil(t, job)
	})
}

func TestPoller_FetchErrorPropagates(t *testing.T) {
	boom := zerr.New("status endpoint unavailable")
	p := poll.New(func(_ context.Context, _ string) (*domain.Job, error) {
		return nil, boom
	})

	category, job, err := p.Poll(t.Context(), "job-1")
	require.ErrorIs(t, err, boom)
	assert.Empty(t, category)
	assert.Nil(t, job)
}

func TestPoller_ProgressPerIteration(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		progress := mocks.NewMockProgressRenderer(ctrl)
		metrics := mocks.NewMockMetrics(ctrl)

		statuses := []domain.JobStatus{domain.JobRunning, domain.JobSuccess}
		var fetches atomic.Int32
		p := poll.New(func(_ context.Context, _ string) (*domain.Job, error) {
			n := fetches.Add(1)
			return jobWithStatus(statuses[n-1]), nil
		},
			poll.WithInterval(time.Second),
			poll.WithProgress(progress),
			poll.WithMetrics(metrics),
		)

		gomock.InOrder(
			progress.EXPECT().OnJobPoll("job-1", 1, domain.JobRunning),
			progress.EXPECT().OnJobPoll("job-1", 2, domain.JobSuccess),
		)
		metrics.EXPECT().PollTick(domain.JobAccountAggregation).Times(2)

		category, _, err := p.Poll(context.Background(), "job-1")
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeSuccess, category)
	})
}
