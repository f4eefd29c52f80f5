package ports

import "go.trai.ch/idgov/internal/core/domain"

// Metrics records engine-level counters. Implementations must be safe for
// concurrent use; the engine calls these from arbitrary goroutines.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// ResolveHit records a resolution cache hit.
	ResolveHit()
	// ResolveMiss records a resolution cache miss (a resolver flight starts).
	ResolveMiss()
	// ResolveFailure records a failed resolver flight.
	ResolveFailure()

	// PageLoaded records one fetched listing window of n items.
	PageLoaded(t domain.ResourceType, n int)

	// PollTick records one job status fetch.
	PollTick(kind domain.JobKind)

	// JobOutcome records the final category of one administrative operation.
	JobOutcome(kind domain.JobKind, category domain.OutcomeCategory)
}
