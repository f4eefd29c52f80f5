package metrics

import "go.trai.ch/idgov/internal/core/domain"

// Noop discards all measurements. Used when no metrics listener is
// configured.
type Noop struct{}

func (Noop) ResolveHit()                                       {}
func (Noop) ResolveMiss()                                      {}
func (Noop) ResolveFailure()                                   {}
func (Noop) PageLoaded(domain.ResourceType, int)               {}
func (Noop) PollTick(domain.JobKind)                           {}
func (Noop) JobOutcome(domain.JobKind, domain.OutcomeCategory) {}
