// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/idgov/internal/core/domain"
)

// Page is one fetched window of a remote listing.
type Page struct {
	// Items are the resources of this window, in server order.
	Items []domain.Resource
	// Total is the size of the whole collection. It is only populated when
	// the fetch requested it (first page) and HasTotal is true.
	Total    int
	HasTotal bool
}

// Client is the abstract remote-service contract the engine depends on.
// Transport and authentication are the adapter's concern.
//
//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks
type Client interface {
	// ListResources fetches one window of the tenant's listing for the given
	// resource type. filter is passed through opaquely to the server; the
	// empty string matches everything. needTotal asks the server to include
	// the collection size; callers request it on the first page only.
	ListResources(ctx context.Context, t domain.ResourceType, filter string, limit, offset int, needTotal bool) (Page, error)

	// StartJob initiates a long-running backend job against the target
	// resource and returns the job id.
	StartJob(ctx context.Context, kind domain.JobKind, targetID string) (string, error)

	// GetJobStatus returns the current job record. Diagnostic messages are
	// populated once the job is terminal.
	GetJobStatus(ctx context.Context, jobID string) (*domain.Job, error)

	// ResolveIDByName looks up the backend id of a resource by its
	// human-readable name. Returns domain.ErrResourceNotFound when nothing
	// matches and domain.ErrAmbiguousName on multiple matches.
	ResolveIDByName(ctx context.Context, t domain.ResourceType, name string) (string, error)
}
