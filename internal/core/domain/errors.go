package domain

import "go.trai.ch/zerr"

var (
	// ErrResourceNotFound is returned when a name lookup finds no resource.
	ErrResourceNotFound = zerr.New("resource not found")

	// ErrAmbiguousName is returned when a name lookup matches more than one resource.
	ErrAmbiguousName = zerr.New("name matches more than one resource")

	// ErrPageFetchFailed is returned when fetching a listing page fails.
	ErrPageFetchFailed = zerr.New("failed to fetch page")

	// ErrJobStartFailed is returned when starting a backend job fails.
	ErrJobStartFailed = zerr.New("failed to start job")

	// ErrJobStatusFailed is returned when a job status fetch fails.
	ErrJobStatusFailed = zerr.New("failed to fetch job status")

	// ErrJobPollTimeout is returned when a job does not reach a terminal
	// status within the configured poll timeout. The remote job keeps
	// running; only the local wait gives up.
	ErrJobPollTimeout = zerr.New("timed out waiting for job to finish")

	// ErrUnknownTenant is returned when the requested tenant alias is not configured.
	ErrUnknownTenant = zerr.New("tenant not configured")

	// ErrNoTenants is returned when the configuration contains no tenants.
	ErrNoTenants = zerr.New("no tenants configured")

	// ErrMissingToken is returned when a tenant's token environment variable is unset.
	ErrMissingToken = zerr.New("tenant API token not set")

	// ErrConfigNotFound is returned when no idgov.yaml can be located.
	ErrConfigNotFound = zerr.New("could not find idgov.yaml")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidTenant is returned when a tenant entry is malformed.
	ErrInvalidTenant = zerr.New("invalid tenant configuration")

	// ErrInvalidPageSize is returned when a configured page size is not positive.
	ErrInvalidPageSize = zerr.New("page size must be positive")

	// ErrOperationFailed is returned by the CLI layer when an administrative
	// operation ends in a Failure report.
	ErrOperationFailed = zerr.New("operation failed")
)
