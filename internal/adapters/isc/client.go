// Package isc implements ports.Client against the tenant's REST API.
package isc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"go.trai.ch/idgov/internal/core/domain"
	"go.trai.ch/idgov/internal/core/ports"
	"go.trai.ch/zerr"
)

// defaultTimeout bounds a single HTTP round trip, not a whole poll loop.
const defaultTimeout = 30 * time.Second

// Client implements ports.Client over HTTP with bearer-token authentication.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	tracer  ports.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTracer attaches a tracer so every remote call is recorded as a span.
func WithTracer(tracer ports.Tracer) Option {
	return func(c *Client) {
		c.tracer = tracer
	}
}

// New creates a Client for the given tenant. The API token is read from the
// environment variable named by the tenant configuration.
func New(tenant domain.Tenant, opts ...Option) (*Client, error) {
	token := os.Getenv(tenant.TokenEnv)
	if token == "" {
		return nil, zerr.With(domain.ErrMissingToken, "env", tenant.TokenEnv)
	}

	c := &Client{
		baseURL: tenant.BaseURL,
		token:   token,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// collectionPath maps a resource type to its API collection.
func collectionPath(t domain.ResourceType) string {
	switch t {
	case domain.TypeSource:
		return "sources"
	case domain.TypeIdentityProfile:
		return "identity-profiles"
	case domain.TypeRole:
		return "roles"
	case domain.TypeAccessProfile:
		return "access-profiles"
	case domain.TypeWorkflow:
		return "workflows"
	default:
		return string(t)
	}
}

// ListResources fetches one window of the collection listing.
func (c *Client) ListResources(ctx context.Context, t domain.ResourceType, filter string, limit, offset int, needTotal bool) (ports.Page, error) {
	ctx, span := c.startSpan(ctx, "isc.list_resources",
		ports.WithAttribute("resource_type", string(t)),
		ports.WithAttribute("offset", strconv.Itoa(offset)),
	)
	defer span.End()

	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))
	query.Set("count", strconv.FormatBool(needTotal))
	if filter != "" {
		query.Set("filters", filter)
	}

	endpoint := fmt.Sprintf("%s/v3/%s?%s", c.baseURL, collectionPath(t), query.Encode())

	var dtos []resourceDTO
	resp, err := c.do(ctx, http.MethodGet, endpoint, nil, &dtos)
	if err != nil {
		span.RecordError(err)
		err = zerr.Wrap(err, domain.ErrPageFetchFailed.Error())
		return ports.Page{}, zerr.With(err, "resource_type", string(t))
	}

	page := ports.Page{Items: toResources(dtos, t)}

	if needTotal {
		// The server guarantees the count header on counted fetches. Without
		// it the page cannot be distinguished from the whole collection.
		total, parseErr := strconv.Atoi(resp.Header.Get("X-Total-Count"))
		if parseErr != nil {
			err := zerr.Wrap(parseErr, domain.ErrPageFetchFailed.Error())
			err = zerr.With(err, "resource_type", string(t))
			span.RecordError(err)
			return ports.Page{}, zerr.With(err, "header", "X-Total-Count")
		}
		page.Total = total
		page.HasTotal = true
	}

	return page, nil
}

// StartJob initiates a backend job against the target resource.
func (c *Client) StartJob(ctx context.Context, kind domain.JobKind, targetID string) (string, error) {
	ctx, span := c.startSpan(ctx, "isc.start_job",
		ports.WithAttribute("kind", string(kind)),
		ports.WithAttribute("target_id", targetID),
	)
	defer span.End()

	endpoint := c.baseURL + "/v3/jobs"
	body := jobStartDTO{Kind: string(kind), TargetID: targetID}

	var created jobCreatedDTO
	if _, err := c.do(ctx, http.MethodPost, endpoint, body, &created); err != nil {
		span.RecordError(err)
		err = zerr.Wrap(err, domain.ErrJobStartFailed.Error())
		err = zerr.With(err, "kind", string(kind))
		return "", zerr.With(err, "target_id", targetID)
	}

	span.SetAttribute("job_id", created.ID)
	return created.ID, nil
}

// GetJobStatus returns the current job record.
func (c *Client) GetJobStatus(ctx context.Context, jobID string) (*domain.Job, error) {
	ctx, span := c.startSpan(ctx, "isc.get_job_status",
		ports.WithAttribute("job_id", jobID),
	)
	defer span.End()

	endpoint := c.baseURL + "/v3/jobs/" + url.PathEscape(jobID)

	var dto jobDTO
	if _, err := c.do(ctx, http.MethodGet, endpoint, nil, &dto); err != nil {
		span.RecordError(err)
		err = zerr.Wrap(err, domain.ErrJobStatusFailed.Error())
		return nil, zerr.With(err, "job_id", jobID)
	}

	return dto.toDomain(), nil
}

// ResolveIDByName looks up the backend id of a resource by its exact name.
func (c *Client) ResolveIDByName(ctx context.Context, t domain.ResourceType, name string) (string, error) {
	ctx, span := c.startSpan(ctx, "isc.resolve_id",
		ports.WithAttribute("resource_type", string(t)),
		ports.WithAttribute("name", name),
	)
	defer span.End()

	// Two entries are enough to distinguish unique from ambiguous.
	filter := fmt.Sprintf("name eq %q", name)
	page, err := c.ListResources(ctx, t, filter, 2, 0, false)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	switch len(page.Items) {
	case 0:
		err := zerr.With(domain.ErrResourceNotFound, "resource_type", string(t))
		return "", zerr.With(err, "name", name)
	case 1:
		return page.Items[0].ID, nil
	default:
		err := zerr.With(domain.ErrAmbiguousName, "resource_type", string(t))
		return "", zerr.With(err, "name", name)
	}
}

// do performs one HTTP round trip and decodes the JSON response into out.
func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to build request")
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		err := zerr.New("unexpected response status")
		return nil, zerr.With(err, "status", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return nil, zerr.Wrap(err, "failed to decode response body")
		}
	}

	return resp, nil
}

// startSpan starts a tracer span when a tracer is configured; otherwise it
// returns a no-op span so call sites stay unconditional.
func (c *Client) startSpan(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	if c.tracer == nil {
		return ctx, noopSpan{}
	}
	return c.tracer.Start(ctx, name, opts...)
}

type noopSpan struct{}

func (noopSpan) End()                        {}
func (noopSpan) RecordError(error)           {}
func (noopSpan) SetAttribute(string, string) {}
