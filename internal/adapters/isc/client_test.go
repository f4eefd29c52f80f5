package isc_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/idgov/internal/adapters/isc"
	"go.trai.ch/idgov/internal/core/domain"
)

const testToken = "test-token-value"

func newTestClient(t *testing.T, handler http.Handler) *isc.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	t.Setenv("IDGOV_TEST_TOKEN", testToken)

	client, err := isc.New(domain.Tenant{
		Name:     "test",
		BaseURL:  server.URL,
		TokenEnv: "IDGOV_TEST_TOKEN",
	})
	require.NoError(t, err)
	return client
}

func TestNew_MissingToken(t *testing.T) {
	t.Setenv("IDGOV_EMPTY_TOKEN", "")

	_, err := isc.New(domain.Tenant{
		Name:     "test",
		BaseURL:  "https://example.com",
		TokenEnv: "IDGOV_EMPTY_TOKEN",
	})

	require.ErrorContains(t, err, domain.ErrMissingToken.Error())
}

func TestListResources_FirstPage(t *testing.T) {
	var gotQuery map[string]string
	var gotAuth string

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/sources", r.URL.Path)

		gotAuth = r.Header.Get("Authorization")
		gotQuery = map[string]string{
			"limit":  r.URL.Query().Get("limit"),
			"offset": r.URL.Query().Get("offset"),
			"count":  r.URL.Query().Get("count"),
		}

		w.Header().Set("X-Total-Count", "42")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": "src-1", "name": "HR", "description": "HR feed"},
			{"id": "src-2", "name": "AD", "description": "Active Directory"}
		]`))
	}))

	page, err := client.ListResources(t.Context(), domain.TypeSource, "", 25, 0, true)
	require.NoError(t, err)

	assert.Equal(t, "Bearer "+testToken, gotAuth)
	assert.Equal(t, map[string]string{"limit": "25", "offset": "0", "count": "true"}, gotQuery)

	require.Len(t, page.Items, 2)
	assert.Equal(t, "src-1", page.Items[0].ID)
	assert.Equal(t, "HR", page.Items[0].Name)
	assert.Equal(t, domain.TypeSource, page.Items[0].Type)

	assert.True(t, page.HasTotal)
	assert.Equal(t, 42, page.Total)
}

func TestListResources_LaterPageSkipsTotal(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "false", r.URL.Query().Get("count"))
		assert.Equal(t, "25", r.URL.Query().Get("offset"))

		// Server may still send the header, the client must ignore it.
		w.Header().Set("X-Total-Count", "42")
		_, _ = w.Write([]byte(`[]`))
	}))

	page, err := client.ListResources(t.Context(), domain.TypeRole, "", 25, 25, false)
	require.NoError(t, err)

	assert.False(t, page.HasTotal)
	assert.Zero(t, page.Total)
	assert.Empty(t, page.Items)
}

func TestListResources_MissingTotalHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "absent", header: ""},
		{name: "unparseable", header: "lots"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				if tt.header != "" {
					w.Header().Set("X-Total-Count", tt.header)
				}
				_, _ = w.Write([]byte(`[{"id": "src-1", "name": "HR"}]`))
			}))

			// A counted fetch without a usable total is a failed fetch, not a
			// silently truncated page.
			_, err := client.ListResources(t.Context(), domain.TypeSource, "", 25, 0, true)
			require.ErrorContains(t, err, domain.ErrPageFetchFailed.Error())
		})
	}
}

func TestListResources_FilterPassThrough(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, `name sw "Active"`, r.URL.Query().Get("filters"))
		_, _ = w.Write([]byte(`[]`))
	}))

	_, err := client.ListResources(t.Context(), domain.TypeSource, `name sw "Active"`, 25, 0, false)
	require.NoError(t, err)
}

func TestListResources_ServerError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.ListResources(t.Context(), domain.TypeSource, "", 25, 0, true)

	require.ErrorContains(t, err, domain.ErrPageFetchFailed.Error())
}

func TestListResources_CollectionPaths(t *testing.T) {
	tests := []struct {
		resourceType domain.ResourceType
		wantPath     string
	}{
		{domain.TypeSource, "/v3/sources"},
		{domain.TypeIdentityProfile, "/v3/identity-profiles"},
		{domain.TypeRole, "/v3/roles"},
		{domain.TypeAccessProfile, "/v3/access-profiles"},
		{domain.TypeWorkflow, "/v3/workflows"},
	}

	for _, tt := range tests {
		t.Run(string(tt.resourceType), func(t *testing.T) {
			var gotPath string
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				_, _ = w.Write([]byte(`[]`))
			}))

			_, err := client.ListResources(t.Context(), tt.resourceType, "", 25, 0, false)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, gotPath)
		})
	}
}

func TestStartJob(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v3/jobs", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": "job-1"}`))
	}))

	jobID, err := client.StartJob(t.Context(), domain.JobAccountAggregation, "src-1")
	require.NoError(t, err)
	assert.Equal(t, "job-1", jobID)
}

func TestStartJob_ServerError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))

	_, err := client.StartJob(t.Context(), domain.JobAccountReset, "src-1")

	require.ErrorContains(t, err, domain.ErrJobStartFailed.Error())
}

func TestGetJobStatus(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/jobs/job-1", r.URL.Path)

		_, _ = w.Write([]byte(`{
			"id": "job-1",
			"targetId": "src-1",
			"kind": "ACCOUNT_AGGREGATION",
			"status": "WARNING",
			"messages": [{"key": "PARTIAL", "text": "3 accounts skipped"}]
		}`))
	}))

	job, err := client.GetJobStatus(t.Context(), "job-1")
	require.NoError(t, err)

	assert.Equal(t, "job-1", job.ID)
	assert.Equal(t, "src-1", job.TargetID)
	assert.Equal(t, domain.JobAccountAggregation, job.Kind)
	assert.Equal(t, domain.JobWarning, job.Status)
	require.Len(t, job.Messages, 1)
	assert.Equal(t, "PARTIAL", job.Messages[0].Key)
}

func TestGetJobStatus_ServerError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := client.GetJobStatus(t.Context(), "job-404")

	require.ErrorContains(t, err, domain.ErrJobStatusFailed.Error())
}

func TestResolveIDByName(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantID  string
		wantErr error
	}{
		{
			name:   "unique match",
			body:   `[{"id": "src-1", "name": "HR"}]`,
			wantID: "src-1",
		},
		{
			name:    "no match",
			body:    `[]`,
			wantErr: domain.ErrResourceNotFound,
		},
		{
			name:    "ambiguous",
			body:    `[{"id": "src-1", "name": "HR"}, {"id": "src-2", "name": "HR"}]`,
			wantErr: domain.ErrAmbiguousName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, `name eq "HR"`, r.URL.Query().Get("filters"))
				assert.Equal(t, "2", r.URL.Query().Get("limit"))
				_, _ = w.Write([]byte(tt.body))
			}))

			id, err := client.ResolveIDByName(t.Context(), domain.TypeSource, "HR")

			if tt.wantErr != nil {
				require.ErrorContains(t, err, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
