package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.trai.ch/idgov/internal/adapters/config"
	"go.trai.ch/idgov/internal/core/domain"
	"go.trai.ch/idgov/internal/core/ports/mocks"
)

func newTestLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return config.NewLoader(log)
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDiscover_CurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "tenants: {}")

	loader := newTestLoader(t)
	got, err := loader.Discover(dir)

	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestDiscover_WalksUpToParent(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "tenants: {}")

	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	loader := newTestLoader(t)
	got, err := loader.Discover(nested)

	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestDiscover_NotFound(t *testing.T) {
	loader := newTestLoader(t)
	_, err := loader.Discover(t.TempDir())

	require.ErrorContains(t, err, domain.ErrConfigNotFound.Error())
}

func TestLoad_FullConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
version: "1"
default: prod
tenants:
  prod:
    base_url: https://prod.api.example.com
    token_env: PROD_TOKEN
    page_size: 50
    poll_interval: 5s
    poll_timeout: 30m
  sandbox:
    base_url: https://sandbox.api.example.com
`)

	loader := newTestLoader(t)
	cfg, err := loader.Load(dir)
	require.NoError(t, err)

	require.Len(t, cfg.Tenants, 2)
	assert.Equal(t, "prod", cfg.DefaultTenant)

	// Aliases are sorted for stable ordering.
	assert.Equal(t, "prod", cfg.Tenants[0].Name)
	assert.Equal(t, "sandbox", cfg.Tenants[1].Name)

	prod := cfg.Tenants[0]
	assert.Equal(t, "https://prod.api.example.com", prod.BaseURL)
	assert.Equal(t, "PROD_TOKEN", prod.TokenEnv)
	assert.Equal(t, 50, prod.PageSize)
	assert.Equal(t, 5*time.Second, prod.PollInterval)
	assert.Equal(t, 30*time.Minute, prod.PollTimeout)
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
tenants:
  only:
    base_url: https://only.api.example.com
`)

	loader := newTestLoader(t)
	cfg, err := loader.Load(dir)
	require.NoError(t, err)

	require.Len(t, cfg.Tenants, 1)

	tenant := cfg.Tenants[0]
	assert.Equal(t, config.DefaultTokenEnv, tenant.TokenEnv)
	assert.Equal(t, 25, tenant.PageSize)
	assert.Equal(t, 2*time.Second, tenant.PollInterval)
	assert.Equal(t, 10*time.Minute, tenant.PollTimeout)

	// A single tenant becomes the default without being named.
	assert.Equal(t, "only", cfg.DefaultTenant)
}

func TestLoad_NoDefaultWithMultipleTenants(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
tenants:
  one:
    base_url: https://one.example.com
  two:
    base_url: https://two.example.com
`)

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	loader := config.NewLoader(log)
	cfg, err := loader.Load(dir)
	require.NoError(t, err)

	assert.Empty(t, cfg.DefaultTenant)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "no tenants",
			content: "tenants: {}",
			wantErr: domain.ErrNoTenants,
		},
		{
			name: "missing base url",
			content: `
tenants:
  broken:
    token_env: TOKEN
`,
			wantErr: domain.ErrInvalidTenant,
		},
		{
			name: "invalid tenant alias",
			content: `
tenants:
  "bad alias!":
    base_url: https://x.example.com
`,
			wantErr: domain.ErrInvalidTenant,
		},
		{
			name: "negative page size",
			content: `
tenants:
  prod:
    base_url: https://x.example.com
    page_size: -1
`,
			wantErr: domain.ErrInvalidPageSize,
		},
		{
			name: "invalid poll interval",
			content: `
tenants:
  prod:
    base_url: https://x.example.com
    poll_interval: often
`,
			wantErr: domain.ErrInvalidTenant,
		},
		{
			name: "zero poll timeout",
			content: `
tenants:
  prod:
    base_url: https://x.example.com
    poll_timeout: 0s
`,
			wantErr: domain.ErrInvalidTenant,
		},
		{
			name: "unknown default tenant",
			content: `
default: missing
tenants:
  prod:
    base_url: https://x.example.com
`,
			wantErr: domain.ErrUnknownTenant,
		},
		{
			name:    "malformed yaml",
			content: "tenants: [\n",
			wantErr: domain.ErrConfigParseFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)

			loader := newTestLoader(t)
			cfg, err := loader.Load(dir)

			// zerr wraps some causes by message, so match on the sentinel text.
			require.Error(t, err)
			require.ErrorContains(t, err, tt.wantErr.Error())
			assert.Nil(t, cfg)
		})
	}
}

func TestLoad_ConfigNotFound(t *testing.T) {
	loader := newTestLoader(t)
	_, err := loader.Load(t.TempDir())

	require.ErrorContains(t, err, domain.ErrConfigNotFound.Error())
}
