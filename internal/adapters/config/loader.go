// Package config provides the configuration loader for idgov.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"time"

	"go.trai.ch/idgov/internal/core/domain"
	"go.trai.ch/idgov/internal/core/ports"
	"go.trai.ch/idgov/internal/engine/pager"
	"go.trai.ch/idgov/internal/engine/poll"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultTokenEnv is the environment variable consulted for the API token
// when a tenant entry does not name its own.
const DefaultTokenEnv = "IDGOV_TOKEN"

var validTenantNameRegex = regexp.MustCompile("^[a-zA-Z0-9_-]+$")

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Discover walks up from cwd looking for an idgov.yaml and returns its path.
func (l *Loader) Discover(cwd string) (string, error) {
	currentDir := cwd

	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

// Load discovers and reads the configuration file relative to cwd and
// returns the parsed domain.Config.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	configPath, err := l.Discover(cwd)
	if err != nil {
		return nil, err
	}

	var file File
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, err
	}

	if len(file.Tenants) == 0 {
		return nil, zerr.With(domain.ErrNoTenants, "path", configPath)
	}

	// Sort aliases so Tenants ordering is stable across loads.
	aliases := make([]string, 0, len(file.Tenants))
	for alias := range file.Tenants {
		aliases = append(aliases, alias)
	}
	slices.Sort(aliases)

	cfg := &domain.Config{
		Tenants: make([]domain.Tenant, 0, len(aliases)),
	}

	for _, alias := range aliases {
		tenant, err := buildTenant(alias, file.Tenants[alias])
		if err != nil {
			return nil, err
		}
		cfg.Tenants = append(cfg.Tenants, tenant)
	}

	cfg.DefaultTenant, err = resolveDefault(file.Default, cfg)
	if err != nil {
		return nil, err
	}

	if file.Default == "" && len(cfg.Tenants) > 1 {
		l.Logger.Warn(fmt.Sprintf("no default tenant set in %s, commands require --tenant", domain.ConfigFileName))
	}

	return cfg, nil
}

func buildTenant(alias string, dto *TenantDTO) (domain.Tenant, error) {
	if !validTenantNameRegex.MatchString(alias) {
		return domain.Tenant{}, zerr.With(domain.ErrInvalidTenant, "tenant", alias)
	}

	if dto == nil || dto.BaseURL == "" {
		err := zerr.With(domain.ErrInvalidTenant, "tenant", alias)
		return domain.Tenant{}, zerr.With(err, "missing", "base_url")
	}

	if dto.PageSize < 0 {
		err := zerr.With(domain.ErrInvalidPageSize, "tenant", alias)
		return domain.Tenant{}, zerr.With(err, "page_size", dto.PageSize)
	}

	pageSize := dto.PageSize
	if pageSize == 0 {
		pageSize = pager.DefaultPageSize
	}

	tokenEnv := dto.TokenEnv
	if tokenEnv == "" {
		tokenEnv = DefaultTokenEnv
	}

	interval, err := parseDuration(alias, "poll_interval", dto.PollInterval, poll.DefaultInterval)
	if err != nil {
		return domain.Tenant{}, err
	}

	timeout, err := parseDuration(alias, "poll_timeout", dto.PollTimeout, poll.DefaultTimeout)
	if err != nil {
		return domain.Tenant{}, err
	}

	return domain.Tenant{
		Name:         alias,
		BaseURL:      dto.BaseURL,
		TokenEnv:     tokenEnv,
		PageSize:     pageSize,
		PollInterval: interval,
		PollTimeout:  timeout,
	}, nil
}

func parseDuration(alias, field, value string, fallback time.Duration) (time.Duration, error) {
	if value == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		zErr := zerr.With(domain.ErrInvalidTenant, "tenant", alias)
		zErr = zerr.With(zErr, "field", field)
		return 0, zerr.With(zErr, "value", value)
	}
	return d, nil
}

func resolveDefault(configured string, cfg *domain.Config) (string, error) {
	if configured == "" {
		if len(cfg.Tenants) == 1 {
			return cfg.Tenants[0].Name, nil
		}
		return "", nil
	}

	if _, ok := cfg.Tenant(configured); !ok {
		return "", zerr.With(domain.ErrUnknownTenant, "tenant", configured)
	}
	return configured, nil
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
