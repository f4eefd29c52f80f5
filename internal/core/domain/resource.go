// Package domain contains the core domain types for idgov.
package domain

import (
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
)

// ResourceType identifies a kind of governance resource on the tenant.
type ResourceType string

const (
	// TypeSource is a connected source system (directory, HR feed, ...).
	TypeSource ResourceType = "source"
	// TypeIdentityProfile is an identity profile definition.
	TypeIdentityProfile ResourceType = "identity-profile"
	// TypeRole is a role definition.
	TypeRole ResourceType = "role"
	// TypeAccessProfile is an access profile definition.
	TypeAccessProfile ResourceType = "access-profile"
	// TypeWorkflow is a workflow definition.
	TypeWorkflow ResourceType = "workflow"
)

// ResourceTypes lists every resource type in display order.
var ResourceTypes = []ResourceType{
	TypeSource,
	TypeIdentityProfile,
	TypeRole,
	TypeAccessProfile,
	TypeWorkflow,
}

// Label returns the human-readable singular label for the resource type.
func (t ResourceType) Label() string {
	switch t {
	case TypeSource:
		return "Source"
	case TypeIdentityProfile:
		return "Identity Profile"
	case TypeRole:
		return "Role"
	case TypeAccessProfile:
		return "Access Profile"
	case TypeWorkflow:
		return "Workflow"
	default:
		return string(t)
	}
}

// Resource is a single administrable resource on the remote tenant.
type Resource struct {
	ID          string
	Name        string
	Description string
	Type        ResourceType
}

// Tenant describes one configured identity-governance tenant.
type Tenant struct {
	// Name is the operator-facing tenant alias from the configuration file.
	Name string
	// BaseURL is the API base URL of the tenant.
	BaseURL string
	// TokenEnv names the environment variable holding the API token.
	TokenEnv string
	// PageSize is the window size for paged listings.
	PageSize int
	// PollInterval is the delay between job status fetches.
	PollInterval time.Duration
	// PollTimeout bounds the total duration of one job poll loop.
	PollTimeout time.Duration
}

// Fingerprint returns a stable identifier for the tenant endpoint, used to
// scope per-session state. Two tenants with the same alias but different
// base URLs must not share a session.
func (t Tenant) Fingerprint() string {
	d := xxhash.New()
	_, _ = d.WriteString(t.Name)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(t.BaseURL)
	return strconv.FormatUint(d.Sum64(), 16)
}

// ConfigFileName is the name of the configuration file idgov looks for.
const ConfigFileName = "idgov.yaml"

// Config is the parsed idgov configuration.
type Config struct {
	Tenants []Tenant
	// DefaultTenant is the alias used when no --tenant flag is given.
	DefaultTenant string
}

// Tenant returns the tenant with the given alias.
func (c *Config) Tenant(name string) (Tenant, bool) {
	for _, t := range c.Tenants {
		if t.Name == name {
			return t, true
		}
	}
	return Tenant{}, false
}
