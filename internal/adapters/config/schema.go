package config

// File represents the structure of the idgov.yaml configuration file.
type File struct {
	Version string                `yaml:"version"`
	Default string                `yaml:"default"`
	Tenants map[string]*TenantDTO `yaml:"tenants"`
}

// TenantDTO represents a tenant entry in the configuration.
type TenantDTO struct {
	BaseURL      string `yaml:"base_url"`
	TokenEnv     string `yaml:"token_env"`
	PageSize     int    `yaml:"page_size"`
	PollInterval string `yaml:"poll_interval"`
	PollTimeout  string `yaml:"poll_timeout"`
}
