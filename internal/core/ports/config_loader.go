package ports

import "go.trai.ch/idgov/internal/core/domain"

// ConfigLoader defines the interface for loading the tenant configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration starting from the given working directory
	// and returns the parsed, validated tenant set.
	Load(cwd string) (*domain.Config, error)

	// Discover walks up from cwd to find the configuration file path.
	Discover(cwd string) (string, error)
}
