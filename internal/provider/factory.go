package provider

import (
	"fmt"

	"docreview/internal/config"
	"docreview/internal/port"
)

// Factory is a function that creates a Generator from a provider config.
type Factory func(cfg *config.ProviderConfig) (port.Generator, error)

// registry of generator factories, populated explicitly via Register.
var providers = map[string]Factory{}

// Register registers a generator factory by name.
func Register(name string, factory Factory) {
	providers[name] = factory
}

// New creates a Generator from a provider config using the registered factory.
func New(cfg *config.ProviderConfig) (port.Generator, error) {
	factory, ok := providers[cfg.Name]
	if !ok {
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
	return factory(cfg)
}
