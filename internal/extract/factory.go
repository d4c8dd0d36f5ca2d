package extract

import (
	"fmt"

	"freightaudit/internal/config"
	"freightaudit/internal/port"
)

// ProviderFactory creates a RateCardExtractor from a provider config.
type ProviderFactory func(cfg *config.ExtractorProviderConfig) (port.RateCardExtractor, error)

// registry of extractor provider factories, populated via RegisterProvider.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers an extractor provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewExtractor creates a RateCardExtractor from a provider config using the
// registered factory.
func NewExtractor(cfg *config.ExtractorProviderConfig) (port.RateCardExtractor, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown extractor provider: %s", cfg.Provider)
	}
	return factory(cfg)
}
