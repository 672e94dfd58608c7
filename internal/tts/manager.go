package tts

import (
	"context"
	"fmt"
)

// Manager builds providers and services from one ProviderConfig.
type Manager struct {
	config  *ProviderConfig
	catalog Catalog
}

// NewManager creates a Manager. The catalog is loaded here, once.
func NewManager(config *ProviderConfig) (*Manager, error) {
	catalog, err := LoadCatalogFile(config.CatalogFile)
	if err != nil {
		return nil, err
	}
	return &Manager{config: config, catalog: catalog}, nil
}

// GetAvailableProviders returns the names of all supported providers.
func (m *Manager) GetAvailableProviders() []string {
	return []string{"gemini", "openai"}
}

// Catalog returns the loaded catalog.
func (m *Manager) Catalog() Catalog {
	return m.catalog
}

// GetProvider constructs the named provider. It fails with a
// KindMissingCredential *Error when the provider's API key is not configured.
func (m *Manager) GetProvider(ctx context.Context, name string) (SpeechProvider, error) {
	switch name {
	case "openai":
		return NewOpenAIProvider(m.config.OpenAIAPIKey, m.config.OpenAIBaseURL)
	case "gemini":
		return NewGeminiProvider(ctx, m.config.GeminiAPIKey, m.config.GeminiBaseURL)
	default:
		return nil, fmt.Errorf("provider '%s' not found", name)
	}
}

// NewService constructs the named provider and wraps it in a Service that
// uses the provider's catalog, timeout and temp dir.
func (m *Manager) NewService(ctx context.Context, name string) (*Service, error) {
	provider, err := m.GetProvider(ctx, name)
	if err != nil {
		return nil, err
	}
	return NewService(provider,
		WithCatalog(m.catalog.For(name)),
		WithTimeout(m.config.Timeout),
		WithTempDir(m.config.TempDir),
	), nil
}
