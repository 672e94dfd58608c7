package tts

import (
	_ "embed"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// VoiceDescriptor names a voice and, where the provider documents one, its
// speaking style.
type VoiceDescriptor struct {
	Name  string `yaml:"name"`
	Style string `yaml:"style,omitempty"`
}

// String renders the descriptor the way pickers show it, e.g. "Kore (Firm)".
func (v VoiceDescriptor) String() string {
	if v.Style == "" {
		return v.Name
	}
	return fmt.Sprintf("%s (%s)", v.Name, v.Style)
}

// ProviderCatalog lists the voices and models known for one provider.
type ProviderCatalog struct {
	// Strict catalogs reject voices and models they do not list.
	Strict       bool              `yaml:"strict"`
	DefaultVoice string            `yaml:"default_voice"`
	DefaultModel string            `yaml:"default_model"`
	Models       []string          `yaml:"models"`
	Voices       []VoiceDescriptor `yaml:"voices"`
}

// Catalog maps provider names to their catalogs. It is read once at startup
// and never modified.
type Catalog map[string]*ProviderCatalog

// LoadCatalog returns the embedded catalog.
func LoadCatalog() (Catalog, error) {
	return parseCatalog(embeddedCatalog)
}

// LoadCatalogFile reads a catalog from path, or the embedded one if path is empty.
func LoadCatalogFile(path string) (Catalog, error) {
	if path == "" {
		return LoadCatalog()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return parseCatalog(data)
}

func parseCatalog(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	for name, pc := range c {
		if pc == nil {
			return nil, fmt.Errorf("catalog entry %q is empty", name)
		}
		if pc.Strict && (len(pc.Voices) == 0 || len(pc.Models) == 0) {
			return nil, fmt.Errorf("strict catalog %q needs at least one voice and one model", name)
		}
	}
	return c, nil
}

// For returns the catalog of a provider, or nil if it has none.
func (c Catalog) For(provider string) *ProviderCatalog {
	return c[provider]
}

// AvailableVoices returns a copy of the voice list.
func (pc *ProviderCatalog) AvailableVoices() []VoiceDescriptor {
	if pc == nil {
		return nil
	}
	return slices.Clone(pc.Voices)
}

// AvailableModels returns a copy of the model list.
func (pc *ProviderCatalog) AvailableModels() []string {
	if pc == nil {
		return nil
	}
	return slices.Clone(pc.Models)
}

// HasVoice reports whether name is a listed voice.
func (pc *ProviderCatalog) HasVoice(name string) bool {
	return slices.ContainsFunc(pc.Voices, func(v VoiceDescriptor) bool { return v.Name == name })
}

// HasModel reports whether name is a listed model.
func (pc *ProviderCatalog) HasModel(name string) bool {
	return slices.Contains(pc.Models, name)
}
