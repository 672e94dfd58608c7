package tts

import (
	"context"
	"time"
)

// SpeechProvider synthesizes speech with one remote TTS backend.
// Synthesize returns audio already wrapped in a playable container.
type SpeechProvider interface {
	Synthesize(ctx context.Context, req Request) ([]byte, error)

	// Name returns the provider's name (e.g. "openai", "gemini").
	Name() string
}

// InputChecker is implemented by providers that limit the size of the input
// they accept. CheckInput runs before any network call.
type InputChecker interface {
	CheckInput(text, model string) error
}

// Request is one generation request. All fields are trimmed and non-empty by
// the time a provider sees it.
type Request struct {
	Text  string `json:"text"`
	Voice string `json:"voice"`
	Model string `json:"model"`
}

// ProviderConfig holds configuration for all providers.
type ProviderConfig struct {
	OpenAIAPIKey  string
	OpenAIBaseURL string

	GeminiAPIKey  string
	GeminiBaseURL string

	// Timeout bounds each synthesis call.
	Timeout time.Duration
	// TempDir is where audio files are written; empty means os.TempDir().
	TempDir string
	// CatalogFile optionally replaces the embedded voice/model catalog.
	CatalogFile string
}

// DefaultTimeout bounds a synthesis call when none is configured.
const DefaultTimeout = 30 * time.Second
