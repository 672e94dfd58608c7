package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/zalando/go-keyring"

	"tts-generator/internal/logger"
)

const (
	// Keychain service names, one per provider; the user is always keychainUser.
	openAIKeychainService = "TTSGenerator_OpenAI"
	geminiKeychainService = "TTSGenerator_Gemini"
	keychainUser          = "api_token"
)

// Provider names accepted by TTS_PROVIDER.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config holds configuration for all TTS providers.
type Config struct {
	// Provider selects which backend the service talks to.
	Provider string `env:"TTS_PROVIDER" envDefault:"gemini"`

	// OpenAI-compatible configuration
	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com"`

	// Gemini configuration
	GeminiAPIKey  string `env:"GEMINI_API_KEY"`
	GeminiBaseURL string `env:"GEMINI_BASE_URL"`

	RequestTimeout time.Duration `env:"TTS_REQUEST_TIMEOUT" envDefault:"30s"`
	TempDir        string        `env:"TTS_TEMP_DIR"`
	CatalogFile    string        `env:"TTS_CATALOG_FILE"`

	LogLevel  string `env:"TTS_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"TTS_LOG_FORMAT" envDefault:"console"`
}

// envFiles lists the .env files read at startup, nearest first.
func envFiles() []string {
	files := []string{".env"}
	if home, err := os.UserHomeDir(); err == nil {
		files = append(files, filepath.Join(home, ".env"))
	}
	return files
}

// LoadEnvFiles loads the .env files into the environment. A variable that is
// already set keeps its value; missing files are skipped.
func LoadEnvFiles() {
	log := logger.For("config")
	for _, path := range envFiles() {
		err := godotenv.Load(path)
		switch {
		case err == nil:
			log.Debug().Str("path", path).Msg("loaded env file")
		case !errors.Is(err, os.ErrNotExist):
			log.Warn().Err(err).Str("path", path).Msg("failed to read env file")
		}
	}
}

// LoadConfig loads configuration from environment variables and falls back to
// the keychain for missing API keys.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	switch cfg.Provider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return nil, fmt.Errorf("unknown TTS_PROVIDER %q (want %q or %q)", cfg.Provider, ProviderGemini, ProviderOpenAI)
	}
	if cfg.RequestTimeout <= 0 {
		return nil, fmt.Errorf("TTS_REQUEST_TIMEOUT must be positive, got %s", cfg.RequestTimeout)
	}

	if cfg.OpenAIAPIKey == "" {
		cfg.OpenAIAPIKey = keychainSecret(openAIKeychainService)
	}
	if cfg.GeminiAPIKey == "" {
		cfg.GeminiAPIKey = keychainSecret(geminiKeychainService)
	}

	return cfg, nil
}

// EnvVar returns the environment variable that carries the provider's API key.
func EnvVar(provider string) string {
	if provider == ProviderOpenAI {
		return "OPENAI_API_KEY"
	}
	return "GEMINI_API_KEY"
}

// SetAPIKey stores an API key for the provider in the keychain.
func SetAPIKey(provider, apiKey string) error {
	service, err := keychainService(provider)
	if err != nil {
		return err
	}
	return keyring.Set(service, keychainUser, apiKey)
}

func keychainService(provider string) (string, error) {
	switch provider {
	case ProviderOpenAI:
		return openAIKeychainService, nil
	case ProviderGemini:
		return geminiKeychainService, nil
	default:
		return "", fmt.Errorf("unknown provider %q", provider)
	}
}

// keychainSecret reads a secret from the keychain. Access problems are logged
// but never block startup.
func keychainSecret(service string) string {
	secret, err := keyring.Get(service, keychainUser)
	if err == nil {
		return secret
	}
	if !errors.Is(err, keyring.ErrNotFound) {
		log := logger.For("config")
		log.Warn().Err(err).Str("service", service).Msg("keychain access error")
	}
	return ""
}
