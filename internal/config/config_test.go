package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TTS_PROVIDER", "OPENAI_API_KEY", "OPENAI_BASE_URL", "GEMINI_API_KEY",
		"GEMINI_BASE_URL", "TTS_REQUEST_TIMEOUT", "TTS_TEMP_DIR", "TTS_CATALOG_FILE",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	keyring.MockInit()
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "https://api.openai.com", cfg.OpenAIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Empty(t, cfg.GeminiAPIKey)
	assert.Empty(t, cfg.OpenAIAPIKey)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	keyring.MockInit()
	clearEnv(t)
	t.Setenv("TTS_PROVIDER", " OpenAI ")
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("TTS_REQUEST_TIMEOUT", "5s")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "sk-env", cfg.OpenAIAPIKey)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_KeychainFallback(t *testing.T) {
	keyring.MockInit()
	clearEnv(t)
	require.NoError(t, SetAPIKey(ProviderGemini, "gm-keychain"))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "gm-keychain", cfg.GeminiAPIKey)
	assert.Empty(t, cfg.OpenAIAPIKey)
}

func TestLoadConfig_EnvironmentWinsOverKeychain(t *testing.T) {
	keyring.MockInit()
	clearEnv(t)
	require.NoError(t, SetAPIKey(ProviderOpenAI, "sk-keychain"))
	t.Setenv("OPENAI_API_KEY", "sk-env")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "sk-env", cfg.OpenAIAPIKey)
}

func TestLoadConfig_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown provider", "TTS_PROVIDER", "polly"},
		{"negative timeout", "TTS_REQUEST_TIMEOUT", "-1s"},
		{"unparsable timeout", "TTS_REQUEST_TIMEOUT", "soon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keyring.MockInit()
			clearEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestSetAPIKey_UnknownProvider(t *testing.T) {
	keyring.MockInit()
	assert.Error(t, SetAPIKey("polly", "x"))
}

func TestEnvVar(t *testing.T) {
	assert.Equal(t, "OPENAI_API_KEY", EnvVar(ProviderOpenAI))
	assert.Equal(t, "GEMINI_API_KEY", EnvVar(ProviderGemini))
}

func TestLoadEnvFiles(t *testing.T) {
	keyring.MockInit()
	clearEnv(t)
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	require.NoError(t, os.WriteFile(filepath.Join(work, ".env"),
		[]byte("TTS_PROVIDER=openai\nOPENAI_API_KEY=sk-local\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".env"),
		[]byte("OPENAI_API_KEY=sk-home\nTTS_TEMP_DIR=/tmp/tts\n"), 0o600))
	t.Setenv("TTS_REQUEST_TIMEOUT", "7s")

	LoadEnvFiles()
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "sk-local", cfg.OpenAIAPIKey, "nearest file wins")
	assert.Equal(t, "/tmp/tts", cfg.TempDir)
	assert.Equal(t, 7*time.Second, cfg.RequestTimeout, "environment wins over files")
}

func TestLoadEnvFiles_NoFiles(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	assert.NotPanics(t, LoadEnvFiles)
}
