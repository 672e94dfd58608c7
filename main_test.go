package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func setupEnv(t *testing.T) {
	t.Helper()
	keyring.MockInit()
	for _, key := range []string{
		"TTS_PROVIDER", "OPENAI_API_KEY", "OPENAI_BASE_URL", "GEMINI_API_KEY",
		"GEMINI_BASE_URL", "TTS_REQUEST_TIMEOUT", "TTS_TEMP_DIR", "TTS_CATALOG_FILE",
		"TTS_LOG_LEVEL", "TTS_LOG_FORMAT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Setenv("TTS_LOG_LEVEL", "error")
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestModelsCommand(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "", "models")
	require.NoError(t, err)
	assert.Contains(t, out, "* gemini-2.5-flash-preview-tts")
	assert.Contains(t, out, "  gemini-2.5-pro-preview-tts")
}

func TestVoicesCommand(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "", "voices", "-p", "gemini")
	require.NoError(t, err)
	assert.Contains(t, out, "Kore")
	assert.Contains(t, out, "Firm")
	assert.NotContains(t, out, "other voice names")

	out, err = execute(t, "", "voices", "--provider", "OpenAI")
	require.NoError(t, err)
	assert.Contains(t, out, "alloy")
	assert.Contains(t, out, "other voice names are accepted too")
}

func TestUnknownProviderFlag(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "", "models", "-p", "elevenlabs")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider")
}

func TestGenerateCommand_MissingCredential(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "", "generate", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration error")
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestGenerateCommand_OpenAI(t *testing.T) {
	setupEnv(t)
	audio := []byte("RIFF-fake-wav-bytes")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/audio/speech", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "audio/wav")
		_, _ = w.Write(audio)
	}))
	defer srv.Close()

	tempDir := t.TempDir()
	outPath := filepath.Join(t.TempDir(), "hello.wav")
	t.Setenv("TTS_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_BASE_URL", srv.URL)
	t.Setenv("TTS_TEMP_DIR", tempDir)

	out, err := execute(t, "", "generate", "Hello", "world", "--out", outPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Audio generated successfully")
	assert.Contains(t, out, outPath)

	saved, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, audio, saved)

	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temporary audio must be removed when the command ends")
}

func TestGenerateCommand_EmptyText(t *testing.T) {
	setupEnv(t)
	t.Setenv("GEMINI_API_KEY", "test-key")

	_, err := execute(t, "   \n", "generate", "-")
	require.Error(t, err)
	assert.Equal(t, "Text input cannot be empty", err.Error())
}

func TestKeySetCommand(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "sk-stored\n", "key", "set", "openai")
	require.NoError(t, err)
	assert.Contains(t, out, "OPENAI_API_KEY")

	secret, err := keyring.Get("TTSGenerator_OpenAI", "api_token")
	require.NoError(t, err)
	assert.Equal(t, "sk-stored", secret)

	_, err = execute(t, "", "key", "set", "gemini")
	require.Error(t, err)
}

func TestKeySetCommand_IgnoresBrokenConfig(t *testing.T) {
	setupEnv(t)
	t.Setenv("TTS_PROVIDER", "elevenlabs")
	t.Setenv("TTS_CATALOG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := execute(t, "sk-gemini\n", "key", "set", "gemini")
	require.NoError(t, err)

	secret, err := keyring.Get("TTSGenerator_Gemini", "api_token")
	require.NoError(t, err)
	assert.Equal(t, "sk-gemini", secret)
}

func TestResolveText(t *testing.T) {
	text, err := resolveText("flag text", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "flag text", text)

	_, err = resolveText("flag text", []string{"arg"}, nil)
	assert.Error(t, err)

	text, err = resolveText("", []string{"two", "words"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "two words", text)

	text, err = resolveText("", []string{"-"}, strings.NewReader("from stdin"))
	require.NoError(t, err)
	assert.Equal(t, "from stdin", text)
}
