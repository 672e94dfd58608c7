package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"tts-generator/internal/logger"
)

const (
	defaultOpenAIBaseURL = "https://api.openai.com"
	openAISpeechPath     = "/v1/audio/speech"
)

// OpenAIProvider talks to an OpenAI-compatible /v1/audio/speech endpoint.
// The response body is the audio file itself.
type OpenAIProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

type openAISpeechRequest struct {
	Model          string `json:"model"`
	Input          string `json:"input"`
	Voice          string `json:"voice"`
	ResponseFormat string `json:"response_format"`
}

// NewOpenAIProvider creates an OpenAI TTS provider. The API key is required.
func NewOpenAIProvider(apiKey, baseURL string) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, MissingCredentialError("openai", "OPENAI_API_KEY")
	}
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}
	return &OpenAIProvider{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		log:        logger.For("openai"),
	}, nil
}

// Name returns the provider's name.
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// CheckInput rejects text longer than the model accepts.
func (p *OpenAIProvider) CheckInput(text, model string) error {
	limit := tokenLimit(model)
	if n, over := countTokens(text, limit); over {
		return newError(KindInputTooLong, "Text input is too long: about %d tokens (limit %d for %s)", n, limit, model)
	}
	return nil
}

// Synthesize posts the request and returns the WAV body verbatim.
func (p *OpenAIProvider) Synthesize(ctx context.Context, req Request) ([]byte, error) {
	body, err := json.Marshal(openAISpeechRequest{
		Model:          req.Model,
		Input:          req.Text,
		Voice:          req.Voice,
		ResponseFormat: "wav",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+openAISpeechPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, NewProviderError(resp.StatusCode, prettyBody(respBody))
	}
	if len(respBody) == 0 {
		return nil, ErrNoAudioData
	}

	p.log.Debug().
		Str("model", req.Model).
		Int("bytes", len(respBody)).
		Dur("elapsed", time.Since(start)).
		Msg("speech received")
	return respBody, nil
}

// prettyBody indents a JSON error body, or returns it unchanged.
func prettyBody(b []byte) string {
	var out bytes.Buffer
	if json.Indent(&out, b, "", "  ") == nil {
		return out.String()
	}
	return string(b)
}
