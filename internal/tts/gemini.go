package tts

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"tts-generator/internal/logger"
)

// GeminiProvider synthesizes speech with Gemini's generateContent API. The
// response carries raw PCM, which is wrapped into a WAV container.
type GeminiProvider struct {
	client *genai.Client
	format PCMFormat
	log    zerolog.Logger
}

// NewGeminiProvider creates a Gemini TTS provider. The API key is required;
// baseURL may be empty to use the public endpoint.
func NewGeminiProvider(ctx context.Context, apiKey, baseURL string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, MissingCredentialError("gemini", "GEMINI_API_KEY")
	}

	clientConfig := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{},
	}
	if baseURL != "" {
		clientConfig.HTTPOptions.BaseURL = strings.TrimRight(baseURL, "/")
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize genai client: %w", err)
	}

	return &GeminiProvider{
		client: client,
		format: DefaultPCMFormat,
		log:    logger.For("gemini"),
	}, nil
}

// Name returns the provider's name.
func (g *GeminiProvider) Name() string {
	return "gemini"
}

// Synthesize requests audio output for the text and returns it as WAV.
func (g *GeminiProvider) Synthesize(ctx context.Context, req Request) ([]byte, error) {
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
					VoiceName: req.Voice,
				},
			},
		},
	}

	start := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Text), config)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return nil, NewProviderError(apiErr.Code, apiErr.Message)
		}
		return nil, fmt.Errorf("Gemini API request failed: %w", err)
	}

	pcm := firstInlineAudio(resp)
	if len(pcm) == 0 {
		return nil, ErrNoAudioData
	}

	wav, err := EncodeWAV(pcm, g.format)
	if err != nil {
		return nil, fmt.Errorf("failed to wrap PCM audio: %w", err)
	}

	g.log.Debug().
		Str("model", req.Model).
		Int("pcm_bytes", len(pcm)).
		Dur("elapsed", time.Since(start)).
		Msg("speech received")
	return wav, nil
}

// firstInlineAudio returns the inline data of the first part of the first
// candidate. Later candidates and parts are ignored.
func firstInlineAudio(resp *genai.GenerateContentResponse) []byte {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}
	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil || len(cand.Content.Parts) == 0 {
		return nil
	}
	part := cand.Content.Parts[0]
	if part == nil || part.InlineData == nil {
		return nil
	}
	return part.InlineData.Data
}
