package tts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"tts-generator/internal/logger"
	"tts-generator/internal/util"
)

// Result is the outcome of one generation. On success FilePath names a new
// temporary WAV file owned by the caller; on failure it is empty.
type Result struct {
	Success  bool
	Message  string
	FilePath string
	Kind     ErrorKind
}

const successMessage = "Audio generated successfully"

// Service validates generation requests, calls a SpeechProvider and writes
// the audio it returns to a temporary file.
type Service struct {
	provider SpeechProvider
	catalog  *ProviderCatalog
	timeout  time.Duration
	tempDir  string
	prefix   string
	log      zerolog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithCatalog sets the provider's voice/model catalog. Strict catalogs are
// enforced during validation.
func WithCatalog(pc *ProviderCatalog) Option {
	return func(s *Service) { s.catalog = pc }
}

// WithTimeout bounds each provider call.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithTempDir sets the directory audio files are written to.
func WithTempDir(dir string) Option {
	return func(s *Service) { s.tempDir = dir }
}

// NewService creates a Service around provider.
func NewService(provider SpeechProvider, opts ...Option) *Service {
	s := &Service{
		provider: provider,
		timeout:  DefaultTimeout,
		prefix:   provider.Name() + "_tts_",
		log:      logger.For("tts").With().Str("provider", provider.Name()).Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ProviderName returns the name of the underlying provider.
func (s *Service) ProviderName() string {
	return s.provider.Name()
}

// Catalog returns the provider's catalog, or nil if it has none.
func (s *Service) Catalog() *ProviderCatalog {
	return s.catalog
}

// AvailableVoices returns a copy of the catalog's voices.
func (s *Service) AvailableVoices() []VoiceDescriptor {
	return s.catalog.AvailableVoices()
}

// AvailableModels returns a copy of the catalog's models.
func (s *Service) AvailableModels() []string {
	return s.catalog.AvailableModels()
}

// GenerateSpeech synthesizes text and writes the audio to a new temporary
// file. It never returns an error: every failure becomes an unsuccessful
// Result with a displayable message.
func (s *Service) GenerateSpeech(ctx context.Context, text, voice, model string) Result {
	req, verr := s.validate(text, voice, model)
	if verr != nil {
		return verr.Result()
	}

	log := s.log.With().
		Str("request_id", uuid.NewString()).
		Str("voice", req.Voice).
		Str("model", req.Model).
		Logger()
	log.Info().Int("text_length", len([]rune(req.Text))).Msg("generating speech")

	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	audio, err := s.synthesize(ctx, req)
	if err != nil {
		e := classify(ctx, err, s.timeout)
		log.Warn().Err(err).Stringer("kind", e.Kind).Dur("elapsed", time.Since(start)).Msg("generation failed")
		return e.Result()
	}
	if len(audio) == 0 {
		log.Warn().Msg("provider returned no audio")
		return ErrNoAudioData.Result()
	}

	path, err := util.WriteTempAudio(s.tempDir, s.prefix, audio)
	if err != nil {
		log.Error().Err(err).Msg("failed to save audio")
		e := &Error{Kind: KindUnexpected, Msg: fmt.Sprintf("Generation error: %v", err), Err: err}
		return e.Result()
	}

	log.Info().
		Str("path", path).
		Int("bytes", len(audio)).
		Dur("elapsed", time.Since(start)).
		Msg("speech generated")
	return Result{Success: true, Message: successMessage, FilePath: path}
}

// Validate checks a request the way GenerateSpeech would, without calling the
// provider. It returns nil when the request would be sent.
func (s *Service) Validate(text, voice, model string) *Error {
	_, e := s.validate(text, voice, model)
	return e
}

// validate trims the inputs and checks them without any I/O.
func (s *Service) validate(text, voice, model string) (Request, *Error) {
	req := Request{
		Text:  strings.TrimSpace(text),
		Voice: strings.TrimSpace(voice),
		Model: strings.TrimSpace(model),
	}

	switch {
	case req.Text == "":
		return req, newError(KindEmptyInput, "Text input cannot be empty")
	case req.Voice == "":
		return req, newError(KindEmptyInput, "Voice cannot be empty")
	case req.Model == "":
		return req, newError(KindEmptyInput, "Model cannot be empty")
	}

	if s.catalog != nil && s.catalog.Strict {
		if !s.catalog.HasVoice(req.Voice) {
			return req, newError(KindInvalidSelection, "Invalid voice selection: %s", req.Voice)
		}
		if !s.catalog.HasModel(req.Model) {
			return req, newError(KindInvalidSelection, "Invalid model selection: %s", req.Model)
		}
	}

	if checker, ok := s.provider.(InputChecker); ok {
		if err := checker.CheckInput(req.Text, req.Model); err != nil {
			var e *Error
			if errors.As(err, &e) {
				return req, e
			}
			return req, newError(KindUnexpected, "Generation error: %v", err)
		}
	}

	return req, nil
}

// synthesize calls the provider, turning a panic into an error.
func (s *Service) synthesize(ctx context.Context, req Request) (audio []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("provider panicked: %v", r)
		}
	}()
	return s.provider.Synthesize(ctx, req)
}
