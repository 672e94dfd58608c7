// Package session owns the temporary audio file of one user's interaction.
// At most one generated file is alive per Session: the previous one is
// removed before each new generation and the last one on Close.
package session

import (
	"context"
	"sync"

	"tts-generator/internal/tts"
	"tts-generator/internal/util"
)

// Generator produces a temporary audio file for a request.
type Generator interface {
	// Validate reports why a request would be rejected, or nil.
	Validate(text, voice, model string) *tts.Error
	GenerateSpeech(ctx context.Context, text, voice, model string) tts.Result
}

var errClosed = &tts.Error{Kind: tts.KindUnexpected, Msg: "Session is closed"}

// Session holds the current temporary audio file.
type Session struct {
	gen Generator

	// gen calls run one at a time under genMu; mu only guards the fields
	// below and is never held across a provider call.
	genMu    sync.Mutex
	inflight sync.WaitGroup

	mu      sync.Mutex
	current string
	closed  bool
}

// New creates a Session that generates audio with gen.
func New(gen Generator) *Session {
	return &Session{gen: gen}
}

// Generate discards the previous audio file and generates a new one. The
// returned Result's FilePath becomes the session's current file. A request
// rejected by validation leaves the previous file in place.
func (s *Session) Generate(ctx context.Context, text, voice, model string) tts.Result {
	s.inflight.Add(1)
	defer s.inflight.Done()
	s.genMu.Lock()
	defer s.genMu.Unlock()

	if e := s.gen.Validate(text, voice, model); e != nil {
		return e.Result()
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return errClosed.Result()
	}
	util.RemoveTempFile(s.current)
	s.current = ""
	s.mu.Unlock()

	res := s.gen.GenerateSpeech(ctx, text, voice, model)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		// Closed while the provider was working.
		util.RemoveTempFile(res.FilePath)
		return errClosed.Result()
	}
	if res.Success {
		s.current = res.FilePath
	}
	return res
}

// Current returns the path of the current audio file, or "" if there is none.
func (s *Session) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Close removes the current audio file and rejects further generations. It
// does not wait for a running generation, whose file is removed when it
// finishes. Close is safe to call more than once.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	util.RemoveTempFile(s.current)
	s.current = ""
	s.closed = true
}

// Wait blocks until no generation is running.
func (s *Session) Wait() {
	s.inflight.Wait()
}
