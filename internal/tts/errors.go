package tts

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"
)

// ErrorKind classifies why a generation failed.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindEmptyInput
	KindInvalidSelection
	KindInputTooLong
	KindMissingCredential
	KindNoAudioData
	KindProviderError
	KindTimeout
	KindConnectionFailure
	KindUnexpected
)

var kindNames = map[ErrorKind]string{
	KindNone:              "none",
	KindEmptyInput:        "empty_input",
	KindInvalidSelection:  "invalid_selection",
	KindInputTooLong:      "input_too_long",
	KindMissingCredential: "missing_credential",
	KindNoAudioData:       "no_audio_data",
	KindProviderError:     "provider_error",
	KindTimeout:           "timeout",
	KindConnectionFailure: "connection_failure",
	KindUnexpected:        "unexpected_error",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is a classified generation failure. Its message is meant for display.
type Error struct {
	Kind ErrorKind

	// Status and Body are set for KindProviderError.
	Status int
	Body   string

	Msg string
	Err error
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Result converts e into an unsuccessful generation Result.
func (e *Error) Result() Result {
	return Result{Success: false, Message: e.Msg, Kind: e.Kind}
}

// ErrNoAudioData is returned by providers whose response carried no audio.
var ErrNoAudioData = &Error{Kind: KindNoAudioData, Msg: "No audio data received from API"}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// NewProviderError builds a KindProviderError from an HTTP status and body.
func NewProviderError(status int, body string) *Error {
	body = strings.TrimSpace(body)
	msg := fmt.Sprintf("API error (status %d)", status)
	if body != "" {
		msg += ": " + body
	}
	return &Error{Kind: KindProviderError, Status: status, Body: body, Msg: msg}
}

// MissingCredentialError reports that no API key was configured for a provider.
func MissingCredentialError(provider, envVar string) *Error {
	return newError(KindMissingCredential,
		"%s not found in environment variables or keychain; set it to use the %s provider", envVar, provider)
}

// classify maps an error from a provider call onto the error taxonomy.
// timeout is only used to phrase the message.
func classify(ctx context.Context, err error, timeout time.Duration) *Error {
	var tErr *Error
	if errors.As(err, &tErr) {
		return tErr
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &Error{Kind: KindTimeout, Msg: fmt.Sprintf("Request timed out after %s", timeout), Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &Error{Kind: KindTimeout, Msg: fmt.Sprintf("Request timed out after %s", timeout), Err: err}
	}

	var opErr *net.OpError
	var dnsErr *net.DNSError
	var urlErr *url.Error
	if errors.As(err, &opErr) || errors.As(err, &dnsErr) || errors.As(err, &urlErr) {
		return &Error{Kind: KindConnectionFailure, Msg: fmt.Sprintf("Connection failed: %v", rootCause(err)), Err: err}
	}

	return &Error{Kind: KindUnexpected, Msg: fmt.Sprintf("Generation error: %v", err), Err: err}
}

func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
