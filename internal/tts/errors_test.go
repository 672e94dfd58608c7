package tts

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestClassify(t *testing.T) {
	refused := &url.Error{Op: "Post", URL: "http://127.0.0.1:1", Err: &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}}

	tests := []struct {
		name string
		err  error
		kind ErrorKind
	}{
		{"typed error passes through", NewProviderError(500, "x"), KindProviderError},
		{"wrapped typed error", fmt.Errorf("outer: %w", ErrNoAudioData), KindNoAudioData},
		{"deadline", fmt.Errorf("HTTP request failed: %w", context.DeadlineExceeded), KindTimeout},
		{"net timeout", &url.Error{Op: "Post", URL: "u", Err: timeoutErr{}}, KindTimeout},
		{"connection refused", refused, KindConnectionFailure},
		{"dns", &net.DNSError{Err: "no such host", Name: "api.invalid"}, KindConnectionFailure},
		{"other", errors.New("weird"), KindUnexpected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := classify(context.Background(), tt.err, 30*time.Second)
			assert.Equal(t, tt.kind, e.Kind)
			assert.NotEmpty(t, e.Msg)
		})
	}
}

func TestClassify_ExpiredContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	e := classify(ctx, errors.New("request aborted"), 30*time.Second)
	assert.Equal(t, KindTimeout, e.Kind)
	assert.Equal(t, "Request timed out after 30s", e.Msg)
}

func TestNewProviderError(t *testing.T) {
	e := NewProviderError(502, "  bad gateway \n")
	assert.Equal(t, "API error (status 502): bad gateway", e.Error())
	assert.Equal(t, "bad gateway", e.Body)

	assert.Equal(t, "API error (status 500)", NewProviderError(500, "").Error())
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root")
	e := &Error{Kind: KindUnexpected, Msg: "x", Err: cause}
	assert.ErrorIs(t, e, cause)
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "timeout", KindTimeout.String())
	assert.Equal(t, "missing_credential", KindMissingCredential.String())
	assert.Equal(t, "kind(99)", ErrorKind(99).String())
}
