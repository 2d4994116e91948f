package revision

import (
	"context"
	"time"
)

// LLMClient abstracts the generative-language backend so it can be swapped or mocked.
type LLMClient interface {
	// Complete sends prompt as the sole content and returns the reply text.
	// Failures are *Error values of kind Configuration, Transport, Upstream or EmptyResponse.
	Complete(ctx context.Context, prompt string) (string, error)
	// Configured reports whether a credential is available.
	Configured() bool
}

// LLMSettings is the configuration shared by the concrete backends.
type LLMSettings struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
	Timeout  time.Duration
}

const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout = 60 * time.Second
)

func (s LLMSettings) model() string {
	if s.Model == "" {
		return DefaultModel
	}
	return s.Model
}

func (s LLMSettings) timeout() time.Duration {
	if s.Timeout <= 0 {
		return DefaultTimeout
	}
	return s.Timeout
}
