package revision

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"reminder_reviser/logging"
)

// Agent turns input text and a tone into a Result through one LLM call.
type Agent struct {
	llm LLMClient
}

func NewAgent(llm LLMClient) (*Agent, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	return &Agent{llm: llm}, nil
}

// Configured reports whether the backend has a credential.
func (a *Agent) Configured() bool {
	return a.llm.Configured()
}

// RequestRevision issues exactly one call for prompt and parses the reply.
func (a *Agent) RequestRevision(ctx context.Context, prompt string) (Result, error) {
	if !a.llm.Configured() {
		return Result{}, NewConfigurationError()
	}
	raw, err := a.llm.Complete(ctx, prompt)
	if err != nil {
		var revErr *Error
		if !errors.As(err, &revErr) {
			err = NewTransportError(err)
		}
		return Result{}, err
	}
	res, err := ParseRevision(raw)
	if err != nil {
		logging.Debug("Unparseable model reply", zap.Int("length", len(raw)), zap.Error(err))
		return Result{}, err
	}
	return res, nil
}

// Revise builds the prompt for text and tone and requests the revision.
func (a *Agent) Revise(ctx context.Context, text string, tone ToneVariant) (Result, error) {
	return a.RequestRevision(ctx, BuildPrompt(text, tone))
}
