package revision

import (
	"context"
	"errors"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAILLM implements LLMClient against any OpenAI-compatible chat completions endpoint,
// including Gemini's OpenAI-compatible surface when BaseURL points at it.
type OpenAILLM struct {
	Model      string
	Opts       []option.RequestOption
	configured bool
}

func NewOpenAILLMFromConfig(cfg LLMSettings) *OpenAILLM {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(cfg.timeout()),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &OpenAILLM{Model: cfg.model(), Opts: opts, configured: cfg.APIKey != ""}
}

func (o *OpenAILLM) Configured() bool {
	return o.configured
}

func (o *OpenAILLM) Complete(ctx context.Context, prompt string) (string, error) {
	if !o.configured {
		return "", NewConfigurationError()
	}
	client := openai.NewClient(o.Opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(o.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{openai.UserMessage(prompt)},
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			msg := apiErr.Message
			if msg == "" {
				msg = apiErr.Error()
			}
			return "", NewUpstreamError(msg, err)
		}
		return "", NewTransportError(err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", NewEmptyResponseError()
	}
	return resp.Choices[0].Message.Content, nil
}
