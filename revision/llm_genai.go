package revision

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"google.golang.org/genai"
)

// GenAILLM implements LLMClient with the Google Gen AI SDK.
type GenAILLM struct {
	apiKey  string
	model   string
	baseURL string
	httpc   *http.Client

	mu     sync.Mutex
	client *genai.Client
}

func NewGenAILLM(cfg LLMSettings, httpc *http.Client) *GenAILLM {
	if httpc == nil {
		httpc = &http.Client{Timeout: cfg.timeout()}
	}
	return &GenAILLM{
		apiKey:  cfg.APIKey,
		model:   cfg.model(),
		baseURL: cfg.BaseURL,
		httpc:   httpc,
	}
}

func (g *GenAILLM) Configured() bool {
	return g.apiKey != ""
}

// sdk creates the SDK client on first use so a missing key never reaches genai.NewClient.
func (g *GenAILLM) sdk(ctx context.Context) (*genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.client != nil {
		return g.client, nil
	}
	cc := &genai.ClientConfig{
		APIKey:     g.apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: g.httpc,
	}
	if g.baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: g.baseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, err
	}
	g.client = client
	return client, nil
}

func (g *GenAILLM) Complete(ctx context.Context, prompt string) (string, error) {
	if !g.Configured() {
		return "", NewConfigurationError()
	}
	client, err := g.sdk(ctx)
	if err != nil {
		return "", NewTransportError(err)
	}

	resp, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", NewUpstreamError(apiErr.Message, err)
		}
		return "", NewTransportError(err)
	}
	text := resp.Text()
	if text == "" {
		return "", NewEmptyResponseError()
	}
	return text, nil
}
