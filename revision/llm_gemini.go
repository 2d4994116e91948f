package revision

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// GeminiLLM calls the generateContent REST endpoint directly, passing the key as a query credential.
type GeminiLLM struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

// NewGeminiLLM builds the REST backend. An empty API key is allowed; Complete then fails without a request.
func NewGeminiLLM(cfg LLMSettings, client *http.Client) *GeminiLLM {
	if client == nil {
		client = &http.Client{Timeout: cfg.timeout()}
	}
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	return &GeminiLLM{
		apiKey:  cfg.APIKey,
		model:   cfg.model(),
		baseURL: base,
		client:  client,
	}
}

func (g *GeminiLLM) Configured() bool {
	return g.apiKey != ""
}

func (g *GeminiLLM) Complete(ctx context.Context, prompt string) (string, error) {
	if !g.Configured() {
		return "", NewConfigurationError()
	}

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", NewTransportError(err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", NewTransportError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	q := req.URL.Query()
	q.Set("key", g.apiKey)
	req.URL.RawQuery = q.Encode()

	resp, err := g.client.Do(req)
	if err != nil {
		return "", NewTransportError(redactKey(err, g.apiKey))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", NewTransportError(err)
	}
	return extractGeminiText(data)
}

// extractGeminiText pulls the reply text out of a generateContent response body.
func extractGeminiText(data []byte) (string, error) {
	if !gjson.ValidBytes(data) {
		return "", NewTransportError(errors.New("malformed response body"))
	}
	text := gjson.GetBytes(data, "candidates.0.content.parts.0.text")
	if text.Type == gjson.String && text.String() != "" {
		return text.String(), nil
	}
	if apiErr := gjson.GetBytes(data, "error"); apiErr.Exists() {
		msg := apiErr.Get("message").String()
		return "", NewUpstreamError(msg, fmt.Errorf("gemini error status=%s code=%d",
			apiErr.Get("status").String(), apiErr.Get("code").Int()))
	}
	return "", NewEmptyResponseError()
}

// url.Error carries the full request URL, including the key.
func redactKey(err error, key string) error {
	if key == "" {
		return err
	}
	msg := err.Error()
	if !strings.Contains(msg, key) {
		return err
	}
	return errors.New(strings.ReplaceAll(msg, key, "REDACTED"))
}
