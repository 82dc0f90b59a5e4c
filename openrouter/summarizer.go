// Package openrouter provides a stackdigest.Summarizer backed by an
// OpenAI-compatible chat-completions endpoint.
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"stackdigest"
)

// DefaultEndpoint is the OpenRouter chat-completions endpoint.
const DefaultEndpoint = "https://openrouter.ai/api/v1/chat/completions"

// DefaultModel is used when no model is configured.
const DefaultModel = "deepseek/deepseek-r1-0528:free"

// DefaultTimeout bounds a single summarization request. Callers must not
// block indefinitely on a stalled endpoint.
const DefaultTimeout = 30 * time.Second

// systemPrompt fixes the summarization domain, target length and tone.
// The length is advisory prose, not an enforced bound.
const systemPrompt = "Summarize the provided article as a professional AI researcher, " +
	"focusing on key insights, technical advancements, and implications for the field. " +
	"Deliver a concise 200 word summary, prioritizing critical details like model " +
	"capabilities, benchmark results, architectural innovations, and governance trends. " +
	"Exclude filler words, irrelevant details, and any reference to this prompt. " +
	"Use precise, technical language suitable for an expert audience."

// maxErrorBody limits how much of an error response body is carried into
// error messages.
const maxErrorBody = 1024

// Ensure Summarizer implements stackdigest.Summarizer at compile time.
var _ stackdigest.Summarizer = (*Summarizer)(nil)

// Summarizer generates article digests via a chat-completions API.
type Summarizer struct {
	endpoint   string
	model      string
	apiKey     string
	httpClient *http.Client
}

// Option configures a Summarizer.
type Option func(*Summarizer)

// WithEndpoint overrides the completions endpoint.
func WithEndpoint(endpoint string) Option {
	return func(s *Summarizer) {
		s.endpoint = endpoint
	}
}

// WithModel overrides the completion model.
func WithModel(model string) Option {
	return func(s *Summarizer) {
		s.model = model
	}
}

// WithTimeout overrides the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *Summarizer) {
		s.httpClient.Timeout = d
	}
}

// NewSummarizer creates a new Summarizer authenticating with apiKey.
func NewSummarizer(apiKey string, opts ...Option) *Summarizer {
	s := &Summarizer{
		endpoint:   DefaultEndpoint,
		model:      DefaultModel,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
			// Some completion backends return the text in a reasoning
			// field and leave content empty.
			Reasoning string `json:"reasoning"`
		} `json:"message"`
	} `json:"choices"`
}

// Summarize sends the article text to the completion endpoint and returns
// the digest. Failure causes are distinguished by error code: EUNAVAILABLE
// for transport failures, EINTERNAL for non-2xx responses and malformed
// bodies, EUNPROCESSABLE when the response carries no usable content.
func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", stackdigest.Errorf(stackdigest.EINVALID, "article text required")
	}

	body, err := json.Marshal(chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: text},
		},
		MaxTokens:   2000,
		Temperature: 0.7,
	})
	if err != nil {
		return "", stackdigest.Errorf(stackdigest.EINTERNAL, "marshal request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", stackdigest.Errorf(stackdigest.EINTERNAL, "new request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", stackdigest.Errorf(stackdigest.EUNAVAILABLE, "summarization request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", stackdigest.Errorf(stackdigest.EINTERNAL, "summarization endpoint returned %d: %s",
			resp.StatusCode, strings.TrimSpace(string(payload)))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", stackdigest.Errorf(stackdigest.EINTERNAL, "malformed completion response: %v", err)
	}
	if len(parsed.Choices) == 0 {
		return "", stackdigest.Errorf(stackdigest.EINTERNAL, "completion response has no choices")
	}

	message := parsed.Choices[0].Message
	summary := strings.TrimSpace(message.Content)
	if summary == "" {
		summary = strings.TrimSpace(message.Reasoning)
	}
	if summary == "" {
		return "", stackdigest.Errorf(stackdigest.EUNPROCESSABLE, "completion contains no usable content")
	}

	return summary, nil
}
