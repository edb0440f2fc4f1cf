// Package inference implements triage.Completer against any API that speaks
// the OpenAI chat completions wire format.
package inference

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"pulseboard/internal/application/triage"
	sharedConfig "pulseboard/internal/shared/config"
	"pulseboard/internal/shared/constants"
	"pulseboard/internal/shared/errors"
	"pulseboard/internal/shared/logger"
)

type OpenAIClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	maxTokens  int
	logger     logger.Interface
}

func NewOpenAIClient(cfg sharedConfig.AIConfig, log logger.Interface) *OpenAIClient {
	return &OpenAIClient{
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		maxTokens:  cfg.MaxTokens,
		logger:     log,
	}
}

// Complete sends one non-streaming chat completion and returns the first
// choice's text. Transport failures and non-2xx responses are UpstreamErrors.
func (c *OpenAIClient) Complete(ctx context.Context, req triage.CompletionRequest) (string, error) {
	body, err := json.Marshal(c.buildRequest(req))
	if err != nil {
		return "", fmt.Errorf("inference: marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("inference: creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Warnw("inference request failed", "model", req.Model, "error", err)
		return "", errors.NewUpstreamError(constants.ErrMsgAIUnavailable).WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		providerErr := readProviderError(resp)
		c.logger.Warnw("inference returned error status",
			"model", req.Model,
			"status", resp.StatusCode,
			"error", providerErr,
		)
		return "", errors.NewUpstreamError(constants.ErrMsgAIUnavailable).WithCause(providerErr)
	}

	var wire chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return "", errors.NewUpstreamError(constants.ErrMsgAIUnavailable).
			WithCause(fmt.Errorf("inference: decoding response: %w", err))
	}
	if len(wire.Choices) == 0 {
		return "", errors.NewUpstreamError(constants.ErrMsgAIUnavailable).
			WithCause(fmt.Errorf("inference: response has no choices"))
	}

	return wire.Choices[0].Message.Content, nil
}

func (c *OpenAIClient) buildRequest(req triage.CompletionRequest) chatRequest {
	wire := chatRequest{Model: req.Model, MaxTokens: c.maxTokens}

	if req.System != "" {
		wire.Messages = append(wire.Messages, chatMessage{Role: "system", Content: textContent(req.System)})
	}

	if len(req.Image) == 0 {
		wire.Messages = append(wire.Messages, chatMessage{Role: "user", Content: textContent(req.Prompt)})
		return wire
	}

	parts := []contentPart{
		{Type: "text", Text: req.Prompt},
		{Type: "image_url", ImageURL: &imageURL{URL: dataURL(req.Image)}},
	}
	raw, _ := json.Marshal(parts)
	wire.Messages = append(wire.Messages, chatMessage{Role: "user", Content: raw})
	return wire
}

func dataURL(image []byte) string {
	return "data:" + http.DetectContentType(image) + ";base64," + base64.StdEncoding.EncodeToString(image)
}

// ProviderError is the upstream's error body, kept as the cause of an UpstreamError.
type ProviderError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *ProviderError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("inference: HTTP %d: %s: %s", e.StatusCode, e.Type, e.Message)
	}
	return fmt.Sprintf("inference: HTTP %d: %s", e.StatusCode, e.Message)
}

func readProviderError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var wireError struct {
		Error struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(body, &wireError) == nil && wireError.Error.Message != "" {
		return &ProviderError{StatusCode: resp.StatusCode, Type: wireError.Error.Type, Message: wireError.Error.Message}
	}
	return &ProviderError{StatusCode: resp.StatusCode, Message: string(body)}
}

// textContent encodes a plain string for the polymorphic content field.
func textContent(text string) json.RawMessage {
	raw, _ := json.Marshal(text)
	return raw
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

// Content is a string or an array of parts.
type chatMessage struct {
	Role    string          `json:"role"`
	Content json.RawMessage `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}
