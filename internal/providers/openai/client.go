package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"skycast/internal/apperr"
)

// API Docs: https://platform.openai.com/docs/api-reference/chat
const (
	baseCompletionsURL = "https://api.openai.com/v1/chat/completions"

	providerName = "openai"
)

// Client talks to the chat-completion provider. The API key is held here,
// server side, and never reaches the UI.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

func NewClient(httpClient *http.Client, apiKey string, logger *slog.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseCompletionsURL,
		apiKey:     apiKey,
		logger:     logger.With("component", "openai-client"),
	}
}

// CreateChatCompletion forwards an ordered list of role/content turns and
// returns the provider's completion.
func (c *Client) CreateChatCompletion(ctx context.Context, chatReq *ChatCompletionRequest) (*ChatCompletionResponse, error) {
	if c.apiKey == "" {
		return nil, apperr.Validation("openai api key not configured")
	}

	payload, err := json.Marshal(chatReq)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("requesting chat completion", "model", chatReq.Model, "messages", len(chatReq.Messages))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperr.Upstream(providerName, 0, err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("chat completion returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, apperr.Upstream(providerName, resp.StatusCode, fmt.Errorf("%s", string(body)))
	}

	var apiResp ChatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, apperr.Malformed(providerName, "failed to decode response: %v", err)
	}

	return &apiResp, nil
}
