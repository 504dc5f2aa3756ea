package chat

import (
	"context"
	"fmt"
	"log/slog"

	"skycast/internal/apperr"
	"skycast/internal/config"
	"skycast/internal/providers/openai"
)

// systemPrompt is injected server side as the first turn of every request.
const systemPrompt = "You are a helpful weather assistant. You help users understand weather data, provide weather-related advice, and answer questions about weather conditions. Be friendly, concise, and informative."

const (
	completionModel       = "gpt-3.5-turbo"
	completionTemperature = 0.7
	completionMaxTokens   = 500
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one conversation turn as exchanged with the UI.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionProvider defines the interface for chat completion providers
type CompletionProvider interface {
	CreateChatCompletion(ctx context.Context, req *openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error)
}

// Service forwards conversation turns to the completion provider. No
// conversation state is kept server side; the UI sends the full history.
type Service interface {
	Complete(ctx context.Context, turns []Message) (Message, error)
}

type chatService struct {
	provider CompletionProvider
	logger   *slog.Logger
}

// NewChatService creates a chat service backed by the real completion provider.
func NewChatService(cfg *config.Config, logger *slog.Logger) Service {
	provider := openai.NewClient(cfg.NewHTTPClient(), cfg.Providers.OpenAIAPIKey, logger)
	return NewChatServiceWithProvider(provider, logger)
}

// NewChatServiceWithProvider creates a chat service with a custom provider.
// This is useful for testing with mock providers.
func NewChatServiceWithProvider(provider CompletionProvider, logger *slog.Logger) Service {
	return &chatService{
		provider: provider,
		logger:   logger.With("component", "chat-service"),
	}
}

func (s *chatService) Complete(ctx context.Context, turns []Message) (Message, error) {
	if len(turns) == 0 {
		return Message{}, apperr.Validation("at least one message is required")
	}

	messages := make([]openai.Message, 0, len(turns)+1)
	messages = append(messages, openai.Message{Role: RoleSystem, Content: systemPrompt})
	for _, turn := range turns {
		if turn.Role != RoleUser && turn.Role != RoleAssistant {
			return Message{}, apperr.Validation("unsupported message role %q", turn.Role)
		}
		if turn.Content == "" {
			return Message{}, apperr.Validation("message content must not be empty")
		}
		messages = append(messages, openai.Message{Role: turn.Role, Content: turn.Content})
	}

	resp, err := s.provider.CreateChatCompletion(ctx, &openai.ChatCompletionRequest{
		Model:       completionModel,
		Messages:    messages,
		Temperature: completionTemperature,
		MaxTokens:   completionMaxTokens,
	})
	if err != nil {
		s.logger.Error("chat completion failed", "error", err)
		return Message{}, fmt.Errorf("failed to complete chat: %w", err)
	}

	if len(resp.Choices) == 0 {
		return Message{}, apperr.Malformed("openai", "response contains no choices")
	}

	answer := resp.Choices[0].Message
	return Message{Role: answer.Role, Content: answer.Content}, nil
}
