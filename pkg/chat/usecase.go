package chat

import (
	"context"

	"github.com/SatyamKumarChoudhary/chat-bot/pkg/llm"
)

// Service describes the application use case for a single-turn chat reply.
type Service interface {
	Reply(ctx context.Context, prompt string) (string, error)
}

type service struct {
	llm llm.ChatModel
}

// NewService creates the default implementation.
func NewService(model llm.ChatModel) Service {
	return &service{llm: model}
}

// Reply forwards the prompt verbatim; provider errors are returned untouched.
func (s *service) Reply(ctx context.Context, prompt string) (string, error) {
	return s.llm.Generate(ctx, prompt)
}
