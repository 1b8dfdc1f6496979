package llm

import "context"

// ChatModel is a minimal abstraction for text-generation LLMs used by the domain.
// It hides the concrete provider to preserve dependency direction.
type ChatModel interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
