package llm

import "context"

// ChatModel is a minimal abstraction for chat-based LLMs used by the
// improvement pipeline. Concrete providers stay behind this interface to
// preserve dependency direction.
type ChatModel interface {
	Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
