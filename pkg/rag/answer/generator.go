package answer

import (
	"context"
	"log"

	"admissions-chat-be/pkg/chat"
	"admissions-chat-be/pkg/chat/reply"
	"admissions-chat-be/pkg/llm"
)

// Generator is the completion client for open-chat turns. It replays the
// transcript as alternating user/assistant turns under the given system
// prompt and absorbs provider failures into a fixed apology.
type Generator struct {
	provider llm.LLMProvider
	logger   *log.Logger
}

func NewGenerator(provider llm.LLMProvider, logger *log.Logger) *Generator {
	return &Generator{
		provider: provider,
		logger:   logger,
	}
}

// Complete returns the generated reply and whether the provider call
// succeeded. On failure the reply is the apology text; the error never
// reaches the visitor.
func (g *Generator) Complete(ctx context.Context, systemPrompt string, history []chat.Message, userMessage string) (string, bool) {
	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: chat.RoleSystem, Content: systemPrompt})

	for _, msg := range history {
		role := msg.Role
		if role != chat.RoleUser {
			role = "assistant"
		}
		messages = append(messages, llm.Message{Role: role, Content: msg.Content})
	}

	messages = append(messages, llm.Message{Role: chat.RoleUser, Content: userMessage})

	content, err := g.provider.Chat(ctx, messages)
	if err != nil {
		g.logger.Printf("[ERROR] completion failed: %v", err)
		return reply.Apology, false
	}

	return content, true
}
