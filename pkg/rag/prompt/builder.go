package prompt

import (
	"strings"
)

// SystemBuilder assembles the system prompt for open-chat turns: persona,
// conduct rules, the retrieved context block, and the honesty fallback.
type SystemBuilder struct {
	context string
}

// NewSystemBuilder creates a builder around an already-assembled context
// block (may be empty when retrieval found nothing).
func NewSystemBuilder(context string) *SystemBuilder {
	return &SystemBuilder{context: context}
}

// Build renders the full system prompt.
func (b *SystemBuilder) Build() string {
	var prompt strings.Builder

	b.writePersona(&prompt)
	b.writeRules(&prompt)
	b.writeContext(&prompt)
	b.writeFallback(&prompt)

	return prompt.String()
}

func (b *SystemBuilder) writePersona(prompt *strings.Builder) {
	prompt.WriteString("You are GCC School Bot, a helpful assistant for GCC School. You help with courses and admissions.\n\n")
	prompt.WriteString("Use the following context to answer the user's question.\n\n")
}

func (b *SystemBuilder) writeRules(prompt *strings.Builder) {
	prompt.WriteString("Important Instructions:\n")
	prompt.WriteString("- Multilingual Support: Detect the language of the user's message and reply in the SAME language.\n")
	prompt.WriteString("- Moderation: If the user uses abusive, offensive, or inappropriate language, strictly warn them to be respectful and DO NOT answer their query.\n")
	prompt.WriteString("- Answer directly and professionally.\n")
	prompt.WriteString("- Do NOT use phrases like \"mentioned in the text\", \"according to the documents\", or \"as shared\".\n")
	prompt.WriteString("- Speak as if you possess this knowledge naturally.\n")
}

func (b *SystemBuilder) writeContext(prompt *strings.Builder) {
	prompt.WriteString("\nContext:\n")
	prompt.WriteString(b.context)
	prompt.WriteString("\n")
}

func (b *SystemBuilder) writeFallback(prompt *strings.Builder) {
	prompt.WriteString("\nIf the answer is not in the context, just say you don't know based on the provided information, or provide general helpful info if appropriate.\n")
}
