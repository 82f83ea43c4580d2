package prompt

import (
	"fmt"
	"strings"

	"robotics-rag-be/pkg/vectorstore"
)

// Persona is the system role message fixing the assistant's identity.
const Persona = "You are an assistant for the Physical AI & Humanoid Robotics book. " +
	"Provide accurate answers based on the book content."

// contextContentLimit caps how much of each passage is injected into the
// grounding context.
const contextContentLimit = 500

// GroundedBuilder builds the grounding prompt from retrieved passages.
type GroundedBuilder struct {
	question string
	hits     []vectorstore.Hit
}

func NewGroundedBuilder(question string, hits []vectorstore.Hit) *GroundedBuilder {
	return &GroundedBuilder{
		question: question,
		hits:     hits,
	}
}

// Build assembles the full user prompt: context block, question, and the
// instruction to admit insufficiency rather than fabricate.
func (b *GroundedBuilder) Build() string {
	var prompt strings.Builder

	prompt.WriteString("You are an assistant for the Physical AI & Humanoid Robotics book.\n")
	prompt.WriteString("Answer the user's question based on the provided context from the book.\n")
	prompt.WriteString("If the context doesn't contain enough information to answer the question,\n")
	prompt.WriteString("say so and suggest related topics from the book.\n\n")

	prompt.WriteString("Context:\n")
	prompt.WriteString(b.BuildContext())
	prompt.WriteString("\n\n")

	prompt.WriteString("Question: ")
	prompt.WriteString(b.question)
	prompt.WriteString("\n\nAnswer:")

	return prompt.String()
}

// BuildContext concatenates one block per hit in ranked order, blank-line
// separated.
func (b *GroundedBuilder) BuildContext() string {
	blocks := make([]string, len(b.hits))
	for i, hit := range b.hits {
		blocks[i] = fmt.Sprintf("Section: %s\nTitle: %s\nContent: %s...",
			hit.Payload.Section,
			hit.Payload.Title,
			truncate(hit.Payload.Content, contextContentLimit),
		)
	}
	return strings.Join(blocks, "\n\n")
}

// truncate caps text at limit characters, never splitting a rune.
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
