package rag

import (
	"context"

	"robotics-rag-be/pkg/llm"
	"robotics-rag-be/pkg/rag/prompt"
	"robotics-rag-be/pkg/vectorstore"
)

// FallbackText is returned verbatim when retrieval finds nothing.
const FallbackText = "I couldn't find any relevant information in the robotics book to answer your question."

const (
	// answerConfidence is a placeholder, not a computed metric. Deriving it
	// from retrieval scores is an open product decision.
	answerConfidence   = 0.9
	fallbackConfidence = 0.0

	excerptLimit = 200
)

// SynthesizerConfig lifts the completion parameters out of the synthesis
// logic.
type SynthesizerConfig struct {
	Model       string  // which chat model to call
	MaxTokens   int     // output cap
	Temperature float64 // sampling randomness, kept low for factual grounding
}

// Synthesizer composes the final answer from retrieved passages.
type Synthesizer struct {
	llmProvider llm.LLMProvider
	cfg         SynthesizerConfig
}

func NewSynthesizer(llmProvider llm.LLMProvider, cfg SynthesizerConfig) *Synthesizer {
	return &Synthesizer{
		llmProvider: llmProvider,
		cfg:         cfg,
	}
}

// Synthesize builds a grounding prompt from the hits and asks the completion
// model for an answer. With no hits it short-circuits to the fallback Answer
// without calling the model at all.
func (s *Synthesizer) Synthesize(ctx context.Context, query Query, hits []vectorstore.Hit) (*Answer, error) {
	if len(hits) == 0 {
		return &Answer{
			ResponseText:    FallbackText,
			ConfidenceScore: fallbackConfidence,
			Sources:         []Citation{},
		}, nil
	}

	promptText := prompt.NewGroundedBuilder(query.Text, hits).Build()

	history := []llm.Message{
		{Role: "system", Content: prompt.Persona},
		{Role: "user", Content: promptText},
	}

	responseText, err := s.llmProvider.Chat(ctx, history,
		llm.WithModel(s.cfg.Model),
		llm.WithMaxTokens(s.cfg.MaxTokens),
		llm.WithTemperature(s.cfg.Temperature),
	)
	if err != nil {
		return nil, err
	}

	return &Answer{
		ResponseText:    responseText,
		ConfidenceScore: answerConfidence,
		Sources:         buildCitations(hits),
	}, nil
}

func buildCitations(hits []vectorstore.Hit) []Citation {
	citations := make([]Citation, len(hits))
	for i, hit := range hits {
		excerpt := hit.Payload.Content
		if runes := []rune(excerpt); len(runes) > excerptLimit {
			// Character cut, not bytes, so multi-byte content stays valid
			excerpt = string(runes[:excerptLimit]) + "..."
		}
		citations[i] = Citation{
			ContentId: hit.Id,
			Title:     hit.Payload.Title,
			Section:   hit.Payload.Section,
			Excerpt:   excerpt,
		}
	}
	return citations
}
