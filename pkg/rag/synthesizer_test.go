package rag

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"robotics-rag-be/internal/pkg/apperrors"
	"robotics-rag-be/pkg/llm"
	"robotics-rag-be/pkg/vectorstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeLLM struct {
	response    string
	err         error
	calls       int
	lastHistory []llm.Message
	lastOptions llm.Options
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	f.calls++
	f.lastHistory = history
	options := &llm.Options{}
	for _, opt := range opts {
		opt(options)
	}
	f.lastOptions = *options
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

func testConfig() SynthesizerConfig {
	return SynthesizerConfig{
		Model:       "gpt-3.5-turbo",
		MaxTokens:   500,
		Temperature: 0.3,
	}
}

func TestSynthesizeEmptyHitsReturnsFallback(t *testing.T) {
	provider := &fakeLLM{response: "should never be used"}
	s := NewSynthesizer(provider, testConfig())

	answer, err := s.Synthesize(context.Background(), Query{Text: "anything at all"}, nil)

	assert.NoError(t, err)
	assert.Equal(t, FallbackText, answer.ResponseText)
	assert.Equal(t, 0.0, answer.ConfidenceScore)
	assert.Empty(t, answer.Sources)
	assert.Equal(t, 0, provider.calls, "fallback must not call the model")
}

func TestSynthesizeBuildsCitationsInRetrievalOrder(t *testing.T) {
	hits := []vectorstore.Hit{
		{Id: uuid.New(), Score: 0.9, Payload: vectorstore.Payload{Title: "First", Section: "S1", Content: "short"}},
		{Id: uuid.New(), Score: 0.8, Payload: vectorstore.Payload{Title: "Second", Section: "S2", Content: strings.Repeat("y", 300)}},
	}
	provider := &fakeLLM{response: "grounded answer"}
	s := NewSynthesizer(provider, testConfig())

	answer, err := s.Synthesize(context.Background(), Query{Text: "q"}, hits)

	assert.NoError(t, err)
	assert.Equal(t, "grounded answer", answer.ResponseText)
	assert.Equal(t, 0.9, answer.ConfidenceScore)
	assert.Len(t, answer.Sources, len(hits))

	assert.Equal(t, hits[0].Id, answer.Sources[0].ContentId)
	assert.Equal(t, "First", answer.Sources[0].Title)
	assert.Equal(t, "short", answer.Sources[0].Excerpt, "short content is not ellipsised")

	assert.Equal(t, hits[1].Id, answer.Sources[1].ContentId)
	assert.Equal(t, strings.Repeat("y", 200)+"...", answer.Sources[1].Excerpt)
	assert.LessOrEqual(t, len(answer.Sources[1].Excerpt), 200+3)
}

func TestSynthesizeExcerptTruncatesOnRuneBoundary(t *testing.T) {
	// 199 single-byte chars followed by multi-byte runes. A byte-based cut at
	// 200 would split the first é and leave invalid UTF-8 in the citation.
	content := strings.Repeat("a", 199) + strings.Repeat("é", 10)
	hits := []vectorstore.Hit{
		{Id: uuid.New(), Payload: vectorstore.Payload{Title: "T", Section: "S", Content: content}},
	}
	s := NewSynthesizer(&fakeLLM{response: "ok"}, testConfig())

	answer, err := s.Synthesize(context.Background(), Query{Text: "q"}, hits)

	assert.NoError(t, err)
	excerpt := answer.Sources[0].Excerpt
	assert.True(t, utf8.ValidString(excerpt), "excerpt must stay valid UTF-8")
	assert.Equal(t, strings.Repeat("a", 199)+"é...", excerpt)
}

func TestSynthesizeSendsPersonaAndTuning(t *testing.T) {
	hits := []vectorstore.Hit{
		{Id: uuid.New(), Payload: vectorstore.Payload{Title: "T", Section: "S", Content: "body"}},
	}
	provider := &fakeLLM{response: "ok"}
	s := NewSynthesizer(provider, testConfig())

	_, err := s.Synthesize(context.Background(), Query{Text: "q"}, hits)

	assert.NoError(t, err)
	assert.Len(t, provider.lastHistory, 2)
	assert.Equal(t, "system", provider.lastHistory[0].Role)
	assert.Equal(t, "user", provider.lastHistory[1].Role)
	assert.Equal(t, 500, provider.lastOptions.MaxTokens)
	assert.Equal(t, 0.3, provider.lastOptions.Temperature)
	assert.Equal(t, "gpt-3.5-turbo", provider.lastOptions.Model)
}

func TestSynthesizePropagatesCompletionFailure(t *testing.T) {
	hits := []vectorstore.Hit{
		{Id: uuid.New(), Payload: vectorstore.Payload{Title: "T", Section: "S", Content: "body"}},
	}
	provider := &fakeLLM{err: apperrors.Upstream("openai chat", errors.New("boom"))}
	s := NewSynthesizer(provider, testConfig())

	answer, err := s.Synthesize(context.Background(), Query{Text: "q"}, hits)

	assert.Nil(t, answer)
	assert.True(t, apperrors.IsUpstreamUnavailable(err))
}
