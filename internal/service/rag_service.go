package service

import (
	"context"
	"fmt"
	"strings"

	"robotics-rag-be/internal/config"
	"robotics-rag-be/internal/entity"
	"robotics-rag-be/internal/mapper"
	"robotics-rag-be/internal/pkg/logger"
	"robotics-rag-be/pkg/embedding"
	"robotics-rag-be/pkg/rag"
	"robotics-rag-be/pkg/vectorstore"

	"github.com/google/uuid"
)

// IRagService is the top-level entry point for answering questions against
// the book, plus the lifecycle of the vector collection backing it.
type IRagService interface {
	InitializeCollection(ctx context.Context) error
	AnswerQuestion(ctx context.Context, queryText string, selectedText *string) (*rag.Answer, error)
	IndexPassage(ctx context.Context, passage *entity.Passage) error
	RemovePassage(ctx context.Context, id uuid.UUID) error
}

type ragService struct {
	retriever   *rag.Retriever
	synthesizer *rag.Synthesizer
	embedder    embedding.Provider
	store       vectorstore.Store
	mapper      *mapper.PassageMapper
	cfg         config.RagConfig
	sysLogger   logger.ILogger
}

func NewRagService(
	retriever *rag.Retriever,
	synthesizer *rag.Synthesizer,
	embedder embedding.Provider,
	store vectorstore.Store,
	cfg config.RagConfig,
	sysLogger logger.ILogger,
) IRagService {
	return &ragService{
		retriever:   retriever,
		synthesizer: synthesizer,
		embedder:    embedder,
		store:       store,
		mapper:      mapper.NewPassageMapper(),
		cfg:         cfg,
		sysLogger:   sysLogger,
	}
}

// InitializeCollection makes sure the vector collection exists. Safe to call
// on every startup.
func (s *ragService) InitializeCollection(ctx context.Context) error {
	return s.store.EnsureCollection(ctx, vectorstore.CollectionSpec{
		Name:       s.cfg.Collection,
		Dimensions: s.cfg.EmbeddingDimensions,
		Distance:   vectorstore.DistanceCosine,
	})
}

// AnswerQuestion retrieves relevant passages and synthesizes an answer. When
// selected text is present the retrieval query is rewritten around it; the
// trailing question is lowercased, the selection kept verbatim. The exact
// join format is load-bearing for downstream compatibility.
func (s *ragService) AnswerQuestion(ctx context.Context, queryText string, selectedText *string) (*rag.Answer, error) {
	fullQuery := queryText
	if selectedText != nil && *selectedText != "" {
		fullQuery = fmt.Sprintf("Regarding this text: '%s', %s", *selectedText, strings.ToLower(queryText))
	}

	hits, err := s.retriever.Retrieve(ctx, fullQuery, s.cfg.TopK)
	if err != nil {
		return nil, err
	}

	answer, err := s.synthesizer.Synthesize(ctx, rag.Query{Text: fullQuery, SelectedText: selectedText}, hits)
	if err != nil {
		return nil, err
	}

	s.sysLogger.Info("rag", "Answered question", map[string]interface{}{
		"hits":       len(hits),
		"confidence": answer.ConfidenceScore,
	})

	return answer, nil
}

// IndexPassage embeds the passage content and upserts one point keyed by the
// passage id, overwriting any previous version.
func (s *ragService) IndexPassage(ctx context.Context, passage *entity.Passage) error {
	vector, err := s.embedder.Generate(ctx, passage.Content)
	if err != nil {
		return err
	}

	point := s.mapper.ToPoint(passage, vector)
	return s.store.Upsert(ctx, s.cfg.Collection, []vectorstore.Point{point})
}

func (s *ragService) RemovePassage(ctx context.Context, id uuid.UUID) error {
	return s.store.Delete(ctx, s.cfg.Collection, id)
}
