package contract

import (
	"context"

	"robotics-rag-be/internal/entity"

	"github.com/google/uuid"
)

// PassageRepository is the pluggable passage store. The in-memory
// implementation stands in for a real database; the retrieval pipeline never
// reads from it, it only feeds the vector index.
type PassageRepository interface {
	Create(ctx context.Context, passage *entity.Passage) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.Passage, error)
	FindAll(ctx context.Context) ([]*entity.Passage, error)
	Update(ctx context.Context, passage *entity.Passage) error
	Delete(ctx context.Context, id uuid.UUID) error
}
