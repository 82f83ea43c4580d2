package memory

import (
	"context"
	"fmt"
	"sort"

	"robotics-rag-be/internal/entity"
	"robotics-rag-be/internal/pkg/apperrors"
	"robotics-rag-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// PassageRepository keeps passages in process memory. A stand-in for real
// persistence, entries never expire.
type PassageRepository struct {
	cache *cache.Cache
}

var _ contract.PassageRepository = &PassageRepository{}

func NewPassageRepository() *PassageRepository {
	c := cache.New(cache.NoExpiration, 0)
	return &PassageRepository{
		cache: c,
	}
}

func (r *PassageRepository) Create(ctx context.Context, passage *entity.Passage) error {
	r.cache.Set(passage.Id.String(), passage, cache.NoExpiration)
	return nil
}

func (r *PassageRepository) FindById(ctx context.Context, id uuid.UUID) (*entity.Passage, error) {
	if x, found := r.cache.Get(id.String()); found {
		return x.(*entity.Passage), nil
	}
	return nil, nil
}

func (r *PassageRepository) FindAll(ctx context.Context) ([]*entity.Passage, error) {
	items := r.cache.Items()
	passages := make([]*entity.Passage, 0, len(items))
	for _, item := range items {
		passages = append(passages, item.Object.(*entity.Passage))
	}

	// Book order: chapter first, then position within the chapter
	sort.Slice(passages, func(i, j int) bool {
		if passages[i].ChapterNumber != passages[j].ChapterNumber {
			return passages[i].ChapterNumber < passages[j].ChapterNumber
		}
		return passages[i].Ordinal < passages[j].Ordinal
	})

	return passages, nil
}

func (r *PassageRepository) Update(ctx context.Context, passage *entity.Passage) error {
	if _, found := r.cache.Get(passage.Id.String()); !found {
		return fmt.Errorf("%w: passage %s", apperrors.ErrNotFound, passage.Id)
	}
	r.cache.Set(passage.Id.String(), passage, cache.NoExpiration)
	return nil
}

func (r *PassageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, found := r.cache.Get(id.String()); !found {
		return fmt.Errorf("%w: passage %s", apperrors.ErrNotFound, id)
	}
	r.cache.Delete(id.String())
	return nil
}
