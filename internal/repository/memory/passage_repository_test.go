package memory

import (
	"context"
	"testing"
	"time"

	"robotics-rag-be/internal/entity"
	"robotics-rag-be/internal/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func passage(chapter, ordinal int) *entity.Passage {
	return &entity.Passage{
		Id:            uuid.New(),
		Title:         "T",
		Content:       "C",
		Section:       "S",
		ChapterNumber: chapter,
		Ordinal:       ordinal,
		Metadata:      map[string]interface{}{},
		CreatedAt:     time.Now(),
	}
}

func TestCreateAndFindById(t *testing.T) {
	repo := NewPassageRepository()
	p := passage(1, 0)

	assert.NoError(t, repo.Create(context.Background(), p))

	got, err := repo.FindById(context.Background(), p.Id)
	assert.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestFindByIdMissingReturnsNil(t *testing.T) {
	repo := NewPassageRepository()

	got, err := repo.FindById(context.Background(), uuid.New())

	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestFindAllReturnsBookOrder(t *testing.T) {
	repo := NewPassageRepository()
	p21 := passage(2, 1)
	p10 := passage(1, 0)
	p20 := passage(2, 0)

	for _, p := range []*entity.Passage{p21, p10, p20} {
		assert.NoError(t, repo.Create(context.Background(), p))
	}

	got, err := repo.FindAll(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []*entity.Passage{p10, p20, p21}, got)
}

func TestUpdateMissingReturnsNotFound(t *testing.T) {
	repo := NewPassageRepository()

	err := repo.Update(context.Background(), passage(1, 0))

	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeleteRemovesEntry(t *testing.T) {
	repo := NewPassageRepository()
	p := passage(1, 0)
	assert.NoError(t, repo.Create(context.Background(), p))

	assert.NoError(t, repo.Delete(context.Background(), p.Id))

	got, err := repo.FindById(context.Background(), p.Id)
	assert.NoError(t, err)
	assert.Nil(t, got)

	assert.True(t, apperrors.IsNotFound(repo.Delete(context.Background(), p.Id)))
}
