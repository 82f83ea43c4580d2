package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"robotics-rag-be/internal/dto"
	"robotics-rag-be/internal/entity"
	"robotics-rag-be/internal/mapper"
	"robotics-rag-be/internal/pkg/apperrors"
	"robotics-rag-be/internal/repository/contract"

	"github.com/google/uuid"
)

type IContentService interface {
	Create(ctx context.Context, req *dto.CreatePassageRequest) (*dto.PassageResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.PassageResponse, error)
	List(ctx context.Context) ([]*dto.PassageResponse, error)
	Update(ctx context.Context, req *dto.UpdatePassageRequest) (*dto.PassageResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type contentService struct {
	passageRepo      contract.PassageRepository
	publisherService IPublisherService
	ragService       IRagService
	mapper           *mapper.PassageMapper
}

func NewContentService(
	passageRepo contract.PassageRepository,
	publisherService IPublisherService,
	ragService IRagService,
) IContentService {
	return &contentService{
		passageRepo:      passageRepo,
		publisherService: publisherService,
		ragService:       ragService,
		mapper:           mapper.NewPassageMapper(),
	}
}

func (c *contentService) Create(ctx context.Context, req *dto.CreatePassageRequest) (*dto.PassageResponse, error) {
	metadata := req.Metadata
	if metadata == nil {
		metadata = map[string]interface{}{}
	}

	passage := entity.Passage{
		Id:            uuid.New(),
		Title:         req.Title,
		Content:       req.Content,
		Section:       req.Section,
		ChapterNumber: req.ChapterNumber,
		Ordinal:       req.Ordinal,
		Metadata:      metadata,
		CreatedAt:     time.Now(),
	}

	if err := c.passageRepo.Create(ctx, &passage); err != nil {
		return nil, err
	}

	if err := c.publishIndexEvent(ctx, passage.Id); err != nil {
		return nil, err
	}

	return c.mapper.ToResponse(&passage), nil
}

func (c *contentService) Show(ctx context.Context, id uuid.UUID) (*dto.PassageResponse, error) {
	passage, err := c.passageRepo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if passage == nil {
		return nil, fmt.Errorf("%w: passage %s", apperrors.ErrNotFound, id)
	}
	return c.mapper.ToResponse(passage), nil
}

func (c *contentService) List(ctx context.Context) ([]*dto.PassageResponse, error) {
	passages, err := c.passageRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return c.mapper.ToResponseList(passages), nil
}

func (c *contentService) Update(ctx context.Context, req *dto.UpdatePassageRequest) (*dto.PassageResponse, error) {
	passage, err := c.passageRepo.FindById(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	if passage == nil {
		return nil, fmt.Errorf("%w: passage %s", apperrors.ErrNotFound, req.Id)
	}

	if req.Title != nil {
		passage.Title = *req.Title
	}
	if req.Content != nil {
		passage.Content = *req.Content
	}
	if req.Section != nil {
		passage.Section = *req.Section
	}
	if req.ChapterNumber != nil {
		passage.ChapterNumber = *req.ChapterNumber
	}
	if req.Ordinal != nil {
		passage.Ordinal = *req.Ordinal
	}
	if req.Metadata != nil {
		passage.Metadata = req.Metadata
	}
	now := time.Now()
	passage.UpdatedAt = &now

	if err := c.passageRepo.Update(ctx, passage); err != nil {
		return nil, err
	}

	// Re-index so the payload copies in the vector index catch up
	if err := c.publishIndexEvent(ctx, passage.Id); err != nil {
		return nil, err
	}

	return c.mapper.ToResponse(passage), nil
}

func (c *contentService) Delete(ctx context.Context, id uuid.UUID) error {
	passage, err := c.passageRepo.FindById(ctx, id)
	if err != nil {
		return err
	}
	if passage == nil {
		return fmt.Errorf("%w: passage %s", apperrors.ErrNotFound, id)
	}

	// Drop the indexed point before the stored passage. If the index delete
	// fails the passage survives and the delete can be retried, instead of
	// leaving a stale but still searchable point behind.
	if err := c.ragService.RemovePassage(ctx, id); err != nil {
		return err
	}
	return c.passageRepo.Delete(ctx, id)
}

func (c *contentService) publishIndexEvent(ctx context.Context, passageId uuid.UUID) error {
	msgPayload := dto.PublishIndexPassageMessage{
		PassageId: passageId,
	}
	msgJson, err := json.Marshal(msgPayload)
	if err != nil {
		return err
	}
	return c.publisherService.Publish(ctx, msgJson)
}
