package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"robotics-rag-be/internal/dto"
	"robotics-rag-be/internal/pkg/apperrors"
	"robotics-rag-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeContentService struct {
	passages  map[uuid.UUID]*dto.PassageResponse
	deleted   []uuid.UUID
	createErr error
}

func newFakeContentService() *fakeContentService {
	return &fakeContentService{passages: map[uuid.UUID]*dto.PassageResponse{}}
}

func (f *fakeContentService) Create(ctx context.Context, req *dto.CreatePassageRequest) (*dto.PassageResponse, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	res := &dto.PassageResponse{
		Id:            uuid.New(),
		Title:         req.Title,
		Content:       req.Content,
		Section:       req.Section,
		ChapterNumber: req.ChapterNumber,
		Ordinal:       req.Ordinal,
		Metadata:      req.Metadata,
		CreatedAt:     time.Now(),
	}
	f.passages[res.Id] = res
	return res, nil
}

func (f *fakeContentService) Show(ctx context.Context, id uuid.UUID) (*dto.PassageResponse, error) {
	res, ok := f.passages[id]
	if !ok {
		return nil, fmt.Errorf("passage %s: %w", id, apperrors.ErrNotFound)
	}
	return res, nil
}

func (f *fakeContentService) List(ctx context.Context) ([]*dto.PassageResponse, error) {
	out := make([]*dto.PassageResponse, 0, len(f.passages))
	for _, p := range f.passages {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeContentService) Update(ctx context.Context, req *dto.UpdatePassageRequest) (*dto.PassageResponse, error) {
	res, ok := f.passages[req.Id]
	if !ok {
		return nil, fmt.Errorf("passage %s: %w", req.Id, apperrors.ErrNotFound)
	}
	if req.Title != nil {
		res.Title = *req.Title
	}
	return res, nil
}

func (f *fakeContentService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.passages[id]; !ok {
		return fmt.Errorf("passage %s: %w", id, apperrors.ErrNotFound)
	}
	delete(f.passages, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func newContentTestApp(svc *fakeContentService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(nopLogger{}))
	api := app.Group("/api/v1")
	NewContentController(svc).RegisterRoutes(api)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*serverutils.Response, int) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)

	var envelope serverutils.Response
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return &envelope, resp.StatusCode
}

func TestCreateContent(t *testing.T) {
	svc := newFakeContentService()
	app := newContentTestApp(svc)

	envelope, status := doJSON(t, app, "POST", "/api/v1/robotics/content", dto.CreatePassageRequest{
		Title:         "ROS 2 Basics",
		Content:       "ROS 2 nodes communicate via topics.",
		Section:       "Chapter 1",
		ChapterNumber: 1,
		Ordinal:       1,
	})

	assert.Equal(t, fiber.StatusCreated, status)
	assert.True(t, envelope.Success)
	assert.Len(t, svc.passages, 1)
}

func TestCreateContentMissingFieldsIsBadRequest(t *testing.T) {
	svc := newFakeContentService()
	app := newContentTestApp(svc)

	envelope, status := doJSON(t, app, "POST", "/api/v1/robotics/content", map[string]string{
		"title": "only a title",
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, envelope.Success)
	assert.Empty(t, svc.passages)
}

func TestShowContentNotFound(t *testing.T) {
	app := newContentTestApp(newFakeContentService())

	envelope, status := doJSON(t, app, "GET", "/api/v1/robotics/content/"+uuid.NewString(), nil)

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Content not found", envelope.Message)
}

func TestShowContentInvalidIdIsBadRequest(t *testing.T) {
	app := newContentTestApp(newFakeContentService())

	_, status := doJSON(t, app, "GET", "/api/v1/robotics/content/not-a-uuid", nil)

	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestUpdateContent(t *testing.T) {
	svc := newFakeContentService()
	created, err := svc.Create(context.Background(), &dto.CreatePassageRequest{
		Title: "Old", Content: "c", Section: "s",
	})
	assert.NoError(t, err)
	app := newContentTestApp(svc)

	title := "New title"
	_, status := doJSON(t, app, "PUT", "/api/v1/robotics/content/"+created.Id.String(), dto.UpdatePassageRequest{
		Title: &title,
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "New title", svc.passages[created.Id].Title)
}

func TestDeleteContent(t *testing.T) {
	svc := newFakeContentService()
	created, err := svc.Create(context.Background(), &dto.CreatePassageRequest{
		Title: "t", Content: "c", Section: "s",
	})
	assert.NoError(t, err)
	app := newContentTestApp(svc)

	_, status := doJSON(t, app, "DELETE", "/api/v1/robotics/content/"+created.Id.String(), nil)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []uuid.UUID{created.Id}, svc.deleted)
	assert.Empty(t, svc.passages)
}
