package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePassageRequest struct {
	Title         string                 `json:"title" validate:"required"`
	Content       string                 `json:"content" validate:"required"`
	Section       string                 `json:"section" validate:"required"`
	ChapterNumber int                    `json:"chapter_number" validate:"min=0"`
	Ordinal       int                    `json:"order" validate:"min=0"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
}

type UpdatePassageRequest struct {
	Id            uuid.UUID              `json:"-"`
	Title         *string                `json:"title,omitempty"`
	Content       *string                `json:"content,omitempty"`
	Section       *string                `json:"section,omitempty"`
	ChapterNumber *int                   `json:"chapter_number,omitempty"`
	Ordinal       *int                   `json:"order,omitempty"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
}

type PassageResponse struct {
	Id            uuid.UUID              `json:"id"`
	Title         string                 `json:"title"`
	Content       string                 `json:"content"`
	Section       string                 `json:"section"`
	ChapterNumber int                    `json:"chapter_number"`
	Ordinal       int                    `json:"order"`
	Metadata      map[string]interface{} `json:"metadata"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     *time.Time             `json:"updated_at"`
}
