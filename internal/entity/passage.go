package entity

import (
	"time"

	"github.com/google/uuid"
)

// Passage is one unit of book content, the retrieval unit of the system.
type Passage struct {
	Id            uuid.UUID
	Title         string
	Content       string
	Section       string
	ChapterNumber int
	Ordinal       int
	Metadata      map[string]interface{}
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
