package dto

import (
	"github.com/google/uuid"
)

type QueryRequest struct {
	QueryText    string  `json:"query_text" validate:"required"`
	SelectedText *string `json:"selected_text,omitempty"`
	Topic        *string `json:"topic,omitempty"`
	SessionId    *string `json:"session_id,omitempty"`
}

type CitationDTO struct {
	ContentId uuid.UUID `json:"content_id"`
	Title     string    `json:"title"`
	Section   string    `json:"section"`
	Excerpt   string    `json:"excerpt"`
}

type AnswerResponse struct {
	ResponseText    string        `json:"response_text"`
	ConfidenceScore float64       `json:"confidence_score"`
	Sources         []CitationDTO `json:"sources"`
}

type TopicDTO struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type TopicsResponse struct {
	Topics []TopicDTO `json:"topics"`
}

// PublishIndexPassageMessage is the payload published when a passage needs
// (re-)indexing into the vector collection.
type PublishIndexPassageMessage struct {
	PassageId uuid.UUID `json:"passage_id"`
}
