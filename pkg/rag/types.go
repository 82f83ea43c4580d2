package rag

import (
	"github.com/google/uuid"
)

// Query is one incoming question. Ephemeral, nothing here is persisted.
type Query struct {
	Text         string
	SelectedText *string
	Topic        *string
	SessionId    *string
}

// Citation points the reader back at a passage used for grounding.
type Citation struct {
	ContentId uuid.UUID
	Title     string
	Section   string
	Excerpt   string
}

// Answer is the synthesized response. Created fresh per query, never mutated.
type Answer struct {
	ResponseText    string
	ConfidenceScore float64
	Sources         []Citation
}
