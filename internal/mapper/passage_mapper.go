package mapper

import (
	"robotics-rag-be/internal/dto"
	"robotics-rag-be/internal/entity"
	"robotics-rag-be/pkg/rag"
	"robotics-rag-be/pkg/vectorstore"
)

type PassageMapper struct{}

func NewPassageMapper() *PassageMapper {
	return &PassageMapper{}
}

func (m *PassageMapper) ToResponse(p *entity.Passage) *dto.PassageResponse {
	return &dto.PassageResponse{
		Id:            p.Id,
		Title:         p.Title,
		Content:       p.Content,
		Section:       p.Section,
		ChapterNumber: p.ChapterNumber,
		Ordinal:       p.Ordinal,
		Metadata:      p.Metadata,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (m *PassageMapper) ToResponseList(passages []*entity.Passage) []*dto.PassageResponse {
	responses := make([]*dto.PassageResponse, len(passages))
	for i, p := range passages {
		responses[i] = m.ToResponse(p)
	}
	return responses
}

// ToPoint maps a passage and its embedding onto the indexed point shape.
func (m *PassageMapper) ToPoint(p *entity.Passage, vector []float32) vectorstore.Point {
	return vectorstore.Point{
		Id:     p.Id,
		Vector: vector,
		Payload: vectorstore.Payload{
			Title:         p.Title,
			Content:       p.Content,
			Section:       p.Section,
			ChapterNumber: p.ChapterNumber,
			Ordinal:       p.Ordinal,
			Metadata:      p.Metadata,
		},
	}
}

func ToAnswerResponse(answer *rag.Answer) *dto.AnswerResponse {
	sources := make([]dto.CitationDTO, len(answer.Sources))
	for i, c := range answer.Sources {
		sources[i] = dto.CitationDTO{
			ContentId: c.ContentId,
			Title:     c.Title,
			Section:   c.Section,
			Excerpt:   c.Excerpt,
		}
	}
	return &dto.AnswerResponse{
		ResponseText:    answer.ResponseText,
		ConfidenceScore: answer.ConfidenceScore,
		Sources:         sources,
	}
}
