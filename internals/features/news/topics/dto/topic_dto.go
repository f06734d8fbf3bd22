package dto

import (
	"newshub_backend/internals/features/news/topics/model"
)

// ============================
// Response DTO
// ============================

type TopicDTO struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// ============================
// Converter
// ============================

func ToTopicDTO(m model.TopicModel) TopicDTO {
	return TopicDTO{
		Slug:        m.Slug,
		Description: m.Description,
	}
}

func ToTopicDTOs(ms []model.TopicModel) []TopicDTO {
	out := make([]TopicDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToTopicDTO(m))
	}
	return out
}
