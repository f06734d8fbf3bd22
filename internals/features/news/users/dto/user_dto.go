package dto

import (
	"newshub_backend/internals/features/news/users/model"
)

// ============================
// Response DTO
// ============================

type UserDTO struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// ============================
// Converter
// ============================

func ToUserDTO(m model.UserModel) UserDTO {
	return UserDTO{
		Username:  m.Username,
		Name:      m.Name,
		AvatarURL: m.AvatarURL,
	}
}

func ToUserDTOs(ms []model.UserModel) []UserDTO {
	out := make([]UserDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToUserDTO(m))
	}
	return out
}
