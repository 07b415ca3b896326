package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpdateProfileRequest struct {
	Name string `json:"name" validate:"omitempty,min=1,max=100"`
}

type UserResponse struct {
	ID            uuid.UUID  `json:"id"`
	Email         string     `json:"email"`
	Name          string     `json:"name"`
	Avatar        string     `json:"avatar"`
	EmailVerified *time.Time `json:"emailVerified"`
	IsGoogleUser  bool       `json:"isGoogleUser"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type AvatarResponse struct {
	Avatar string `json:"avatar"`
}
