package services

import (
	"context"
	"io"

	"github.com/google/uuid"
	"tasklist-api/domain/dto"
	"tasklist-api/domain/models"
)

type UserService interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error)
	UploadAvatar(ctx context.Context, userID uuid.UUID, file io.Reader, size int64, contentType string) (*models.User, error)

	GetGoogleOAuthURL(state string) string
	// LoginOrRegisterWithGoogle upserts the user and account rows, opens a session
	// and returns a signed token for it.
	LoginOrRegisterWithGoogle(ctx context.Context, info *dto.GoogleUserInfo) (string, *models.User, error)
	// ResolveSession checks that the token's session is still live and returns its owner.
	ResolveSession(ctx context.Context, tokenID string, userID uuid.UUID) (*models.User, error)
	Logout(ctx context.Context, tokenID string) error
}
