package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tasklist-api/domain/dto"
	"tasklist-api/domain/models"
	"tasklist-api/domain/ports"
	"tasklist-api/domain/repositories"
	"tasklist-api/domain/services"
	"tasklist-api/pkg/logger"
	"tasklist-api/pkg/utils"
)

const (
	googleProvider = "google"
	sessionTTL     = 7 * 24 * time.Hour
)

type UserServiceImpl struct {
	userRepo    repositories.UserRepository
	accountRepo repositories.AccountRepository
	sessionRepo repositories.SessionRepository
	cache       ports.SessionCachePort
	storage     ports.StoragePort

	jwtSecret         string
	googleClientID    string
	googleRedirectURL string
}

func NewUserService(
	userRepo repositories.UserRepository,
	accountRepo repositories.AccountRepository,
	sessionRepo repositories.SessionRepository,
	cache ports.SessionCachePort,
	storage ports.StoragePort,
	jwtSecret, googleClientID, googleRedirectURL string,
) services.UserService {
	return &UserServiceImpl{
		userRepo:          userRepo,
		accountRepo:       accountRepo,
		sessionRepo:       sessionRepo,
		cache:             cache,
		storage:           storage,
		jwtSecret:         jwtSecret,
		googleClientID:    googleClientID,
		googleRedirectURL: googleRedirectURL,
	}
}

func (s *UserServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, userID, user); err != nil {
		logger.ErrorContext(ctx, "Failed to update profile", "user_id", userID, "error", err)
		return nil, err
	}

	return user, nil
}

func (s *UserServiceImpl) UploadAvatar(ctx context.Context, userID uuid.UUID, file io.Reader, size int64, contentType string) (*models.User, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.storage == nil {
		return nil, fmt.Errorf("avatar storage is not configured")
	}

	ext := extensionForContentType(contentType)
	objectPath := path.Join("avatars", userID.String()+ext)

	avatarURL, err := s.storage.UploadFile(file, size, objectPath, contentType)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to upload avatar", "user_id", userID, "error", err)
		return nil, err
	}

	user.Avatar = avatarURL
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, userID, user); err != nil {
		logger.ErrorContext(ctx, "Failed to save avatar URL", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Avatar updated", "user_id", userID, "path", objectPath)
	return user, nil
}

func extensionForContentType(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".jpg"
	}
}

// GetGoogleOAuthURL สร้าง URL สำหรับ redirect ไป Google OAuth consent screen
func (s *UserServiceImpl) GetGoogleOAuthURL(state string) string {
	params := url.Values{}
	params.Add("client_id", s.googleClientID)
	params.Add("redirect_uri", s.googleRedirectURL)
	params.Add("response_type", "code")
	params.Add("scope", "openid email profile")
	params.Add("access_type", "offline")
	params.Add("state", state)

	return fmt.Sprintf("https://accounts.google.com/o/oauth2/v2/auth?%s", params.Encode())
}

// LoginOrRegisterWithGoogle สร้างหรือ login user จาก Google แล้วเปิด session ใหม่
func (s *UserServiceImpl) LoginOrRegisterWithGoogle(ctx context.Context, googleUser *dto.GoogleUserInfo) (string, *models.User, error) {
	user, err := s.userRepo.GetByGoogleID(ctx, googleUser.ID)
	switch {
	case err == nil:
		// user มีอยู่แล้ว - sync name/avatar จาก provider
		s.syncProfileFromGoogle(ctx, user, googleUser)

	case errors.Is(err, gorm.ErrRecordNotFound):
		user, err = s.linkOrCreateUser(ctx, googleUser)
		if err != nil {
			return "", nil, err
		}

	default:
		return "", nil, err
	}

	if err := s.upsertGoogleAccount(ctx, user, googleUser); err != nil {
		logger.ErrorContext(ctx, "Failed to record provider account", "user_id", user.ID, "error", err)
		return "", nil, err
	}

	token, err := s.openSession(ctx, user)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to open session", "user_id", user.ID, "error", err)
		return "", nil, err
	}

	logger.InfoContext(ctx, "Google auth successful", "user_id", user.ID, "email", user.Email)
	return token, user, nil
}

func (s *UserServiceImpl) syncProfileFromGoogle(ctx context.Context, user *models.User, googleUser *dto.GoogleUserInfo) {
	changed := false
	if googleUser.Name != "" && user.Name != googleUser.Name {
		user.Name = googleUser.Name
		changed = true
	}
	if googleUser.Picture != "" && user.Avatar == "" {
		user.Avatar = googleUser.Picture
		changed = true
	}
	if !changed {
		return
	}

	user.UpdatedAt = time.Now()
	if err := s.userRepo.Update(ctx, user.ID, user); err != nil {
		// sync เป็น best-effort, login ยังใช้ได้
		logger.WarnContext(ctx, "Failed to sync profile from Google", "user_id", user.ID, "error", err)
	}
}

func (s *UserServiceImpl) linkOrCreateUser(ctx context.Context, googleUser *dto.GoogleUserInfo) (*models.User, error) {
	// มี email อยู่แล้วแต่ยังไม่ได้ผูกกับ Google - ผูก Google ID ให้
	existing, err := s.userRepo.GetByEmail(ctx, googleUser.Email)
	if err == nil {
		existing.GoogleID = &googleUser.ID
		if existing.Avatar == "" && googleUser.Picture != "" {
			existing.Avatar = googleUser.Picture
		}
		existing.UpdatedAt = time.Now()
		if err := s.userRepo.Update(ctx, existing.ID, existing); err != nil {
			return nil, err
		}
		logger.InfoContext(ctx, "Google account linked", "user_id", existing.ID, "google_id", googleUser.ID)
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	now := time.Now()
	var verified *time.Time
	if googleUser.VerifiedEmail {
		verified = &now
	}

	user := &models.User{
		ID:            uuid.New(),
		GoogleID:      &googleUser.ID,
		Email:         googleUser.Email,
		Name:          googleUser.Name,
		Avatar:        googleUser.Picture,
		EmailVerified: verified,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "User registered via Google", "user_id", user.ID, "email", user.Email)
	return user, nil
}

func (s *UserServiceImpl) upsertGoogleAccount(ctx context.Context, user *models.User, googleUser *dto.GoogleUserInfo) error {
	now := time.Now()
	return s.accountRepo.Upsert(ctx, &models.Account{
		Provider:          googleProvider,
		ProviderAccountID: googleUser.ID,
		UserID:            user.ID,
		Type:              "oauth",
		Scope:             "openid email profile",
		CreatedAt:         now,
		UpdatedAt:         now,
	})
}

func (s *UserServiceImpl) openSession(ctx context.Context, user *models.User) (string, error) {
	tokenID := utils.GenerateRandomString(32)
	expires := time.Now().Add(sessionTTL)

	session := &models.Session{
		TokenID:   tokenID,
		UserID:    user.ID,
		Expires:   expires,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return "", err
	}

	if s.cache != nil {
		if err := s.cache.SetUserID(ctx, tokenID, user.ID.String(), sessionTTL); err != nil {
			logger.WarnContext(ctx, "Failed to cache session", "error", err)
		}
	}

	return utils.GenerateToken(user, tokenID, expires, s.jwtSecret)
}

// ResolveSession ตรวจว่า session ยังไม่ถูก revoke แล้วคืน user เจ้าของ session
func (s *UserServiceImpl) ResolveSession(ctx context.Context, tokenID string, userID uuid.UUID) (*models.User, error) {
	if s.cache != nil {
		cached, err := s.cache.GetUserID(ctx, tokenID)
		if err == nil && cached == userID.String() {
			return s.GetUser(ctx, userID)
		}
		// cache miss/error ใช้ DB ต่อ
	}

	session, err := s.sessionRepo.GetByTokenID(ctx, tokenID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrSessionRevoked
		}
		return nil, err
	}
	if session.UserID != userID || session.IsExpired() {
		return nil, services.ErrSessionRevoked
	}

	if s.cache != nil {
		if err := s.cache.SetUserID(ctx, tokenID, userID.String(), time.Until(session.Expires)); err != nil {
			logger.WarnContext(ctx, "Failed to cache session", "error", err)
		}
	}

	return s.GetUser(ctx, userID)
}

func (s *UserServiceImpl) Logout(ctx context.Context, tokenID string) error {
	// Delete ของ gorm ไม่ error เมื่อไม่มี row - logout ซ้ำจึง idempotent อยู่แล้ว
	if err := s.sessionRepo.Delete(ctx, tokenID); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.Delete(ctx, tokenID); err != nil {
			logger.WarnContext(ctx, "Failed to drop cached session", "token_id", truncateToken(tokenID), "error", err)
		}
	}
	logger.InfoContext(ctx, "Session revoked", "token_id", truncateToken(tokenID))
	return nil
}

func truncateToken(tokenID string) string {
	if len(tokenID) <= 8 {
		return tokenID
	}
	return tokenID[:8] + strings.Repeat("*", 4)
}
