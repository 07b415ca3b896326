package handlers

import (
	"github.com/gofiber/fiber/v2"

	"tasklist-api/domain/dto"
	"tasklist-api/domain/services"
	"tasklist-api/pkg/logger"
	"tasklist-api/pkg/utils"
)

type UserHandler struct {
	userService   services.UserService
	maxAvatarSize int64
}

func NewUserHandler(userService services.UserService, maxAvatarSize int64) *UserHandler {
	return &UserHandler{
		userService:   userService,
		maxAvatarSize: maxAvatarSize,
	}
}

func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	profile, err := h.userService.GetUser(ctx, user.ID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(profile))
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, errors)
	}

	profile, err := h.userService.UpdateProfile(ctx, user.ID, &req)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	logger.InfoContext(ctx, "Profile updated", "user_id", user.ID)

	return utils.SuccessResponse(c, dto.UserToUserResponse(profile))
}

// UploadAvatar รับ multipart file แล้วเก็บใน object storage
func (h *UserHandler) UploadAvatar(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return utils.BadRequestResponse(c, "Missing avatar file")
	}

	if h.maxAvatarSize > 0 && fileHeader.Size > h.maxAvatarSize {
		return utils.BadRequestResponse(c, "Avatar file too large")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !isImageContentType(contentType) {
		return utils.BadRequestResponse(c, "Avatar must be an image")
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.ErrorContext(ctx, "Failed to open uploaded file", "error", err)
		return utils.InternalServerErrorResponse(c)
	}
	defer file.Close()

	profile, err := h.userService.UploadAvatar(ctx, user.ID, file, fileHeader.Size, contentType)
	if err != nil {
		logger.ErrorContext(ctx, "Avatar upload failed", "user_id", user.ID, "error", err)
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.AvatarResponse{Avatar: profile.Avatar})
}

func isImageContentType(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/png", "image/webp", "image/gif":
		return true
	}
	return false
}
