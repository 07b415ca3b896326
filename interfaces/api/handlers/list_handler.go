package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tasklist-api/domain/dto"
	"tasklist-api/domain/services"
	"tasklist-api/pkg/logger"
	"tasklist-api/pkg/utils"
)

type ListHandler struct {
	listService services.ListService
}

func NewListHandler(listService services.ListService) *ListHandler {
	return &ListHandler{
		listService: listService,
	}
}

func (h *ListHandler) CreateList(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		logger.WarnContext(ctx, "Unauthorized access attempt")
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.CreateListRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	list, err := h.listService.CreateList(ctx, user.ID, &req)
	if err != nil {
		logger.ErrorContext(ctx, "List creation failed", "user_id", user.ID, "error", err)
		return serviceErrorResponse(c, err)
	}

	logger.InfoContext(ctx, "List created", "list_id", list.ID, "user_id", user.ID)

	return utils.CreatedResponse(c, dto.ListToListResponse(list))
}

func (h *ListHandler) GetLists(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	lists, err := h.listService.GetUserLists(ctx, user.ID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.ListsToListResponses(lists))
}

func (h *ListHandler) GetList(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	listID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid list ID")
	}

	list, err := h.listService.GetList(ctx, user.ID, listID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.ListToListResponse(list))
}

func (h *ListHandler) DeleteList(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	listID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid list ID")
	}

	if err := h.listService.DeleteList(ctx, user.ID, listID); err != nil {
		logger.WarnContext(ctx, "List deletion failed", "list_id", listID, "error", err)
		return serviceErrorResponse(c, err)
	}

	logger.InfoContext(ctx, "List deleted", "list_id", listID, "user_id", user.ID)

	return utils.NoContentResponse(c)
}

// GetListTasks คืน task ของ list แยกเป็น pending/completed ตาม sort ที่เลือก
func (h *ListHandler) GetListTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	listID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid list ID")
	}

	var query dto.ListTasksQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	if err := utils.ValidateStruct(&query); err != nil {
		errors := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, errors)
	}

	pending, completed, err := h.listService.GetListTasks(ctx, user.ID, listID, query.SortBy, query.Order)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.ListTasksResponse{
		Pending:   dto.TasksToTaskResponses(pending),
		Completed: dto.TasksToTaskResponses(completed),
	})
}
