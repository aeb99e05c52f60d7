package controllers

import (
	"net/http"

	"reservation-system/internal/dto"
	"reservation-system/internal/services"
	"reservation-system/pkg/constants"
	apperrors "reservation-system/pkg/errors"
	"reservation-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ChecklistController struct {
	registryService services.ChecklistRegistryServiceInterface
	logger          *zap.Logger
}

func NewChecklistController(registryService services.ChecklistRegistryServiceInterface, logger *zap.Logger) *ChecklistController {
	return &ChecklistController{registryService: registryService, logger: logger}
}

func resourceKindParam(ctx echo.Context, name string) (constants.ResourceKind, error) {
	kind, err := constants.ParseResourceKind(ctx.Param(name))
	if err != nil {
		kind, err = constants.ParseResourceKind(ctx.QueryParam(name))
	}
	if err != nil {
		return "", apperrors.NewHttpError(http.StatusBadRequest, err.Error(), err, nil)
	}
	return kind, nil
}

func (c *ChecklistController) GetSummary(ctx echo.Context) error {
	res, err := c.registryService.Summary(ctx.Request().Context())
	if err != nil {
		c.logger.Error("GetSummary: failed to fetch checklist summary", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "checklist summary fetched", http.StatusOK)
}

func (c *ChecklistController) GetResources(ctx echo.Context) error {
	kind, err := resourceKindParam(ctx, "type")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.registryService.Resources(ctx.Request().Context(), kind)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "resource list fetched", http.StatusOK)
}

func (c *ChecklistController) GetItems(ctx echo.Context) error {
	kind, err := resourceKindParam(ctx, "type")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	resourceID, err := parseIDParam(ctx, "resourceId")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.registryService.Items(ctx.Request().Context(), kind, resourceID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "checklist items fetched", http.StatusOK)
}

func (c *ChecklistController) CreateBatch(ctx echo.Context) error {
	var payload dto.CreateChecklistBatchDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.registryService.BatchAdd(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("CreateBatch: failed to save master checklist", zap.Any("payload", payload), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "checklist saved", http.StatusCreated)
}

func (c *ChecklistController) UpdateItem(ctx echo.Context) error {
	itemID, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateChecklistItemDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.registryService.Rename(ctx.Request().Context(), itemID, payload.Name); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "checklist item updated", http.StatusOK)
}
