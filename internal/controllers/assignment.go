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

type AssignmentController struct {
	assignmentService services.AssignmentServiceInterface
	logger            *zap.Logger
}

func NewAssignmentController(assignmentService services.AssignmentServiceInterface, logger *zap.Logger) *AssignmentController {
	return &AssignmentController{assignmentService: assignmentService, logger: logger}
}

func (c *AssignmentController) GetReservations(ctx echo.Context) error {
	partition := ctx.QueryParam("status")
	if partition == "" {
		partition = services.PartitionNotAssigned
	}

	res, err := c.assignmentService.List(ctx.Request().Context(), partition)
	if err != nil {
		c.logger.Error("GetReservations: failed to fetch reservation list",
			zap.String("partition", partition), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "reservation list fetched", http.StatusOK)
}

func reservationTypeParam(ctx echo.Context) (constants.ReservationType, error) {
	typ, err := constants.ParseReservationType(ctx.QueryParam("type"))
	if err != nil {
		return "", apperrors.NewHttpError(http.StatusBadRequest, err.Error(), err, nil)
	}
	return typ, nil
}

func (c *AssignmentController) GetDetail(ctx echo.Context) error {
	reservationID, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	typ, err := reservationTypeParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.assignmentService.Detail(ctx.Request().Context(), reservationID, typ)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "reservation detail fetched", http.StatusOK)
}

func (c *AssignmentController) Assign(ctx echo.Context) error {
	reservationID, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.AssignDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.assignmentService.Assign(ctx.Request().Context(), reservationID, payload)
	if err != nil {
		c.logger.Error("Assign: assignment failed", zap.Uint64("reservation_id", reservationID), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if res.State == dto.AssignStatePendingChecklist {
		return utils.SuccessResponse(ctx, res, res.Message, http.StatusAccepted)
	}
	return utils.SuccessResponse(ctx, res, "personnel assigned", http.StatusOK)
}

func (c *AssignmentController) RetryChecklist(ctx echo.Context) error {
	reservationID, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.assignmentService.RetryChecklist(ctx.Request().Context(), reservationID); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "checklist save replayed", http.StatusOK)
}

func (c *AssignmentController) Complete(ctx echo.Context) error {
	reservationID, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.CompleteDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	typ, err := constants.ParseReservationType(payload.Type)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, err.Error(), err, nil), c.logger)
	}

	if err := c.assignmentService.Complete(ctx.Request().Context(), reservationID, typ); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "release marked as completed", http.StatusOK)
}
