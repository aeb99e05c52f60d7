package controllers

import (
	"net/http"
	"strconv"

	"reservation-system/internal/dto"
	"reservation-system/internal/services"
	apperrors "reservation-system/pkg/errors"
	"reservation-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ReservationFormController struct {
	formService services.ReservationFormServiceInterface
	logger      *zap.Logger
}

func NewReservationFormController(formService services.ReservationFormServiceInterface, logger *zap.Logger) *ReservationFormController {
	return &ReservationFormController{formService: formService, logger: logger}
}

func parseIDParam(ctx echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, apperrors.NewHttpError(
			http.StatusBadRequest,
			"invalid "+name+" parameter",
			err,
			map[string]interface{}{"param": ctx.Param(name)},
		)
	}
	return id, nil
}

func (c *ReservationFormController) CreateSession(ctx echo.Context) error {
	res, err := c.formService.Create(ctx.Request().Context())
	if err != nil {
		c.logger.Error("CreateSession: failed to create form session", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "form session created", http.StatusCreated)
}

func (c *ReservationFormController) GetSession(ctx echo.Context) error {
	res, err := c.formService.Get(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "form session fetched", http.StatusOK)
}

func (c *ReservationFormController) UpdateDraft(ctx echo.Context) error {
	var payload dto.UpdateDraftDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.formService.UpdateDraft(ctx.Request().Context(), ctx.Param("id"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "draft updated", http.StatusOK)
}

func (c *ReservationFormController) SelectVenue(ctx echo.Context) error {
	var payload dto.SelectVenueDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.formService.SelectVenue(ctx.Request().Context(), ctx.Param("id"), payload.VenueID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "venue selected", http.StatusOK)
}

func (c *ReservationFormController) ToggleVehicle(ctx echo.Context) error {
	vehicleID, err := parseIDParam(ctx, "vehicleId")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.formService.ToggleVehicle(ctx.Request().Context(), ctx.Param("id"), vehicleID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "vehicle selection toggled", http.StatusOK)
}

func (c *ReservationFormController) ToggleEquipment(ctx echo.Context) error {
	equipmentID, err := parseIDParam(ctx, "equipmentId")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.formService.ToggleEquipment(ctx.Request().Context(), ctx.Param("id"), equipmentID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "equipment selection toggled", http.StatusOK)
}

func (c *ReservationFormController) SetEquipmentQuantity(ctx echo.Context) error {
	equipmentID, err := parseIDParam(ctx, "equipmentId")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.SetEquipmentQuantityDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.formService.SetEquipmentQuantity(ctx.Request().Context(), ctx.Param("id"), equipmentID, payload.Quantity)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "equipment quantity updated", http.StatusOK)
}

func (c *ReservationFormController) Submit(ctx echo.Context) error {
	if err := c.formService.Submit(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "reservation submitted", http.StatusCreated)
}
