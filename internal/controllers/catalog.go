package controllers

import (
	"net/http"
	"strconv"

	"reservation-system/internal/services"
	"reservation-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CatalogController serves the read-only reference lists every picker
// and dropdown selects from.
type CatalogController struct {
	catalogService services.CatalogServiceInterface
	logger         *zap.Logger
}

func NewCatalogController(catalogService services.CatalogServiceInterface, logger *zap.Logger) *CatalogController {
	return &CatalogController{catalogService: catalogService, logger: logger}
}

func wantsRefresh(ctx echo.Context) bool {
	refresh, _ := strconv.ParseBool(ctx.QueryParam("refresh"))
	return refresh
}

func (c *CatalogController) GetVenues(ctx echo.Context) error {
	res, err := c.catalogService.Venues(ctx.Request().Context(), wantsRefresh(ctx))
	if err != nil {
		c.logger.Error("GetVenues: failed to fetch venue list", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "venue list fetched", http.StatusOK)
}

func (c *CatalogController) GetVehicles(ctx echo.Context) error {
	res, err := c.catalogService.Vehicles(ctx.Request().Context(), wantsRefresh(ctx))
	if err != nil {
		c.logger.Error("GetVehicles: failed to fetch vehicle list", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "vehicle list fetched", http.StatusOK)
}

func (c *CatalogController) GetEquipments(ctx echo.Context) error {
	res, err := c.catalogService.Equipments(ctx.Request().Context(), wantsRefresh(ctx))
	if err != nil {
		c.logger.Error("GetEquipments: failed to fetch equipment list", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "equipment list fetched", http.StatusOK)
}

func (c *CatalogController) GetUsers(ctx echo.Context) error {
	res, err := c.catalogService.Users(ctx.Request().Context(), wantsRefresh(ctx))
	if err != nil {
		c.logger.Error("GetUsers: failed to fetch user list", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "user list fetched", http.StatusOK)
}

func (c *CatalogController) GetPersonnel(ctx echo.Context) error {
	res, err := c.catalogService.Personnel(ctx.Request().Context(), wantsRefresh(ctx))
	if err != nil {
		c.logger.Error("GetPersonnel: failed to fetch personnel list", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "personnel list fetched", http.StatusOK)
}
