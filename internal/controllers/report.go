package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"reservation-system/internal/entities"
	"reservation-system/internal/services"
	"reservation-system/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

func (c *ReportController) GetReleasesReport(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	filter, format := c.parseFilters(ctx)
	c.logger.Debug("release report requested", zap.Any("filter", filter), zap.String("format", format))

	data, total, err := c.reportService.CompletedReleases(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if format == "xlsx" {
		return c.respondWithXLSX(ctx, data)
	}

	return utils.SuccessResponse(ctx, data, "release report generated", http.StatusOK, total)
}

func (c *ReportController) parseFilters(ctx echo.Context) (entities.ReleaseReportFilter, string) {
	stdFilter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	filter := entities.ReleaseReportFilter{
		Page:    stdFilter.Page,
		PerPage: stdFilter.Limit,
	}
	format := strings.ToLower(ctx.QueryParam("format"))

	if format == "xlsx" {
		// export everything
		filter.Page = 1
		filter.PerPage = 0
	}

	if df := ctx.QueryParam("date_from"); df != "" {
		if t, err := time.Parse("2006-01-02", df); err == nil {
			filter.DateFrom = &t
		}
	}
	if dt := ctx.QueryParam("date_to"); dt != "" {
		if t, err := time.Parse("2006-01-02", dt); err == nil {
			filter.DateTo = &t
		}
	}

	return filter, format
}

var releaseReportHeaders = []string{
	"No.", "Reservation ID", "Type", "Resource", "Personnel", "Status", "Reserved On",
}

func releaseRowToSlice(n int, item entities.ReleaseReportItem) []interface{} {
	var createdAt string
	if !item.CreatedAt.IsZero() {
		createdAt = item.CreatedAt.Format("02.01.2006 15:04")
	}
	return []interface{}{
		n, item.ReservationID, item.Type, item.ResourceName,
		item.Personnel.String, item.Status, createdAt,
	}
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, data []entities.ReleaseReportItem) error {
	f := excelize.NewFile()
	sheet := "Completed Releases"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &releaseReportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "G1", style)

	for i, item := range data {
		row := releaseRowToSlice(i+1, item)
		cell := fmt.Sprintf("A%d", i+2)
		f.SetSheetRow(sheet, cell, &row)
	}

	fileName := fmt.Sprintf("releases_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, fileName))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().WriteHeader(http.StatusOK)

	if err := f.Write(ctx.Response().Writer); err != nil {
		c.logger.Error("failed to stream xlsx report", zap.Error(err))
		return err
	}
	return nil
}
