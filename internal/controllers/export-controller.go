package controllers

import (
	"fmt"
	"net/http"
	"time"

	"workshop-system/internal/services"
	"workshop-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ExportController struct {
	exportService services.ExportServiceInterface
	logger        *zap.Logger
}

func NewExportController(exportService services.ExportServiceInterface, logger *zap.Logger) *ExportController {
	return &ExportController{exportService: exportService, logger: logger}
}

func (c *ExportController) GoogleSheets(ctx echo.Context) error {
	result, err := c.exportService.ExportToGoogleSheets(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, result.Message, http.StatusOK)
}

// JobsReport streams the filtered job list as an xlsx download.
func (c *ExportController) JobsReport(ctx echo.Context) error {
	username, role, err := callerIdentity(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	filter := utils.ParseJobFilterFromQuery(ctx.QueryParams())
	file, err := c.exportService.BuildJobsReport(ctx.Request().Context(), username, role, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	defer file.Close()

	filename := fmt.Sprintf("jobs_report_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, filename))
	ctx.Response().Header().Set(echo.HeaderContentType,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().WriteHeader(http.StatusOK)

	if err := file.Write(ctx.Response().Writer); err != nil {
		c.logger.Error("failed to stream report", zap.Error(err))
		return err
	}
	return nil
}
