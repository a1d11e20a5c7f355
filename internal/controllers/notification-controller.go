package controllers

import (
	"net/http"

	"workshop-system/internal/dto"
	"workshop-system/internal/services"
	"workshop-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type NotificationController struct {
	notificationService services.NotificationServiceInterface
	logger              *zap.Logger
}

func NewNotificationController(notificationService services.NotificationServiceInterface, logger *zap.Logger) *NotificationController {
	return &NotificationController{notificationService: notificationService, logger: logger}
}

func (c *NotificationController) SendWhatsApp(ctx echo.Context) error {
	var payload dto.WhatsAppRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	result, err := c.notificationService.SendWhatsApp(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, result.Message, http.StatusOK)
}

type emailInvoiceRequest struct {
	JobID string `json:"job_id" validate:"required,uuid4"`
}

func (c *NotificationController) SendInvoiceEmail(ctx echo.Context) error {
	var payload emailInvoiceRequest
	if jobID := ctx.QueryParam("job_id"); jobID != "" {
		payload.JobID = jobID
	} else if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	result, err := c.notificationService.SendInvoiceEmail(ctx.Request().Context(), payload.JobID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, result.Message, http.StatusOK)
}
