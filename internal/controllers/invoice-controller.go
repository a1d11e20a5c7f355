package controllers

import (
	"fmt"
	"net/http"

	"workshop-system/internal/dto"
	"workshop-system/internal/services"
	"workshop-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type InvoiceController struct {
	invoiceService services.InvoiceServiceInterface
	logger         *zap.Logger
}

func NewInvoiceController(invoiceService services.InvoiceServiceInterface, logger *zap.Logger) *InvoiceController {
	return &InvoiceController{invoiceService: invoiceService, logger: logger}
}

// GeneratePDF renders the invoice and streams it back as a download.
func (c *InvoiceController) GeneratePDF(ctx echo.Context) error {
	var payload dto.InvoiceDataDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	pdfBytes, filename, err := c.invoiceService.GenerateInvoicePDF(ctx.Request().Context(), ctx.Param("id"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, filename))
	return ctx.Blob(http.StatusOK, "application/pdf", pdfBytes)
}
