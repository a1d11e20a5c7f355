package controllers

import (
	"net/http"

	"workshop-system/internal/services"
	"workshop-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type StatsController struct {
	statsService services.StatsServiceInterface
	logger       *zap.Logger
}

func NewStatsController(statsService services.StatsServiceInterface, logger *zap.Logger) *StatsController {
	return &StatsController{statsService: statsService, logger: logger}
}

func (c *StatsController) Get(ctx echo.Context) error {
	username, role, err := callerIdentity(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	stats, err := c.statsService.GetStats(ctx.Request().Context(), username, role)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, stats, "dashboard stats", http.StatusOK)
}
