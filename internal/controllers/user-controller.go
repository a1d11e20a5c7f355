package controllers

import (
	"net/http"

	"workshop-system/internal/services"
	"workshop-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type UserController struct {
	userService services.UserServiceInterface
	logger      *zap.Logger
}

func NewUserController(userService services.UserServiceInterface, logger *zap.Logger) *UserController {
	return &UserController{userService: userService, logger: logger}
}

func (c *UserController) Me(ctx echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	user, err := c.userService.GetMe(ctx.Request().Context(), userID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, user, "current user", http.StatusOK)
}

func (c *UserController) Mechanics(ctx echo.Context) error {
	mechanics, err := c.userService.GetMechanics(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, mechanics, "mechanics list", http.StatusOK)
}
