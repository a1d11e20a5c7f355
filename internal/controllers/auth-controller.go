package controllers

import (
	"net/http"

	"workshop-system/internal/dto"
	"workshop-system/internal/services"
	"workshop-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthController struct {
	authService services.AuthServiceInterface
	logger      *zap.Logger
}

func NewAuthController(authService services.AuthServiceInterface, logger *zap.Logger) *AuthController {
	return &AuthController{authService: authService, logger: logger}
}

func (c *AuthController) Login(ctx echo.Context) error {
	var payload dto.LoginDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	response, err := c.authService.Login(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, response, "login successful", http.StatusOK)
}

func (c *AuthController) Register(ctx echo.Context) error {
	var payload dto.RegisterDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	user, err := c.authService.Register(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, user, "user registered", http.StatusCreated)
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

func (c *AuthController) Refresh(ctx echo.Context) error {
	var payload refreshRequest
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	response, err := c.authService.Refresh(ctx.Request().Context(), payload.RefreshToken)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, response, "token refreshed", http.StatusOK)
}
