package middleware

import (
	"context"
	"strings"

	"workshop-system/pkg/contextkeys"
	apperrors "workshop-system/pkg/errors"
	"workshop-system/pkg/service"
	"workshop-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	RoleManager  = "Manager"
	RoleMechanic = "Mechanic"
)

type AuthMiddleware struct {
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtSvc,
		logger:     logger,
	}
}

// Auth extracts the bearer token, validates it and stores the user's
// identity and role in the request context.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			m.logger.Warn("AuthMiddleware: empty Authorization header")
			return utils.ErrorResponse(c, apperrors.ErrEmptyAuthHeader, m.logger)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			m.logger.Warn("AuthMiddleware: malformed Authorization header")
			return utils.ErrorResponse(c, apperrors.ErrInvalidAuthHeader, m.logger)
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			m.logger.Warn("AuthMiddleware: token validation failed", zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}

		if claims.IsRefreshToken {
			m.logger.Warn("AuthMiddleware: refresh token used for access")
			return utils.ErrorResponse(c, apperrors.ErrTokenIsNotAccess, m.logger)
		}

		ctx := c.Request().Context()
		ctx = context.WithValue(ctx, contextkeys.UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, contextkeys.UsernameKey, claims.Username)
		ctx = context.WithValue(ctx, contextkeys.UserRoleKey, claims.Role)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireManager gates manager-only routes. Runs after Auth.
func (m *AuthMiddleware) RequireManager(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, err := utils.GetRoleFromCtx(c.Request().Context())
		if err != nil {
			return utils.ErrorResponse(c, err, m.logger)
		}
		if role != RoleManager {
			m.logger.Warn("RequireManager: access denied", zap.String("role", role))
			return utils.ErrorResponse(c, apperrors.ErrManagerOnly, m.logger)
		}
		return next(c)
	}
}
