package routes

import (
	"workshop-system/internal/controllers"
	"workshop-system/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runAuthRouter(api *echo.Group, secureGroup *echo.Group, authCtrl *controllers.AuthController, authMW *middleware.AuthMiddleware) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", authCtrl.Login)
		authGroup.POST("/refresh_token", authCtrl.Refresh)
	}

	// Account creation is a manager action; the seeded manager bootstraps
	// the first login.
	secureGroup.POST("/auth/register", authCtrl.Register, authMW.RequireManager)
}
