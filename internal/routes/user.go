package routes

import (
	"workshop-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runUserRouter(secureGroup *echo.Group, userCtrl *controllers.UserController) {
	secureGroup.GET("/users/me", userCtrl.Me)
	secureGroup.GET("/mechanics", userCtrl.Mechanics)
}
