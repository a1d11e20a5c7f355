package routes

import (
	"workshop-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runStatsRouter(secureGroup *echo.Group, statsCtrl *controllers.StatsController) {
	secureGroup.GET("/stats", statsCtrl.Get)
}
