package routes

import (
	"workshop-system/internal/controllers"
	"workshop-system/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runExportRouter(secureGroup *echo.Group, exportCtrl *controllers.ExportController, authMW *middleware.AuthMiddleware) {
	secureGroup.POST("/export/google-sheets", exportCtrl.GoogleSheets, authMW.RequireManager)
	secureGroup.GET("/reports/jobs", exportCtrl.JobsReport, authMW.RequireManager)
}
