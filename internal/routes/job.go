package routes

import (
	"workshop-system/internal/controllers"
	"workshop-system/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runJobRouter(secureGroup *echo.Group, jobCtrl *controllers.JobController, invoiceCtrl *controllers.InvoiceController, authMW *middleware.AuthMiddleware) {
	jobGroup := secureGroup.Group("/jobs")
	{
		jobGroup.GET("", jobCtrl.List)
		jobGroup.POST("", jobCtrl.Create, authMW.RequireManager)
		jobGroup.GET("/:id", jobCtrl.Get)
		jobGroup.PUT("/:id", jobCtrl.Update)
		jobGroup.DELETE("/:id", jobCtrl.Delete, authMW.RequireManager)
		jobGroup.POST("/:id/photos", jobCtrl.UploadPhoto)
		jobGroup.POST("/:id/invoice", invoiceCtrl.GeneratePDF, authMW.RequireManager)
	}
}
