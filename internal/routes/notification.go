package routes

import (
	"workshop-system/internal/controllers"
	"workshop-system/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runNotificationRouter(secureGroup *echo.Group, notificationCtrl *controllers.NotificationController, authMW *middleware.AuthMiddleware) {
	secureGroup.POST("/notifications/whatsapp", notificationCtrl.SendWhatsApp, authMW.RequireManager)
	secureGroup.POST("/email/invoice", notificationCtrl.SendInvoiceEmail, authMW.RequireManager)
}
