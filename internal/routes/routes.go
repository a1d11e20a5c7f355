package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"workshop-system/internal/controllers"
	"workshop-system/internal/repositories"
	"workshop-system/internal/services"
	"workshop-system/pkg/config"
	"workshop-system/pkg/filestorage"
	"workshop-system/pkg/middleware"
	"workshop-system/pkg/service"
	"workshop-system/pkg/whatsapp"
)

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, cfg *config.Config, logger *zap.Logger) error {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	fileStorage, err := filestorage.NewLocalFileStorage("uploads")
	if err != nil {
		return err
	}
	txManager := repositories.NewTxManager(dbConn)

	userRepo := repositories.NewUserRepository(dbConn, logger)
	jobRepo := repositories.NewJobRepository(dbConn, logger)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	whatsappClient := whatsapp.NewService(cfg.Integrations.WhatsAppToken, cfg.Integrations.WhatsAppPhoneNumberID)

	authService := services.NewAuthService(userRepo, cacheRepo, jwtSvc, cfg.Auth, logger)
	userService := services.NewUserService(userRepo, logger)
	jobService := services.NewJobService(jobRepo, userRepo, txManager, fileStorage, logger)
	statsService := services.NewStatsService(jobRepo, cacheRepo, logger)
	invoicePDF := services.NewInvoicePDFService(cfg.Workshop)
	invoiceService := services.NewInvoiceService(jobRepo, invoicePDF, cfg.Workshop)
	notificationService := services.NewNotificationService(jobRepo, whatsappClient, cfg.Integrations, logger)
	exportService := services.NewExportService(jobRepo, cfg.Integrations, logger)

	authController := controllers.NewAuthController(authService, logger)
	userController := controllers.NewUserController(userService, logger)
	jobController := controllers.NewJobController(jobService, logger)
	statsController := controllers.NewStatsController(statsService, logger)
	invoiceController := controllers.NewInvoiceController(invoiceService, logger)
	notificationController := controllers.NewNotificationController(notificationService, logger)
	exportController := controllers.NewExportController(exportService, logger)

	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, secureGroup, authController, authMW)
	runUserRouter(secureGroup, userController)
	runJobRouter(secureGroup, jobController, invoiceController, authMW)
	runStatsRouter(secureGroup, statsController)
	runNotificationRouter(secureGroup, notificationController, authMW)
	runExportRouter(secureGroup, exportController, authMW)

	return nil
}
