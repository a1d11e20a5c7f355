package main

import (
	"context"
	"net/http"
	"path/filepath"

	"workshop-system/internal/routes"
	"workshop-system/migrations"
	"workshop-system/pkg/config"
	"workshop-system/pkg/customvalidator"
	"workshop-system/pkg/database/postgresql"
	apperrors "workshop-system/pkg/errors"
	applogger "workshop-system/pkg/logger"
	"workshop-system/pkg/service"
	"workshop-system/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	e := echo.New()
	logger := applogger.NewLogger()
	cfg := config.New()

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "internal server error", err, nil)
				_ = utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		ExposeHeaders: []string{"Content-Disposition"},
	}))

	absPath, err := filepath.Abs("./uploads")
	if err != nil {
		logger.Fatal("could not resolve uploads directory", zap.Error(err))
	}
	e.Static("/uploads", absPath)

	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		logger.Fatal("failed to register custom validations", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	if err := postgresql.RunMigrations(cfg.Postgres.DSN, migrations.FS); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	dbConn, err := postgresql.ConnectDB(context.Background(), cfg.Postgres.DSN)
	if err != nil {
		logger.Fatal("failed to connect to PostgreSQL", zap.Error(err))
	}
	defer dbConn.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logger.Fatal("failed to connect to Redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
	}

	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL)

	if err := routes.InitRouter(e, dbConn, redisClient, jwtSvc, cfg, logger); err != nil {
		logger.Fatal("failed to initialise routes", zap.Error(err))
	}

	logger.Info("server starting", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
