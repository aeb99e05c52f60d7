package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"reservation-system/internal/integrations/gsd"
	"reservation-system/internal/repositories"
	"reservation-system/internal/services"
	"reservation-system/pkg/config"
	"reservation-system/pkg/middleware"
	"reservation-system/pkg/service"
)

func InitRouter(e *echo.Echo, backend *gsd.Provider, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger, cfg *config.Config) {
	logger.Info("InitRouter: wiring routes")

	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	cacheRepo := repositories.NewRedisCacheRepository(redisClient)
	sessionRepo := repositories.NewRedisFormSessionRepository(redisClient, cfg.Cache.FormSessionTTL)

	catalogService := services.NewCatalogService(backend, cacheRepo, cfg.Cache.CatalogTTL, logger)
	formService := services.NewReservationFormService(sessionRepo, catalogService, backend, logger)
	assignmentService := services.NewAssignmentService(backend, catalogService, cacheRepo, logger)
	registryService := services.NewChecklistRegistryService(backend, logger)
	reportService := services.NewReportService(backend, logger)
	authService := services.NewAuthService(backend, jwtSvc, logger)

	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, authService, logger)
	runCatalogRouter(secureGroup, catalogService, logger)
	runReservationFormRouter(secureGroup, formService, logger)
	runAssignmentRouter(secureGroup, assignmentService, logger)
	runChecklistRouter(secureGroup, registryService, logger)
	runReportRouter(secureGroup, reportService, logger)

	logger.Info("InitRouter: routes ready")
}
