package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/controllers"
	"gearguard/internal/repositories"
	"gearguard/internal/services"
	"gearguard/pkg/config"
	"gearguard/pkg/middleware"
	"gearguard/pkg/service"
)

// InitRouter собирает весь граф зависимостей и регистрирует маршруты.
// Публичны только логин и обновление токенов, остальное за authMW.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger, cfg *config.Config) {
	logger.Info("InitRouter: начало создания маршрутов")

	api := e.Group("/api")
	txManager := repositories.NewTxManager(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	// --- РЕПОЗИТОРИИ ---
	userRepo := repositories.NewUserRepository(dbConn)
	teamRepo := repositories.NewTeamRepository(dbConn)
	memberRepo := repositories.NewTeamMemberRepository(dbConn)
	categoryRepo := repositories.NewCategoryRepository(dbConn)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn)
	requestRepo := repositories.NewRequestRepository(dbConn)
	historyRepo := repositories.NewHistoryRepository(dbConn)
	logRepo := repositories.NewMaintenanceLogRepository(dbConn)

	// --- СЕРВИСЫ ---
	roleService := services.NewAuthRoleService(userRepo, cacheRepo, cfg.Cache.UserRoleTTL, logger)
	authService := services.NewAuthService(userRepo, jwtSvc, logger)
	teamService := services.NewTeamService(teamRepo, memberRepo, logger)
	categoryService := services.NewCategoryService(categoryRepo, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, logger)
	historyService := services.NewHistoryService(historyRepo, logger)
	requestService := services.NewRequestService(txManager, requestRepo, equipmentRepo, teamRepo, historyService, logger)
	logService := services.NewMaintenanceLogService(logRepo, equipmentRepo, logger)
	dashboardService := services.NewDashboardService(requestRepo, equipmentRepo, teamRepo, logger)
	userService := services.NewUserService(userRepo, logger)

	// --- КОНТРОЛЛЕРЫ ---
	authCtrl := controllers.NewAuthController(authService, logger)
	teamCtrl := controllers.NewTeamController(teamService, logger)
	categoryCtrl := controllers.NewCategoryController(categoryService, logger)
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, logger)
	requestCtrl := controllers.NewRequestController(requestService, logger)
	historyCtrl := controllers.NewHistoryController(historyService, logger)
	logCtrl := controllers.NewMaintenanceLogController(logService, logger)
	dashboardCtrl := controllers.NewDashboardController(dashboardService, logger)
	reportCtrl := controllers.NewReportController(requestService, logger)
	userCtrl := controllers.NewUserController(userService, logger)

	// --- РОУТЕРЫ ---
	authMW := middleware.NewAuthMiddleware(jwtSvc, roleService, logger)
	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, secureGroup, authCtrl)
	runUserRouter(secureGroup, userCtrl)
	runTeamRouter(secureGroup, teamCtrl)
	runCategoryRouter(secureGroup, categoryCtrl)
	runEquipmentRouter(secureGroup, equipmentCtrl, historyCtrl, logCtrl)
	runRequestRouter(secureGroup, requestCtrl, historyCtrl)
	runMaintenanceLogRouter(secureGroup, logCtrl)
	runDashboardRouter(secureGroup, dashboardCtrl)
	runReportRouter(secureGroup, reportCtrl)

	logger.Info("InitRouter: создание маршрутов завершено")
}
