package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/linkforge/linkforge-api/internal/api/handler"
	"github.com/linkforge/linkforge-api/internal/api/middleware"
	"github.com/linkforge/linkforge-api/internal/core/domain"
	"github.com/linkforge/linkforge-api/internal/core/ports"
	"github.com/linkforge/linkforge-api/internal/core/service"
	mongodb "github.com/linkforge/linkforge-api/internal/infrastructure/db/mongo"
	redisdb "github.com/linkforge/linkforge-api/internal/infrastructure/db/redis"
	"github.com/linkforge/linkforge-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// recorder is the async audit sink (the dispatcher); services treat it as
// fire-and-forget.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	recorder ports.ActivityRecorder,
	cfg *config.Config,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("linkforge"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	planRepo := mongodb.NewPlanRepository(db)
	teamRepo := mongodb.NewTeamRepository(db)
	activityRepo := mongodb.NewActivityRepository(db)

	sessionStore := redisdb.NewSessionStore(rdb, cfg.SessionTTL)
	chatStore := redisdb.NewChatConfigStore(rdb)

	authService := service.NewAuthService(userRepo, sessionStore, recorder, cfg.JWTSecret, cfg.SessionTTL)
	orderService := service.NewOrderService(orderRepo, recorder, log)
	planService := service.NewPlanService(planRepo, log)
	teamService := service.NewTeamService(teamRepo, recorder, log)
	accountService := service.NewAccountService(userRepo, sessionStore, log)
	chatService := service.NewChatService(chatStore)
	adminService := service.NewAdminService(userRepo, activityRepo, recorder, log)

	authHandler := handler.NewAuthHandler(authService)
	orderHandler := handler.NewOrderHandler(orderService)
	planHandler := handler.NewPlanHandler(planService)
	teamHandler := handler.NewTeamHandler(teamService)
	accountHandler := handler.NewAccountHandler(accountService)
	chatHandler := handler.NewChatHandler(chatService)
	adminHandler := handler.NewAdminHandler(adminService)

	authMiddleware := middleware.Auth(cfg.JWTSecret)
	dashboardGuard := middleware.Guard(sessionStore, authService, middleware.GuardConfig{})
	adminGuard := middleware.Guard(sessionStore, authService, middleware.GuardConfig{
		AllowedRoles: []string{domain.RoleAdmin, domain.RoleModerator},
	})

	// --- Public routes ---
	e.POST("/v1/auth/register", authHandler.Register)
	e.POST("/v1/auth/login", authHandler.Login)
	e.GET("/v1/packages", planHandler.ListPackages)
	e.GET("/v1/pricing", planHandler.ListPricing)
	e.GET("/v1/chat-widget", chatHandler.Resolve)

	// --- Token-authenticated API routes (401s, no redirects) ---
	e.POST("/v1/auth/logout", authHandler.Logout, authMiddleware)
	e.GET("/v1/me", authHandler.Me, authMiddleware)

	// --- Customer dashboard (verified session required) ---
	dashboard := e.Group("/v1", dashboardGuard)
	dashboard.POST("/orders", orderHandler.Place)
	dashboard.GET("/orders", orderHandler.List)
	dashboard.POST("/team", teamHandler.Invite)
	dashboard.GET("/team", teamHandler.List)
	dashboard.DELETE("/team/:id", teamHandler.Remove)
	dashboard.GET("/profile", accountHandler.Get)
	dashboard.PUT("/profile", accountHandler.Update)
	dashboard.DELETE("/profile", accountHandler.Delete)

	// --- Admin console (admin/moderator only) ---
	admin := e.Group("/v1/admin", adminGuard)
	admin.GET("/users", adminHandler.ListUsers)
	admin.PATCH("/users/:id", adminHandler.UpdateUser)
	admin.GET("/activity", adminHandler.Activity)
	admin.POST("/plans", planHandler.Create)
	admin.PUT("/plans/:id", planHandler.Update)
	admin.DELETE("/plans/:id", planHandler.Delete)
	admin.GET("/chat-widget", chatHandler.Get)
	admin.PUT("/chat-widget", chatHandler.Update)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
