package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/carebridge/enrollment-api/docs"
	"github.com/carebridge/enrollment-api/internal/api/handler"
	"github.com/carebridge/enrollment-api/internal/api/middleware"
	"github.com/carebridge/enrollment-api/internal/core/domain"
	"github.com/carebridge/enrollment-api/internal/core/ports"
	"github.com/carebridge/enrollment-api/internal/core/service"
	"github.com/carebridge/enrollment-api/internal/infrastructure/config"
	"github.com/carebridge/enrollment-api/internal/infrastructure/db/postgres"
	redisdb "github.com/carebridge/enrollment-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil, which disables login throttling and the Redis readiness
// check.
func NewRouter(db *gorm.DB, rdb *redis.Client, mailer ports.Mailer, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{cfg.FrontendURL},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
	}))
	e.Use(echoprometheus.NewMiddleware("enrollment"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	programRepo := postgres.NewProgramRepository(db)
	enrollmentRepo := postgres.NewEnrollmentRepository(db)

	var throttle service.LoginThrottle
	if rdb != nil {
		throttle = redisdb.NewLoginThrottle(rdb)
	}

	authService := service.NewAuthService(userRepo, mailer, throttle, service.AuthConfig{
		JWTSecret:   cfg.JWTSecret,
		TokenTTL:    cfg.TokenTTL,
		FrontendURL: cfg.FrontendURL,
	}, log)
	programService := service.NewProgramService(programRepo, log)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo, programRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService)
	programHandler := handler.NewProgramHandler(programService)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentService)

	auth := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	staffOnly := middleware.RBAC(domain.RoleAdmin, domain.RoleDoctor)

	// --- Public auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.GET("/verify-account", authHandler.VerifyAccount)
	e.POST("/request-password-reset", authHandler.RequestPasswordReset)
	e.POST("/reset-password", authHandler.ResetPassword)
	e.POST("/resend-verification", authHandler.ResendVerification)

	// --- User routes ---
	users := e.Group("/users", auth)
	users.GET("", userHandler.List, adminOnly)
	users.GET("/search", userHandler.Search, staffOnly)
	users.GET("/:userId", userHandler.Get)
	users.PUT("/:userId", userHandler.Update)
	users.POST("/:userId/change-password", userHandler.ChangePassword)
	users.POST("/:userId/upgrade-doctor", userHandler.UpgradeDoctor, adminOnly)
	users.GET("/:userId/enrollments", enrollmentHandler.ListByUser)

	// --- Program & enrollment routes ---
	programs := e.Group("/program", auth)
	programs.POST("", programHandler.Create, adminOnly)
	programs.GET("", programHandler.GetAll)
	programs.GET("/enrollments", enrollmentHandler.ListAll, staffOnly)
	programs.GET("/:programId", programHandler.Get)
	programs.PUT("/:programId", programHandler.Update, adminOnly)
	programs.DELETE("/:programId", programHandler.Delete, adminOnly)
	programs.PATCH("/:programId/toggle", programHandler.Toggle, adminOnly)
	programs.POST("/:programId/enroll", enrollmentHandler.Enroll)
	programs.POST("/:programId/complete", enrollmentHandler.Complete)
	programs.PUT("/:programId/enrollment", enrollmentHandler.Update)
	programs.DELETE("/:programId/enrollment", enrollmentHandler.Delete)
	programs.GET("/:programId/enrollments", enrollmentHandler.ListByProgram, staffOnly)

	// --- Observability & docs (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e
}
