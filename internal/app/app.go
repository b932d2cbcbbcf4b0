package app

import (
	"fmt"

	"interntrack_backend/internal/config"
	"interntrack_backend/internal/handlers"
	"interntrack_backend/internal/logger"
	"interntrack_backend/internal/middleware"
	"interntrack_backend/internal/models"
	"interntrack_backend/internal/repositories"
	"interntrack_backend/internal/routes"
	"interntrack_backend/internal/services"
	"interntrack_backend/internal/validator"
	"interntrack_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)
	apperrors.SetDebug(cfg.Server.Env == "development")

	gormDB, err := OpenDatabase(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "driver", cfg.Database.Driver, "error", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	defer sqlDB.Close()
	logger.Info("Database connected", "driver", cfg.Database.Driver)

	if err := gormDB.AutoMigrate(&models.User{}, &models.Internship{}); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// OpenDatabase opens the GORM handle for the configured driver. The handle
// is the single shared connection pool, constructed here and injected into
// the repositories.
func OpenDatabase(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.Database.Driver {
	case "postgres":
		return gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	case "mysql":
		return gorm.Open(mysql.Open(cfg.Database.DSN), &gorm.Config{})
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.Database.DSN), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

// SetupRouter wires repositories, services, handlers and routes onto a gin
// engine. Tests call it directly with their own database handle.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	userRepo := repositories.NewUserRepository(gormDB)
	internshipRepo := repositories.NewInternshipRepository(gormDB)

	authService := services.NewAuthService(userRepo, cfg)
	internshipService := services.NewInternshipService(internshipRepo)

	v := validator.New()
	base := handlers.NewBaseHandler(v)
	appHandlers := &handlers.AppHandlers{
		AuthHandler:       handlers.NewAuthHandler(base, authService),
		InternshipHandler: handlers.NewInternshipHandler(base, internshipService),
	}

	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())

	authGuard := middleware.AuthMiddleware(cfg.JWT.Secret, userRepo)
	routes.RegisterRoutes(ginRouter, appHandlers, authGuard)

	return ginRouter
}
