package main

import (
	"log"
	"time"

	"portfolio-admin/config"
	"portfolio-admin/database"
	routes "portfolio-admin/internal/app/http"
	"portfolio-admin/internal/app/http/middleware"
	"portfolio-admin/internal/auth"
	"portfolio-admin/internal/infra/storage"
	"portfolio-admin/internal/logging"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.Open(cfg.DBURL, logger.Named("database"))
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}

	created, err := database.SeedAdmin(db, cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		logger.Fatal("seed admin", zap.Error(err))
	}
	if created {
		logger.Info("admin account created", zap.String("username", cfg.AdminUsername))
	}

	store, err := storage.NewLocal(cfg.UploadDir, cfg.PublicBaseURL)
	if err != nil {
		logger.Fatal("storage", zap.Error(err))
	}

	if cfg.LogFormat == "json" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.APIKeyHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, routes.Deps{
		DB:      db,
		Config:  cfg,
		Tokens:  auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL),
		Storage: store,
		Log:     logger.Named("http"),
	})

	logger.Info("listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
