package main

import (
	"context"
	"fmt"
	"log"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	_ "github.com/neatify/neatify-api/api/swagger"
	"github.com/neatify/neatify-api/internal/handler"
	"github.com/neatify/neatify-api/internal/repository"
	"github.com/neatify/neatify-api/internal/router"
	"github.com/neatify/neatify-api/internal/service"
	"github.com/neatify/neatify-api/pkg/cache"
	"github.com/neatify/neatify-api/pkg/config"
	"github.com/neatify/neatify-api/pkg/database"
	"github.com/neatify/neatify-api/pkg/logger"
	"github.com/neatify/neatify-api/pkg/storage"
)

// @title Neatify API
// @version 1.0.0
// @description Crowd-sourced cleanliness reporting backend
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	metricsSvc := service.NewMetricsService()

	var cacheRepo service.CacheRepository
	cacheEnabled := cfg.Directory.CacheEnabled
	if cacheEnabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, directory cache disabled", "error", err)
			cacheEnabled = false
		} else {
			defer redisClient.Close()
			cacheRepo = repository.NewCacheRepository(redisClient)
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Directory.CacheTTL, logr, cacheEnabled)

	if cfg.Auth.JWKSURL == "" {
		logr.Sugar().Fatalw("CLERK_JWKS_URL is required")
	}
	jwks, err := keyfunc.NewDefaultCtx(context.Background(), []string{cfg.Auth.JWKSURL})
	if err != nil {
		logr.Sugar().Fatalw("failed to load clerk key set", "error", err)
	}
	authSvc := service.NewAuthService(jwks.Keyfunc, cfg.Auth.Leeway, logr)

	imageStore, err := storage.NewCloudinary(cfg.Uploads)
	if err != nil {
		logr.Sugar().Fatalw("failed to init cloudinary", "error", err)
	}

	validate := validator.New()

	reportRepo := repository.NewReportRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	reportSvc := service.NewReportService(reportRepo, imageStore, validate, logr)
	adminSvc := service.NewAdminService(adminRepo, cacheSvc, validate, logr)

	r := router.Setup(router.Deps{
		Config:    cfg,
		Logger:    logr,
		DB:        db,
		Auth:      authSvc,
		Metrics:   metricsSvc,
		Reports:   handler.NewReportHandler(reportSvc),
		AuthAdmin: handler.NewAuthHandler(adminSvc),
		Locations: handler.NewLocationHandler(adminSvc),
		Uploads:   handler.NewUploadHandler(imageStore),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
