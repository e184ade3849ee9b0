package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/soran-institute/institute-api/api/swagger"
	"github.com/soran-institute/institute-api/internal/handler"
	"github.com/soran-institute/institute-api/internal/middleware"
	"github.com/soran-institute/institute-api/internal/repository"
	"github.com/soran-institute/institute-api/internal/service"
	"github.com/soran-institute/institute-api/pkg/config"
	"github.com/soran-institute/institute-api/pkg/logger"
	corsmiddleware "github.com/soran-institute/institute-api/pkg/middleware/cors"
	reqidmiddleware "github.com/soran-institute/institute-api/pkg/middleware/requestid"
	"github.com/soran-institute/institute-api/pkg/response"
)

// @title Soran Institute API
// @version 1.0.0
// @description Backup/sync receiver and query API for the institute
// @BasePath /
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

	metricsSvc := service.NewMetricsService()

	fileStore, err := repository.NewFileStore(cfg.DataDir, logr)
	if err != nil {
		logr.Sugar().Fatalw("failed to open data directory", "dir", cfg.DataDir, "error", err)
	}
	store := repository.Instrument(fileStore, metricsSvc)

	backupSvc := service.NewBackupService(store, metricsSvc, logr)
	studentSvc := service.NewStudentService(store, nil, logr)
	attendanceSvc := service.NewAttendanceService(store, logr)
	reportSvc := service.NewReportService(store, logr)
	syncSvc := service.NewSyncService(store, logr)
	configSvc := service.NewConfigService(store, logr)
	statusSvc := service.NewStatusService(store, logr)
	adminSvc := service.NewAdminService(store, cfg.AdminPassword, logr)
	exportSvc := service.NewExportService(reportSvc, logr)

	backupHandler := handler.NewBackupHandler(backupSvc)
	studentHandler := handler.NewStudentHandler(studentSvc)
	attendanceHandler := handler.NewAttendanceHandler(attendanceSvc)
	reportHandler := handler.NewReportHandler(reportSvc, exportSvc)
	syncHandler := handler.NewSyncHandler(syncSvc)
	configHandler := handler.NewConfigHandler(configSvc)
	statusHandler := handler.NewStatusHandler(statusSvc)
	adminHandler := handler.NewAdminHandler(adminSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "Soran Institute API",
			"version":   "1.0.0",
			"endpoints": service.Endpoints,
		})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group("/api", middleware.APIToken(cfg.APIToken))
	{
		api.GET("/status", statusHandler.Get)

		backup := api.Group("/backup")
		if cfg.RateLimit.Enabled {
			limiter := middleware.NewTokenBucket(cfg.RateLimit.Burst, cfg.RateLimit.PerMinute)
			backup.Use(limiter.Middleware())
		}
		backup.POST("", backupHandler.Receive)

		api.GET("/students", studentHandler.List)
		api.POST("/students", studentHandler.Create)
		api.GET("/students/:id", studentHandler.Get)
		api.GET("/attendance", attendanceHandler.List)
		api.GET("/reports/attendance", reportHandler.Attendance)
		if cfg.Exports.Enabled {
			api.GET("/reports/attendance/export", reportHandler.Export)
		}
		api.GET("/sync-history", syncHandler.History)
		api.GET("/config", configHandler.Get)
		api.DELETE("/data/:type", adminHandler.Wipe)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, response.ErrorBody{Success: false, Message: "endpoint not found"})
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "data_dir", cfg.DataDir)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
