package main

import (
	"log"
	"net/http"
	"time"

	"github.com/AztroNs/sistema-pendientes/internal/config"
	"github.com/AztroNs/sistema-pendientes/internal/database"
	"github.com/AztroNs/sistema-pendientes/internal/handlers"
	"github.com/AztroNs/sistema-pendientes/internal/logger"
	"github.com/AztroNs/sistema-pendientes/internal/middleware"
	"github.com/AztroNs/sistema-pendientes/internal/migrations"
	"github.com/AztroNs/sistema-pendientes/internal/redis"
	"github.com/AztroNs/sistema-pendientes/internal/repository"
	"github.com/AztroNs/sistema-pendientes/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zaplog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zaplog.Sync()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		zaplog.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := migrations.RunMigrations(db); err != nil {
		zaplog.Fatal("Failed to migrate database", zap.Error(err))
	}

	// Initialize Redis session store
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		zaplog.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize repositories
	orderRepo := repository.NewOrderRepository(db)
	deliveryRepo := repository.NewDeliveryRepository(db)

	// Initialize services
	orderService := services.NewOrderService(orderRepo, deliveryRepo)
	reportService := services.NewReportService(orderRepo)
	authService, err := services.NewAuthService(cfg.AppPassword, redisClient, time.Duration(cfg.SessionTTL)*time.Second)
	if err != nil {
		zaplog.Fatal("Failed to initialize auth", zap.Error(err))
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, zaplog)
	orderHandler := handlers.NewOrderHandler(orderService, reportService, zaplog)
	reportHandler := handlers.NewReportHandler(reportService, zaplog)

	// Setup routes
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.POST("/api/login", authHandler.Login)

	api := router.Group("/api")
	api.Use(middleware.RequireAuth(authService, zaplog))
	{
		api.POST("/logout", authHandler.Logout)

		api.GET("/pendientes", orderHandler.ListPending)
		api.POST("/pendientes", orderHandler.Create)
		api.PUT("/pendientes/:id", orderHandler.Update)
		api.POST("/pendientes/:id/completar", orderHandler.Complete)
		api.GET("/pendientes/atrasados", orderHandler.ListOverdue)
		api.GET("/entregas", orderHandler.ListCompleted)

		api.GET("/dashboard/proveedores", reportHandler.ByProveedor)
		api.GET("/dashboard/empresas", reportHandler.Empresas)
		api.GET("/dashboard/empresa", reportHandler.ByEmpresa)
	}

	// Start server
	zaplog.Info("Server starting", zap.String("port", cfg.ServerPort))
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		zaplog.Fatal("Failed to start server", zap.Error(err))
	}
}
