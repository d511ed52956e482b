package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lyra/internal/clients"
	"lyra/internal/config"
	"lyra/internal/handlers"
	"lyra/internal/middleware"
	"lyra/internal/repository"
	"lyra/internal/service"
	"lyra/internal/worker"
	"lyra/pkg/database"
	"lyra/pkg/redis"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	log.Println("=== Lyra Launch Backend Starting ===")

	cfg := config.Load()

	db, err := database.Connect(cfg.DB)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	redisClient, err := redis.Connect(cfg.Redis)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	spacexClient := clients.NewSpaceXClient(clients.SpaceXConfig{
		BaseURL: cfg.SpaceX.BaseURL,
		Timeout: cfg.SpaceX.Timeout,
	})

	launchRepo := repository.NewLaunchRepository(spacexClient)
	archiveRepo := repository.NewArchiveRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient)

	launchService := service.NewLaunchService(launchRepo)
	syncService := service.NewSyncService(launchRepo, archiveRepo, cacheRepo)
	favoritesService := service.NewFavoritesService(cacheRepo)

	scheduler := worker.NewScheduler()

	if cfg.Workers.SyncEnabled {
		scheduler.AddWorker(worker.NewSyncWorker(syncService, cfg.Workers.SyncInterval))
		log.Printf("Sync Worker enabled (interval: %v)", cfg.Workers.SyncInterval)
	}

	go scheduler.Start()
	defer scheduler.Stop()

	if cfg.App.Debug {
		gin.SetMode(gin.DebugMode)
		log.Println("Running in DEBUG mode")
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", cfg.App.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if !cfg.App.Debug {
		limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
		r.Use(middleware.RateLimitMiddleware(limiter))
		log.Printf("Rate limiting enabled: %d req/sec, burst: %d",
			cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	launchHandler := handlers.NewLaunchHandler(launchService, syncService)
	favoritesHandler := handlers.NewFavoritesHandler(favoritesService)

	api := r.Group("/api/v1")

	api.GET("/launches", launchHandler.GetLaunches)
	api.GET("/launches/enriched", launchHandler.GetEnrichedLaunches)
	api.GET("/launches/export", launchHandler.ExportLaunches)
	api.GET("/launches/:id", launchHandler.GetLaunchDetails)

	api.GET("/archive/stats", launchHandler.GetArchiveStats)
	api.GET("/archive/recent", launchHandler.GetArchiveRecent)

	api.GET("/favorites", favoritesHandler.GetFavorites)
	api.POST("/favorites/:id", favoritesHandler.AddFavorite)
	api.DELETE("/favorites/:id", favoritesHandler.RemoveFavorite)
	api.POST("/favorites/:id/toggle", favoritesHandler.ToggleFavorite)

	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"services": gin.H{
				"database":   "connected",
				"redis":      "connected",
				"spacex_api": "enabled",
			},
		})
	})

	api.GET("/system/stats", func(c *gin.Context) {
		ctx := c.Request.Context()

		redisStats, _ := redis.GetStats(redisClient)
		archived, _ := archiveRepo.Count(ctx)

		c.JSON(200, gin.H{
			"database": gin.H{
				"launch_records": archived,
			},
			"redis": redisStats,
			"workers": gin.H{
				"sync_enabled": cfg.Workers.SyncEnabled,
			},
		})
	})

	if cfg.App.Debug {
		api.POST("/refresh/launches", launchHandler.ForceSync)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	server := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on http://localhost:%s", cfg.App.Port)
		log.Printf("API available at http://localhost:%s/api/v1", cfg.App.Port)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start:", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited properly")
}
