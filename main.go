package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"users-api/internal/cache"
	"users-api/internal/config"
	"users-api/internal/controllers"
	"users-api/internal/database"
	"users-api/internal/middleware"
	"users-api/internal/repository"
	"users-api/internal/seed"
	"users-api/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.NewConnection(cfg.DBDriver, cfg.DatabaseURL, database.PoolConfig{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.DBConnMaxLifetime) * time.Minute,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Redis cache is optional - continue without it if unset or unavailable
	var cacheClient cache.Cache
	if cfg.RedisURL != "" {
		cacheClient, err = cache.NewRedisCache(cfg.RedisURL, cfg.CacheNamespace)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis (%v). Continuing without cache.", err)
			cacheClient = nil
		} else {
			log.Println("Connected to Redis cache")
			defer cacheClient.Close()
		}
	}

	userRepo := repository.NewCachedUserRepository(
		repository.NewUserRepository(db),
		cacheClient,
		time.Duration(cfg.CacheTTLSeconds)*time.Second,
	)

	if cfg.SeedOnStartup {
		if _, err := seed.Run(context.Background(), userRepo); err != nil {
			log.Fatalf("Failed to seed users: %v", err)
		}
	}

	userService := service.NewUserService(userRepo)

	userController := controllers.NewUserController(userService)
	cardController := controllers.NewCardController(userService)
	docsController := controllers.NewDocsController(cfg.PublicBaseURL)

	apiRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	defer apiRateLimiter.Stop()

	router := gin.New()
	router.Use(gin.Recovery(), middleware.AccessLog())

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	router.GET("/v3/api-docs", apiRateLimiter.LimitMiddleware(), docsController.GetAPIDocs)

	users := router.Group("/api/users")
	users.Use(apiRateLimiter.LimitMiddleware())
	{
		userController.RegisterRoutes(users)
		users.GET("/:id/card", cardController.GenerateCard)
	}

	log.Printf("Server starting on http://localhost:%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
