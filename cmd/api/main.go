package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/pageza/ourkitchen/backend/config"
	"github.com/pageza/ourkitchen/backend/internal/api"
	"github.com/pageza/ourkitchen/backend/internal/database"
	"github.com/pageza/ourkitchen/backend/internal/middleware"
	"github.com/pageza/ourkitchen/backend/internal/server"
	"github.com/pageza/ourkitchen/backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize services
	authService, err := service.NewAuthService(cfg.AdminPassword, cfg.JWTSecret)
	if err != nil {
		log.Fatalf("Failed to initialize auth: %v", err)
	}
	if cfg.AdminPassword == "" {
		log.Printf("Warning: ADMIN_PASSWORD is not set, admin login is disabled")
	}

	deps := api.Dependencies{
		Auth:         authService,
		Recipes:      service.NewRecipeService(db, newImageStore(ctx, cfg)),
		Ingredients:  service.NewIngredientService(db),
		ShoppingList: service.NewShoppingListService(service.NewCatalogService(db)),
		HealthCheck: func(ctx context.Context) error {
			return database.HealthCheck(ctx, db)
		},
	}

	// Redis only backs rate limiting, so the API runs without it
	if cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(cfg)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis for rate limiting: %v", err)
		} else {
			defer redisClient.Close()
			deps.RateLimiter = middleware.NewShoppingListRateLimiter(redisClient, cfg.ShoppingListRateLimit)
		}
	}

	srv := server.New(cfg, deps)
	if err := srv.Run(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}

func newImageStore(ctx context.Context, cfg *config.Config) service.ImageStore {
	if cfg.S3BucketName == "" {
		log.Printf("S3_BUCKET_NAME is not set, recipe image uploads are disabled")
		return nil
	}
	s3Config, err := config.NewS3Config(ctx, cfg)
	if err != nil {
		log.Printf("Warning: Failed to initialize S3, recipe image uploads are disabled: %v", err)
		return nil
	}
	return service.NewS3ImageStore(s3Config)
}
