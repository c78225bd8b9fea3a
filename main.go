package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"applytrack-api/config"
	"applytrack-api/internal/app"
	"applytrack-api/internal/database"
	"applytrack-api/internal/server"
	"applytrack-api/internal/storage/postgres"

	"github.com/go-playground/validator/v10"
)

// @title           ApplyTrack API
// @version         1.0
// @description     Job-application tracker: status-history timelines plus dashboard analytics.

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Initialize Redis Client (analytics cache) ---
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		// The cache is an optimization; the aggregator recomputes from the
		// record store either way.
		log.Printf("WARN: Failed to connect to Redis: %v. Continuing without analytics cache.", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	dbPool, err := database.NewConnectionPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	if err := postgres.EnsureSchema(context.Background(), dbPool); err != nil {
		log.Fatalf("Failed to ensure database schema: %v", err)
	}

	validate := validator.New()

	application := &app.Application{
		Config:          cfg,
		DBPool:          dbPool,
		RedisClient:     redisClient,
		Validator:       validate,
		UserRepo:        postgres.NewUserRepo(dbPool),
		ApplicationRepo: postgres.NewApplicationRepo(dbPool),
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Println("Shutting down server...")
	log.Println("Application gracefully stopped.")
}
