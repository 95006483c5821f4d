package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/quillhub/backend/internal/auth"
	"github.com/quillhub/backend/internal/cache"
	"github.com/quillhub/backend/internal/config"
	"github.com/quillhub/backend/internal/database"
	"github.com/quillhub/backend/internal/feed"
	"github.com/quillhub/backend/internal/follow"
	"github.com/quillhub/backend/internal/handlers"
	"github.com/quillhub/backend/internal/logger"
	"github.com/quillhub/backend/internal/storage"
	"github.com/quillhub/backend/internal/store"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	if err := logger.Initialize(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FILE")); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Close()

	logger.Log.Info("=== QuillHub server starting ===")

	cfg, err := config.Load()
	if err != nil {
		logger.FatalWithFields("Invalid configuration", err)
	}

	// Initialize database
	if err := database.Initialize(cfg); err != nil {
		logger.FatalWithFields("Failed to initialize database", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.Migrate(); err != nil {
		logger.FatalWithFields("Failed to run migrations", err)
	}

	st := store.New(database.DB)
	graph := follow.NewGraph(database.DB)
	composer := feed.NewComposer(st, graph, cfg.PageSize)
	authService := auth.NewService(st, []byte(cfg.JWTSecret))

	// Page cache: Redis when configured, in-process otherwise. A missing
	// cache backend is never fatal for a development server.
	var pageStore cache.Store
	if cfg.RedisHost != "" {
		redisStore, err := cache.NewRedisStore(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword)
		if err != nil {
			logger.Log.Warn("Redis unavailable, using in-process page cache", zap.Error(err))
			pageStore = cache.NewMemoryStore()
		} else {
			defer redisStore.Close()
			pageStore = redisStore
		}
	} else {
		pageStore = cache.NewMemoryStore()
	}
	pages := cache.NewPageCache(pageStore, cfg.IndexCacheTTL)

	// Image uploads: S3 when a bucket is configured, local disk otherwise.
	var uploads storage.ImageUploader
	if cfg.AWSBucket != "" {
		s3Uploader, err := storage.NewS3Uploader(cfg.AWSRegion, cfg.AWSBucket, cfg.CDNBaseURL)
		if err != nil {
			logger.FatalWithFields("Failed to initialize S3 uploader", err)
		}
		if err := s3Uploader.CheckBucketAccess(context.Background()); err != nil {
			logger.Log.Warn("S3 bucket access check failed, image uploads may fail", zap.Error(err))
		}
		uploads = s3Uploader
	} else {
		localUploader, err := storage.NewLocalUploader(cfg.MediaDir)
		if err != nil {
			logger.FatalWithFields("Failed to initialize local uploader", err)
		}
		uploads = localUploader
	}

	h := handlers.NewHandlers(st, composer, graph, authService, uploads, pages)
	r := handlers.NewRouter(h, authService, pages)

	// Serve locally stored images when not on S3.
	if cfg.AWSBucket == "" {
		r.Static("/media", cfg.MediaDir)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Log.Info("QuillHub backend listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.FatalWithFields("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.FatalWithFields("Server forced to shutdown", err)
	}

	logger.Log.Info("Server exited")
}
