package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campuspulse-backend/internal/assistant"
	"campuspulse-backend/internal/catalog"
	"campuspulse-backend/internal/config"
	"campuspulse-backend/internal/database"
	"campuspulse-backend/internal/handlers"
	"campuspulse-backend/internal/middleware"
	"campuspulse-backend/internal/recommend"
	"campuspulse-backend/internal/repository"
	"campuspulse-backend/internal/router"
	"campuspulse-backend/internal/services"
	"campuspulse-backend/internal/websocket"
)

func main() {
	log.Println("🚀 Starting CampusPulse Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize PostgreSQL Connection Pool ────
	pool, err := database.NewPostgresPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("✗ PostgreSQL connection failed: %v", err)
	}
	defer pool.Close()
	log.Println("✓ PostgreSQL connected")

	// ──── Step 3: Initialize Redis Clients ────
	redisClients, err := database.NewRedisClients(cfg.RedisURL)
	if err != nil {
		log.Fatalf("✗ Redis connection failed: %v", err)
	}
	defer redisClients.Close()
	log.Println("✓ Redis connected")

	// ──── Step 4: Run Database Migrations ────
	if err := database.RunMigrations(pool, "migrations"); err != nil {
		log.Fatalf("✗ Database migration failed: %v", err)
	}
	log.Println("✓ Database migrations applied")

	// ──── Initialize Repositories ────
	userRepo := repository.NewUserRepo(pool)
	taskRepo := repository.NewTaskRepo(pool)
	moodRepo := repository.NewMoodRepo(pool)
	resourceRepo := repository.NewResourceRepo(pool)
	sessionRepo := repository.NewStudySessionRepo(pool)
	chatRepo := repository.NewChatRepo(pool)

	// ──── Initialize Services ────
	jwtAuth := middleware.NewJWTAuth(cfg.JWTSecret)
	authService := services.NewAuthService(userRepo, redisClients.Cache, jwtAuth)
	assistantClient := assistant.NewClient()

	recommendOpts := recommend.Options{
		Limit:       cfg.RecommendLimit,
		FallbackMin: cfg.RecommendFallbackMin,
	}

	// ──── Initialize Handlers ────
	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskRepo)
	moodHandler := handlers.NewMoodHandler(moodRepo)
	resourceHandler := handlers.NewResourceHandler(
		resourceRepo, taskRepo, redisClients.Cache,
		recommendOpts, time.Duration(cfg.RecommendCacheTTL)*time.Second,
	)
	studyHandler := handlers.NewStudyHandler(sessionRepo, taskRepo, redisClients.PubSub)
	dashboardHandler := handlers.NewDashboardHandler(taskRepo, moodRepo, resourceRepo, sessionRepo, assistantClient, recommendOpts)
	assistantHandler := handlers.NewAssistantHandler(assistantClient, chatRepo, taskRepo)

	// ──── Step 5: Seed Resource Catalogue ────
	catalogLoader := catalog.NewLoader(resourceRepo, cfg.CatalogMinResources, time.Duration(cfg.CatalogLoadDelay)*time.Second)
	catalogLoader.Start()
	log.Println("✓ Catalogue loader scheduled")

	// ──── Step 6: Start WebSocket Hub ────
	wsHub := websocket.NewHub(redisClients.PubSub, cfg.JWTSecret)
	log.Println("✓ WebSocket hub started")

	// ──── Step 7: Start HTTP Server ────
	r := router.New(
		jwtAuth,
		authHandler,
		taskHandler,
		moodHandler,
		resourceHandler,
		studyHandler,
		dashboardHandler,
		assistantHandler,
		wsHub,
		cfg.FrontendURL,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ CampusPulse Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/v1", cfg.Port)
	log.Printf("  WS:  ws://localhost:%s/api/v1/ws", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
