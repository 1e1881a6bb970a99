package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"norms-hub/internal/ai"
	"norms-hub/internal/area"
	"norms-hub/internal/config"
	"norms-hub/internal/dashboard"
	"norms-hub/internal/datasource"
	"norms-hub/internal/db"
	"norms-hub/internal/demostore"
	"norms-hub/internal/middleware"
	"norms-hub/internal/migrate"
	"norms-hub/internal/norm"
	"norms-hub/internal/observability/metrics"
	"norms-hub/internal/session"
	"norms-hub/internal/status"
	"norms-hub/internal/user"
)

func main() {
	// Load configuration
	config.LoadConfig()
	cfg := config.AppConfig

	if cfg.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Connect to the remote store. Failure is not fatal: the service starts
	// in demo mode and recovers on the first successful read.
	gdb, err := db.Connect(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("Remote store unavailable, starting in demo mode")
		gdb = nil
	}
	defer db.Close(gdb)

	if gdb != nil && cfg.AutoMigrate {
		if err := migrate.Migrate(gdb); err != nil {
			log.Fatal().Err(err).Msg("Schema migration failed")
		}
	}

	// Shared dual-mode machinery
	state := datasource.NewState()
	state.Observer = func(c datasource.Collection, demo bool) {
		metrics.SetDemoMode(string(c), demo)
	}
	demo := demostore.New(cfg.DemoDataDir)

	// Sessions
	sessions := session.New(cfg.RedisAddress, cfg.SessionTTL)

	// AI collaborator (optional)
	gemini, err := ai.New(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Warn().Err(err).Msg("Gemini unavailable, summaries disabled")
		gemini = nil
	}

	// Initialize repositories
	normRepo := norm.NewRepository(gdb)
	userRepo := user.NewRepository(gdb)
	areaRepo := area.NewRepository(gdb)

	// Initialize services
	areaService := area.NewService(areaRepo, demo, state, cfg.ReadTimeout)
	normService := norm.NewService(normRepo, demo, state, areaService, cfg.ReadTimeout)
	userService := user.NewService(userRepo, demo, state, areaService, cfg.ReadTimeout)
	dashboardService := dashboard.NewService(normService, userService, areaService, state)

	// Initialize handlers
	normHandler := norm.NewHandler(normService, gemini)
	userHandler := user.NewHandler(userService, sessions, cfg.JWTSecret, cfg.SessionTTL)
	areaHandler := area.NewHandler(areaService)
	dashboardHandler := dashboard.NewHandler(dashboardService)
	statusHandler := status.NewHandler(gdb, state)

	// Initialize Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(metrics.Middleware())
	router.Use(middleware.ErrorHandler())

	// cors setting
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}
	if cfg.Environment == "development" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = []string{"https://intranet.retail.com.ar"}
	}
	router.Use(cors.New(corsConfig))

	authRequired := middleware.Auth(cfg.JWTSecret, sessions, userService)
	editorOnly := middleware.RequireRole(user.RoleAdmin, user.RoleEditor)
	adminOnly := middleware.RequireRole(user.RoleAdmin)

	// Public routes
	router.GET("/health", statusHandler.Show)
	router.GET("/metrics", metrics.Handler())
	router.POST("/login", userHandler.Login)

	// Session routes
	router.DELETE("/logout", authRequired, userHandler.Logout)
	router.GET("/profile", authRequired, userHandler.GetProfile)

	// Norm routes
	router.GET("/norms", authRequired, normHandler.List)
	router.GET("/norms/search/smart", authRequired, normHandler.SmartSearch)
	router.GET("/norms/:id", authRequired, normHandler.Show)
	router.GET("/norms/:id/summary", authRequired, normHandler.Summarize)
	router.POST("/norms", authRequired, editorOnly, normHandler.Create)
	router.PUT("/norms/:id", authRequired, editorOnly, normHandler.Update)
	router.DELETE("/norms/:id", authRequired, editorOnly, normHandler.Delete)

	// Area routes
	router.GET("/areas", authRequired, areaHandler.List)
	router.POST("/areas", authRequired, adminOnly, areaHandler.Create)
	router.PUT("/areas/:id", authRequired, adminOnly, areaHandler.Update)
	router.DELETE("/areas/:id", authRequired, adminOnly, areaHandler.Delete)

	// User administration routes
	router.GET("/users", authRequired, adminOnly, userHandler.List)
	router.POST("/users", authRequired, adminOnly, userHandler.Create)
	router.PUT("/users/:id", authRequired, adminOnly, userHandler.Update)
	router.DELETE("/users/:id", authRequired, adminOnly, userHandler.Delete)

	// Admin dashboard
	router.GET("/dashboard/metrics", authRequired, adminOnly, dashboardHandler.Show)

	// Server configuration
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.ServerPort),
		Handler: router.Handler(),
	}

	// Start server
	go func() {
		log.Info().Str("port", cfg.ServerPort).Msg("Server listening")
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	}
	log.Info().Msg("Server shutdown complete")
}
