package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/auth"
	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/config"
	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/database"
	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/handlers"
	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/inquiry"
	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/metrics"
	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/notifier"
	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/repository"
	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/stats"
)

func main() {
	// Configure logging
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrus.InfoLevel)

	logrus.Info("Starting Command Nexus Service")

	// Local development overrides, ignored when absent
	if err := godotenv.Load(); err == nil {
		logrus.Info("Loaded environment from .env")
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("Configuration validation failed: %v", err)
	}

	// Initialize database
	db, err := database.Init(cfg.Database)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize metrics
	m := metrics.NewMetrics()

	// Initialize repository and triage board
	repo := repository.New(db)
	board := inquiry.NewBoard(repo)

	// Initialize sales notifier if enabled
	var inquiryNotifier handlers.InquiryNotifier
	if cfg.Notify.Enabled {
		n, err := notifier.New(&cfg.Notify)
		if err != nil {
			logrus.Fatalf("Failed to create notifier: %v", err)
		}
		inquiryNotifier = n
		logrus.Info("Sales notifications enabled")
	} else {
		logrus.Info("Sales notifications disabled")
	}

	// Initialize auth manager
	authMgr := auth.NewManager(cfg.Auth)

	// Initialize stats refresher
	refresher := stats.NewRefresher(&cfg.Stats, repo, m)

	// Initialize HTTP handlers
	h := handlers.NewHandlers(db, repo, board, authMgr, inquiryNotifier, refresher, m)

	// Setup HTTP server
	router := setupRouter(h)
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start stats refresher
	if err := refresher.Start(); err != nil {
		logrus.Fatalf("Failed to start stats refresher: %v", err)
	}

	// Start HTTP server in a goroutine
	go func() {
		logrus.Infof("Starting HTTP server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("HTTP server error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Stop stats refresher
	if err := refresher.Stop(); err != nil {
		logrus.Errorf("Failed to stop stats refresher: %v", err)
	}

	// Wait for any in-flight refresh to finish
	refresher.Wait()

	// Shutdown HTTP server
	if err := server.Shutdown(ctx); err != nil {
		logrus.Errorf("HTTP server shutdown error: %v", err)
	}

	logrus.Info("Server stopped gracefully")
}

// setupRouter sets up the HTTP router with middleware
func setupRouter(h *handlers.Handlers) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Create router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(loggerMiddleware())

	// Setup routes
	h.SetupRoutes(router)

	return router
}

// loggerMiddleware adds logging middleware
func loggerMiddleware() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
			param.ClientIP,
			param.TimeStamp.Format(time.RFC1123),
			param.Method,
			param.Path,
			param.Request.Proto,
			param.StatusCode,
			param.Latency,
			param.Request.UserAgent(),
			param.ErrorMessage,
		)
	})
}
