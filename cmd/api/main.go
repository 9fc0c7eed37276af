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

	"github.com/gideontax/gideon-api/internal/helpers"
	"github.com/gideontax/gideon-api/internal/logger"
	"github.com/gideontax/gideon-api/internal/server"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// @title           Gideon Tax API
// @version         1.0
// @description     Federal income tax computation service

// @host      localhost:8000
// @BasePath  /api/v1
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v\n", err)
	}

	stage, ok := helpers.StageFromEnv()
	if !ok {
		log.Fatalf("STAGE environment variable must be one of %s, %s, %s",
			helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}
	logger.InitLogger(stage)
	defer logger.Sync()

	// Initialize router
	router := gin.Default()

	// Initialize handlers and routes
	server.InitializeHandlers()
	server.InitializeRoutes(router)
	defer server.Shutdown()

	port := helpers.EnvWithDefault("API_PORT", "8000")

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second, // Prevent Slowloris attacks
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server starting", zap.String("port", port), zap.String("stage", stage))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}
