package server

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	awsclient "github.com/gideontax/gideon-api/internal/client/aws"
	"github.com/gideontax/gideon-api/internal/handlers"
	"github.com/gideontax/gideon-api/internal/logger"
	"github.com/gideontax/gideon-api/internal/middleware"
	"github.com/gideontax/gideon-api/internal/repository"
	"github.com/gideontax/gideon-api/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handler definitions
var (
	healthHandler *handlers.HealthHandler
	returnHandler *handlers.ReturnHandler

	// Database
	connPool *pgxpool.Pool
)

// InitializeHandlers wires the service graph from the environment. Both the
// database and the batch queue are optional: without DATABASE_URL computed
// returns are not persisted, and without BATCH_QUEUE_URL batch requests run
// inline.
func InitializeHandlers() {
	var store services.ReturnStore

	if dbURL := resolveDatabaseURL(); dbURL != "" {
		poolConfig, err := pgxpool.ParseConfig(dbURL)
		if err != nil {
			logger.Fatal("Unable to parse database connection string", zap.Error(err))
		}

		poolConfig.MaxConns = 20
		poolConfig.MinConns = 5
		poolConfig.MaxConnLifetime = time.Hour
		poolConfig.MaxConnIdleTime = time.Minute * 30

		connPool, err = pgxpool.NewWithConfig(context.Background(), poolConfig)
		if err != nil {
			logger.Fatal("Unable to create connection pool", zap.Error(err))
		}

		store = repository.NewReturnRepository(connPool)
		logger.Info("Return persistence enabled")
	} else {
		logger.Info("DATABASE_URL not set, computed returns will not be persisted")
	}

	var publisher handlers.BatchPublisher
	if queueURL := os.Getenv("BATCH_QUEUE_URL"); queueURL != "" {
		sqsPublisher, err := awsclient.NewSQSPublisher(context.Background(), queueURL)
		if err != nil {
			logger.Fatal("Unable to create SQS publisher", zap.Error(err))
		}
		publisher = sqsPublisher
		logger.Info("Batch queue enabled", zap.String("queue_url", queueURL))
	} else {
		logger.Info("BATCH_QUEUE_URL not set, batches will be computed inline")
	}

	returnService := services.NewReturnService(store)

	healthHandler = handlers.NewHealthHandler()
	returnHandler = handlers.NewReturnHandler(returnService, publisher)
}

// resolveDatabaseURL reads the connection string from Secrets Manager when a
// secret ARN is configured, falling back to DATABASE_URL. Returns empty when
// neither is set.
func resolveDatabaseURL() string {
	if os.Getenv("DATABASE_URL_SECRET_ARN") == "" {
		return os.Getenv("DATABASE_URL")
	}

	client, err := awsclient.NewSecretsManagerClient(context.Background())
	if err != nil {
		logger.Fatal("Unable to create Secrets Manager client", zap.Error(err))
	}

	dbURL, err := client.GetSecretString(context.Background(), "DATABASE_URL_SECRET_ARN", "DATABASE_URL")
	if err != nil {
		logger.Fatal("Unable to resolve database connection string", zap.Error(err))
	}
	return dbURL
}

// InitializeRoutes attaches middleware and the API routes to the router.
func InitializeRoutes(router *gin.Engine) {
	router.Use(configureCORS())
	router.Use(middleware.CorrelationID())

	rateLimiter := middleware.NewRateLimiter(rateLimitFromEnv())
	router.Use(rateLimiter.Middleware())

	// Add Swagger endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/tax-years", returnHandler.ListTaxYears)

		returns := v1.Group("/returns")
		{
			returns.POST("/compute", returnHandler.ComputeReturn)
			returns.POST("/batch", returnHandler.ComputeBatch)
			returns.GET("/:computation_id", returnHandler.GetComputedReturn)
		}

		deductions := v1.Group("/deductions")
		{
			deductions.POST("/standard", returnHandler.StandardDeduction)
		}
	}
}

// Shutdown releases server-held resources.
func Shutdown() {
	if connPool != nil {
		connPool.Close()
	}
}

func rateLimitFromEnv() (int, int) {
	requestsPerSecond := 50
	burst := 100
	if v, err := strconv.Atoi(os.Getenv("RATE_LIMIT_RPS")); err == nil && v > 0 {
		requestsPerSecond = v
	}
	if v, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST")); err == nil && v > 0 {
		burst = v
	}
	return requestsPerSecond, burst
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	// Get allowed origins from environment variable
	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		// Default to localhost if not set
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-API-Key", "X-Correlation-ID"}
	corsConfig.ExposeHeaders = []string{"X-Correlation-ID"}
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
