package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/gideontax/gideon-api/internal/handlers"
	"github.com/gideontax/gideon-api/internal/helpers"
	"github.com/gideontax/gideon-api/internal/logger"
	"github.com/gideontax/gideon-api/internal/repository"
	"github.com/gideontax/gideon-api/internal/services"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Application holds all dependencies for the return processor Lambda handler
type Application struct {
	returnService *services.ReturnService
}

// HandleSQSEvent processes batched return-compute jobs from SQS
func (app *Application) HandleSQSEvent(ctx context.Context, event events.SQSEvent) error {
	logger.Info("Return processor handling SQS event",
		zap.Int("record_count", len(event.Records)))

	for _, record := range event.Records {
		if err := app.processComputeRecord(ctx, record); err != nil {
			logger.Error("Failed to process compute record",
				zap.String("message_id", record.MessageId),
				zap.Error(err))
			// Return the error so SQS retries the failed message; records
			// already processed were persisted and are safe to skip on redrive.
			return fmt.Errorf("failed to process message %s: %w", record.MessageId, err)
		}
	}

	logger.Info("Successfully processed all compute records",
		zap.Int("count", len(event.Records)))
	return nil
}

// processComputeRecord computes and persists one return from an SQS record.
func (app *Application) processComputeRecord(ctx context.Context, record events.SQSMessage) error {
	var batchID string
	if attr, exists := record.MessageAttributes["BatchID"]; exists && attr.StringValue != nil {
		batchID = *attr.StringValue
	}

	var job handlers.ComputeReturnRequest
	if err := json.Unmarshal([]byte(record.Body), &job); err != nil {
		return fmt.Errorf("failed to unmarshal compute job: %w", err)
	}

	input, err := job.ToReturnInput()
	if err != nil {
		return fmt.Errorf("invalid compute job: %w", err)
	}

	result, err := app.returnService.ComputeReturn(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to compute return: %w", err)
	}

	logger.Info("Processed compute job",
		zap.String("batch_id", batchID),
		zap.String("message_id", record.MessageId),
		zap.String("computation_id", result.ComputationID.String()),
		zap.String("tax_year", result.TaxYear.String()))

	return nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v\n", err)
	}

	stage, ok := helpers.StageFromEnv()
	if !ok {
		stage = helpers.StageProd
	}
	logger.InitLogger(stage)
	defer logger.Sync()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := pgxpool.New(context.Background(), dbURL)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}
	defer pool.Close()

	app := &Application{
		returnService: services.NewReturnService(repository.NewReturnRepository(pool)),
	}

	lambda.Start(app.HandleSQSEvent)
}
