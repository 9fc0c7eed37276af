//go:build lambda
// +build lambda

package main

import (
	"context"

	"github.com/gideontax/gideon-api/internal/helpers"
	"github.com/gideontax/gideon-api/internal/logger"
	"github.com/gideontax/gideon-api/internal/server"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/davecgh/go-spew/spew"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title           Gideon Tax API
// @version         1.0
// @description     Federal income tax computation service

// @host      localhost:8000
// @BasePath  /api/v1

var ginLambda *ginadapter.GinLambda

func init() {
	stage, ok := helpers.StageFromEnv()
	if !ok {
		stage = helpers.StageProd
	}
	logger.InitLogger(stage)

	r := gin.Default()
	server.InitializeHandlers()
	server.InitializeRoutes(r)

	ginLambda = ginadapter.New(r)
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger.Debug("Received Lambda request",
		zap.String("path", req.Path),
		zap.Any("request", spew.Sdump(req)),
	)

	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	defer logger.Sync()
	lambda.Start(Handler)
}
