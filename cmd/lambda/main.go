package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/saulo-duarte/quiz-survey-api/internal/config"
	"github.com/saulo-duarte/quiz-survey-api/internal/container"
)

var adapter *httpadapter.HandlerAdapter

func init() {
	cfg, err := config.Load("")
	if err != nil {
		config.Logger.WithError(err).Fatal("Failed to load configuration")
	}

	ctn, err := container.New(cfg)
	if err != nil {
		config.Logger.WithError(err).Fatal("Failed to build container")
	}

	adapter = httpadapter.New(ctn.Router())
}

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return adapter.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(handler)
}
