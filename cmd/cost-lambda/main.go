package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/upb/lambda-cost-estimator/app"
	"github.com/upb/lambda-cost-estimator/config"
	"github.com/upb/lambda-cost-estimator/internal/lambdaadapter"
	"github.com/upb/lambda-cost-estimator/internal/observability"
	"github.com/upb/lambda-cost-estimator/routes"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	cfg, err := config.New(ctx)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Observability)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	deps, err := app.NewDependencies(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize dependencies", zap.Error(err))
	}

	adapter := lambdaadapter.New(routes.SetupRoutes(deps), logger.Named("lambda"))
	lambda.Start(adapter.Invoke)
}
