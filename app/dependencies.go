package app

import (
	"context"
	"fmt"

	"github.com/upb/lambda-cost-estimator/config"
	"github.com/upb/lambda-cost-estimator/internal/observability"
	"github.com/upb/lambda-cost-estimator/services/estimator"
	"go.uber.org/zap"
)

// Dependencies holds all application dependencies.
// This is the central wiring point for dependency injection.
type Dependencies struct {
	// Infrastructure
	Config *config.Config
	Logger *zap.Logger

	// Services
	Estimator *estimator.Service
}

// NewDependencies creates and wires up all application dependencies.
func NewDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	deps := &Dependencies{
		Config:    cfg,
		Logger:    logger,
		Estimator: estimator.NewService(logger.Named("estimator")),
	}

	logger.Info("all dependencies initialized successfully",
		zap.String("environment", cfg.Environment))
	return deps, nil
}

// ContextLogger returns the request-aware logger view of Logger
func (d *Dependencies) ContextLogger() observability.Logger {
	return observability.NewContextLogger(d.Logger)
}

// Close gracefully shuts down all dependencies
func (d *Dependencies) Close(ctx context.Context) error {
	if d.Logger != nil {
		d.Logger.Info("shutting down dependencies")
		_ = d.Logger.Sync()
	}
	return nil
}
