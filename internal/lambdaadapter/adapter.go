// Package lambdaadapter serves the HTTP router from AWS Lambda, accepting
// both API Gateway REST (payload 1.0) and HTTP API (payload 2.0) events.
package lambdaadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"go.uber.org/zap"
)

const payloadVersionV2 = "2.0"

// Adapter dispatches raw Lambda events to an http.Handler.
type Adapter struct {
	v1     *httpadapter.HandlerAdapter
	v2     *httpadapter.HandlerAdapterV2
	logger *zap.Logger
}

// New creates an Adapter for handler.
func New(handler http.Handler, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{
		v1:     httpadapter.New(handler),
		v2:     httpadapter.NewV2(handler),
		logger: logger,
	}
}

// envelope holds the fields used to tell payload versions apart.
type envelope struct {
	Version string `json:"version"`
}

// Invoke is the Lambda handler. Its signature is accepted by lambda.Start.
func (a *Adapter) Invoke(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, fmt.Errorf("failed to decode event: %w", err)
	}

	if env.Version == payloadVersionV2 {
		var event events.APIGatewayV2HTTPRequest
		if err := json.Unmarshal(payload, &event); err != nil {
			return nil, fmt.Errorf("failed to decode HTTP API event: %w", err)
		}
		a.logger.Debug("dispatching HTTP API event",
			zap.String("method", event.RequestContext.HTTP.Method),
			zap.String("path", event.RawPath))
		return a.v2.ProxyWithContext(ctx, event)
	}

	var event events.APIGatewayProxyRequest
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to decode REST API event: %w", err)
	}
	a.logger.Debug("dispatching REST API event",
		zap.String("method", event.HTTPMethod),
		zap.String("path", event.Path))
	return a.v1.ProxyWithContext(ctx, event)
}
