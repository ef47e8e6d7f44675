package handlers

import (
	"net/http"

	"github.com/upb/lambda-cost-estimator/app"
	"github.com/upb/lambda-cost-estimator/utils"
	"go.uber.org/zap"
)

// GreetingMessage is the fixed body of GET /. Existing clients match on it.
const GreetingMessage = "hello from fastapi on lambda"

// GreetingResponse is the response body of GET /
type GreetingResponse struct {
	Message string `json:"message"`
}

// RootHandler returns the fixed welcome message
func RootHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logWriteError(deps, r, utils.WriteOK(w, GreetingResponse{Message: GreetingMessage}))
	}
}

// NotFoundHandler answers unknown routes with a JSON 404
func NotFoundHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logWriteError(deps, r, utils.WriteNotFound(w, "endpoint not found"))
	}
}

// MethodNotAllowedHandler answers known routes hit with the wrong method
func MethodNotAllowedHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logWriteError(deps, r, utils.WriteMethodNotAllowed(w, ""))
	}
}

// logWriteError logs a failed response write with the request ID
func logWriteError(deps *app.Dependencies, r *http.Request, err error) {
	if err == nil || deps == nil {
		return
	}
	deps.ContextLogger().Error(r.Context(), "failed to write response",
		zap.String("path", r.URL.Path),
		zap.Error(err))
}
