package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/upb/lambda-cost-estimator/app"
	"github.com/upb/lambda-cost-estimator/config"
	"github.com/upb/lambda-cost-estimator/services/estimator"
	"go.uber.org/zap/zaptest"
)

func testDeps(t *testing.T) *app.Dependencies {
	logger := zaptest.NewLogger(t)
	return &app.Dependencies{
		Config:    &config.Config{Environment: "test"},
		Logger:    logger,
		Estimator: estimator.NewService(logger),
	}
}

func serve(t *testing.T, h http.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}
