package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/upb/lambda-cost-estimator/internal/observability"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func captureRequestID(seen *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*seen = observability.RequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequestID(t *testing.T) {
	t.Run("uses inbound header", func(t *testing.T) {
		var seen string
		req := httptest.NewRequest(http.MethodGet, "/cost", nil)
		req.Header.Set(RequestIDHeader, "client-id-1")
		w := httptest.NewRecorder()

		RequestID(captureRequestID(&seen)).ServeHTTP(w, req)

		assert.Equal(t, "client-id-1", seen)
		assert.Equal(t, "client-id-1", w.Header().Get(RequestIDHeader))
	})

	t.Run("uses lambda request id", func(t *testing.T) {
		var seen string
		ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{AwsRequestID: "aws-req-9"})
		req := httptest.NewRequest(http.MethodGet, "/cost", nil).WithContext(ctx)
		w := httptest.NewRecorder()

		RequestID(captureRequestID(&seen)).ServeHTTP(w, req)

		assert.Equal(t, "aws-req-9", seen)
		assert.Equal(t, "aws-req-9", w.Header().Get(RequestIDHeader))
	})

	t.Run("generates uuid", func(t *testing.T) {
		var seen string
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()

		RequestID(captureRequestID(&seen)).ServeHTTP(w, req)

		_, err := uuid.Parse(seen)
		require.NoError(t, err)
		assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
	})

	t.Run("replaces oversized header", func(t *testing.T) {
		var seen string
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, strings.Repeat("x", maxRequestIDLength+1))
		w := httptest.NewRecorder()

		RequestID(captureRequestID(&seen)).ServeHTTP(w, req)

		_, err := uuid.Parse(seen)
		assert.NoError(t, err)
	})
}

func TestAccessLog(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := observability.NewContextLogger(zap.New(core))

	handler := func(status int) http.Handler {
		return RequestID(AccessLog(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte("{}"))
		})))
	}

	t.Run("logs success at info", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/cost?memory_mb=512", nil)
		req.Header.Set(RequestIDHeader, "log-1")

		handler(http.StatusOK).ServeHTTP(httptest.NewRecorder(), req)

		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
		fields := entries[0].ContextMap()
		assert.Equal(t, "GET", fields["method"])
		assert.Equal(t, "/cost", fields["path"])
		assert.Equal(t, "memory_mb=512", fields["query"])
		assert.Equal(t, int64(200), fields["status"])
		assert.Equal(t, int64(2), fields["bytes"])
		assert.Equal(t, "log-1", fields["request_id"])
	})

	t.Run("logs server errors at error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/cost", nil)

		handler(http.StatusInternalServerError).ServeHTTP(httptest.NewRecorder(), req)

		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	})
}
