package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/upb/lambda-cost-estimator/app"
	"github.com/upb/lambda-cost-estimator/handlers"
	"github.com/upb/lambda-cost-estimator/middleware"
)

// SetupRoutes configures all application routes and middleware
func SetupRoutes(deps *app.Dependencies) http.Handler {
	r := chi.NewRouter()

	// Core middleware
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(deps.ContextLogger()))
	r.Use(chimw.Recoverer)
	if deps.Config != nil && deps.Config.Server.RequestTimeout > 0 {
		r.Use(chimw.Timeout(deps.Config.Server.RequestTimeout))
	}

	// CORS middleware
	r.Use(cors.Handler(corsOptions(deps)))

	// Health check endpoints
	r.Get("/healthz", handlers.HealthCheck(deps))
	r.Get("/readyz", handlers.ReadinessCheck(deps))

	// Estimator endpoints
	r.Get("/", handlers.RootHandler(deps))
	r.Get("/cost", handlers.EstimateCostHandler(deps))

	r.NotFound(handlers.NotFoundHandler(deps))
	r.MethodNotAllowed(handlers.MethodNotAllowedHandler(deps))

	return r
}

func corsOptions(deps *app.Dependencies) cors.Options {
	origins := []string{"*"}
	maxAge := 300
	if deps.Config != nil {
		if len(deps.Config.CORS.AllowedOrigins) > 0 {
			origins = deps.Config.CORS.AllowedOrigins
		}
		if deps.Config.CORS.MaxAge > 0 {
			maxAge = deps.Config.CORS.MaxAge
		}
	}
	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         maxAge,
	}
}
