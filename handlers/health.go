package handlers

import (
	"net/http"

	"github.com/upb/lambda-cost-estimator/app"
	"github.com/upb/lambda-cost-estimator/utils"
)

// HealthCheck returns a simple liveness handler
func HealthCheck(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logWriteError(deps, r, utils.WriteOK(w, map[string]string{"status": "ok"}))
	}
}

// ReadinessCheck reports whether the estimator is wired
func ReadinessCheck(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]string{}
		status := "ready"
		httpStatus := http.StatusOK

		if deps == nil || deps.Estimator == nil {
			checks["estimator"] = "not_initialized"
			status = "not_ready"
			httpStatus = http.StatusServiceUnavailable
		} else {
			checks["estimator"] = "healthy"
		}

		err := utils.WriteJSON(w, httpStatus, map[string]interface{}{
			"status": status,
			"checks": checks,
		})
		logWriteError(deps, r, err)
	}
}
