package handlers

import (
	"net/http"

	"github.com/upb/lambda-cost-estimator/app"
	"github.com/upb/lambda-cost-estimator/services"
	"github.com/upb/lambda-cost-estimator/utils"
	"go.uber.org/zap"
)

// EstimateCostHandler handles GET /cost
func EstimateCostHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := deps.Logger
		if deps.Estimator == nil {
			HandleServiceError(w, services.ErrEstimatorUnavailable, logger)
			return
		}

		query, verr := ParseCostQuery(r.URL.Query())
		if verr != nil {
			deps.ContextLogger().Debug(r.Context(), "rejected cost query",
				zap.Any("fields", verr.Fields))
			HandleServiceError(w, validationDetails(verr), logger)
			return
		}

		estimate, err := deps.Estimator.Estimate(query.Request())
		if err != nil {
			HandleServiceError(w, err, logger)
			return
		}

		deps.ContextLogger().Info(r.Context(), "cost estimated",
			zap.Int("memory_mb", estimate.Inputs.MemoryMB),
			zap.String("basis", string(estimate.Pricing.Basis)),
			zap.Float64("total_cost_usd_rounded", estimate.Pricing.TotalCostUSDRounded))

		logWriteError(deps, r, utils.WriteOK(w, estimate))
	}
}
