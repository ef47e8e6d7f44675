package handlers

import (
	"net/http"

	"github.com/upb/lambda-cost-estimator/services"
	"github.com/upb/lambda-cost-estimator/utils"
	"go.uber.org/zap"
)

// HandleServiceError maps domain errors to HTTP responses
func HandleServiceError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if err == nil {
		return
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	details := services.GetErrorDetails(err)

	switch {
	case services.IsValidationError(err):
		// Parameter range and type violations are client errors.
		if err := utils.WriteUnprocessableEntity(w, "Validation failed", details); err != nil {
			logger.Error("failed to write validation response", zap.Error(err))
		}

	case services.IsUnavailableError(err):
		logger.Warn("service unavailable", zap.Error(err))
		if err := utils.WriteError(w, http.StatusServiceUnavailable, "Service temporarily unavailable", nil); err != nil {
			logger.Error("failed to write unavailable response", zap.Error(err))
		}

	case services.IsInternalError(err):
		// Log internal errors but return generic message
		logger.Error("internal server error", zap.Error(err))
		if err := utils.WriteInternalServerError(w, "An internal error occurred"); err != nil {
			logger.Error("failed to write internal error response", zap.Error(err))
		}

	default:
		logger.Error("unhandled error type",
			zap.Error(err),
			zap.String("error_type", string(services.GetErrorType(err))))
		if err := utils.WriteInternalServerError(w, "An unexpected error occurred"); err != nil {
			logger.Error("failed to write internal error response", zap.Error(err))
		}
	}
}

// validationDetails converts field failures into response details
func validationDetails(verr *utils.ValidationError) *services.DomainError {
	derr := services.WrapValidation("invalid query parameters", verr)
	for field, message := range verr.Fields {
		derr.WithDetail(field, message)
	}
	return derr
}
