// Package estimator computes monthly AWS Lambda cost estimates.
//
// Duration is billed per GB-second and requests per million invocations.
// The GB-seconds come either from a total monthly runtime (hours_month) or
// from request count times average duration; hours_month wins when present.
// Request cost is always derived from requests_per_month.
package estimator

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/upb/lambda-cost-estimator/services"
	"go.uber.org/zap"
)

const (
	mbPerGB          = 1024.0
	secondsPerHour   = 3600.0
	msPerSecond      = 1000.0
	requestsPerUnit  = 1_000_000.0
	roundingPlaces   = 6
	costTextTemplate = "Estimated monthly cost: $"
)

// Service computes cost estimates. It holds no mutable state and is safe for
// concurrent use.
type Service struct {
	logger *zap.Logger
}

// NewService creates a new estimator service
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger}
}

// Estimate computes the cost breakdown for an already validated request.
// It fails only when the inputs overflow float64 arithmetic.
func (s *Service) Estimate(req Request) (Estimate, error) {
	memoryGB := float64(req.MemoryMB) / mbPerGB

	var gbSeconds float64
	basis := req.Basis()
	switch basis {
	case BasisHoursMonth:
		gbSeconds = req.HoursMonth.Hours * secondsPerHour * memoryGB
	case BasisAvgDurationMS:
		gbSeconds = float64(req.RequestsPerMonth) * (req.AvgDurationMS / msPerSecond) * memoryGB
	}

	durationCost := gbSeconds * GBSecondPrice
	requestCost := (float64(req.RequestsPerMonth) / requestsPerUnit) * RequestPricePerMillion
	total := durationCost + requestCost

	rounded, err := RoundUSD(total)
	if err != nil {
		s.logger.Warn("estimate overflowed",
			zap.Int("memory_mb", req.MemoryMB),
			zap.String("basis", string(basis)),
			zap.Float64("gb_seconds", gbSeconds))
		return Estimate{}, services.WrapInternal("cost estimate is not a finite number", err)
	}
	roundedValue, _ := rounded.Float64()

	s.logger.Debug("estimate computed",
		zap.Int("memory_mb", req.MemoryMB),
		zap.String("basis", string(basis)),
		zap.Float64("gb_seconds", gbSeconds),
		zap.Float64("total_cost_usd", total))

	notes := make([]string, len(Notes))
	copy(notes, Notes)

	return Estimate{
		Inputs: Inputs{
			MemoryMB:         req.MemoryMB,
			RequestsPerMonth: req.RequestsPerMonth,
			AvgDurationMS:    req.AvgDurationMS,
			HoursMonth:       req.HoursMonth,
			CPUNote:          req.CPUNote,
		},
		Pricing: Pricing{
			GBSeconds:           gbSeconds,
			DurationCostUSD:     durationCost,
			RequestCostUSD:      requestCost,
			TotalCostUSD:        total,
			TotalCostUSDRounded: roundedValue,
			Basis:               basis,
		},
		EstimatedCostText: costTextTemplate + FormatUSD(roundedValue),
		Notes:             notes,
	}, nil
}

// RoundUSD rounds the exact binary value of v to six decimal places.
// Exact ties go to the even digit. Non-finite values are rejected.
func RoundUSD(v float64) (decimal.Decimal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero, fmt.Errorf("cannot round %v", v)
	}
	return decimal.NewFromString(strconv.FormatFloat(v, 'f', roundingPlaces, 64))
}

// FormatUSD renders v in its shortest form: exponent notation below 1e-4
// and from 1e16 up, otherwise plain notation with at least one fractional
// digit, e.g. "0.0", "0.408334", "1e-05".
func FormatUSD(v float64) string {
	if abs := math.Abs(v); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
