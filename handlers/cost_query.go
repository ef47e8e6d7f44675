package handlers

import (
	"fmt"
	"math"
	"net/url"
	"strconv"

	"github.com/upb/lambda-cost-estimator/services/estimator"
	"github.com/upb/lambda-cost-estimator/utils"
)

// Query parameter names accepted by GET /cost.
const (
	paramMemoryMB         = "memory_mb"
	paramRequestsPerMonth = "requests_per_month"
	paramAvgDurationMS    = "avg_duration_ms"
	paramHoursMonth       = "hours_month"
	paramCPUNote          = "cpu_note"
)

// CostQuery is the decoded query string of GET /cost.
// The range tags must agree with estimator.MinMemoryMB and MaxMemoryMB.
type CostQuery struct {
	MemoryMB         int      `query:"memory_mb" validate:"gte=128,lte=10240"`
	RequestsPerMonth int64    `query:"requests_per_month" validate:"gte=0"`
	AvgDurationMS    float64  `query:"avg_duration_ms" validate:"gte=0"`
	HoursMonth       *float64 `query:"hours_month" validate:"omitempty,gte=0"`
	CPUNote          *string  `query:"cpu_note"`
}

// defaultCostQuery returns the query used when no parameters are sent
func defaultCostQuery() CostQuery {
	return CostQuery{
		MemoryMB:         estimator.DefaultMemoryMB,
		RequestsPerMonth: estimator.DefaultRequestsPerMonth,
		AvgDurationMS:    estimator.DefaultAvgDurationMS,
	}
}

// ParseCostQuery decodes and validates the query string. Every offending
// parameter is reported; the estimator must not run unless err is nil.
func ParseCostQuery(values url.Values) (CostQuery, *utils.ValidationError) {
	q := defaultCostQuery()
	verr := utils.NewFieldError()

	if raw, ok := lastValue(values, paramMemoryMB); ok {
		v, err := strconv.Atoi(raw)
		if err != nil {
			verr.Add(paramMemoryMB, fmt.Sprintf("%s must be a valid integer", paramMemoryMB))
		} else {
			q.MemoryMB = v
		}
	}

	if raw, ok := lastValue(values, paramRequestsPerMonth); ok {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			verr.Add(paramRequestsPerMonth, fmt.Sprintf("%s must be a valid integer", paramRequestsPerMonth))
		} else {
			q.RequestsPerMonth = v
		}
	}

	if raw, ok := lastValue(values, paramAvgDurationMS); ok {
		v, msg := parseFiniteFloat(raw, paramAvgDurationMS)
		if msg != "" {
			verr.Add(paramAvgDurationMS, msg)
		} else {
			q.AvgDurationMS = v
		}
	}

	if raw, ok := lastValue(values, paramHoursMonth); ok {
		v, msg := parseFiniteFloat(raw, paramHoursMonth)
		if msg != "" {
			verr.Add(paramHoursMonth, msg)
		} else {
			q.HoursMonth = &v
		}
	}

	if raw, ok := lastValue(values, paramCPUNote); ok {
		note := raw
		q.CPUNote = &note
	}

	if err := utils.ValidateStruct(&q); err != nil {
		if rangeErr, ok := utils.AsValidationError(err); ok {
			verr.Merge(rangeErr)
		} else {
			verr.Add("query", err.Error())
		}
	}

	if verr.HasErrors() {
		return q, verr
	}
	return q, nil
}

// Request converts a validated query into an estimator request
func (q CostQuery) Request() estimator.Request {
	req := estimator.Request{
		MemoryMB:         q.MemoryMB,
		RequestsPerMonth: q.RequestsPerMonth,
		AvgDurationMS:    q.AvgDurationMS,
		CPUNote:          q.CPUNote,
	}
	if q.HoursMonth != nil {
		req.HoursMonth = estimator.Hours(*q.HoursMonth)
	}
	return req
}

// lastValue returns the last occurrence of key; repeated scalars keep the last.
func lastValue(values url.Values, key string) (string, bool) {
	vs, ok := values[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

func parseFiniteFloat(raw, name string) (float64, string) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Sprintf("%s must be a valid number", name)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Sprintf("%s must be a finite number", name)
	}
	return v, ""
}
