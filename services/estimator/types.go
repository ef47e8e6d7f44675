package estimator

import (
	"encoding/json"
)

// Pricing constants for AWS Lambda (USD), x86 on-demand rates.
const (
	GBSecondPrice          = 0.0000166667
	RequestPricePerMillion = 0.20
)

// Memory range accepted by Lambda, in MB.
const (
	MinMemoryMB = 128
	MaxMemoryMB = 10240
)

// Defaults applied when a query parameter is absent.
const (
	DefaultMemoryMB         = 128
	DefaultRequestsPerMonth = 1_000_000
	DefaultAvgDurationMS    = 100.0
)

// Basis names the computation path that produced the duration cost.
type Basis string

const (
	BasisHoursMonth    Basis = "hours_month"
	BasisAvgDurationMS Basis = "avg_duration_ms"
)

// Notes attached to every estimate.
var Notes = []string{
	"Lambda pricing is based on memory (CPU scales with memory).",
	"Free tier not included in this estimate.",
}

// HoursMonth is an optional monthly runtime in hours.
// Valid is false when the caller did not supply a value.
type HoursMonth struct {
	Hours float64
	Valid bool
}

// Hours returns a present HoursMonth.
func Hours(h float64) HoursMonth {
	return HoursMonth{Hours: h, Valid: true}
}

// MarshalJSON encodes an absent value as null.
func (h HoursMonth) MarshalJSON() ([]byte, error) {
	if !h.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(h.Hours)
}

// Request holds the inputs of a single estimate.
type Request struct {
	MemoryMB         int
	RequestsPerMonth int64
	AvgDurationMS    float64
	HoursMonth       HoursMonth
	CPUNote          *string
}

// DefaultRequest returns a request populated with the documented defaults.
func DefaultRequest() Request {
	return Request{
		MemoryMB:         DefaultMemoryMB,
		RequestsPerMonth: DefaultRequestsPerMonth,
		AvgDurationMS:    DefaultAvgDurationMS,
	}
}

// Basis reports which path the duration cost is computed from.
func (r Request) Basis() Basis {
	if r.HoursMonth.Valid {
		return BasisHoursMonth
	}
	return BasisAvgDurationMS
}

// Inputs echoes the request verbatim.
type Inputs struct {
	MemoryMB         int        `json:"memory_mb"`
	RequestsPerMonth int64      `json:"requests_per_month"`
	AvgDurationMS    float64    `json:"avg_duration_ms"`
	HoursMonth       HoursMonth `json:"hours_month"`
	CPUNote          *string    `json:"cpu_note"`
}

// Pricing is the computed cost breakdown.
type Pricing struct {
	GBSeconds           float64 `json:"gb_seconds"`
	DurationCostUSD     float64 `json:"duration_cost_usd"`
	RequestCostUSD      float64 `json:"request_cost_usd"`
	TotalCostUSD        float64 `json:"total_cost_usd"`
	TotalCostUSDRounded float64 `json:"total_cost_usd_rounded"`
	Basis               Basis   `json:"basis"`
}

// Estimate is the response body of GET /cost.
type Estimate struct {
	Inputs            Inputs   `json:"inputs"`
	Pricing           Pricing  `json:"pricing"`
	EstimatedCostText string   `json:"estimated_cost_text"`
	Notes             []string `json:"notes"`
}
