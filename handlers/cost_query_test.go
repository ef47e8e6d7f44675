package handlers

import (
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/upb/lambda-cost-estimator/services/estimator"
)

func TestParseCostQuery_Defaults(t *testing.T) {
	q, verr := ParseCostQuery(url.Values{})
	require.Nil(t, verr)

	assert.Equal(t, estimator.DefaultMemoryMB, q.MemoryMB)
	assert.Equal(t, int64(estimator.DefaultRequestsPerMonth), q.RequestsPerMonth)
	assert.Equal(t, estimator.DefaultAvgDurationMS, q.AvgDurationMS)
	assert.Nil(t, q.HoursMonth)
	assert.Nil(t, q.CPUNote)

	assert.Equal(t, estimator.DefaultRequest(), q.Request())
}

func TestParseCostQuery_BoundsMatchEstimator(t *testing.T) {
	for _, mem := range []int{estimator.MinMemoryMB, estimator.MaxMemoryMB} {
		_, verr := ParseCostQuery(url.Values{"memory_mb": {strconv.Itoa(mem)}})
		assert.Nil(t, verr, "memory_mb=%d", mem)
	}
	for _, mem := range []int{estimator.MinMemoryMB - 1, estimator.MaxMemoryMB + 1} {
		_, verr := ParseCostQuery(url.Values{"memory_mb": {strconv.Itoa(mem)}})
		assert.NotNil(t, verr, "memory_mb=%d", mem)
	}
}

func TestCostQuery_Request(t *testing.T) {
	values, err := url.ParseQuery("memory_mb=2048&requests_per_month=10&avg_duration_ms=2.5&hours_month=0&cpu_note=graviton")
	require.NoError(t, err)

	q, verr := ParseCostQuery(values)
	require.Nil(t, verr)

	req := q.Request()
	assert.Equal(t, 2048, req.MemoryMB)
	assert.Equal(t, int64(10), req.RequestsPerMonth)
	assert.Equal(t, 2.5, req.AvgDurationMS)
	assert.Equal(t, estimator.Hours(0), req.HoursMonth)
	assert.Equal(t, estimator.BasisHoursMonth, req.Basis())
	require.NotNil(t, req.CPUNote)
	assert.Equal(t, "graviton", *req.CPUNote)
}

func TestParseCostQuery_AcceptsScientificNotation(t *testing.T) {
	q, verr := ParseCostQuery(url.Values{"avg_duration_ms": {"1e3"}})
	require.Nil(t, verr)
	assert.Equal(t, 1000.0, q.AvgDurationMS)
}
