package models

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregation_SampleSetGetOrCreate(t *testing.T) {
	t.Parallel()

	agg := NewAggregation()
	first := agg.SampleSet("/api/v1/foo")
	first.Add(0.5)
	second := agg.SampleSet("/api/v1/foo")
	second.Add(1.5)

	assert.Same(t, first, second)
	assert.Equal(t, 2, agg.Samples["/api/v1/foo"].Count())
	assert.Equal(t, []float64{0.5, 1.5}, agg.Samples["/api/v1/foo"].Latencies)
}

func TestAggregation_ErrorRate(t *testing.T) {
	t.Parallel()

	agg := NewAggregation()
	assert.Equal(t, 0.0, agg.ErrorRate())

	agg.TotalCount = 10
	agg.ErrorCount = 6
	assert.InDelta(t, 0.6, agg.ErrorRate(), 1e-12)
}

func TestLogFileCandidate_ReportName(t *testing.T) {
	t.Parallel()

	candidate := &LogFileCandidate{Date: civil.Date{Year: 2017, Month: 6, Day: 30}}
	assert.Equal(t, "report-2017.06.30.html", candidate.ReportName())
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	d, err := ParseDate(LogDateLayout, "20230215")
	require.NoError(t, err)
	assert.Equal(t, civil.Date{Year: 2023, Month: 2, Day: 15}, d)

	d, err = ParseDate(ReportDateLayout, "2023.02.15")
	require.NoError(t, err)
	assert.Equal(t, civil.Date{Year: 2023, Month: 2, Day: 15}, d)

	_, err = ParseDate(LogDateLayout, "20231340")
	assert.Error(t, err)
}
