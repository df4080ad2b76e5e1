package aggregators

import (
	"context"
	"errors"
	"fmt"

	"log-analyzer/internal/models"
	"log-analyzer/internal/shared/loggers"
	"log-analyzer/internal/statistics"
)

// StatsDeriver turns per-endpoint raw samples into EndpointStats.
//
// Percentages are shares of the grand totals over every endpoint passed in,
// so the CountPercent (and TimePercent) values of one result sum to 100.
//
// Example: samples {"/a": [0.5, 1.5], "/b": [2.0]} derive to
//
//	/a: count=2 sum=2.0 max=1.5 avg=1.0 median=1.0 count%=66.67 time%=50
//	/b: count=1 sum=2.0 max=2.0 avg=2.0 median=2.0 count%=33.33 time%=50
//
//go:generate mockgen -source=stats_deriver.go -destination=./mocks/stats_deriver_mock.go -package=mocks
type StatsDeriver interface {
	Derive(ctx context.Context, samples map[string]*models.EndpointSampleSet) (map[string]*models.EndpointStats, error)
}

type statsDeriver struct{}

func NewStatsDeriver() StatsDeriver {
	return &statsDeriver{}
}

func (d *statsDeriver) Derive(ctx context.Context, samples map[string]*models.EndpointSampleSet) (map[string]*models.EndpointStats, error) {
	logger := loggers.Ctx(ctx)

	result := make(map[string]*models.EndpointStats, len(samples))
	var totalCount int64
	var totalTime float64

	for endpoint, set := range samples {
		if set == nil || set.Count() == 0 {
			continue
		}

		avg, err := statistics.Mean(set.Latencies)
		if errors.Is(err, statistics.ErrEmptyInput) {
			logger.Warn().Str("endpoint", endpoint).Msg("mean of empty sample set")
		}

		stats := &models.EndpointStats{
			Endpoint:   endpoint,
			TimeSum:    statistics.Sum(set.Latencies),
			TimeMax:    statistics.Max(set.Latencies),
			TimeAvg:    avg,
			TimeMedian: statistics.Median(set.Latencies),
			Count:      int64(set.Count()),
		}
		result[endpoint] = stats

		totalCount += stats.Count
		totalTime += stats.TimeSum
	}

	if totalCount == 0 || totalTime == 0 {
		return nil, fmt.Errorf("%w: count=%d time=%g", ErrZeroTotals, totalCount, totalTime)
	}

	for _, stats := range result {
		stats.CountPercent = 100 * float64(stats.Count) / float64(totalCount)
		stats.TimePercent = 100 * stats.TimeSum / totalTime
	}

	return result, nil
}
