package pipelines

import (
	"log-analyzer/internal/shared/metrics"
)

var (
	metricRunsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubPipeline,
			Name:      "runs_total",
		},
		[]string{"outcome", metrics.FieldErrorCode},
	)
	metricLastErrorRate = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubPipeline,
			Name:      "last_error_rate",
			Help:      "Error rate of the most recently streamed log file.",
		},
	)
)
