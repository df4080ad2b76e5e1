package ingestors

import (
	"log-analyzer/internal/shared/metrics"
)

var (
	metricLinesProcessedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "lines_processed_total",
		},
		[]string{"parse_status"},
	)
	metricRequestsByUserAgentTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "requests_by_user_agent_total",
		},
		[]string{"family"},
	)
)
