package reports

import (
	"math"
	"sort"

	"log-analyzer/internal/models"
)

// ReportAssembler ranks endpoint stats by total request time and produces the
// rounded rows handed to the renderer.
//
//go:generate mockgen -source=report_assembler.go -destination=./mocks/report_assembler_mock.go -package=mocks
type ReportAssembler interface {
	// Assemble returns at most size entries, sorted by TimeSum descending
	// with ties ordered by endpoint ascending.
	Assemble(stats map[string]*models.EndpointStats, size int) []*models.ReportEntry
}

type reportAssembler struct{}

func NewReportAssembler() ReportAssembler {
	return &reportAssembler{}
}

func (a *reportAssembler) Assemble(stats map[string]*models.EndpointStats, size int) []*models.ReportEntry {
	ranked := make([]*models.EndpointStats, 0, len(stats))
	for _, s := range stats {
		ranked = append(ranked, s)
	}

	// Rank on unrounded values; rounding is for display only.
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].TimeSum != ranked[j].TimeSum {
			return ranked[i].TimeSum > ranked[j].TimeSum
		}
		return ranked[i].Endpoint < ranked[j].Endpoint
	})

	if size < 0 {
		size = 0
	}
	if len(ranked) > size {
		ranked = ranked[:size]
	}

	entries := make([]*models.ReportEntry, 0, len(ranked))
	for _, s := range ranked {
		entries = append(entries, &models.ReportEntry{
			URL:          s.Endpoint,
			Count:        s.Count,
			CountPercent: round3(s.CountPercent),
			TimeSum:      round3(s.TimeSum),
			TimePercent:  round3(s.TimePercent),
			TimeAvg:      round3(s.TimeAvg),
			TimeMax:      round3(s.TimeMax),
			TimeMedian:   round3(s.TimeMedian),
		})
	}

	return entries
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
