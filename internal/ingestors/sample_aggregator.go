package ingestors

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"log-analyzer/internal/models"
	"log-analyzer/internal/shared/loggers"

	"github.com/mileusna/useragent"
)

const (
	progressEvery    = 100_000
	cancelCheckEvery = 1024
	readBufferSize   = 64 * 1024

	unknownUserAgent = "unknown"
)

// SampleAggregator streams raw access log lines into per-endpoint sample sets.
//
// Every line read counts toward TotalCount. Unparseable lines and lines with a
// suspect endpoint both count toward ErrorCount; suspect lines still add their
// sample, unparseable ones add nothing.
//
//go:generate mockgen -source=sample_aggregator.go -destination=./mocks/sample_aggregator_mock.go -package=mocks
type SampleAggregator interface {
	Aggregate(ctx context.Context, r io.Reader) (*models.Aggregation, error)
}

type sampleAggregator struct {
	lineParser LineParser
}

func NewSampleAggregator(lineParser LineParser) SampleAggregator {
	return &sampleAggregator{lineParser: lineParser}
}

func (a *sampleAggregator) Aggregate(ctx context.Context, r io.Reader) (*models.Aggregation, error) {
	logger := loggers.Ctx(ctx)
	reader := bufio.NewReaderSize(r, readBufferSize)
	agg := models.NewAggregation()
	families := newUserAgentFamilies()

	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, readErr
		}
		if line == "" && readErr != nil {
			break
		}

		agg.TotalCount++
		record, status := a.lineParser.Parse(strings.TrimRight(line, "\r\n"))
		switch status {
		case ParseStatusUnparseable:
			agg.UnparseableCount++
		case ParseStatusSuspect:
			agg.SuspectCount++
		}
		if status != ParseStatusUnparseable {
			agg.SampleSet(record.Endpoint).Add(record.LatencySeconds)
			agg.UserAgentFamilies[families.family(record.UserAgent)]++
		}

		if agg.TotalCount%progressEvery == 0 {
			logger.Info().
				Int64(loggers.FieldLinesProcessed, agg.TotalCount).
				Msg("lines processed")
		}
		if agg.TotalCount%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		if readErr != nil {
			break
		}
	}

	agg.ErrorCount = agg.UnparseableCount + agg.SuspectCount
	if agg.TotalCount == 0 {
		return nil, ErrEmptyLog
	}

	recordAggregationMetrics(agg)
	logger.Debug().
		Int64(loggers.FieldLinesProcessed, agg.TotalCount).
		Int64("unparseable", agg.UnparseableCount).
		Int64("suspect", agg.SuspectCount).
		Int("endpoints", len(agg.Samples)).
		Msg("finished aggregating log")

	return agg, nil
}

func recordAggregationMetrics(agg *models.Aggregation) {
	ok := agg.TotalCount - agg.ErrorCount
	metricLinesProcessedTotal.WithLabelValues(ParseStatusOK.String()).Add(float64(ok))
	metricLinesProcessedTotal.WithLabelValues(ParseStatusSuspect.String()).Add(float64(agg.SuspectCount))
	metricLinesProcessedTotal.WithLabelValues(ParseStatusUnparseable.String()).Add(float64(agg.UnparseableCount))
	for family, count := range agg.UserAgentFamilies {
		metricRequestsByUserAgentTotal.WithLabelValues(family).Add(float64(count))
	}
}

// userAgentFamilies memoizes user agent parsing; a daily log repeats the same
// few thousand user agent strings millions of times.
type userAgentFamilies struct {
	cache map[string]string
}

func newUserAgentFamilies() *userAgentFamilies {
	return &userAgentFamilies{cache: make(map[string]string)}
}

func (f *userAgentFamilies) family(raw string) string {
	if raw == "" || raw == "-" {
		return unknownUserAgent
	}
	if name, ok := f.cache[raw]; ok {
		return name
	}

	name := useragent.Parse(raw).Name
	if name == "" {
		name = unknownUserAgent
	}
	f.cache[raw] = name
	return name
}
