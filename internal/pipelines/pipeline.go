package pipelines

import (
	"context"
	"errors"
	"io"

	"log-analyzer/internal/aggregators"
	"log-analyzer/internal/ingestors"
	"log-analyzer/internal/models"
	"log-analyzer/internal/reports"
	"log-analyzer/internal/shared/loggers"
	"log-analyzer/internal/shared/metrics"
	"log-analyzer/internal/shared/svcerrors"
	"log-analyzer/internal/stores"
)

type Stage string

const (
	StageSelectFile       Stage = "select_file"
	StageCheckIdempotence Stage = "check_idempotence"
	StageStream           Stage = "stream"
	StageErrorRateGate    Stage = "error_rate_gate"
	StageDerive           Stage = "derive"
	StageRender           Stage = "render"
	StagePersist          Stage = "persist"
)

type Outcome string

const (
	OutcomeCompleted Outcome = "completed"
	OutcomeSkipped   Outcome = "skipped"
	OutcomeAborted   Outcome = "aborted"
	OutcomeFailed    Outcome = "failed"
)

// RunResult describes where a run ended. Stage is the last stage entered.
type RunResult struct {
	Outcome   Outcome
	Stage     Stage
	Candidate *models.LogFileCandidate
	ReportKey string
	ErrorRate float64
	Entries   int
}

// Options holds the tunables of a run.
type Options struct {
	ReportSize int
	ErrorLimit float64
}

// Pipeline runs one report generation pass over the latest log file.
//
// A run that ends Completed, Skipped or Aborted returns a nil error. A Failed
// run returns the RunResult together with a *svcerrors.ServiceError whose
// cause is the underlying error.
//
//go:generate mockgen -source=pipeline.go -destination=./mocks/pipeline_mock.go -package=mocks
type Pipeline interface {
	Run(ctx context.Context) (*RunResult, error)
}

type pipeline struct {
	logFileStore     stores.LogFileStore
	reportStore      stores.ReportStore
	sampleAggregator ingestors.SampleAggregator
	statsDeriver     aggregators.StatsDeriver
	reportAssembler  reports.ReportAssembler
	reportRenderer   reports.ReportRenderer
	options          Options
}

func NewPipeline(
	logFileStore stores.LogFileStore,
	reportStore stores.ReportStore,
	sampleAggregator ingestors.SampleAggregator,
	statsDeriver aggregators.StatsDeriver,
	reportAssembler reports.ReportAssembler,
	reportRenderer reports.ReportRenderer,
	options Options,
) Pipeline {
	return &pipeline{
		logFileStore:     logFileStore,
		reportStore:      reportStore,
		sampleAggregator: sampleAggregator,
		statsDeriver:     statsDeriver,
		reportAssembler:  reportAssembler,
		reportRenderer:   reportRenderer,
		options:          options,
	}
}

func (p *pipeline) Run(ctx context.Context) (*RunResult, error) {
	result := &RunResult{}
	err := p.run(ctx, result)
	if err != nil {
		result.Outcome = OutcomeFailed
	}
	recordRunMetrics(result, err)
	return result, err
}

func (p *pipeline) run(ctx context.Context, result *RunResult) error {
	logger := loggers.Ctx(ctx)

	result.Stage = StageSelectFile
	candidate, err := p.logFileStore.SelectLatest(ctx)
	if err != nil {
		if errors.Is(err, stores.ErrNoLogFilesFound) {
			return errNoLogFilesFound(err)
		}
		return errInternalListLogsFailed(err)
	}
	result.Candidate = candidate
	logger.Debug().Str(loggers.FieldLogFile, candidate.Name).Msg("selected log file")

	result.Stage = StageCheckIdempotence
	exists, err := p.reportStore.HasReport(ctx, candidate)
	if err != nil {
		return errInternalCheckReportsFailed(err)
	}
	if exists {
		result.Outcome = OutcomeSkipped
		result.ReportKey = candidate.ReportName()
		return nil
	}

	result.Stage = StageStream
	agg, err := p.stream(ctx, candidate)
	if err != nil {
		return err
	}
	result.ErrorRate = agg.ErrorRate()
	metricLastErrorRate.Set(result.ErrorRate)

	result.Stage = StageErrorRateGate
	if result.ErrorRate > p.options.ErrorLimit {
		logger.Warn().
			Float64(loggers.FieldErrorRate, result.ErrorRate).
			Float64("error_limit", p.options.ErrorLimit).
			Msg("error rate too high")
		result.Outcome = OutcomeAborted
		return nil
	}

	result.Stage = StageDerive
	stats, err := p.statsDeriver.Derive(ctx, agg.Samples)
	if err != nil {
		return errInternalDeriveStatsFailed(err)
	}
	entries := p.reportAssembler.Assemble(stats, p.options.ReportSize)
	result.Entries = len(entries)

	result.Stage = StageRender
	document, err := p.reportRenderer.Render(entries)
	if err != nil {
		return errInternalRenderReportFailed(err)
	}

	result.Stage = StagePersist
	if err := ctx.Err(); err != nil {
		return errInternalRunCancelled(err)
	}
	reportKey, err := p.reportStore.Save(ctx, candidate, document)
	if err != nil {
		if errors.Is(err, stores.ErrReportAlreadyExists) {
			logger.Info().Str(loggers.FieldReportKey, candidate.ReportName()).Msg("report written concurrently, skipping")
			result.Outcome = OutcomeSkipped
			result.ReportKey = candidate.ReportName()
			return nil
		}
		return errInternalPersistReportFailed(err)
	}

	result.Outcome = OutcomeCompleted
	result.ReportKey = reportKey
	return nil
}

// stream opens the candidate and aggregates it; the log is closed on every path.
func (p *pipeline) stream(ctx context.Context, candidate *models.LogFileCandidate) (agg *models.Aggregation, err error) {
	rc, err := p.logFileStore.Open(ctx, candidate)
	if err != nil {
		return nil, errInternalOpenLogFailed(err)
	}
	defer closeLog(ctx, rc)

	agg, err = p.sampleAggregator.Aggregate(ctx, rc)
	switch {
	case err == nil:
		return agg, nil
	case errors.Is(err, ingestors.ErrEmptyLog):
		return nil, errEmptyLog(err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return nil, errInternalRunCancelled(err)
	default:
		return nil, errInternalReadLogFailed(err)
	}
}

func closeLog(ctx context.Context, c io.Closer) {
	if err := c.Close(); err != nil {
		loggers.Ctx(ctx).Warn().Err(err).Msg("failed to close log file")
	}
}

func recordRunMetrics(result *RunResult, err error) {
	code := metrics.ValueNoError
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		code = svcErr.Code
	}
	metricRunsTotal.WithLabelValues(string(result.Outcome), code).Inc()
}
