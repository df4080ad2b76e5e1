package app

import (
	"context"
	"fmt"
	"io"
	"runtime/debug"
	"time"

	"log-analyzer/internal/aggregators"
	"log-analyzer/internal/ingestors"
	"log-analyzer/internal/pipelines"
	"log-analyzer/internal/reports"
	"log-analyzer/internal/shared/configs"
	"log-analyzer/internal/shared/filestorages"
	"log-analyzer/internal/shared/loggers"
	"log-analyzer/internal/shared/metrics"
	"log-analyzer/internal/shared/svcerrors"
	"log-analyzer/internal/shared/ulid"
	"log-analyzer/internal/stores"
)

const appName = "log-analyzer"

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	logOutput io.Closer
	pipeline  pipelines.Pipeline
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	logOutput, err := loggers.OpenFile(config.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to open log output: %w", err)
	}

	appLogger, err := loggers.NewWithWriter(config.LogLevel, logOutput)
	if err != nil {
		_ = logOutput.Close()
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	appLogger = appLogger.With().
		Str(loggers.FieldApp, appName).
		Logger()

	pipeline, err := newPipeline(config)
	if err != nil {
		_ = logOutput.Close()
		return nil, err
	}

	return &App{
		config:    config,
		appLogger: appLogger,
		logOutput: logOutput,
		pipeline:  pipeline,
	}, nil
}

func newPipeline(config *configs.Config) (pipelines.Pipeline, error) {
	// Initialize file storages
	logStorage, err := filestorages.NewFileStorage(config.LogDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize log storage: %w", err)
	}
	reportStorage, err := filestorages.NewFileStorage(config.ReportDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize report storage: %w", err)
	}

	template, err := reports.LoadTemplate(config.Template)
	if err != nil {
		return nil, err
	}

	return pipelines.NewPipeline(
		stores.NewLogFileStore(logStorage, config.LogPrefix),
		stores.NewReportStore(reportStorage),
		ingestors.NewSampleAggregator(ingestors.NewLineParser()),
		aggregators.NewStatsDeriver(),
		reports.NewReportAssembler(),
		reports.NewTemplateRenderer(template),
		pipelines.Options{
			ReportSize: config.ReportSize,
			ErrorLimit: config.ErrorLimit,
		},
	), nil
}

// Run executes one pipeline run with a run-scoped logger and reports its
// outcome in a single log line. A panic inside the run is recovered and
// returned as an internal ServiceError, and so is any error that is not
// already one.
func (app *App) Run(ctx context.Context) (result *pipelines.RunResult, err error) {
	runLogger := app.appLogger.With().
		Str(loggers.FieldRunID, ulid.NewRunID()).
		Logger()
	ctx = runLogger.WithContext(ctx)

	runLogger.Info().
		Str("log_dir", app.config.LogDir).
		Str("report_dir", app.config.ReportDir).
		Msg("starting run")

	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			runLogger.Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msgf("run panic recovered: %v", p)

			var panicErr error
			if e, ok := p.(error); ok {
				panicErr = e
			} else {
				panicErr = fmt.Errorf("%v", p)
			}
			if result == nil {
				result = &pipelines.RunResult{}
			}
			result.Outcome = pipelines.OutcomeFailed
			err = svcerrors.NewInternalErrorPanic(panicErr)
		}

		logRunCompletion(ctx, result, err, time.Since(start))
		app.writeMetrics(ctx)
	}()

	result, err = app.pipeline.Run(ctx)
	if err != nil {
		if _, ok := svcerrors.AsServiceError(err); !ok {
			err = svcerrors.NewInternalErrorUndefined(err)
		}
		if result == nil {
			result = &pipelines.RunResult{Outcome: pipelines.OutcomeFailed}
		}
	}
	return result, err
}

func logRunCompletion(ctx context.Context, result *pipelines.RunResult, err error, elapsed time.Duration) {
	logger := loggers.Ctx(ctx)

	event := logger.Info()
	if err != nil {
		event = logger.Error().Err(err)
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			event = event.Str(loggers.FieldErrorCode, svcErr.Code)
		}
	}
	event = event.
		Str(loggers.FieldOutcome, string(result.Outcome)).
		Str(loggers.FieldStage, string(result.Stage)).
		Int64(loggers.FieldDuration, elapsed.Milliseconds())
	if result.Candidate != nil {
		event = event.Str(loggers.FieldLogFile, result.Candidate.Name)
	}
	if result.ReportKey != "" {
		event = event.Str(loggers.FieldReportKey, result.ReportKey)
	}
	if result.Outcome == pipelines.OutcomeAborted || result.Outcome == pipelines.OutcomeCompleted {
		event = event.Float64(loggers.FieldErrorRate, result.ErrorRate)
	}
	event.Msg("run finished")
}

func (app *App) writeMetrics(ctx context.Context) {
	if app.config.MetricsFile == "" {
		return
	}
	if err := metrics.WriteTextfile(app.config.MetricsFile); err != nil {
		loggers.Ctx(ctx).Warn().Err(err).Str("metrics_file", app.config.MetricsFile).Msg("failed to write metrics")
	}
}

// Close releases the log output.
func (app *App) Close() error {
	return app.logOutput.Close()
}
