package pipelines

import (
	"fmt"

	"log-analyzer/internal/shared/svcerrors"
)

// Pipeline errors
const (
	codeNoLogFilesFound = "PIP_1000"
	codeEmptyLog        = "PIP_1001"

	codeInternalListLogsFailed      = "PIP_9000"
	codeInternalCheckReportsFailed  = "PIP_9001"
	codeInternalOpenLogFailed       = "PIP_9002"
	codeInternalReadLogFailed       = "PIP_9003"
	codeInternalDeriveStatsFailed   = "PIP_9004"
	codeInternalRenderReportFailed  = "PIP_9005"
	codeInternalPersistReportFailed = "PIP_9006"
	codeInternalRunCancelled        = "PIP_9007"
)

// errNoLogFilesFound returns an error when the log directory holds no matching file.
func errNoLogFilesFound(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeNoLogFilesFound, "no log files found", cause)
}

// errEmptyLog returns an error when the selected log has no lines.
func errEmptyLog(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeEmptyLog, "log file is empty", cause)
}

func errInternalListLogsFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalListLogsFailed, fmt.Errorf("listLogsFailed: %w", cause))
}

func errInternalCheckReportsFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalCheckReportsFailed, fmt.Errorf("checkReportsFailed: %w", cause))
}

func errInternalOpenLogFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalOpenLogFailed, fmt.Errorf("openLogFailed: %w", cause))
}

func errInternalReadLogFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReadLogFailed, fmt.Errorf("readLogFailed: %w", cause))
}

func errInternalDeriveStatsFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalDeriveStatsFailed, fmt.Errorf("deriveStatsFailed: %w", cause))
}

func errInternalRenderReportFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRenderReportFailed, fmt.Errorf("renderReportFailed: %w", cause))
}

func errInternalPersistReportFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalPersistReportFailed, fmt.Errorf("persistReportFailed: %w", cause))
}

// errInternalRunCancelled returns an error when the run context is done before the report is written.
func errInternalRunCancelled(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRunCancelled, fmt.Errorf("runCancelled: %w", cause))
}
