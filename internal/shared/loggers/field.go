package loggers

const (
	FieldApp       = "app"
	FieldComponent = "component"
	FieldRunID     = "run_id"
	FieldStage     = "stage"
	FieldOutcome   = "outcome"

	FieldLogFile    = "log_file"
	FieldReportKey  = "report_key"
	FieldDuration   = "duration"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldLinesProcessed = "lines_processed"
	FieldErrorRate      = "error_rate"
)
