package configs

// Config holds all configuration for the analyzer. Keys are flat to match
// the historical config layout (report_size, report_dir, ...).
type Config struct {
	ReportSize  int     `mapstructure:"report_size" validate:"min=1"`
	ReportDir   string  `mapstructure:"report_dir" validate:"required"`
	LogDir      string  `mapstructure:"log_dir" validate:"required"`
	ErrorLimit  float64 `mapstructure:"error_limit" validate:"gte=0,lte=1"`
	Template    string  `mapstructure:"template" validate:"required"`
	LogPrefix   string  `mapstructure:"log_prefix" validate:"required"`
	Logging     string  `mapstructure:"logging"` // log file path; stdout when empty
	LogLevel    string  `mapstructure:"log_level" validate:"required,oneof=trace debug info warn error fatal panic disabled"`
	MetricsFile string  `mapstructure:"metrics_file"` // textfile collector output; disabled when empty
}

// Defaults are applied to every key missing from the file and environment.
var Defaults = map[string]any{
	"report_size":  1000,
	"report_dir":   "./reports",
	"log_dir":      "./log",
	"error_limit":  0.5,
	"template":     "./configs/report.html",
	"log_prefix":   "nginx-access-ui.log",
	"logging":      "",
	"log_level":    "info",
	"metrics_file": "",
}
