package configs

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"log-analyzer/internal/shared/validators"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const envPrefix = "LOG_ANALYZER"

// LoadConfig builds the configuration from defaults, an optional config file
// and LOG_ANALYZER_* environment variables (a .env file in the working
// directory is loaded first when present), then validates it.
// An empty configPath means defaults and environment only.
var LoadConfig = func(configPath string) (*Config, error) {
	// .env is optional, but a malformed one is a startup error
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	for key, value := range Defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if filepath.Ext(configPath) == "" {
			v.SetConfigType("yaml")
		}

		// Read from file
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg, strictDecoding); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

// strictDecoding turns off weak typing so a config file cannot pass 2.9 or
// true for report_size. Strings are still converted, since environment
// values always arrive as strings.
func strictDecoding(dc *mapstructure.DecoderConfig) {
	dc.WeaklyTypedInput = false
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		strictScalarHook,
	)
}

func strictScalarHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		switch from.Kind() {
		case reflect.String:
			n, err := strconv.ParseInt(strings.TrimSpace(reflect.ValueOf(data).String()), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("expected an integer, got %q", data)
			}
			return n, nil
		case reflect.Float32, reflect.Float64:
			f := reflect.ValueOf(data).Float()
			if f != math.Trunc(f) {
				return nil, fmt.Errorf("expected an integer, got %v", data)
			}
			return int64(f), nil
		case reflect.Bool:
			return nil, fmt.Errorf("expected an integer, got %v", data)
		}
	case reflect.Float32, reflect.Float64:
		switch from.Kind() {
		case reflect.String:
			f, err := strconv.ParseFloat(strings.TrimSpace(reflect.ValueOf(data).String()), 64)
			if err != nil {
				return nil, fmt.Errorf("expected a number, got %q", data)
			}
			return f, nil
		case reflect.Bool:
			return nil, fmt.Errorf("expected a number, got %v", data)
		}
	case reflect.Bool:
		if from.Kind() == reflect.String {
			b, err := strconv.ParseBool(strings.TrimSpace(reflect.ValueOf(data).String()))
			if err != nil {
				return nil, fmt.Errorf("expected a boolean, got %q", data)
			}
			return b, nil
		}
	}
	return data, nil
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()

	switch tag := e.Tag(); tag {
	case "required":
		return fmt.Sprintf("%s (required)", field)
	case "min", "max", "gte", "lte", "oneof":
		return fmt.Sprintf("%s (%s=%s)", field, tag, e.Param())
	default:
		return fmt.Sprintf("%s (%s)", field, tag)
	}
}
