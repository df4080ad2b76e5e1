package app

import (
	"bufio"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"log-analyzer/internal/pipelines"
	pipelinemocks "log-analyzer/internal/pipelines/mocks"
	"log-analyzer/internal/shared/configs"
	"log-analyzer/internal/shared/svcerrors"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig(t *testing.T) *configs.Config {
	t.Helper()
	root := t.TempDir()
	logDir := filepath.Join(root, "log")
	require.NoError(t, os.MkdirAll(logDir, 0o755))
	template := filepath.Join(root, "report.html")
	require.NoError(t, os.WriteFile(template, []byte("<script>$table_json</script>"), 0o644))

	return &configs.Config{
		ReportSize:  1000,
		ReportDir:   filepath.Join(root, "reports"),
		LogDir:      logDir,
		ErrorLimit:  0.5,
		Template:    template,
		LogPrefix:   "nginx-access-ui.log",
		Logging:     filepath.Join(root, "analyzer.log"),
		LogLevel:    "info",
		MetricsFile: filepath.Join(root, "log_analyzer.prom"),
	}
}

// readLogLines decodes every JSON line of the app log file.
func readLogLines(t *testing.T, path string) []map[string]any {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var lines []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var line map[string]any
		require.NoError(t, sonic.Unmarshal(scanner.Bytes(), &line))
		lines = append(lines, line)
	}
	require.NoError(t, scanner.Err())
	return lines
}

func lastLine(t *testing.T, lines []map[string]any) map[string]any {
	t.Helper()
	require.NotEmpty(t, lines)
	return lines[len(lines)-1]
}

func TestApp_Run_Completed(t *testing.T) {
	t.Parallel()

	config := testConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(config.LogDir, "nginx-access-ui.log-20170630"),
		[]byte("a b c d e f g /api/v1/foo h 0.5\n"), 0o644))

	application, err := New(config)
	require.NoError(t, err)

	result, err := application.Run(context.Background())
	require.NoError(t, err)
	require.NoError(t, application.Close())
	assert.Equal(t, pipelines.OutcomeCompleted, result.Outcome)

	document, err := os.ReadFile(filepath.Join(config.ReportDir, "report-2017.06.30.html"))
	require.NoError(t, err)
	assert.Contains(t, string(document), `"url":"/api/v1/foo"`)

	lines := readLogLines(t, config.Logging)
	finished := lastLine(t, lines)
	assert.Equal(t, "run finished", finished["message"])
	assert.Equal(t, "completed", finished["outcome"])
	assert.Equal(t, "persist", finished["stage"])
	assert.Equal(t, "nginx-access-ui.log-20170630", finished["log_file"])
	assert.Equal(t, "report-2017.06.30.html", finished["report_key"])
	assert.Equal(t, "log-analyzer", finished["app"])
	assert.NotEmpty(t, finished["run_id"])
	for _, line := range lines {
		assert.Equal(t, finished["run_id"], line["run_id"], "every line carries the run id")
	}

	prom, err := os.ReadFile(config.MetricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "log_analyzer_pipeline_runs_total")
	assert.Contains(t, string(prom), "log_analyzer_ingestion_lines_processed_total")
}

func TestApp_Run_FailedLogsStageAndCode(t *testing.T) {
	t.Parallel()

	config := testConfig(t)
	application, err := New(config)
	require.NoError(t, err)

	result, err := application.Run(context.Background())
	require.Error(t, err)
	require.NoError(t, application.Close())
	assert.Equal(t, pipelines.OutcomeFailed, result.Outcome)

	finished := lastLine(t, readLogLines(t, config.Logging))
	assert.Equal(t, "error", finished["level"])
	assert.Equal(t, "failed", finished["outcome"])
	assert.Equal(t, "select_file", finished["stage"])
	assert.Equal(t, "PIP_1000", finished["error_code"])
}

func TestApp_Run_RecoversPanic(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	config := testConfig(t)
	config.MetricsFile = ""
	application, err := New(config)
	require.NoError(t, err)

	mockPipeline := pipelinemocks.NewMockPipeline(ctrl)
	mockPipeline.EXPECT().Run(gomock.Any()).DoAndReturn(func(ctx context.Context) (*pipelines.RunResult, error) {
		panic(errors.New("kaboom"))
	})
	application.pipeline = mockPipeline

	result, err := application.Run(context.Background())
	require.NoError(t, application.Close())
	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "SYS_9000", svcErr.Code)
	assert.Equal(t, pipelines.OutcomeFailed, result.Outcome)

	lines := readLogLines(t, config.Logging)
	var recovered bool
	for _, line := range lines {
		if msg, _ := line["message"].(string); strings.HasPrefix(msg, "run panic recovered") {
			recovered = true
		}
	}
	assert.True(t, recovered, "panic should be logged")
}

func TestApp_Run_WrapsUncodedError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	config := testConfig(t)
	config.MetricsFile = ""
	application, err := New(config)
	require.NoError(t, err)

	plainErr := errors.New("disk on fire")
	mockPipeline := pipelinemocks.NewMockPipeline(ctrl)
	mockPipeline.EXPECT().Run(gomock.Any()).Return(nil, plainErr)
	application.pipeline = mockPipeline

	result, err := application.Run(context.Background())
	require.NoError(t, application.Close())
	require.Error(t, err)
	assert.ErrorIs(t, err, plainErr)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "SYS_9001", svcErr.Code)
	assert.True(t, svcErr.IsInternalError())
	assert.Equal(t, pipelines.OutcomeFailed, result.Outcome)

	finished := lastLine(t, readLogLines(t, config.Logging))
	assert.Equal(t, "SYS_9001", finished["error_code"])
}

func TestNew_MissingTemplate(t *testing.T) {
	t.Parallel()

	config := testConfig(t)
	config.Template = filepath.Join(t.TempDir(), "missing.html")

	application, err := New(config)
	assert.Nil(t, application)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNew_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	config := testConfig(t)
	config.LogLevel = "loud"

	application, err := New(config)
	assert.Nil(t, application)
	assert.Error(t, err)
}
