package reports

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"log-analyzer/internal/models"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeSubstitute(t *testing.T) {
	t.Parallel()

	values := map[string]string{"table_json": "[1]"}

	tests := []struct {
		name     string
		template string
		expected string
	}{
		{name: "named", template: "var table = $table_json;", expected: "var table = [1];"},
		{name: "braced", template: "var table = ${table_json};", expected: "var table = [1];"},
		{name: "unknown named left as is", template: "$other and $table_json", expected: "$other and [1]"},
		{name: "unknown braced left as is", template: "${other}", expected: "${other}"},
		{name: "escaped dollar", template: "cost: $$5 $table_json", expected: "cost: $5 [1]"},
		{name: "lone dollar", template: "jQuery $ (x) $", expected: "jQuery $ (x) $"},
		{name: "unterminated brace", template: "${table_json", expected: "${table_json"},
		{name: "longer identifier is a different name", template: "$table_jsonx", expected: "$table_jsonx"},
		{name: "no placeholders", template: "<html></html>", expected: "<html></html>"},
		{name: "jquery selector", template: "$(\"#table\").tablesorter();", expected: "$(\"#table\").tablesorter();"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, SafeSubstitute(tt.template, values))
		})
	}
}

func TestTemplateRenderer_Render(t *testing.T) {
	t.Parallel()

	renderer := NewTemplateRenderer("<script>var table = $table_json;</script>")
	entries := []*models.ReportEntry{
		{URL: "/api/v1/foo", Count: 2, CountPercent: 100, TimeSum: 2, TimePercent: 100, TimeAvg: 1, TimeMax: 1.5, TimeMedian: 1},
	}

	document, err := renderer.Render(entries)
	require.NoError(t, err)

	doc := string(document)
	require.True(t, strings.HasPrefix(doc, "<script>var table = "))
	require.True(t, strings.HasSuffix(doc, ";</script>"))

	tableJSON := strings.TrimSuffix(strings.TrimPrefix(doc, "<script>var table = "), ";</script>")
	var decoded []map[string]any
	require.NoError(t, sonic.UnmarshalString(tableJSON, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "/api/v1/foo", decoded[0]["url"])
	assert.Equal(t, 2.0, decoded[0]["count"])
	assert.Equal(t, 100.0, decoded[0]["count_perc"])
	assert.Equal(t, 2.0, decoded[0]["time_sum"])
	assert.Equal(t, 100.0, decoded[0]["time_perc"])
	assert.Equal(t, 1.0, decoded[0]["time_avg"])
	assert.Equal(t, 1.5, decoded[0]["time_max"])
	assert.Equal(t, 1.0, decoded[0]["time_med"])
}

func TestTemplateRenderer_Render_EscapesScriptBreakingURLs(t *testing.T) {
	t.Parallel()

	renderer := NewTemplateRenderer("$table_json")
	document, err := renderer.Render([]*models.ReportEntry{{URL: "/</script><b>"}})
	require.NoError(t, err)

	assert.NotContains(t, string(document), "</script>")
	assert.Contains(t, string(document), `\u003c/script\u003e`)
}

func TestTemplateRenderer_Render_EmptyEntries(t *testing.T) {
	t.Parallel()

	document, err := NewTemplateRenderer("[$table_json]").Render(nil)
	require.NoError(t, err)
	assert.Equal(t, "[[]]", string(document))
}

func TestTemplateRenderer_Render_TemplateWithoutPlaceholder(t *testing.T) {
	t.Parallel()

	document, err := NewTemplateRenderer("<p>static $title</p>").Render([]*models.ReportEntry{{URL: "/a"}})
	require.NoError(t, err)
	assert.Equal(t, "<p>static $title</p>", string(document))
}

func TestLoadTemplate(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "report.html")
	require.NoError(t, os.WriteFile(path, []byte("<html>$table_json</html>"), 0o644))

	template, err := LoadTemplate(path)
	require.NoError(t, err)
	assert.Equal(t, "<html>$table_json</html>", template)

	_, err = LoadTemplate(filepath.Join(t.TempDir(), "missing.html"))
	assert.Error(t, err)
}
