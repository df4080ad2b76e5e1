package reports

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"log-analyzer/internal/models"

	"github.com/bytedance/sonic"
)

// PlaceholderTableJSON is substituted with the JSON array of report entries.
const PlaceholderTableJSON = "table_json"

// placeholderPattern matches "$$", "$name", "${name}" and a lone "$".
var placeholderPattern = regexp.MustCompile(`\$(?:(\$)|([_a-zA-Z][_a-zA-Z0-9]*)|\{([_a-zA-Z][_a-zA-Z0-9]*)\}|)`)

// ReportRenderer turns ranked entries into the final report document.
//
//go:generate mockgen -source=template_renderer.go -destination=./mocks/template_renderer_mock.go -package=mocks
type ReportRenderer interface {
	Render(entries []*models.ReportEntry) ([]byte, error)
}

type templateRenderer struct {
	template string
}

// NewTemplateRenderer returns a renderer that fills $table_json (or
// ${table_json}) in template. Placeholders it does not know are left as
// written and "$$" becomes "$"; rendering never fails on the template itself.
func NewTemplateRenderer(template string) ReportRenderer {
	return &templateRenderer{template: template}
}

// LoadTemplate reads the report template at path.
func LoadTemplate(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read report template %q: %w", path, err)
	}
	return string(data), nil
}

func (r *templateRenderer) Render(entries []*models.ReportEntry) ([]byte, error) {
	if entries == nil {
		entries = []*models.ReportEntry{}
	}

	// ConfigStd escapes <, > and & so URLs cannot close the template's <script>.
	tableJSON, err := sonic.ConfigStd.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report entries: %w", err)
	}

	document := SafeSubstitute(r.template, map[string]string{
		PlaceholderTableJSON: string(tableJSON),
	})
	return []byte(document), nil
}

// SafeSubstitute replaces $name and ${name} placeholders found in values.
// Unknown names and malformed placeholders are kept verbatim; "$$" is an
// escaped "$".
func SafeSubstitute(template string, values map[string]string) string {
	matches := placeholderPattern.FindAllStringSubmatchIndex(template, -1)
	if len(matches) == 0 {
		return template
	}

	var b strings.Builder
	b.Grow(len(template))
	last := 0
	for _, m := range matches {
		b.WriteString(template[last:m[0]])
		last = m[1]

		switch {
		case m[2] >= 0: // $$
			b.WriteByte('$')
		case m[4] >= 0: // $name
			b.WriteString(lookup(values, template[m[4]:m[5]], template[m[0]:m[1]]))
		case m[6] >= 0: // ${name}
			b.WriteString(lookup(values, template[m[6]:m[7]], template[m[0]:m[1]]))
		default: // lone $
			b.WriteString(template[m[0]:m[1]])
		}
	}
	b.WriteString(template[last:])

	return b.String()
}

func lookup(values map[string]string, name, original string) string {
	if v, ok := values[name]; ok {
		return v
	}
	return original
}
