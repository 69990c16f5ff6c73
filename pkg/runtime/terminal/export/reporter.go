package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/impact-atlas/pkg/models/domain"
)

const analysisTemplate = `IMPACT ANALYSIS: {{upper .Metric.String}}

SUMMARY
Previous month: {{number .PreviousValue}}
Current month: {{number .CurrentValue}}
Change: {{signed .AbsoluteChange}} ({{signed .PercentChange}}%)

PRINCIPAL CAUSE
{{.PrincipalCause}}

CHANNEL BREAKDOWN
{{range $i, $item := .ChannelBreakdown}}{{rank $i}}. {{$item.Name}}: {{signed $item.AbsoluteChange}} ({{signed $item.PercentChange}}%)
{{end}}
DIAGNOSIS
{{range .DiagnosisLines}}- {{.}}
{{end}}`

var funcMap = template.FuncMap{
	"upper":  strings.ToUpper,
	"number": formatNumber,
	"signed": formatSigned,
	"rank": func(i int) int {
		return i + 1
	},
}

var analysisTmpl = template.Must(template.New("analysis").Funcs(funcMap).Parse(analysisTemplate))

// Reporter writes impact analyses as copyable plain text
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (r *Reporter) Handle(analysis *domain.ImpactAnalysis) error {
	if analysis == nil {
		return fmt.Errorf("no analysis to export")
	}
	if err := analysisTmpl.Execute(r.writer, analysis); err != nil {
		return fmt.Errorf("failed to render analysis: %w", err)
	}
	return nil
}

// Serialize renders the analysis into a string
func Serialize(analysis *domain.ImpactAnalysis) (string, error) {
	var sb strings.Builder
	if err := NewReporter(&sb).Handle(analysis); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func formatNumber(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func formatSigned(v float64) string {
	s := formatNumber(v)
	if v > 0 && s != "0.00" {
		return "+" + s
	}
	return s
}
