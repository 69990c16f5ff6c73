package export

import (
	"fmt"
	"io"
	"text/template"

	"github.com/de-tools/impact-atlas/pkg/models/domain"
)

const insightsTemplate = `KPI SUMMARY {{.Period}}
{{range .KPIs}}
{{.Name}}: {{number .Current}}{{if .Previous}} (previous {{number (deref .Previous)}}, {{signed .Variation}}%){{end}}
{{- end}}
{{if .Alerts}}
=== Alerts ===
{{range .Alerts}}[{{upper (print .Severity)}}] {{.Title}}: {{.Message}}
{{end}}{{end}}
{{- if .Highlights}}
=== Highlights ===
{{range .Highlights}}* {{.Title}}: {{.Description}}
{{end}}{{end}}`

const reportsTemplate = `{{range .}}{{.ID}}  {{.Period}}  {{if .Client}}{{.Client}}{{else}}-{{end}}  leads={{number .Overall.TotalLeads}}  spend={{number .GoogleAds.Spend}}
{{else}}No reports recorded yet.
{{end}}`

var (
	insightsTmpl = template.Must(template.New("insights").Funcs(summaryFuncs()).Parse(insightsTemplate))
	reportsTmpl  = template.Must(template.New("reports").Funcs(funcMap).Parse(reportsTemplate))
)

func summaryFuncs() template.FuncMap {
	funcs := template.FuncMap{
		"deref": func(v *float64) float64 { return *v },
	}
	for name, fn := range funcMap {
		funcs[name] = fn
	}
	return funcs
}

// WriteInsights renders the KPI comparison with its alerts and highlights
func WriteInsights(w io.Writer, summary *domain.InsightSummary) error {
	if summary == nil {
		return fmt.Errorf("no summary to export")
	}
	if err := insightsTmpl.Execute(w, summary); err != nil {
		return fmt.Errorf("failed to render kpi summary: %w", err)
	}
	return nil
}

// WriteReports renders one line per report
func WriteReports(w io.Writer, reports []domain.MonthlyReport) error {
	if err := reportsTmpl.Execute(w, reports); err != nil {
		return fmt.Errorf("failed to render reports: %w", err)
	}
	return nil
}
