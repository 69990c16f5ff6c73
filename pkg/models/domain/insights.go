package domain

type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

type KPI struct {
	Name           string
	Current        float64
	Previous       *float64
	Variation      float64 // percent, 0 without a previous value
	HigherIsBetter bool
}

type Alert struct {
	Severity Severity
	Title    string
	Message  string
}

type Highlight struct {
	Title       string
	Description string
}

// InsightSummary is the KPI overview of a report against its predecessor
type InsightSummary struct {
	ReportID   string
	Period     string
	KPIs       []KPI
	Alerts     []Alert
	Highlights []Highlight
}
