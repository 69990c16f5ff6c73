package api

type ImpactItem struct {
	Name           string  `json:"name"`
	CurrentValue   float64 `json:"current_value"`
	PreviousValue  float64 `json:"previous_value"`
	AbsoluteChange float64 `json:"absolute_change"`
	PercentChange  float64 `json:"percent_change"`
	ImpactShare    float64 `json:"impact_share"`
}

type ImpactAnalysis struct {
	Metric           string       `json:"metric"`
	CurrentValue     float64      `json:"current_value"`
	PreviousValue    float64      `json:"previous_value"`
	AbsoluteChange   float64      `json:"absolute_change"`
	PercentChange    float64      `json:"percent_change"`
	ChannelBreakdown []ImpactItem `json:"channel_breakdown"`
	WeekdayBreakdown []ImpactItem `json:"weekday_breakdown"`
	HourBreakdown    []ImpactItem `json:"hour_breakdown"`
	DiagnosisLines   []string     `json:"diagnosis"`
	PrincipalCause   string       `json:"principal_cause"`
}

// ImpactResponse wraps an analysis; Available is false when the report has no predecessor
type ImpactResponse struct {
	Available bool            `json:"available"`
	Analysis  *ImpactAnalysis `json:"analysis,omitempty"`
}

type KPI struct {
	Name           string   `json:"name"`
	Current        float64  `json:"current"`
	Previous       *float64 `json:"previous,omitempty"`
	Variation      float64  `json:"variation"`
	HigherIsBetter bool     `json:"higher_is_better"`
}

type Alert struct {
	Severity string `json:"severity"`
	Title    string `json:"title"`
	Message  string `json:"message"`
}

type Highlight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type InsightSummary struct {
	ReportID   string      `json:"report_id"`
	Period     string      `json:"period"`
	KPIs       []KPI       `json:"kpis"`
	Alerts     []Alert     `json:"alerts"`
	Highlights []Highlight `json:"highlights"`
}
