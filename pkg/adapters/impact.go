package adapters

import (
	"github.com/de-tools/impact-atlas/pkg/models/api"
	"github.com/de-tools/impact-atlas/pkg/models/domain"
)

func MapImpactAnalysisDomainToApi(a domain.ImpactAnalysis) api.ImpactAnalysis {
	lines := make([]string, len(a.DiagnosisLines))
	copy(lines, a.DiagnosisLines)

	return api.ImpactAnalysis{
		Metric:           a.Metric.String(),
		CurrentValue:     a.CurrentValue,
		PreviousValue:    a.PreviousValue,
		AbsoluteChange:   a.AbsoluteChange,
		PercentChange:    a.PercentChange,
		ChannelBreakdown: mapImpactItems(a.ChannelBreakdown),
		WeekdayBreakdown: mapImpactItems(a.WeekdayBreakdown),
		HourBreakdown:    mapImpactItems(a.HourBreakdown),
		DiagnosisLines:   lines,
		PrincipalCause:   a.PrincipalCause,
	}
}

func mapImpactItems(items []domain.ImpactItem) []api.ImpactItem {
	result := make([]api.ImpactItem, 0, len(items))
	for _, item := range items {
		result = append(result, api.ImpactItem{
			Name:           item.Name,
			CurrentValue:   item.CurrentValue,
			PreviousValue:  item.PreviousValue,
			AbsoluteChange: item.AbsoluteChange,
			PercentChange:  item.PercentChange,
			ImpactShare:    item.ImpactShare,
		})
	}
	return result
}

func MapInsightSummaryDomainToApi(s domain.InsightSummary) api.InsightSummary {
	result := api.InsightSummary{
		ReportID:   s.ReportID,
		Period:     s.Period,
		KPIs:       make([]api.KPI, 0, len(s.KPIs)),
		Alerts:     make([]api.Alert, 0, len(s.Alerts)),
		Highlights: make([]api.Highlight, 0, len(s.Highlights)),
	}

	for _, k := range s.KPIs {
		result.KPIs = append(result.KPIs, api.KPI{
			Name:           k.Name,
			Current:        k.Current,
			Previous:       k.Previous,
			Variation:      k.Variation,
			HigherIsBetter: k.HigherIsBetter,
		})
	}
	for _, a := range s.Alerts {
		result.Alerts = append(result.Alerts, api.Alert{
			Severity: string(a.Severity),
			Title:    a.Title,
			Message:  a.Message,
		})
	}
	for _, h := range s.Highlights {
		result.Highlights = append(result.Highlights, api.Highlight{
			Title:       h.Title,
			Description: h.Description,
		})
	}
	return result
}
