package insights

import (
	"fmt"
	"math"

	"github.com/de-tools/impact-atlas/pkg/models/domain"
)

const (
	cpaAlertThreshold          = 80.0
	satisfactionAlertThreshold = 80.0
	leadDropRatio              = 0.85
	roiHighlightThreshold      = 3.0
	channelShareHighlight      = 0.4
	conversionGainRatio        = 1.1
)

// Variation returns the percent change from previous to current, or 0 when previous is zero
func Variation(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// Compare builds the KPI overview of current against previous. previous may be nil.
func Compare(current domain.MonthlyReport, previous *domain.MonthlyReport) domain.InsightSummary {
	return domain.InsightSummary{
		ReportID:   current.ID,
		Period:     current.Period(),
		KPIs:       kpis(current, previous),
		Alerts:     alerts(current, previous),
		Highlights: highlights(current, previous),
	}
}

func kpis(current domain.MonthlyReport, previous *domain.MonthlyReport) []domain.KPI {
	defs := []struct {
		name           string
		higherIsBetter bool
		value          func(r domain.MonthlyReport) float64
	}{
		{"Total Leads", true, func(r domain.MonthlyReport) float64 { return r.Overall.TotalLeads }},
		{"CPA", false, func(r domain.MonthlyReport) float64 { return r.GoogleAds.CostPerAcquisition }},
		{"Conversion Rate", true, func(r domain.MonthlyReport) float64 { return r.Overall.OverallConversionRate }},
		{"ROI", true, func(r domain.MonthlyReport) float64 { return r.GoogleAds.ROI }},
	}

	result := make([]domain.KPI, 0, len(defs))
	for _, def := range defs {
		kpi := domain.KPI{
			Name:           def.name,
			Current:        def.value(current),
			HigherIsBetter: def.higherIsBetter,
		}
		if previous != nil {
			prev := def.value(*previous)
			kpi.Previous = &prev
			kpi.Variation = Variation(kpi.Current, prev)
		}
		result = append(result, kpi)
	}
	return result
}

func alerts(current domain.MonthlyReport, previous *domain.MonthlyReport) []domain.Alert {
	result := []domain.Alert{}

	if current.GoogleAds.CostPerAcquisition > cpaAlertThreshold {
		result = append(result, domain.Alert{
			Severity: domain.SeverityWarning,
			Title:    "High CPA",
			Message: fmt.Sprintf("Cost per acquisition at %.2f. Review campaign targeting.",
				current.GoogleAds.CostPerAcquisition),
		})
	}

	if current.AI.UserSatisfaction < satisfactionAlertThreshold {
		result = append(result, domain.Alert{
			Severity: domain.SeverityWarning,
			Title:    "AI Satisfaction Below Target",
			Message: fmt.Sprintf("%.0f%% satisfaction. Review assistant answers and retrain the model.",
				current.AI.UserSatisfaction),
		})
	}

	if previous != nil && current.Overall.TotalLeads < previous.Overall.TotalLeads*leadDropRatio {
		drop := math.Abs(Variation(current.Overall.TotalLeads, previous.Overall.TotalLeads))
		result = append(result, domain.Alert{
			Severity: domain.SeverityDanger,
			Title:    "Significant Lead Drop",
			Message:  fmt.Sprintf("Leads fell %.0f%% versus the previous month. Urgent review needed.", drop),
		})
	}

	return result
}

type channelLeads struct {
	name  string
	leads float64
}

// BestChannel returns the channel with the most leads in the report; ties keep the first channel
func BestChannel(r domain.MonthlyReport) (string, float64) {
	channels := []channelLeads{
		{"Google Ads", r.GoogleAds.LeadsGenerated},
		{"AI Assistant", r.AI.QualifiedLeads},
		{"Portal", r.Portal.Conversions},
		{"Social Media", r.SocialMedia.OrganicLeads},
	}

	best := channels[0]
	for _, ch := range channels[1:] {
		if ch.leads > best.leads {
			best = ch
		}
	}
	return best.name, best.leads
}

func highlights(current domain.MonthlyReport, previous *domain.MonthlyReport) []domain.Highlight {
	result := []domain.Highlight{}

	if current.GoogleAds.ROI >= roiHighlightThreshold {
		result = append(result, domain.Highlight{
			Title: "Exceptional Ad ROI",
			Description: fmt.Sprintf("Return of %.1fx on %.2f invested",
				current.GoogleAds.ROI, current.GoogleAds.Spend),
		})
	}

	total := current.Overall.TotalLeads
	if name, leads := BestChannel(current); total > 0 && leads > total*channelShareHighlight {
		result = append(result, domain.Highlight{
			Title:       "Top Channel: " + name,
			Description: fmt.Sprintf("Responsible for %.0f%% of total leads in the period", leads/total*100),
		})
	}

	if previous != nil &&
		current.Overall.OverallConversionRate > previous.Overall.OverallConversionRate*conversionGainRatio {
		result = append(result, domain.Highlight{
			Title: "Conversion Improvement",
			Description: fmt.Sprintf("Conversion rate rose from %.1f%% to %.1f%%",
				previous.Overall.OverallConversionRate, current.Overall.OverallConversionRate),
		})
	}

	return result
}
