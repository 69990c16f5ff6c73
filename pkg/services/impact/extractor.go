package impact

import "github.com/de-tools/impact-atlas/pkg/models/domain"

// ExtractValues returns the current and previous value of the metric from a report pair
func ExtractValues(metric domain.Metric, current, previous domain.MonthlyReport) (float64, float64, error) {
	switch metric {
	case domain.MetricLeads:
		return current.Overall.TotalLeads, previous.Overall.TotalLeads, nil
	case domain.MetricCPA:
		return current.GoogleAds.CostPerAcquisition, previous.GoogleAds.CostPerAcquisition, nil
	case domain.MetricConversionRate:
		return current.Overall.OverallConversionRate, previous.Overall.OverallConversionRate, nil
	case domain.MetricROI:
		return current.GoogleAds.ROI, previous.GoogleAds.ROI, nil
	default:
		return 0, 0, &domain.InvalidMetricError{Metric: string(metric)}
	}
}

// percentOf returns part/whole*100, or 0 when whole is zero
func percentOf(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole * 100
}
