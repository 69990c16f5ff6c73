package impact

import (
	"fmt"
	"math"

	"github.com/de-tools/impact-atlas/pkg/models/domain"
)

const (
	channelShareThreshold = 40.0
	weekdayShareThreshold = 25.0
	hourShareThreshold    = 25.0
)

const (
	adviceLeads          = "Consider reviewing campaign targeting and the neighborhoods or regions being targeted"
	adviceCPA            = "A higher CPA may indicate strong competition or a poorly targeted audience"
	adviceConversionRate = "Falling conversion suggests reviewing lead quality or the intake process"
	adviceROI            = "Exceptional ROI! Consider increasing investment to scale results"
)

// Synthesize turns ranked breakdowns into diagnosis lines and a principal cause sentence.
// Breakdowns must already be sorted by descending absolute impact share.
func Synthesize(
	metric domain.Metric,
	percentChange float64,
	channels, weekdays, hours []domain.ImpactItem,
) ([]string, string) {
	lines := []string{}
	direction := "decrease"
	if percentChange > 0 {
		direction = "increase"
	}

	if len(channels) > 0 && math.Abs(channels[0].ImpactShare) > channelShareThreshold {
		top := channels[0]
		lines = append(lines, fmt.Sprintf("%.0f%% of the %s came from the %s channel",
			math.Abs(top.ImpactShare), direction, top.Name))
	}

	if len(weekdays) > 0 && math.Abs(weekdays[0].ImpactShare) > weekdayShareThreshold {
		top := weekdays[0]
		relative := "below"
		if direction == "increase" {
			relative = "above"
		}
		lines = append(lines, fmt.Sprintf("%s had the largest impact (%.0f%% %s average)",
			top.Name, math.Abs(top.PercentChange), relative))
	}

	if len(hours) > 0 && math.Abs(hours[0].ImpactShare) > hourShareThreshold {
		top := hours[0]
		lines = append(lines, fmt.Sprintf("The %s window concentrated %.0f%% of the %s",
			top.Name, math.Abs(top.ImpactShare), direction))
	}

	if advice, ok := metricAdvice(metric, percentChange); ok {
		lines = append(lines, advice)
	}

	return lines, PrincipalCause(channels, weekdays, hours)
}

func metricAdvice(metric domain.Metric, percentChange float64) (string, bool) {
	switch {
	case metric == domain.MetricLeads && percentChange < -15:
		return adviceLeads, true
	case metric == domain.MetricCPA && percentChange > 20:
		return adviceCPA, true
	case metric == domain.MetricConversionRate && percentChange < -10:
		return adviceConversionRate, true
	case metric == domain.MetricROI && percentChange > 30:
		return adviceROI, true
	}
	return "", false
}

// PrincipalCause names the item with the largest absolute impact share across all breakdowns.
// Ties go to the earlier breakdown.
func PrincipalCause(breakdowns ...[]domain.ImpactItem) string {
	var top *domain.ImpactItem
	for _, items := range breakdowns {
		for i := range items {
			if top == nil || math.Abs(items[i].ImpactShare) > math.Abs(top.ImpactShare) {
				top = &items[i]
			}
		}
	}
	if top == nil {
		return ""
	}

	trend := "decline"
	if top.AbsoluteChange > 0 {
		trend = "growth"
	}
	return fmt.Sprintf("Principal cause: %s with %s of %.1f%%", top.Name, trend, math.Abs(top.PercentChange))
}
