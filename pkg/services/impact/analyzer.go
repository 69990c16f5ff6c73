package impact

import (
	"github.com/de-tools/impact-atlas/pkg/models/domain"
)

// Analyzer decomposes the change of a metric between two consecutive reports
type Analyzer struct {
	simulator *Simulator
}

// NewAnalyzer creates an analyzer drawing simulator noise from rnd.
// A nil rnd falls back to a time-seeded source.
func NewAnalyzer(rnd RandomSource) *Analyzer {
	return &Analyzer{simulator: NewSimulator(rnd)}
}

// AnalyzeImpact compares current against previous for the given metric.
// It returns nil without error when there is no previous report to compare against.
func (a *Analyzer) AnalyzeImpact(
	metric domain.Metric,
	current domain.MonthlyReport,
	previous *domain.MonthlyReport,
) (*domain.ImpactAnalysis, error) {
	if previous == nil {
		return nil, nil
	}

	cur, prev, err := ExtractValues(metric, current, *previous)
	if err != nil {
		return nil, err
	}

	variance := cur - prev
	percentChange := percentOf(variance, prev)

	channels := AttributeByChannel(metric, current, *previous, variance)
	weekdays := a.simulator.SimulateByWeekday(variance)
	hours := a.simulator.SimulateByHourBand(variance)
	lines, cause := Synthesize(metric, percentChange, channels, weekdays, hours)

	return &domain.ImpactAnalysis{
		Metric:           metric,
		CurrentValue:     cur,
		PreviousValue:    prev,
		AbsoluteChange:   variance,
		PercentChange:    percentChange,
		ChannelBreakdown: channels,
		WeekdayBreakdown: weekdays,
		HourBreakdown:    hours,
		DiagnosisLines:   lines,
		PrincipalCause:   cause,
	}, nil
}
