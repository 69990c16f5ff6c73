package impact

import (
	"errors"
	"testing"

	"github.com/de-tools/impact-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constantSource always yields the same draw; 0.5 fixes the jitter at 1.0
// and the simulated percent change at 0.
type constantSource float64

func (c constantSource) Float64() float64 { return float64(c) }

func reportWithLeads(total, google, ai, portal float64) domain.MonthlyReport {
	return domain.MonthlyReport{
		GoogleAds: domain.GoogleAds{LeadsGenerated: google},
		AI:        domain.AIAssistant{QualifiedLeads: ai},
		Portal:    domain.Portal{Conversions: portal},
		Overall:   domain.OverallMetrics{TotalLeads: total},
	}
}

func TestAnalyzeImpact_NoPreviousReport_ReturnsNil(t *testing.T) {
	analyzer := NewAnalyzer(constantSource(0.5))
	current := reportWithLeads(100, 40, 30, 20)

	for _, metric := range append(domain.Metrics, domain.Metric("bogus")) {
		t.Run(metric.String(), func(t *testing.T) {
			analysis, err := analyzer.AnalyzeImpact(metric, current, nil)
			require.NoError(t, err)
			assert.Nil(t, analysis)
		})
	}
}

func TestAnalyzeImpact_InvalidMetric(t *testing.T) {
	analyzer := NewAnalyzer(constantSource(0.5))
	previous := reportWithLeads(100, 40, 30, 20)

	analysis, err := analyzer.AnalyzeImpact(domain.Metric("ctr"), previous, &previous)

	require.Error(t, err)
	assert.Nil(t, analysis)
	var invalid *domain.InvalidMetricError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "ctr", invalid.Metric)
}

func TestAnalyzeImpact_EqualLeads_ZeroPercentChange(t *testing.T) {
	analyzer := NewAnalyzer(NewRandomSource(42))
	current := reportWithLeads(150, 60, 50, 40)
	previous := reportWithLeads(150, 50, 55, 45)

	analysis, err := analyzer.AnalyzeImpact(domain.MetricLeads, current, &previous)

	require.NoError(t, err)
	require.NotNil(t, analysis)
	assert.Equal(t, 0.0, analysis.PercentChange)
	assert.Equal(t, 0.0, analysis.AbsoluteChange)
	for _, item := range analysis.ChannelBreakdown {
		assert.Equal(t, 0.0, item.ImpactShare, item.Name)
	}
	assert.NotEmpty(t, analysis.PrincipalCause)
}

func TestAnalyzeImpact_ZeroPreviousValue_GuardsDivision(t *testing.T) {
	analyzer := NewAnalyzer(constantSource(0.5))
	current := reportWithLeads(10, 5, 0, 0)
	previous := reportWithLeads(0, 0, 0, 0)

	analysis, err := analyzer.AnalyzeImpact(domain.MetricLeads, current, &previous)

	require.NoError(t, err)
	assert.Equal(t, 0.0, analysis.PercentChange)
	assert.Equal(t, 10.0, analysis.AbsoluteChange)

	google := analysis.ChannelBreakdown[0]
	assert.Equal(t, ChannelGoogleAds, google.Name)
	assert.Equal(t, 5.0, google.AbsoluteChange)
	assert.Equal(t, 0.0, google.PercentChange)
	assert.InDelta(t, 50.0, google.ImpactShare, 1e-9)
}

func TestAnalyzeImpact_Scenarios(t *testing.T) {
	tests := []struct {
		name          string
		metric        domain.Metric
		current       domain.MonthlyReport
		previous      domain.MonthlyReport
		expectedPct   float64
		expectedLines []string
	}{
		{
			name:        "leads drop triggers targeting review",
			metric:      domain.MetricLeads,
			current:     reportWithLeads(100, 30, 30, 40),
			previous:    reportWithLeads(150, 30, 30, 40),
			expectedPct: -33.333,
			expectedLines: []string{
				adviceLeads,
			},
		},
		{
			name:   "cpa rise triggers competitive pressure",
			metric: domain.MetricCPA,
			current: domain.MonthlyReport{
				GoogleAds: domain.GoogleAds{CostPerAcquisition: 90},
			},
			previous: domain.MonthlyReport{
				GoogleAds: domain.GoogleAds{CostPerAcquisition: 70},
			},
			expectedPct:   28.571,
			expectedLines: []string{adviceCPA},
		},
		{
			name:   "roi jump triggers scale investment",
			metric: domain.MetricROI,
			current: domain.MonthlyReport{
				GoogleAds: domain.GoogleAds{ROI: 6.0},
			},
			previous: domain.MonthlyReport{
				GoogleAds: domain.GoogleAds{ROI: 4.0},
			},
			expectedPct:   50,
			expectedLines: []string{adviceROI},
		},
		{
			name:   "conversion drop triggers lead quality review",
			metric: domain.MetricConversionRate,
			current: domain.MonthlyReport{
				Overall: domain.OverallMetrics{OverallConversionRate: 8},
			},
			previous: domain.MonthlyReport{
				Overall: domain.OverallMetrics{OverallConversionRate: 10},
			},
			expectedPct:   -20,
			expectedLines: []string{adviceConversionRate},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyzer := NewAnalyzer(constantSource(0.5))

			analysis, err := analyzer.AnalyzeImpact(tt.metric, tt.current, &tt.previous)

			require.NoError(t, err)
			require.NotNil(t, analysis)
			assert.Equal(t, tt.metric, analysis.Metric)
			assert.InDelta(t, tt.expectedPct, analysis.PercentChange, 0.001)
			for _, line := range tt.expectedLines {
				assert.Contains(t, analysis.DiagnosisLines, line)
			}
		})
	}
}

func TestAnalyzeImpact_GoogleAdsDominatesLeadChange(t *testing.T) {
	analyzer := NewAnalyzer(constantSource(0.5))
	current := reportWithLeads(125, 40, 10, 5)
	previous := reportWithLeads(100, 20, 10, 5)

	analysis, err := analyzer.AnalyzeImpact(domain.MetricLeads, current, &previous)

	require.NoError(t, err)
	require.Len(t, analysis.ChannelBreakdown, 3)
	top := analysis.ChannelBreakdown[0]
	assert.Equal(t, ChannelGoogleAds, top.Name)
	assert.InDelta(t, 80.0, top.ImpactShare, 1e-9)
	assert.Equal(t, "80% of the increase came from the Google Ads channel", analysis.DiagnosisLines[0])
	assert.NotContains(t, analysis.DiagnosisLines, adviceLeads)
}

func TestAnalyzeImpact_DoesNotMutateReports(t *testing.T) {
	analyzer := NewAnalyzer(NewRandomSource(7))
	current := reportWithLeads(125, 40, 10, 5)
	previous := reportWithLeads(100, 20, 10, 5)
	currentCopy, previousCopy := current, previous

	_, err := analyzer.AnalyzeImpact(domain.MetricLeads, current, &previous)

	require.NoError(t, err)
	assert.Equal(t, currentCopy, current)
	assert.Equal(t, previousCopy, previous)
}

func TestExtractValues(t *testing.T) {
	current := domain.MonthlyReport{
		GoogleAds: domain.GoogleAds{CostPerAcquisition: 45.5, ROI: 4.5},
		Overall:   domain.OverallMetrics{TotalLeads: 243, OverallConversionRate: 14.2},
	}
	previous := domain.MonthlyReport{
		GoogleAds: domain.GoogleAds{CostPerAcquisition: 50, ROI: 3},
		Overall:   domain.OverallMetrics{TotalLeads: 200, OverallConversionRate: 12},
	}

	tests := []struct {
		metric   domain.Metric
		current  float64
		previous float64
	}{
		{domain.MetricLeads, 243, 200},
		{domain.MetricCPA, 45.5, 50},
		{domain.MetricConversionRate, 14.2, 12},
		{domain.MetricROI, 4.5, 3},
	}

	for _, tt := range tests {
		t.Run(tt.metric.String(), func(t *testing.T) {
			cur, prev, err := ExtractValues(tt.metric, current, previous)
			require.NoError(t, err)
			assert.Equal(t, tt.current, cur)
			assert.Equal(t, tt.previous, prev)
		})
	}
}
