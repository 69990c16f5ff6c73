package export

import (
	"bytes"
	"testing"

	"github.com/de-tools/impact-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteInsights(t *testing.T) {
	previous := 100.0
	summary := &domain.InsightSummary{
		ReportID: "dec",
		Period:   "12/2024",
		KPIs: []domain.KPI{
			{Name: "Total Leads", Current: 120, Previous: &previous, Variation: 20, HigherIsBetter: true},
			{Name: "ROI", Current: 3.5, HigherIsBetter: true},
		},
		Alerts: []domain.Alert{
			{Severity: domain.SeverityWarning, Title: "High CPA", Message: "CPA of 95.00 is above the 80.00 target"},
		},
		Highlights: []domain.Highlight{
			{Title: "Exceptional Ad ROI", Description: "Google Ads returned 3.50x the spend"},
		},
	}
	var buf bytes.Buffer

	err := WriteInsights(&buf, summary)

	require.NoError(t, err)
	expected := `KPI SUMMARY 12/2024

Total Leads: 120.00 (previous 100.00, +20.00%)
ROI: 3.50

=== Alerts ===
[WARNING] High CPA: CPA of 95.00 is above the 80.00 target

=== Highlights ===
* Exceptional Ad ROI: Google Ads returned 3.50x the spend
`
	assert.Equal(t, expected, buf.String())
}

func TestWriteInsights_NoAlertsOrHighlights(t *testing.T) {
	var buf bytes.Buffer

	err := WriteInsights(&buf, &domain.InsightSummary{
		Period: "01/2025",
		KPIs:   []domain.KPI{{Name: "CPA", Current: 40}},
	})

	require.NoError(t, err)
	assert.Equal(t, "KPI SUMMARY 01/2025\n\nCPA: 40.00\n", buf.String())
}

func TestWriteInsights_Nil(t *testing.T) {
	assert.Error(t, WriteInsights(&bytes.Buffer{}, nil))
}

func TestWriteReports(t *testing.T) {
	var buf bytes.Buffer

	err := WriteReports(&buf, []domain.MonthlyReport{
		{ID: "nov", Month: 11, Year: 2024, Client: "Acme", Overall: domain.OverallMetrics{TotalLeads: 100}, GoogleAds: domain.GoogleAds{Spend: 4000}},
		{ID: "dec", Month: 12, Year: 2024},
	})

	require.NoError(t, err)
	assert.Equal(t,
		"nov  11/2024  Acme  leads=100.00  spend=4000.00\ndec  12/2024  -  leads=0.00  spend=0.00\n",
		buf.String())
}

func TestWriteReports_Empty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteReports(&buf, nil))
	assert.Equal(t, "No reports recorded yet.\n", buf.String())
}
