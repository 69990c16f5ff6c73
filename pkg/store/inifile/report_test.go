package inifile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/impact-atlas/pkg/services/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReport_ValidFile_PopulatesAllFields(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "december.ini")
	content := `[report]
month = 12
year = 2024
client = Example Client
notes = Strong month, AI above expectations

[google_ads]
leads_generated = 150
conversions = 85
spend = 6825

[ai]
interaction_volume = 2500
qualified_leads = 65
user_satisfaction = 92

[portal]
visits = 8500
signups = 320
properties_viewed = 15000
conversions = 45

[social_media]
reach = 45000
organic_leads = 28

[overall]
total_leads = 243
overall_conversion_rate = 14.2
average_ticket = 285000
nps_score = 8.5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	// When
	report, err := LoadReport(path)

	// Then
	require.NoError(t, err)
	assert.Equal(t, 12, report.Month)
	assert.Equal(t, 2024, report.Year)
	assert.Equal(t, "Example Client", report.Client)
	assert.Equal(t, "Strong month, AI above expectations", report.Notes)
	assert.Equal(t, 150.0, report.GoogleAds.LeadsGenerated)
	assert.Equal(t, 6825.0, report.GoogleAds.Spend)
	assert.Equal(t, 0.0, report.GoogleAds.CostPerAcquisition)
	assert.Equal(t, 65.0, report.AI.QualifiedLeads)
	assert.Equal(t, 15000.0, report.Portal.PropertiesViewed)
	assert.Equal(t, 28.0, report.SocialMedia.OrganicLeads)
	assert.Equal(t, 0.0, report.SocialMedia.Engagement)
	assert.Equal(t, 14.2, report.Overall.OverallConversionRate)
	assert.Equal(t, 8.5, report.Overall.NPSScore)
	assert.Empty(t, report.ID)
}

func TestLoadReport_InvalidNumber_ReturnsError(t *testing.T) {
	_, err := LoadReport([]byte("[report]\nmonth = 3\n\n[portal]\nvisits = many\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "[portal] visits")
}

func TestLoadReport_NonFiniteNumbers_FailValidation(t *testing.T) {
	loaded, err := LoadReport([]byte("[report]\nmonth = 3\nyear = 2025\n\n[google_ads]\nspend = Inf\n\n[overall]\ntotal_leads = NaN\n"))
	require.NoError(t, err)

	err = report.Validate(*loaded)

	var validationErr *report.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "overall.total_leads")
	assert.Contains(t, err.Error(), "google_ads.spend")
}

func TestLoadReport_MissingFile_ReturnsError(t *testing.T) {
	_, err := LoadReport(filepath.Join(t.TempDir(), "missing.ini"))
	assert.Error(t, err)
}
