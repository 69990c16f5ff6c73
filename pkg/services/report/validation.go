package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/de-tools/impact-atlas/pkg/models/domain"
)

type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid report: " + strings.Join(e.Problems, "; ")
}

// Validate checks the report period and that every recorded metric is a finite, non-negative number
func Validate(r domain.MonthlyReport) error {
	var problems []string

	if r.Month < 1 || r.Month > 12 {
		problems = append(problems, fmt.Sprintf("month must be between 1 and 12, got %d", r.Month))
	}
	if r.Year <= 0 {
		problems = append(problems, fmt.Sprintf("year must be positive, got %d", r.Year))
	}

	fields := []struct {
		name  string
		value float64
	}{
		{"google_ads.leads_generated", r.GoogleAds.LeadsGenerated},
		{"google_ads.conversions", r.GoogleAds.Conversions},
		{"google_ads.spend", r.GoogleAds.Spend},
		{"ai.interaction_volume", r.AI.InteractionVolume},
		{"ai.qualified_leads", r.AI.QualifiedLeads},
		{"ai.user_satisfaction", r.AI.UserSatisfaction},
		{"portal.visits", r.Portal.Visits},
		{"portal.signups", r.Portal.Signups},
		{"portal.properties_viewed", r.Portal.PropertiesViewed},
		{"portal.conversions", r.Portal.Conversions},
		{"social_media.reach", r.SocialMedia.Reach},
		{"social_media.engagement", r.SocialMedia.Engagement},
		{"social_media.organic_leads", r.SocialMedia.OrganicLeads},
		{"social_media.cost_per_lead", r.SocialMedia.CostPerLead},
		{"social_media.new_followers", r.SocialMedia.NewFollowers},
		{"social_media.interactions", r.SocialMedia.Interactions},
		{"overall.total_leads", r.Overall.TotalLeads},
		{"overall.overall_conversion_rate", r.Overall.OverallConversionRate},
		{"overall.average_ticket", r.Overall.AverageTicket},
		{"overall.nps_score", r.Overall.NPSScore},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value < 0 {
			problems = append(problems, fmt.Sprintf("%s must be a finite, non-negative number", f.name))
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// DeriveMetrics computes the Google Ads CPA and ROI from the recorded volumes
func DeriveMetrics(r *domain.MonthlyReport) {
	r.GoogleAds.CostPerAcquisition = 0
	if r.GoogleAds.Conversions > 0 {
		r.GoogleAds.CostPerAcquisition = r.GoogleAds.Spend / r.GoogleAds.Conversions
	}

	r.GoogleAds.ROI = 0
	if r.GoogleAds.Spend > 0 && r.Overall.AverageTicket > 0 {
		r.GoogleAds.ROI = r.GoogleAds.Conversions * r.Overall.AverageTicket / r.GoogleAds.Spend
	}
}
