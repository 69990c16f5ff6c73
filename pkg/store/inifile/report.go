package inifile

import (
	"fmt"

	"github.com/de-tools/impact-atlas/pkg/models/domain"
	"gopkg.in/ini.v1"
)

// LoadReport reads a monthly report from an INI source (file path or []byte).
//
//	[report]
//	month = 12
//	year = 2024
//	client = Example Client
//
//	[google_ads]
//	leads_generated = 150
//	...
//
// Missing keys default to zero. Derived fields (cpa, roi) are not read.
func LoadReport(source any) (*domain.MonthlyReport, error) {
	cfg, err := ini.Load(source)
	if err != nil {
		return nil, fmt.Errorf("failed to read report file: %w", err)
	}

	r := &reportReader{cfg: cfg}
	report := &domain.MonthlyReport{
		ID:     cfg.Section("report").Key("id").String(),
		Client: cfg.Section("report").Key("client").String(),
		Notes:  cfg.Section("report").Key("notes").String(),
		Month:  r.int("report", "month"),
		Year:   r.int("report", "year"),
		GoogleAds: domain.GoogleAds{
			LeadsGenerated: r.float("google_ads", "leads_generated"),
			Conversions:    r.float("google_ads", "conversions"),
			Spend:          r.float("google_ads", "spend"),
		},
		AI: domain.AIAssistant{
			InteractionVolume: r.float("ai", "interaction_volume"),
			QualifiedLeads:    r.float("ai", "qualified_leads"),
			UserSatisfaction:  r.float("ai", "user_satisfaction"),
		},
		Portal: domain.Portal{
			Visits:           r.float("portal", "visits"),
			Signups:          r.float("portal", "signups"),
			PropertiesViewed: r.float("portal", "properties_viewed"),
			Conversions:      r.float("portal", "conversions"),
		},
		SocialMedia: domain.SocialMedia{
			Reach:        r.float("social_media", "reach"),
			Engagement:   r.float("social_media", "engagement"),
			OrganicLeads: r.float("social_media", "organic_leads"),
			CostPerLead:  r.float("social_media", "cost_per_lead"),
			NewFollowers: r.float("social_media", "new_followers"),
			Interactions: r.float("social_media", "interactions"),
		},
		Overall: domain.OverallMetrics{
			TotalLeads:            r.float("overall", "total_leads"),
			OverallConversionRate: r.float("overall", "overall_conversion_rate"),
			AverageTicket:         r.float("overall", "average_ticket"),
			NPSScore:              r.float("overall", "nps_score"),
		},
	}

	if r.err != nil {
		return nil, r.err
	}
	return report, nil
}

// reportReader keeps the first conversion error so the mapping above stays flat
type reportReader struct {
	cfg *ini.File
	err error
}

func (r *reportReader) float(section, key string) float64 {
	sec := r.cfg.Section(section)
	if !sec.HasKey(key) || r.err != nil {
		return 0
	}
	v, err := sec.Key(key).Float64()
	if err != nil {
		r.err = fmt.Errorf("[%s] %s: %w", section, key, err)
		return 0
	}
	return v
}

func (r *reportReader) int(section, key string) int {
	sec := r.cfg.Section(section)
	if !sec.HasKey(key) || r.err != nil {
		return 0
	}
	v, err := sec.Key(key).Int()
	if err != nil {
		r.err = fmt.Errorf("[%s] %s: %w", section, key, err)
		return 0
	}
	return v
}
