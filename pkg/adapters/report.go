package adapters

import (
	"github.com/de-tools/impact-atlas/pkg/models/api"
	"github.com/de-tools/impact-atlas/pkg/models/domain"
	"github.com/de-tools/impact-atlas/pkg/models/store"
)

func MapStoreReportToDomain(r store.ReportRecord) domain.MonthlyReport {
	return domain.MonthlyReport{
		ID:     r.ID,
		Month:  r.Month,
		Year:   r.Year,
		Client: r.Client,
		GoogleAds: domain.GoogleAds{
			LeadsGenerated:     r.AdsLeadsGenerated,
			Conversions:        r.AdsConversions,
			Spend:              r.AdsSpend,
			CostPerAcquisition: r.AdsCPA,
			ROI:                r.AdsROI,
		},
		AI: domain.AIAssistant{
			InteractionVolume: r.AIInteractionVolume,
			QualifiedLeads:    r.AIQualifiedLeads,
			UserSatisfaction:  r.AIUserSatisfaction,
		},
		Portal: domain.Portal{
			Visits:           r.PortalVisits,
			Signups:          r.PortalSignups,
			PropertiesViewed: r.PortalPropertiesViewed,
			Conversions:      r.PortalConversions,
		},
		SocialMedia: domain.SocialMedia{
			Reach:        r.SocialReach,
			Engagement:   r.SocialEngagement,
			OrganicLeads: r.SocialOrganicLeads,
			CostPerLead:  r.SocialCostPerLead,
			NewFollowers: r.SocialNewFollowers,
			Interactions: r.SocialInteractions,
		},
		Overall: domain.OverallMetrics{
			TotalLeads:            r.TotalLeads,
			OverallConversionRate: r.OverallConversionRate,
			AverageTicket:         r.AverageTicket,
			NPSScore:              r.NPSScore,
		},
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func MapDomainReportToStore(r domain.MonthlyReport) store.ReportRecord {
	return store.ReportRecord{
		ID:     r.ID,
		Month:  r.Month,
		Year:   r.Year,
		Client: r.Client,

		AdsLeadsGenerated: r.GoogleAds.LeadsGenerated,
		AdsConversions:    r.GoogleAds.Conversions,
		AdsSpend:          r.GoogleAds.Spend,
		AdsCPA:            r.GoogleAds.CostPerAcquisition,
		AdsROI:            r.GoogleAds.ROI,

		AIInteractionVolume: r.AI.InteractionVolume,
		AIQualifiedLeads:    r.AI.QualifiedLeads,
		AIUserSatisfaction:  r.AI.UserSatisfaction,

		PortalVisits:           r.Portal.Visits,
		PortalSignups:          r.Portal.Signups,
		PortalPropertiesViewed: r.Portal.PropertiesViewed,
		PortalConversions:      r.Portal.Conversions,

		SocialReach:        r.SocialMedia.Reach,
		SocialEngagement:   r.SocialMedia.Engagement,
		SocialOrganicLeads: r.SocialMedia.OrganicLeads,
		SocialCostPerLead:  r.SocialMedia.CostPerLead,
		SocialNewFollowers: r.SocialMedia.NewFollowers,
		SocialInteractions: r.SocialMedia.Interactions,

		TotalLeads:            r.Overall.TotalLeads,
		OverallConversionRate: r.Overall.OverallConversionRate,
		AverageTicket:         r.Overall.AverageTicket,
		NPSScore:              r.Overall.NPSScore,

		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func MapReportDomainToApi(r domain.MonthlyReport) api.MonthlyReport {
	return api.MonthlyReport{
		ID:     r.ID,
		Month:  r.Month,
		Year:   r.Year,
		Client: r.Client,
		GoogleAds: api.GoogleAds{
			LeadsGenerated:     r.GoogleAds.LeadsGenerated,
			Conversions:        r.GoogleAds.Conversions,
			Spend:              r.GoogleAds.Spend,
			CostPerAcquisition: r.GoogleAds.CostPerAcquisition,
			ROI:                r.GoogleAds.ROI,
		},
		AI: api.AIAssistant{
			InteractionVolume: r.AI.InteractionVolume,
			QualifiedLeads:    r.AI.QualifiedLeads,
			UserSatisfaction:  r.AI.UserSatisfaction,
		},
		Portal: api.Portal{
			Visits:           r.Portal.Visits,
			Signups:          r.Portal.Signups,
			PropertiesViewed: r.Portal.PropertiesViewed,
			Conversions:      r.Portal.Conversions,
		},
		SocialMedia: api.SocialMedia{
			Reach:        r.SocialMedia.Reach,
			Engagement:   r.SocialMedia.Engagement,
			OrganicLeads: r.SocialMedia.OrganicLeads,
			CostPerLead:  r.SocialMedia.CostPerLead,
			NewFollowers: r.SocialMedia.NewFollowers,
			Interactions: r.SocialMedia.Interactions,
		},
		Overall: api.OverallMetrics{
			TotalLeads:            r.Overall.TotalLeads,
			OverallConversionRate: r.Overall.OverallConversionRate,
			AverageTicket:         r.Overall.AverageTicket,
			NPSScore:              r.Overall.NPSScore,
		},
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// MapReportApiToDomain maps a create/update payload. Derived fields and timestamps
// are owned by the report service and are not taken from the payload.
func MapReportApiToDomain(r api.MonthlyReport) domain.MonthlyReport {
	return domain.MonthlyReport{
		ID:     r.ID,
		Month:  r.Month,
		Year:   r.Year,
		Client: r.Client,
		GoogleAds: domain.GoogleAds{
			LeadsGenerated: r.GoogleAds.LeadsGenerated,
			Conversions:    r.GoogleAds.Conversions,
			Spend:          r.GoogleAds.Spend,
		},
		AI: domain.AIAssistant{
			InteractionVolume: r.AI.InteractionVolume,
			QualifiedLeads:    r.AI.QualifiedLeads,
			UserSatisfaction:  r.AI.UserSatisfaction,
		},
		Portal: domain.Portal{
			Visits:           r.Portal.Visits,
			Signups:          r.Portal.Signups,
			PropertiesViewed: r.Portal.PropertiesViewed,
			Conversions:      r.Portal.Conversions,
		},
		SocialMedia: domain.SocialMedia{
			Reach:        r.SocialMedia.Reach,
			Engagement:   r.SocialMedia.Engagement,
			OrganicLeads: r.SocialMedia.OrganicLeads,
			CostPerLead:  r.SocialMedia.CostPerLead,
			NewFollowers: r.SocialMedia.NewFollowers,
			Interactions: r.SocialMedia.Interactions,
		},
		Overall: domain.OverallMetrics{
			TotalLeads:            r.Overall.TotalLeads,
			OverallConversionRate: r.Overall.OverallConversionRate,
			AverageTicket:         r.Overall.AverageTicket,
			NPSScore:              r.Overall.NPSScore,
		},
		Notes: r.Notes,
	}
}
