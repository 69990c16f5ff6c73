package store

import "time"

// ReportRecord is the flattened row of the monthly_reports table
type ReportRecord struct {
	ID     string
	Month  int
	Year   int
	Client string

	AdsLeadsGenerated float64
	AdsConversions    float64
	AdsSpend          float64
	AdsCPA            float64
	AdsROI            float64

	AIInteractionVolume float64
	AIQualifiedLeads    float64
	AIUserSatisfaction  float64

	PortalVisits           float64
	PortalSignups          float64
	PortalPropertiesViewed float64
	PortalConversions      float64

	SocialReach        float64
	SocialEngagement   float64
	SocialOrganicLeads float64
	SocialCostPerLead  float64
	SocialNewFollowers float64
	SocialInteractions float64

	TotalLeads            float64
	OverallConversionRate float64
	AverageTicket         float64
	NPSScore              float64

	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
