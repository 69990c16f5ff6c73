package api

import "time"

type GoogleAds struct {
	LeadsGenerated     float64 `json:"leads_generated"`
	Conversions        float64 `json:"conversions"`
	Spend              float64 `json:"spend"`
	CostPerAcquisition float64 `json:"cost_per_acquisition"`
	ROI                float64 `json:"roi"`
}

type AIAssistant struct {
	InteractionVolume float64 `json:"interaction_volume"`
	QualifiedLeads    float64 `json:"qualified_leads"`
	UserSatisfaction  float64 `json:"user_satisfaction"`
}

type Portal struct {
	Visits           float64 `json:"visits"`
	Signups          float64 `json:"signups"`
	PropertiesViewed float64 `json:"properties_viewed"`
	Conversions      float64 `json:"conversions"`
}

type SocialMedia struct {
	Reach        float64 `json:"reach"`
	Engagement   float64 `json:"engagement"`
	OrganicLeads float64 `json:"organic_leads"`
	CostPerLead  float64 `json:"cost_per_lead"`
	NewFollowers float64 `json:"new_followers"`
	Interactions float64 `json:"interactions"`
}

type OverallMetrics struct {
	TotalLeads            float64 `json:"total_leads"`
	OverallConversionRate float64 `json:"overall_conversion_rate"`
	AverageTicket         float64 `json:"average_ticket"`
	NPSScore              float64 `json:"nps_score"`
}

type MonthlyReport struct {
	ID          string         `json:"id"`
	Month       int            `json:"month"`
	Year        int            `json:"year"`
	Client      string         `json:"client"`
	GoogleAds   GoogleAds      `json:"google_ads"`
	AI          AIAssistant    `json:"ai"`
	Portal      Portal         `json:"portal"`
	SocialMedia SocialMedia    `json:"social_media"`
	Overall     OverallMetrics `json:"overall"`
	Notes       string         `json:"notes"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type Error struct {
	Error string `json:"error"`
}
