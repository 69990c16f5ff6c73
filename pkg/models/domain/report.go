package domain

import (
	"fmt"
	"time"
)

// MonthlyReport represents one month of recorded marketing metrics for a client
type MonthlyReport struct {
	ID          string
	Month       int // 1..12
	Year        int
	Client      string
	GoogleAds   GoogleAds
	AI          AIAssistant
	Portal      Portal
	SocialMedia SocialMedia // tracked, not attributed by the impact engine
	Overall     OverallMetrics
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type GoogleAds struct {
	LeadsGenerated     float64
	Conversions        float64
	Spend              float64
	CostPerAcquisition float64 // Spend / Conversions
	ROI                float64 // Conversions * AverageTicket / Spend
}

type AIAssistant struct {
	InteractionVolume float64
	QualifiedLeads    float64
	UserSatisfaction  float64 // percent
}

type Portal struct {
	Visits           float64
	Signups          float64
	PropertiesViewed float64
	Conversions      float64 // proposals and visit bookings
}

type SocialMedia struct {
	Reach        float64
	Engagement   float64
	OrganicLeads float64
	CostPerLead  float64
	NewFollowers float64
	Interactions float64
}

type OverallMetrics struct {
	TotalLeads            float64
	OverallConversionRate float64 // percent
	AverageTicket         float64
	NPSScore              float64
}

// Period returns the report period formatted as MM/YYYY
func (r MonthlyReport) Period() string {
	return fmt.Sprintf("%02d/%d", r.Month, r.Year)
}

// Before reports whether r precedes other chronologically.
// Reports of the same period are ordered by creation time.
func (r MonthlyReport) Before(other MonthlyReport) bool {
	if r.Year != other.Year {
		return r.Year < other.Year
	}
	if r.Month != other.Month {
		return r.Month < other.Month
	}
	return r.CreatedAt.Before(other.CreatedAt)
}
