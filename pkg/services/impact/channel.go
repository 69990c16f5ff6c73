package impact

import (
	"math"
	"sort"

	"github.com/de-tools/impact-atlas/pkg/models/domain"
)

const (
	ChannelGoogleAds = "Google Ads"
	ChannelAI        = "AI Assistant"
	ChannelPortal    = "Portal"
)

type channelValues struct {
	name     string
	current  float64
	previous float64
}

// AttributeByChannel splits the metric variance across the three lead channels.
// Only volume counters are compared: for cpa, roi and conversionRate the channel
// conversions stand in for the blended metric. Social media is not attributed.
func AttributeByChannel(
	metric domain.Metric,
	current, previous domain.MonthlyReport,
	totalVariance float64,
) []domain.ImpactItem {
	googleCurrent, googlePrevious := current.GoogleAds.Conversions, previous.GoogleAds.Conversions
	if metric == domain.MetricLeads {
		googleCurrent, googlePrevious = current.GoogleAds.LeadsGenerated, previous.GoogleAds.LeadsGenerated
	}

	channels := []channelValues{
		{name: ChannelGoogleAds, current: googleCurrent, previous: googlePrevious},
		{name: ChannelAI, current: current.AI.QualifiedLeads, previous: previous.AI.QualifiedLeads},
		{name: ChannelPortal, current: current.Portal.Conversions, previous: previous.Portal.Conversions},
	}

	items := make([]domain.ImpactItem, 0, len(channels))
	for _, ch := range channels {
		change := ch.current - ch.previous
		items = append(items, domain.ImpactItem{
			Name:           ch.name,
			CurrentValue:   ch.current,
			PreviousValue:  ch.previous,
			AbsoluteChange: change,
			PercentChange:  percentOf(change, ch.previous),
			ImpactShare:    percentOf(change, totalVariance),
		})
	}

	sortByImpact(items)
	return items
}

// sortByImpact orders items by descending absolute impact share, keeping input order on ties
func sortByImpact(items []domain.ImpactItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return math.Abs(items[i].ImpactShare) > math.Abs(items[j].ImpactShare)
	})
}
