package analytics

import "github.com/threadpulse/backend/internal/models"

// EngagementRate returns (likes+replies+reposts+quotes)/views as a
// percentage, or 0 when the post has no views. Never negative, never NaN.
func EngagementRate(p models.Post) float64 {
	if p.Insights.Views <= 0 {
		return 0
	}
	return float64(p.Insights.Engagement()) / float64(p.Insights.Views) * 100
}

// CompositeScore ranks a post by weighted engagement:
//
//	likes*1 + replies*2 + reposts*3 + quotes*4 + shares*2 + views/100
//
// Rarer, higher-intent actions count more (quote > repost > reply > like),
// and views are divided by 100 so raw reach does not dominate qualitative
// engagement. The weights are a product decision; changing them reshuffles
// every historical "top post" ranking.
func CompositeScore(p models.Post) float64 {
	i := p.Insights
	return float64(i.Likes) +
		float64(i.Replies)*2 +
		float64(i.Reposts)*3 +
		float64(i.Quotes)*4 +
		float64(i.Shares)*2 +
		float64(i.Views)/100
}
