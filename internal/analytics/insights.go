package analytics

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/threadpulse/backend/internal/models"
)

// insightRule is one threshold check over the finished report. Rules are
// independent of each other; apply returns nil when the rule doesn't fire.
// Priority 1 is the most important.
type insightRule struct {
	priority int
	apply    func(r *Report, posts []models.Post) *Insight
}

// insightRules is evaluated in order, but the order only matters for rules
// with equal priority: the final list is stably sorted by priority.
var insightRules = []insightRule{
	{1, engagementRateRule},
	{2, growthTrendRule},
	{2, goldenHourRule},
	{2, lowCadenceRule},
	{3, goldenDayRule},
	{3, viralPotentialRule},
	{4, emojiImpactRule},
	{5, optimalLengthRule},
	{6, overPostingRule},
	{7, topPostLengthRule},
}

// GenerateInsights runs the rule engine over a finished report. The posts
// are only consulted for dataset-level text statistics; all thresholds read
// the report. An empty report produces no insights.
func (s *Service) GenerateInsights(report *Report, posts []models.Post) []Insight {
	if report == nil || report.Summary.TotalPosts == 0 {
		return []Insight{}
	}

	insights := make([]Insight, 0, len(insightRules))
	for _, rule := range insightRules {
		in := rule.apply(report, posts)
		if in == nil {
			continue
		}
		in.ID = uuid.NewString()
		in.Priority = rule.priority
		insights = append(insights, *in)
		s.metrics.ObserveInsight(string(in.Kind))
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Priority < insights[j].Priority
	})
	return insights
}

func engagementRateRule(r *Report, _ []models.Post) *Insight {
	rate := r.Summary.AverageEngagementRate
	switch {
	case rate >= 5:
		return &Insight{
			Kind:    InsightSuccess,
			Title:   "Strong engagement",
			Message: fmt.Sprintf("Your average engagement rate is %.2f%% — well above typical accounts.", rate),
		}
	case rate < 1:
		return &Insight{
			Kind:    InsightWarning,
			Title:   "Low engagement",
			Message: fmt.Sprintf("Your average engagement rate is %.2f%%. Try more questions, polls, or replies to spark interaction.", rate),
		}
	}
	return nil
}

func growthTrendRule(r *Report, _ []models.Post) *Insight {
	switch r.Growth.EngagementTrend {
	case TrendUp:
		return &Insight{
			Kind:    InsightSuccess,
			Title:   "Engagement trending up",
			Message: "Your recent posts outperform your older ones. Whatever changed, keep doing it.",
		}
	case TrendDown:
		return &Insight{
			Kind:    InsightWarning,
			Title:   "Engagement trending down",
			Message: "Recent posts are underperforming your older ones. Revisit what worked in your top posts.",
		}
	default:
		return &Insight{
			Kind:    InsightNeutral,
			Title:   "Engagement holding steady",
			Message: "Recent and older posts perform about the same.",
		}
	}
}

func goldenHourRule(r *Report, _ []models.Post) *Insight {
	if len(r.BestHours) == 0 {
		return nil
	}
	best := r.BestHours[0]
	return &Insight{
		Kind:    InsightTip,
		Title:   "Golden hour",
		Message: fmt.Sprintf("Posts published around %02d:00 average %.1f engagements — your best hour.", best.Hour, best.AvgEngagement),
	}
}

func goldenDayRule(r *Report, _ []models.Post) *Insight {
	if len(r.BestDays) == 0 {
		return nil
	}
	best := r.BestDays[0]
	return &Insight{
		Kind:    InsightTip,
		Title:   "Best day to post",
		Message: fmt.Sprintf("%s is your strongest day, averaging %.1f engagements per post.", best.Day, best.AvgEngagement),
	}
}

func lowCadenceRule(r *Report, _ []models.Post) *Insight {
	if r.Growth.PostsPerDay >= 0.5 {
		return nil
	}
	return &Insight{
		Kind:    InsightWarning,
		Title:   "Posting too rarely",
		Message: fmt.Sprintf("You average %.1f posts per day. Accounts posting at least every other day hold audience attention better.", r.Growth.PostsPerDay),
	}
}

func overPostingRule(r *Report, _ []models.Post) *Insight {
	if r.Growth.PostsPerDay <= 5 {
		return nil
	}
	return &Insight{
		Kind:    InsightNeutral,
		Title:   "High posting volume",
		Message: fmt.Sprintf("You average %.1f posts per day. Watch whether per-post engagement is diluting.", r.Growth.PostsPerDay),
	}
}

func viralPotentialRule(r *Report, _ []models.Post) *Insight {
	if r.Virality.ViralCoefficient <= 1 {
		return nil
	}
	return &Insight{
		Kind:    InsightSuccess,
		Title:   "Viral potential",
		Message: fmt.Sprintf("%.2f%% of your viewers repost or quote you — your content travels on its own.", r.Virality.ViralCoefficient),
	}
}

// emojiImpactRule fires only when one class beats the other by more
// than 20% and both classes have posts.
func emojiImpactRule(r *Report, _ []models.Post) *Insight {
	with := r.Content.EmojiImpact.WithEmoji
	without := r.Content.EmojiImpact.WithoutEmoji
	if with.PostCount == 0 || without.PostCount == 0 {
		return nil
	}
	switch {
	case with.AvgEngagement > without.AvgEngagement*1.2:
		return &Insight{
			Kind:    InsightNeutral,
			Title:   "Emoji boost",
			Message: fmt.Sprintf("Posts with emoji average %.1f engagements vs %.1f without. Your audience responds to them.", with.AvgEngagement, without.AvgEngagement),
		}
	case without.AvgEngagement > with.AvgEngagement*1.2:
		return &Insight{
			Kind:    InsightNeutral,
			Title:   "Plain text wins",
			Message: fmt.Sprintf("Posts without emoji average %.1f engagements vs %.1f with. Your audience prefers plain text.", without.AvgEngagement, with.AvgEngagement),
		}
	}
	return nil
}

func optimalLengthRule(r *Report, _ []models.Post) *Insight {
	var best *LengthPerformance
	for i := range r.Content.LengthCorrelation {
		lp := &r.Content.LengthCorrelation[i]
		if lp.PostCount == 0 {
			continue
		}
		if best == nil || lp.AvgEngagement > best.AvgEngagement {
			best = lp
		}
	}
	if best == nil {
		return nil
	}
	return &Insight{
		Kind:    InsightTip,
		Title:   "Optimal post length",
		Message: fmt.Sprintf("Posts of %s characters perform best, averaging %.1f engagements.", best.Range, best.AvgEngagement),
	}
}

// topPostLengthRule compares the single top post's text length against the
// dataset average: >1.5x reads as long-form working, <0.5x as short-form.
func topPostLengthRule(r *Report, posts []models.Post) *Insight {
	if len(r.TopPosts) == 0 || len(posts) == 0 {
		return nil
	}
	var totalLen int
	for _, p := range posts {
		totalLen += utf8.RuneCountInString(p.Text)
	}
	avgLen := float64(totalLen) / float64(len(posts))
	if avgLen == 0 {
		return nil
	}
	topLen := float64(utf8.RuneCountInString(r.TopPosts[0].Post.Text))
	switch {
	case topLen > avgLen*1.5:
		return &Insight{
			Kind:    InsightNeutral,
			Title:   "Long-form works for you",
			Message: "Your top post is much longer than your average. Consider writing more in-depth posts.",
		}
	case topLen < avgLen*0.5:
		return &Insight{
			Kind:    InsightNeutral,
			Title:   "Short-form works for you",
			Message: "Your top post is much shorter than your average. Punchy posts resonate with your audience.",
		}
	}
	return nil
}
