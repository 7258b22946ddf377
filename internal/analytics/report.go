package analytics

import (
	"github.com/threadpulse/backend/internal/models"
)

// Trend classifies the direction of recent engagement relative to older posts.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// Summary holds the account-wide totals accumulated in the aggregation pass.
type Summary struct {
	TotalPosts            int     `json:"total_posts"`
	TotalViews            int     `json:"total_views"`
	TotalLikes            int     `json:"total_likes"`
	TotalReplies          int     `json:"total_replies"`
	TotalReposts          int     `json:"total_reposts"`
	TotalQuotes           int     `json:"total_quotes"`
	TotalShares           int     `json:"total_shares"`
	TotalEngagement       int     `json:"total_engagement"`
	AverageEngagementRate float64 `json:"average_engagement_rate"`
}

// ScoredPost pairs a post with its composite score for ranking.
type ScoredPost struct {
	Post  models.Post `json:"post"`
	Score float64     `json:"score"`
}

// HourPerformance ranks one hour of the day by average engagement.
// Hours with no posts are omitted from rankings entirely (the heatmap
// zero-fills instead).
type HourPerformance struct {
	Hour          int     `json:"hour"`
	PostCount     int     `json:"post_count"`
	AvgEngagement float64 `json:"avg_engagement"`
}

// DayPerformance ranks one day of the week by average engagement.
type DayPerformance struct {
	Day           string  `json:"day"`
	PostCount     int     `json:"post_count"`
	AvgEngagement float64 `json:"avg_engagement"`
}

// LengthPerformance reports engagement for one text-length range.
// The ranges are fixed; see lengthRanges in analyzer.go.
type LengthPerformance struct {
	Range         string  `json:"range"`
	PostCount     int     `json:"post_count"`
	AvgEngagement float64 `json:"avg_engagement"`
}

// GroupStats summarizes one side of a two-way comparison
// (emoji vs plain, quote vs original).
type GroupStats struct {
	PostCount     int     `json:"post_count"`
	AvgEngagement float64 `json:"avg_engagement"`
}

// EmojiImpact compares posts containing emoji against those without.
type EmojiImpact struct {
	WithEmoji    GroupStats `json:"with_emoji"`
	WithoutEmoji GroupStats `json:"without_emoji"`
}

// QuotePerformance compares quote posts against original posts.
type QuotePerformance struct {
	Quotes    GroupStats `json:"quotes"`
	Originals GroupStats `json:"originals"`
}

// MediaPerformance reports engagement for one media type, using the
// translated display label.
type MediaPerformance struct {
	Type          string  `json:"type"`
	PostCount     int     `json:"post_count"`
	AvgEngagement float64 `json:"avg_engagement"`
}

// ContentAnalysis bundles the content-side correlations.
type ContentAnalysis struct {
	LengthCorrelation []LengthPerformance `json:"length_correlation"`
	EmojiImpact       EmojiImpact         `json:"emoji_impact"`
	QuotePerformance  QuotePerformance    `json:"quote_performance"`
	MediaPerformance  []MediaPerformance  `json:"media_performance"`
}

// ViralityMetrics captures re-sharing propensity as percentages of views.
type ViralityMetrics struct {
	ViralCoefficient float64 `json:"viral_coefficient"`
	ShareRate        float64 `json:"share_rate"`
	ReplyRate        float64 `json:"reply_rate"`
}

// GrowthMetrics captures posting cadence and the engagement trend.
type GrowthMetrics struct {
	PostsPerDay     float64 `json:"posts_per_day"`
	ViewsPerPost    float64 `json:"views_per_post"`
	EngagementTrend Trend   `json:"engagement_trend"`
}

// Report is the full performance report. It is a value derived entirely from
// the input posts: recomputed from scratch on every call and never mutated
// in place.
type Report struct {
	Summary    Summary           `json:"summary"`
	TopPosts   []ScoredPost      `json:"top_posts"`
	WorstPosts []ScoredPost      `json:"worst_posts"`
	BestHours  []HourPerformance `json:"best_hours"`
	BestDays   []DayPerformance  `json:"best_days"`
	Content    ContentAnalysis   `json:"content"`
	Virality   ViralityMetrics   `json:"virality"`
	Growth     GrowthMetrics     `json:"growth"`
}

// HashtagStat aggregates performance for one hashtag across all posts
// that used it.
type HashtagStat struct {
	Tag           string  `json:"tag"`
	Count         int     `json:"count"`
	AvgEngagement float64 `json:"avg_engagement"`
	TotalViews    int     `json:"total_views"`
}

// KeywordStat aggregates performance for one keyword. PostCount counts
// distinct posts containing the keyword, not raw occurrences.
type KeywordStat struct {
	Keyword       string  `json:"keyword"`
	PostCount     int     `json:"post_count"`
	AvgEngagement float64 `json:"avg_engagement"`
}

// HeatmapCell is one (day-of-week, hour) slot in the 7x24 activity grid.
// Day 0 is Sunday, matching time.Weekday.
type HeatmapCell struct {
	Day   int     `json:"day"`
	Hour  int     `json:"hour"`
	Count int     `json:"count"`
	Value float64 `json:"value"`
}

// DailyTrendPoint sums activity for one calendar date (YYYY-MM-DD).
type DailyTrendPoint struct {
	Date       string `json:"date"`
	PostCount  int    `json:"post_count"`
	Engagement int    `json:"engagement"`
	Views      int    `json:"views"`
}

// InsightKind labels the tone of a generated insight.
type InsightKind string

const (
	InsightSuccess InsightKind = "success"
	InsightWarning InsightKind = "warning"
	InsightTip     InsightKind = "tip"
	InsightNeutral InsightKind = "insight"
)

// Insight is a prioritized human-readable finding derived from the report.
// Priority 1 is the most important; the final list is sorted ascending.
type Insight struct {
	ID       string      `json:"id"`
	Kind     InsightKind `json:"kind"`
	Title    string      `json:"title"`
	Message  string      `json:"message"`
	Priority int         `json:"priority"`
}
