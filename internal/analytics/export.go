package analytics

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/threadpulse/backend/internal/models"
)

// exportTextLimit bounds how much post text the export carries; the
// dashboard's CSV/JSON consumers only need enough to recognize the post.
const exportTextLimit = 100

// ExportSummary is the flattened account summary. Percentages are
// pre-formatted strings with fixed precision so every downstream consumer
// renders them identically; plain counts stay numeric.
type ExportSummary struct {
	TotalPosts      int    `json:"total_posts"`
	TotalViews      int    `json:"total_views"`
	TotalLikes      int    `json:"total_likes"`
	TotalReplies    int    `json:"total_replies"`
	TotalReposts    int    `json:"total_reposts"`
	TotalQuotes     int    `json:"total_quotes"`
	TotalShares     int    `json:"total_shares"`
	TotalEngagement int    `json:"total_engagement"`
	EngagementRate  string `json:"engagement_rate"`
}

// ExportPost is one ranked post in the export, with truncated text.
type ExportPost struct {
	ID             string  `json:"id"`
	Text           string  `json:"text"`
	Score          float64 `json:"score"`
	Views          int     `json:"views"`
	Engagement     int     `json:"engagement"`
	EngagementRate string  `json:"engagement_rate"`
}

// ExportBucket is one temporal ranking row.
type ExportBucket struct {
	Slot          string `json:"slot"`
	PostCount     int    `json:"post_count"`
	AvgEngagement string `json:"avg_engagement"`
}

// ExportVirality carries the pre-formatted virality percentages.
type ExportVirality struct {
	ViralCoefficient string `json:"viral_coefficient"`
	ShareRate        string `json:"share_rate"`
	ReplyRate        string `json:"reply_rate"`
}

// ExportGrowth carries the pre-formatted growth figures.
type ExportGrowth struct {
	PostsPerDay  string `json:"posts_per_day"`
	ViewsPerPost string `json:"views_per_post"`
	Trend        string `json:"trend"`
}

// ExportPayload is the stable, serialization-friendly flattening of a
// report. It is a pure presentation transform; nothing here is computed
// beyond formatting.
type ExportPayload struct {
	ID          string         `json:"id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Profile     models.Profile `json:"profile"`
	Summary     ExportSummary  `json:"summary"`
	TopPosts    []ExportPost   `json:"top_posts"`
	WorstPosts  []ExportPost   `json:"worst_posts"`
	BestHours   []ExportBucket `json:"best_hours"`
	BestDays    []ExportBucket `json:"best_days"`
	Virality    ExportVirality `json:"virality"`
	Growth      ExportGrowth   `json:"growth"`
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

func formatFixed(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func truncateText(text string, limit int) string {
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	runes := []rune(text)
	return string(runes[:limit]) + "…"
}

func exportPosts(scored []ScoredPost) []ExportPost {
	out := make([]ExportPost, 0, len(scored))
	for _, sp := range scored {
		out = append(out, ExportPost{
			ID:             sp.Post.ID,
			Text:           truncateText(sp.Post.Text, exportTextLimit),
			Score:          sp.Score,
			Views:          sp.Post.Insights.Views,
			Engagement:     sp.Post.Insights.Engagement(),
			EngagementRate: formatPercent(EngagementRate(sp.Post)),
		})
	}
	return out
}

// ExportData flattens a finished report for download. The posts argument is
// unused today but kept in the signature so the export can regain per-post
// columns without an interface change.
func (s *Service) ExportData(profile models.Profile, report *Report, posts []models.Post) (*ExportPayload, error) {
	started := time.Now()

	hours := make([]ExportBucket, 0, len(report.BestHours))
	for _, h := range report.BestHours {
		hours = append(hours, ExportBucket{
			Slot:          fmt.Sprintf("%02d:00", h.Hour),
			PostCount:     h.PostCount,
			AvgEngagement: formatFixed(h.AvgEngagement),
		})
	}
	days := make([]ExportBucket, 0, len(report.BestDays))
	for _, d := range report.BestDays {
		days = append(days, ExportBucket{
			Slot:          d.Day,
			PostCount:     d.PostCount,
			AvgEngagement: formatFixed(d.AvgEngagement),
		})
	}

	payload := &ExportPayload{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Profile:     profile,
		Summary: ExportSummary{
			TotalPosts:      report.Summary.TotalPosts,
			TotalViews:      report.Summary.TotalViews,
			TotalLikes:      report.Summary.TotalLikes,
			TotalReplies:    report.Summary.TotalReplies,
			TotalReposts:    report.Summary.TotalReposts,
			TotalQuotes:     report.Summary.TotalQuotes,
			TotalShares:     report.Summary.TotalShares,
			TotalEngagement: report.Summary.TotalEngagement,
			EngagementRate:  formatPercent(report.Summary.AverageEngagementRate),
		},
		TopPosts:   exportPosts(report.TopPosts),
		WorstPosts: exportPosts(report.WorstPosts),
		BestHours:  hours,
		BestDays:   days,
		Virality: ExportVirality{
			ViralCoefficient: formatPercent(report.Virality.ViralCoefficient),
			ShareRate:        formatPercent(report.Virality.ShareRate),
			ReplyRate:        formatPercent(report.Virality.ReplyRate),
		},
		Growth: ExportGrowth{
			PostsPerDay:  formatFixed(report.Growth.PostsPerDay),
			ViewsPerPost: formatFixed(report.Growth.ViewsPerPost),
			Trend:        string(report.Growth.EngagementTrend),
		},
	}

	s.metrics.ObserveAnalysis("export", len(posts), started)
	return payload, nil
}
