package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/threadpulse/backend/internal/analytics"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute the full performance report",
	RunE: func(cmd *cobra.Command, args []string) error {
		posts, err := fileSource().FetchPosts(cmd.Context(), "", limit)
		if err != nil {
			return err
		}
		report, err := svc.AnalyzePosts(posts)
		if err != nil {
			return err
		}
		if asJSON {
			return printJSON(report)
		}
		printReport(report)
		return nil
	},
}

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Generate prioritized insights from the report",
	RunE: func(cmd *cobra.Command, args []string) error {
		posts, err := fileSource().FetchPosts(cmd.Context(), "", limit)
		if err != nil {
			return err
		}
		report, err := svc.AnalyzePosts(posts)
		if err != nil {
			return err
		}
		insights := svc.GenerateInsights(report, posts)
		if asJSON {
			return printJSON(insights)
		}
		if len(insights) == 0 {
			fmt.Println("No insights - not enough data yet.")
			return nil
		}
		for _, in := range insights {
			fmt.Printf("%s %s\n    %s\n", insightBadge(in.Kind), in.Title, in.Message)
		}
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Flatten the report into the export schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		src := fileSource()
		posts, err := src.FetchPosts(cmd.Context(), "", limit)
		if err != nil {
			return err
		}
		profile, err := src.FetchProfile(cmd.Context(), "")
		if err != nil {
			return err
		}
		report, err := svc.AnalyzePosts(posts)
		if err != nil {
			return err
		}
		payload, err := svc.ExportData(*profile, report, posts)
		if err != nil {
			return err
		}
		// Export is a serialization format; text mode makes no sense here.
		return printJSON(payload)
	},
}

// insightBadge color-codes an insight kind for terminal output.
func insightBadge(kind analytics.InsightKind) string {
	switch kind {
	case analytics.InsightSuccess:
		return color.GreenString("[success]")
	case analytics.InsightWarning:
		return color.YellowString("[warning]")
	case analytics.InsightTip:
		return color.CyanString("[tip]")
	default:
		return color.WhiteString("[insight]")
	}
}

func printReport(r *analytics.Report) {
	bold := color.New(color.Bold)

	bold.Println("Summary")
	fmt.Printf("  posts: %d  views: %d  engagement: %d  rate: %.2f%%\n",
		r.Summary.TotalPosts, r.Summary.TotalViews,
		r.Summary.TotalEngagement, r.Summary.AverageEngagementRate)
	fmt.Printf("  likes: %d  replies: %d  reposts: %d  quotes: %d  shares: %d\n",
		r.Summary.TotalLikes, r.Summary.TotalReplies,
		r.Summary.TotalReposts, r.Summary.TotalQuotes, r.Summary.TotalShares)

	if len(r.TopPosts) > 0 {
		bold.Println("Top posts")
		for i, sp := range r.TopPosts {
			fmt.Printf("  %d. [%.1f] %s\n", i+1, sp.Score, previewText(sp.Post.Text))
		}
	}

	if len(r.BestHours) > 0 {
		bold.Println("Best hours")
		for i, h := range r.BestHours {
			if i >= 3 {
				break
			}
			fmt.Printf("  %02d:00  avg %.1f over %d posts\n", h.Hour, h.AvgEngagement, h.PostCount)
		}
	}
	if len(r.BestDays) > 0 {
		bold.Println("Best days")
		for i, d := range r.BestDays {
			if i >= 3 {
				break
			}
			fmt.Printf("  %-9s avg %.1f over %d posts\n", d.Day, d.AvgEngagement, d.PostCount)
		}
	}

	bold.Println("Virality")
	fmt.Printf("  viral coefficient: %.2f%%  share rate: %.2f%%  reply rate: %.2f%%\n",
		r.Virality.ViralCoefficient, r.Virality.ShareRate, r.Virality.ReplyRate)

	bold.Println("Growth")
	fmt.Printf("  posts/day: %.2f  views/post: %.1f  trend: %s\n",
		r.Growth.PostsPerDay, r.Growth.ViewsPerPost, r.Growth.EngagementTrend)
}

func previewText(text string) string {
	const max = 60
	runes := []rune(text)
	if len(runes) <= max {
		if text == "" {
			return "(no text)"
		}
		return text
	}
	return string(runes[:max]) + "…"
}
