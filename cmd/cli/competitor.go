package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var competitorUsername string

var competitorCmd = &cobra.Command{
	Use:   "competitor",
	Short: "Analyze a competitor's public posts",
	Long: `Analyze a competitor's public posts. The --posts file must contain the
lighter competitor record shape (plain like/reply/repost/quote counts).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		src := fileSource()
		posts, err := src.FetchCompetitorPosts(cmd.Context(), competitorUsername, limit)
		if err != nil {
			return err
		}
		profile, err := src.FetchCompetitorProfile(cmd.Context(), competitorUsername)
		if err != nil {
			return err
		}
		cmp, err := svc.AnalyzeCompetitor(competitorUsername, *profile, posts)
		if err != nil {
			return err
		}
		if asJSON {
			return printJSON(cmp)
		}

		fmt.Printf("@%s - %d posts, %.2f posts/day\n", cmp.Username, cmp.PostCount, cmp.PostsPerDay)
		fmt.Printf("  avg: %.1f likes  %.1f replies  %.1f reposts  %.1f quotes  (%.1f engagement)\n",
			cmp.AvgLikes, cmp.AvgReplies, cmp.AvgReposts, cmp.AvgQuotes, cmp.AvgEngagement)
		fmt.Printf("  strategy: %.0f chars avg, %.0f%% emoji, %.0f%% quotes\n",
			cmp.Strategy.AvgTextLength, cmp.Strategy.EmojiRate, cmp.Strategy.QuoteRate)
		if cmp.TopPost != nil {
			fmt.Printf("  top post [%.1f]: %s\n", cmp.TopPost.Score, previewText(cmp.TopPost.Post.Text))
		}
		return nil
	},
}

func init() {
	competitorCmd.Flags().StringVar(&competitorUsername, "username", "", "Competitor username")
	_ = competitorCmd.MarkFlagRequired("username")
}
