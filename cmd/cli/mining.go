package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var hashtagsCmd = &cobra.Command{
	Use:   "hashtags",
	Short: "Rank hashtags by average engagement",
	RunE: func(cmd *cobra.Command, args []string) error {
		posts, err := fileSource().FetchPosts(cmd.Context(), "", limit)
		if err != nil {
			return err
		}
		stats, err := svc.AnalyzeHashtags(posts)
		if err != nil {
			return err
		}
		if asJSON {
			return printJSON(stats)
		}
		if len(stats) == 0 {
			fmt.Println("No hashtags found.")
			return nil
		}
		for _, st := range stats {
			fmt.Printf("  %-24s x%-3d avg %.1f  views %d\n", st.Tag, st.Count, st.AvgEngagement, st.TotalViews)
		}
		return nil
	},
}

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Mine recurring keywords and rank them by engagement",
	RunE: func(cmd *cobra.Command, args []string) error {
		posts, err := fileSource().FetchPosts(cmd.Context(), "", limit)
		if err != nil {
			return err
		}
		stats, err := svc.AnalyzeKeywords(posts)
		if err != nil {
			return err
		}
		if asJSON {
			return printJSON(stats)
		}
		if len(stats) == 0 {
			fmt.Println("No recurring keywords found.")
			return nil
		}
		for _, st := range stats {
			fmt.Printf("  %-24s in %-3d posts  avg %.1f\n", st.Keyword, st.PostCount, st.AvgEngagement)
		}
		return nil
	},
}

var heatmapCmd = &cobra.Command{
	Use:   "heatmap",
	Short: "Print the 7x24 posting activity grid",
	RunE: func(cmd *cobra.Command, args []string) error {
		posts, err := fileSource().FetchPosts(cmd.Context(), "", limit)
		if err != nil {
			return err
		}
		cells, err := svc.HeatmapData(posts)
		if err != nil {
			return err
		}
		if asJSON {
			return printJSON(cells)
		}

		days := [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
		fmt.Print("     ")
		for hour := 0; hour < 24; hour++ {
			fmt.Printf("%3d", hour)
		}
		fmt.Println()
		for day := 0; day < 7; day++ {
			fmt.Printf("%s  ", days[day])
			for hour := 0; hour < 24; hour++ {
				cell := cells[day*24+hour]
				if cell.Count == 0 {
					fmt.Print(color.HiBlackString("  ."))
				} else {
					fmt.Printf("%3d", cell.Count)
				}
			}
			fmt.Println()
		}
		return nil
	},
}

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Show the daily engagement trend",
	RunE: func(cmd *cobra.Command, args []string) error {
		posts, err := fileSource().FetchPosts(cmd.Context(), "", limit)
		if err != nil {
			return err
		}
		points, err := svc.DailyTrends(posts)
		if err != nil {
			return err
		}
		if asJSON {
			return printJSON(points)
		}
		for _, p := range points {
			fmt.Printf("  %s  %2d posts  %5d engagement  %7d views\n",
				p.Date, p.PostCount, p.Engagement, p.Views)
		}
		return nil
	},
}
