package main

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/threadpulse/backend/internal/analytics"
	"github.com/threadpulse/backend/internal/config"
	"github.com/threadpulse/backend/internal/logger"
	"github.com/threadpulse/backend/internal/metrics"
	"github.com/threadpulse/backend/internal/platform"
)

var (
	postsPath   string
	profilePath string
	limit       int
	asJSON      bool
)

var (
	cfg *config.Config
	svc *analytics.Service
)

var rootCmd = &cobra.Command{
	Use:   "threadpulse",
	Short: "Threadpulse CLI - post performance analytics from exported data",
	Long: `Threadpulse CLI runs the post performance analytics engine over posts
exported from your dashboard (JSON files). It never talks to the platform
API itself - export your posts first, then point --posts at the file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		if err := logger.Initialize(cfg.LogLevel, cfg.LogFile); err != nil {
			return err
		}
		loc, err := cfg.Location()
		if err != nil {
			return err
		}
		svc = analytics.NewService(logger.Log, metrics.New(), loc)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&postsPath, "posts", "posts.json", "Path to the exported posts JSON file")
	rootCmd.PersistentFlags().StringVar(&profilePath, "profile", "", "Path to the exported profile JSON file (optional)")
	rootCmd.PersistentFlags().IntVar(&limit, "limit", 0, "Only analyze the first N posts (0 = all)")
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "Print JSON instead of text")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(hashtagsCmd)
	rootCmd.AddCommand(keywordsCmd)
	rootCmd.AddCommand(heatmapCmd)
	rootCmd.AddCommand(trendsCmd)
	rootCmd.AddCommand(competitorCmd)
}

func fileSource() *platform.FileSource {
	return platform.NewFileSource(postsPath, profilePath)
}

// printJSON renders any result as indented JSON on stdout.
func printJSON(v interface{}) error {
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func main() {
	defer logger.Close()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
