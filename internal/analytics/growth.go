package analytics

import "sort"

// growthTrendThreshold is the hysteresis band for the trend classifier:
// the recent half must beat (or trail) the older half by more than 10%
// before the trend leaves "stable".
const growthTrendThreshold = 0.10

// viralityMetrics derives the re-sharing ratios from the summary totals.
// Every denominator is guarded; no views means every rate is 0.
func viralityMetrics(sum Summary) ViralityMetrics {
	if sum.TotalViews == 0 {
		return ViralityMetrics{}
	}
	views := float64(sum.TotalViews)
	return ViralityMetrics{
		ViralCoefficient: float64(sum.TotalReposts+sum.TotalQuotes) / views * 100,
		ShareRate:        float64(sum.TotalShares) / views * 100,
		ReplyRate:        float64(sum.TotalReplies) / views * 100,
	}
}

// growthMetrics derives posting cadence and the engagement trend.
//
// The trend compares the average composite score of the newest half of the
// posts against the older half. Callers historically had to pass posts
// newest-first for this to mean anything; the engine now sorts its own copy
// by timestamp so caller order is irrelevant.
func growthMetrics(parsed []parsedPost, sum Summary) GrowthMetrics {
	gm := GrowthMetrics{EngagementTrend: TrendStable}
	if len(parsed) == 0 {
		return gm
	}

	byRecency := make([]parsedPost, len(parsed))
	copy(byRecency, parsed)
	sort.SliceStable(byRecency, func(i, j int) bool {
		return byRecency[i].at.After(byRecency[j].at)
	})

	earliest := byRecency[len(byRecency)-1].at
	latest := byRecency[0].at
	days := int(latest.Sub(earliest).Hours() / 24)
	if days < 1 {
		days = 1
	}
	gm.PostsPerDay = float64(sum.TotalPosts) / float64(days)
	gm.ViewsPerPost = float64(sum.TotalViews) / float64(sum.TotalPosts)

	// Recent half is the first ceil(n/2) posts of the newest-first order.
	half := (len(byRecency) + 1) / 2
	recent := byRecency[:half]
	older := byRecency[half:]
	if len(older) == 0 {
		return gm
	}

	recentAvg := avgScore(recent)
	olderAvg := avgScore(older)
	switch {
	case recentAvg > olderAvg*(1+growthTrendThreshold):
		gm.EngagementTrend = TrendUp
	case recentAvg < olderAvg*(1-growthTrendThreshold):
		gm.EngagementTrend = TrendDown
	}
	return gm
}

func avgScore(posts []parsedPost) float64 {
	if len(posts) == 0 {
		return 0
	}
	var total float64
	for _, pp := range posts {
		total += pp.score
	}
	return total / float64(len(posts))
}
