package analytics

import "sort"

// contentAnalysis derives the content-side correlations from the
// aggregation pass. No raw post lists are needed here; everything is a
// ratio over bucket sums.
func contentAnalysis(agg *aggregates) ContentAnalysis {
	// Length table keeps the fixed range order, not engagement order.
	lengths := make([]LengthPerformance, 0, len(agg.lengths))
	for i, b := range agg.lengths {
		lengths = append(lengths, LengthPerformance{
			Range:         lengthRanges[i].label,
			PostCount:     b.count,
			AvgEngagement: b.avg(),
		})
	}

	media := make([]MediaPerformance, 0, len(agg.media))
	for mediaType, b := range agg.media {
		media = append(media, MediaPerformance{
			Type:          mediaType.Label(),
			PostCount:     b.count,
			AvgEngagement: b.avg(),
		})
	}
	sort.Slice(media, func(i, j int) bool {
		if media[i].AvgEngagement != media[j].AvgEngagement {
			return media[i].AvgEngagement > media[j].AvgEngagement
		}
		return media[i].Type < media[j].Type
	})

	return ContentAnalysis{
		LengthCorrelation: lengths,
		EmojiImpact: EmojiImpact{
			WithEmoji:    GroupStats{PostCount: agg.emoji.count, AvgEngagement: agg.emoji.avg()},
			WithoutEmoji: GroupStats{PostCount: agg.plain.count, AvgEngagement: agg.plain.avg()},
		},
		QuotePerformance: QuotePerformance{
			Quotes:    GroupStats{PostCount: agg.quote.count, AvgEngagement: agg.quote.avg()},
			Originals: GroupStats{PostCount: agg.orig.count, AvgEngagement: agg.orig.avg()},
		},
		MediaPerformance: media,
	}
}
