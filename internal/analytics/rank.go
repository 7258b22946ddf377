package analytics

import "sort"

const rankLimit = 5

// rankPosts sorts scored posts descending by composite score and returns the
// top and worst slices. Ties keep input order (stable sort). The worst slice
// is reversed so index 0 is the single lowest-scoring post, not the 5th-worst.
func rankPosts(parsed []parsedPost) (top, worst []ScoredPost) {
	ranked := make([]ScoredPost, len(parsed))
	for i, pp := range parsed {
		ranked[i] = ScoredPost{Post: pp.post, Score: pp.score}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	n := len(ranked)
	topN := rankLimit
	if topN > n {
		topN = n
	}
	top = make([]ScoredPost, topN)
	copy(top, ranked[:topN])

	worst = make([]ScoredPost, 0, topN)
	for i := n - 1; i >= n-topN; i-- {
		worst = append(worst, ranked[i])
	}
	return top, worst
}
