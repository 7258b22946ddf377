package analytics

import (
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/threadpulse/backend/internal/metrics"
	"github.com/threadpulse/backend/internal/models"
)

// lengthRanges are the fixed text-length buckets, in report order.
// Correlation tables keep this order rather than sorting by magnitude.
var lengthRanges = [...]struct {
	label string
	min   int
	max   int // inclusive; -1 means unbounded
}{
	{"0", 0, 0},
	{"1-50", 1, 50},
	{"51-100", 51, 100},
	{"101-200", 101, 200},
	{"201-300", 201, 300},
	{"300+", 301, -1},
}

// Service computes post performance reports. It holds no state between
// calls; every report is derived from scratch from the posts passed in,
// so concurrent invocations are independent.
type Service struct {
	log     *zap.Logger
	metrics *metrics.Metrics
	loc     *time.Location
}

// NewService creates an analytics service. log may be nil (no logging),
// metrics may be nil (no instrumentation), and loc may be nil, in which
// case each timestamp's own UTC offset determines its hour and weekday.
func NewService(log *zap.Logger, m *metrics.Metrics, loc *time.Location) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{log: log, metrics: m, loc: loc}
}

// parsedPost carries a post with its parsed timestamp and composite score,
// shared by the ranker and the growth analyzer so nothing reparses.
type parsedPost struct {
	post  models.Post
	at    time.Time
	score float64
}

// bucket is a running engagement total with its post count.
type bucket struct {
	engagement int
	count      int
}

func (b bucket) avg() float64 {
	if b.count == 0 {
		return 0
	}
	return float64(b.engagement) / float64(b.count)
}

// aggregates is everything the single pass over the posts accumulates.
// Every downstream ratio needs only sums and counts per bucket, so one
// accumulate-then-divide pass replaces repeated rescans.
type aggregates struct {
	summary Summary
	hours   [24]bucket
	days    [7]bucket
	lengths [len(lengthRanges)]bucket
	emoji   bucket
	plain   bucket
	quote   bucket
	orig    bucket
	media   map[models.MediaType]*bucket
	parsed  []parsedPost
}

// resolveTime parses a post timestamp and applies the configured timezone.
func (s *Service) resolveTime(p models.Post) (time.Time, error) {
	ts, err := p.PublishedAt()
	if err != nil {
		return time.Time{}, &ParseError{PostID: p.ID, Timestamp: p.Timestamp, Err: err}
	}
	if s.loc != nil {
		ts = ts.In(s.loc)
	}
	return ts, nil
}

// aggregate runs the single pass. It fails on the first unparseable
// timestamp before touching any bucket.
func (s *Service) aggregate(posts []models.Post) (*aggregates, error) {
	agg := &aggregates{
		media:  make(map[models.MediaType]*bucket),
		parsed: make([]parsedPost, 0, len(posts)),
	}

	for _, p := range posts {
		ts, err := s.resolveTime(p)
		if err != nil {
			return nil, err
		}

		engagement := p.Insights.Engagement()

		agg.summary.TotalPosts++
		agg.summary.TotalViews += p.Insights.Views
		agg.summary.TotalLikes += p.Insights.Likes
		agg.summary.TotalReplies += p.Insights.Replies
		agg.summary.TotalReposts += p.Insights.Reposts
		agg.summary.TotalQuotes += p.Insights.Quotes
		agg.summary.TotalShares += p.Insights.Shares
		agg.summary.TotalEngagement += engagement

		hour := agg.hours[ts.Hour()]
		hour.engagement += engagement
		hour.count++
		agg.hours[ts.Hour()] = hour

		day := agg.days[int(ts.Weekday())]
		day.engagement += engagement
		day.count++
		agg.days[int(ts.Weekday())] = day

		idx := lengthRangeIndex(utf8.RuneCountInString(p.Text))
		agg.lengths[idx].engagement += engagement
		agg.lengths[idx].count++

		if containsEmoji(p.Text) {
			agg.emoji.engagement += engagement
			agg.emoji.count++
		} else {
			agg.plain.engagement += engagement
			agg.plain.count++
		}

		if p.IsQuote {
			agg.quote.engagement += engagement
			agg.quote.count++
		} else {
			agg.orig.engagement += engagement
			agg.orig.count++
		}

		mb, ok := agg.media[p.MediaType]
		if !ok {
			mb = &bucket{}
			agg.media[p.MediaType] = mb
		}
		mb.engagement += engagement
		mb.count++

		agg.parsed = append(agg.parsed, parsedPost{post: p, at: ts, score: CompositeScore(p)})
	}

	if agg.summary.TotalViews > 0 {
		agg.summary.AverageEngagementRate =
			float64(agg.summary.TotalEngagement) / float64(agg.summary.TotalViews) * 100
	}

	return agg, nil
}

// lengthRangeIndex classifies a rune count into one of the fixed ranges.
func lengthRangeIndex(n int) int {
	for i, r := range lengthRanges {
		if n >= r.min && (r.max < 0 || n <= r.max) {
			return i
		}
	}
	return len(lengthRanges) - 1
}

// AnalyzePosts computes the full performance report for the given posts.
// An empty slice yields the canonical all-zero report; an unparseable
// timestamp yields a *ParseError and no report.
func (s *Service) AnalyzePosts(posts []models.Post) (*Report, error) {
	started := time.Now()

	agg, err := s.aggregate(posts)
	if err != nil {
		return nil, err
	}

	top, worst := rankPosts(agg.parsed)

	report := &Report{
		Summary:    agg.summary,
		TopPosts:   top,
		WorstPosts: worst,
		BestHours:  bestHours(agg),
		BestDays:   bestDays(agg),
		Content:    contentAnalysis(agg),
		Virality:   viralityMetrics(agg.summary),
		Growth:     growthMetrics(agg.parsed, agg.summary),
	}

	s.metrics.ObserveAnalysis("report", len(posts), started)
	s.log.Debug("computed performance report",
		zap.Int("posts", len(posts)),
		zap.Float64("avg_engagement_rate", report.Summary.AverageEngagementRate),
	)
	return report, nil
}
