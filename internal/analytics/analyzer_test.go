package analytics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadpulse/backend/internal/models"
)

func testService() *Service {
	return NewService(nil, nil, nil)
}

func makePost(id, timestamp, text string, insights models.Insights) models.Post {
	return models.Post{
		ID:        id,
		Text:      text,
		Timestamp: timestamp,
		MediaType: models.MediaTypeText,
		Insights:  insights,
	}
}

// Three posts on the same day, views 100/200/50 and likes 10/5/0; the
// reference dataset used across the analyzer tests.
func workedExamplePosts() []models.Post {
	return []models.Post{
		makePost("p1", "2024-01-01T09:00:00Z", "morning post", models.Insights{Views: 100, Likes: 10}),
		makePost("p2", "2024-01-01T12:00:00Z", "midday post", models.Insights{Views: 200, Likes: 5}),
		makePost("p3", "2024-01-01T18:00:00Z", "evening post", models.Insights{Views: 50}),
	}
}

func TestAnalyzePostsEmptyInput(t *testing.T) {
	report, err := testService().AnalyzePosts(nil)
	require.NoError(t, err)

	assert.Equal(t, Summary{}, report.Summary)
	assert.Empty(t, report.TopPosts)
	assert.Empty(t, report.WorstPosts)
	assert.Empty(t, report.BestHours)
	assert.Empty(t, report.BestDays)
	assert.Equal(t, TrendStable, report.Growth.EngagementTrend)
	assert.Equal(t, 0.0, report.Summary.AverageEngagementRate)
}

func TestAnalyzePostsWorkedExample(t *testing.T) {
	report, err := testService().AnalyzePosts(workedExamplePosts())
	require.NoError(t, err)

	assert.Equal(t, 3, report.Summary.TotalPosts)
	assert.Equal(t, 350, report.Summary.TotalViews)
	assert.Equal(t, 15, report.Summary.TotalLikes)
	assert.Equal(t, 15, report.Summary.TotalEngagement)
	// 15/350*100
	assert.InDelta(t, 4.29, report.Summary.AverageEngagementRate, 0.01)

	// Scores: p1 = 10 + 100/100 = 11, p2 = 5 + 200/100 = 7, p3 = 50/100 = 0.5
	require.Len(t, report.TopPosts, 3)
	assert.Equal(t, "p1", report.TopPosts[0].Post.ID)
	assert.Equal(t, 11.0, report.TopPosts[0].Score)
	assert.Equal(t, 7.0, report.TopPosts[1].Score)
	assert.Equal(t, 0.5, report.TopPosts[2].Score)

	// worst[0] is the single worst post
	require.NotEmpty(t, report.WorstPosts)
	assert.Equal(t, "p3", report.WorstPosts[0].Post.ID)
}

func TestAnalyzePostsRateBound(t *testing.T) {
	report, err := testService().AnalyzePosts(workedExamplePosts())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, report.Summary.AverageEngagementRate, 0.0)

	expected := float64(report.Summary.TotalEngagement) / float64(report.Summary.TotalViews) * 100
	assert.InDelta(t, expected, report.Summary.AverageEngagementRate, 1e-9)
}

func TestAnalyzePostsPurity(t *testing.T) {
	posts := workedExamplePosts()
	svc := testService()

	first, err := svc.AnalyzePosts(posts)
	require.NoError(t, err)
	second, err := svc.AnalyzePosts(posts)
	require.NoError(t, err)

	// No state persists between calls: same input, structurally identical output.
	assert.Equal(t, first, second)
}

func TestAnalyzePostsBadTimestamp(t *testing.T) {
	posts := []models.Post{
		makePost("good", "2024-01-01T09:00:00Z", "", models.Insights{}),
		makePost("bad", "not-a-date", "", models.Insights{}),
	}
	report, err := testService().AnalyzePosts(posts)
	require.Error(t, err)
	assert.Nil(t, report)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "bad", parseErr.PostID)
	assert.Equal(t, "not-a-date", parseErr.Timestamp)
}

func TestAnalyzePostsPlatformTimestampLayout(t *testing.T) {
	// The platform API sends offsets without a colon.
	posts := []models.Post{
		makePost("p1", "2024-06-15T10:30:00+0000", "", models.Insights{Views: 10, Likes: 1}),
	}
	report, err := testService().AnalyzePosts(posts)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Summary.TotalPosts)
	require.Len(t, report.BestHours, 1)
	assert.Equal(t, 10, report.BestHours[0].Hour)
}

func TestLengthRangeIndex(t *testing.T) {
	cases := map[int]string{
		0:   "0",
		1:   "1-50",
		50:  "1-50",
		51:  "51-100",
		100: "51-100",
		101: "101-200",
		200: "101-200",
		201: "201-300",
		300: "201-300",
		301: "300+",
		999: "300+",
	}
	for n, want := range cases {
		assert.Equal(t, want, lengthRanges[lengthRangeIndex(n)].label, "length %d", n)
	}
}

func TestAggregateMediaBuckets(t *testing.T) {
	posts := []models.Post{
		{ID: "a", Timestamp: "2024-01-01T10:00:00Z", MediaType: models.MediaTypeCarousel, Insights: models.Insights{Likes: 10}},
		{ID: "b", Timestamp: "2024-01-01T11:00:00Z", MediaType: models.MediaTypeText, Insights: models.Insights{Likes: 2}},
		{ID: "c", Timestamp: "2024-01-01T12:00:00Z", MediaType: "REEL", Insights: models.Insights{Likes: 4}},
	}
	report, err := testService().AnalyzePosts(posts)
	require.NoError(t, err)

	require.Len(t, report.Content.MediaPerformance, 3)
	// Sorted descending by average engagement; unknown tags pass through raw.
	assert.Equal(t, "carousel", report.Content.MediaPerformance[0].Type)
	assert.Equal(t, "REEL", report.Content.MediaPerformance[1].Type)
	assert.Equal(t, "text", report.Content.MediaPerformance[2].Type)
}
