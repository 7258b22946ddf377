package analytics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadpulse/backend/internal/models"
)

func TestExportDataFormatsPercentages(t *testing.T) {
	svc := testService()
	posts := workedExamplePosts()
	report, err := svc.AnalyzePosts(posts)
	require.NoError(t, err)

	payload, err := svc.ExportData(models.Profile{Username: "me"}, report, posts)
	require.NoError(t, err)

	assert.NotEmpty(t, payload.ID)
	assert.Equal(t, "me", payload.Profile.Username)
	assert.Equal(t, "4.29%", payload.Summary.EngagementRate)
	assert.Equal(t, 350, payload.Summary.TotalViews) // counts stay numeric
	assert.Equal(t, string(TrendDown), payload.Growth.Trend)

	require.NotEmpty(t, payload.TopPosts)
	assert.Equal(t, "p1", payload.TopPosts[0].ID)
	assert.Equal(t, 11.0, payload.TopPosts[0].Score)
	assert.Equal(t, "10.00%", payload.TopPosts[0].EngagementRate)

	require.NotEmpty(t, payload.BestHours)
	assert.Equal(t, "09:00", payload.BestHours[0].Slot)
}

func TestExportDataTruncatesText(t *testing.T) {
	svc := testService()
	long := strings.Repeat("x", 250)
	posts := []models.Post{makePost("p1", "2024-01-01T10:00:00Z", long, models.Insights{Views: 10, Likes: 1})}
	report, err := svc.AnalyzePosts(posts)
	require.NoError(t, err)

	payload, err := svc.ExportData(models.Profile{}, report, posts)
	require.NoError(t, err)

	require.NotEmpty(t, payload.TopPosts)
	text := payload.TopPosts[0].Text
	assert.True(t, strings.HasSuffix(text, "…"))
	assert.Len(t, []rune(text), exportTextLimit+1)
}

func TestTruncateTextShortUnchanged(t *testing.T) {
	assert.Equal(t, "hello", truncateText("hello", 100))
	assert.Equal(t, "", truncateText("", 100))
}
