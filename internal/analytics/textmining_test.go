package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadpulse/backend/internal/models"
)

func TestContainsEmoji(t *testing.T) {
	assert.True(t, containsEmoji("launch day 🚀"))
	assert.True(t, containsEmoji("😀"))
	assert.True(t, containsEmoji("sun ☀ out"))
	assert.False(t, containsEmoji("plain text only"))
	assert.False(t, containsEmoji("日本語のテキスト"))
	assert.False(t, containsEmoji(""))
}

func TestAnalyzeHashtags(t *testing.T) {
	posts := []models.Post{
		makePost("p1", "2024-01-01T10:00:00Z", "shipping #golang today", models.Insights{Views: 100, Likes: 10}),
		makePost("p2", "2024-01-02T10:00:00Z", "more #golang and #testing", models.Insights{Views: 50, Likes: 4}),
	}
	stats, err := testService().AnalyzeHashtags(posts)
	require.NoError(t, err)

	require.Len(t, stats, 2)
	byTag := map[string]HashtagStat{}
	for _, st := range stats {
		byTag[st.Tag] = st
	}

	golang := byTag["#golang"]
	assert.Equal(t, 2, golang.Count)
	assert.Equal(t, 7.0, golang.AvgEngagement)
	assert.Equal(t, 150, golang.TotalViews)

	testingTag := byTag["#testing"]
	assert.Equal(t, 1, testingTag.Count)

	// Sorted descending by average engagement
	assert.GreaterOrEqual(t, stats[0].AvgEngagement, stats[1].AvgEngagement)
}

func TestAnalyzeHashtagsJapanese(t *testing.T) {
	posts := []models.Post{
		makePost("p1", "2024-01-01T10:00:00Z", "今日の #日本語 ポスト", models.Insights{Likes: 3}),
		makePost("p2", "2024-01-02T10:00:00Z", "また #日本語 と #カタカナ", models.Insights{Likes: 1}),
	}
	stats, err := testService().AnalyzeHashtags(posts)
	require.NoError(t, err)

	tags := make([]string, 0, len(stats))
	for _, st := range stats {
		tags = append(tags, st.Tag)
	}
	assert.Contains(t, tags, "#日本語")
	assert.Contains(t, tags, "#カタカナ")
}

func TestAnalyzeKeywordsMinPostFilter(t *testing.T) {
	posts := []models.Post{
		makePost("p1", "2024-01-01T10:00:00Z", "launch day for the product", models.Insights{Likes: 10}),
		makePost("p2", "2024-01-02T10:00:00Z", "product feedback rolling in", models.Insights{Likes: 6}),
		makePost("p3", "2024-01-03T10:00:00Z", "unrelated musing", models.Insights{Likes: 1}),
	}
	stats, err := testService().AnalyzeKeywords(posts)
	require.NoError(t, err)

	keywords := map[string]KeywordStat{}
	for _, st := range stats {
		keywords[st.Keyword] = st
	}

	// "product" appears in 2 distinct posts: included
	product, ok := keywords["product"]
	require.True(t, ok)
	assert.Equal(t, 2, product.PostCount)
	assert.Equal(t, 8.0, product.AvgEngagement)

	// "launch" and "musing" appear in only 1 post each: excluded
	assert.NotContains(t, keywords, "launch")
	assert.NotContains(t, keywords, "musing")
}

func TestAnalyzeKeywordsDedupePerPost(t *testing.T) {
	posts := []models.Post{
		makePost("p1", "2024-01-01T10:00:00Z", "coffee coffee coffee", models.Insights{Likes: 9}),
		makePost("p2", "2024-01-02T10:00:00Z", "morning coffee", models.Insights{Likes: 3}),
	}
	stats, err := testService().AnalyzeKeywords(posts)
	require.NoError(t, err)

	require.Len(t, stats, 1)
	assert.Equal(t, "coffee", stats[0].Keyword)
	// Triple occurrence in p1 still counts as one post
	assert.Equal(t, 2, stats[0].PostCount)
	assert.Equal(t, 6.0, stats[0].AvgEngagement)
}

func TestTokenizeStripsNoise(t *testing.T) {
	tokens := tokenize("Check https://example.com/x?y=1 with @someone about #golang, okay? 🎉")
	assert.Contains(t, tokens, "check")
	assert.Contains(t, tokens, "with")
	assert.Contains(t, tokens, "about")
	assert.Contains(t, tokens, "okay")
	for _, tok := range tokens {
		assert.NotContains(t, tok, "#")
		assert.NotContains(t, tok, "@")
		assert.NotContains(t, tok, "http")
	}
}

func TestTokenizeFullWidthPunctuation(t *testing.T) {
	tokens := tokenize("こんにちは。今日は、いい天気！")
	assert.Contains(t, tokens, "こんにちは")
	assert.Contains(t, tokens, "今日は")
	assert.Contains(t, tokens, "いい天気")
}

func TestTokenizeDropsShortTokens(t *testing.T) {
	tokens := tokenize("a an ab")
	assert.NotContains(t, tokens, "a")
	assert.Contains(t, tokens, "an")
	assert.Contains(t, tokens, "ab")
}
