package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishedAtRFC3339(t *testing.T) {
	p := Post{Timestamp: "2024-05-01T12:30:00Z"}
	ts, err := p.PublishedAt()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC), ts)
}

func TestPublishedAtPlatformLayout(t *testing.T) {
	// The platform API omits the colon in the UTC offset
	p := Post{Timestamp: "2024-05-01T12:30:00+0900"}
	ts, err := p.PublishedAt()
	require.NoError(t, err)
	assert.Equal(t, 12, ts.Hour())
	_, offset := ts.Zone()
	assert.Equal(t, 9*3600, offset)
}

func TestPublishedAtInvalid(t *testing.T) {
	p := Post{Timestamp: "yesterday"}
	_, err := p.PublishedAt()
	assert.Error(t, err)
}

func TestInsightsEngagement(t *testing.T) {
	i := Insights{Views: 1000, Likes: 1, Replies: 2, Reposts: 3, Quotes: 4, Shares: 99}
	// Views and shares are excluded
	assert.Equal(t, 10, i.Engagement())
}

func TestCompetitorPostEngagement(t *testing.T) {
	p := CompetitorPost{Likes: 5, Replies: 1, Reposts: 1, Quotes: 1}
	assert.Equal(t, 8, p.Engagement())
}
