package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadpulse/backend/internal/models"
)

func parsedWithScores(scores ...float64) []parsedPost {
	out := make([]parsedPost, len(scores))
	for i, score := range scores {
		out[i] = parsedPost{
			post:  models.Post{ID: fmt.Sprintf("p%d", i)},
			at:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			score: score,
		}
	}
	return out
}

func TestRankPostsOrdering(t *testing.T) {
	top, worst := rankPosts(parsedWithScores(3, 9, 1, 7, 5, 8, 2))

	require.Len(t, top, 5)
	for i := 0; i < len(top)-1; i++ {
		assert.GreaterOrEqual(t, top[i].Score, top[i+1].Score)
	}
	assert.Equal(t, 9.0, top[0].Score)

	// worst[0] is the lowest score in the whole set, not the 5th-worst
	require.Len(t, worst, 5)
	assert.Equal(t, 1.0, worst[0].Score)
	assert.Equal(t, 2.0, worst[1].Score)
}

func TestRankPostsFewerThanLimit(t *testing.T) {
	top, worst := rankPosts(parsedWithScores(2, 4))
	require.Len(t, top, 2)
	require.Len(t, worst, 2)
	assert.Equal(t, 4.0, top[0].Score)
	assert.Equal(t, 2.0, worst[0].Score)
}

func TestRankPostsEmpty(t *testing.T) {
	top, worst := rankPosts(nil)
	assert.Empty(t, top)
	assert.Empty(t, worst)
}

func TestRankPostsTiesKeepInputOrder(t *testing.T) {
	top, _ := rankPosts(parsedWithScores(5, 5, 5))
	require.Len(t, top, 3)
	assert.Equal(t, "p0", top[0].Post.ID)
	assert.Equal(t, "p1", top[1].Post.ID)
	assert.Equal(t, "p2", top[2].Post.ID)
}
