// Package platform defines the boundary to the social platform API. The
// analytics engine never talks to the network itself; callers hand it posts
// fetched through one of these sources.
package platform

import (
	"context"

	"github.com/threadpulse/backend/internal/models"
)

// PostSource supplies the posts to analyze.
type PostSource interface {
	FetchPosts(ctx context.Context, userID string, limit int) ([]models.Post, error)
}

// ProfileSource supplies the account profile attached to exports.
type ProfileSource interface {
	FetchProfile(ctx context.Context, userID string) (*models.Profile, error)
}

// CompetitorSource supplies public data for third-party accounts.
type CompetitorSource interface {
	FetchCompetitorProfile(ctx context.Context, username string) (*models.CompetitorProfile, error)
	FetchCompetitorPosts(ctx context.Context, username string, limit int) ([]models.CompetitorPost, error)
}
