package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/threadpulse/backend/internal/models"
)

// FileSource reads posts and profiles from local JSON files, the shape the
// dashboard's export endpoint produces. It backs the CLI and tests; no
// network involved.
type FileSource struct {
	PostsPath   string
	ProfilePath string
}

// NewFileSource creates a source reading posts from postsPath and, when
// profilePath is non-empty, the profile from profilePath.
func NewFileSource(postsPath, profilePath string) *FileSource {
	return &FileSource{PostsPath: postsPath, ProfilePath: profilePath}
}

// FetchPosts reads the posts file. userID is ignored (the file is the
// account); limit truncates when positive.
func (f *FileSource) FetchPosts(_ context.Context, _ string, limit int) ([]models.Post, error) {
	var posts []models.Post
	if err := readJSON(f.PostsPath, &posts); err != nil {
		return nil, err
	}
	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

// FetchProfile reads the profile file.
func (f *FileSource) FetchProfile(_ context.Context, _ string) (*models.Profile, error) {
	if f.ProfilePath == "" {
		return &models.Profile{}, nil
	}
	var profile models.Profile
	if err := readJSON(f.ProfilePath, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// FetchCompetitorPosts reads competitor posts from postsPath. The username
// argument is ignored for the same reason FetchPosts ignores userID.
func (f *FileSource) FetchCompetitorPosts(_ context.Context, _ string, limit int) ([]models.CompetitorPost, error) {
	var posts []models.CompetitorPost
	if err := readJSON(f.PostsPath, &posts); err != nil {
		return nil, err
	}
	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

// FetchCompetitorProfile reads a competitor profile from profilePath.
func (f *FileSource) FetchCompetitorProfile(_ context.Context, username string) (*models.CompetitorProfile, error) {
	if f.ProfilePath == "" {
		return &models.CompetitorProfile{Username: username}, nil
	}
	var profile models.CompetitorProfile
	if err := readJSON(f.ProfilePath, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// Interface checks.
var (
	_ PostSource       = (*FileSource)(nil)
	_ ProfileSource    = (*FileSource)(nil)
	_ CompetitorSource = (*FileSource)(nil)
)
