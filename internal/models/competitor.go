package models

import "time"

// CompetitorPost is the lighter-weight record available for third-party
// accounts. The platform exposes plain interaction counts for public posts
// but no view counts or share metrics.
type CompetitorPost struct {
	ID        string    `json:"id"`
	Text      string    `json:"text,omitempty"`
	Timestamp string    `json:"timestamp"`
	MediaType MediaType `json:"media_type,omitempty"`
	IsQuote   bool      `json:"is_quote_post,omitempty"`
	Likes     int       `json:"likes"`
	Replies   int       `json:"replies"`
	Reposts   int       `json:"reposts"`
	Quotes    int       `json:"quotes"`
}

// Engagement returns the raw interaction count for a competitor post.
func (p CompetitorPost) Engagement() int {
	return p.Likes + p.Replies + p.Reposts + p.Quotes
}

// PublishedAt parses the competitor post's ISO-8601 timestamp.
func (p CompetitorPost) PublishedAt() (time.Time, error) {
	ts, err := time.Parse(timestampLayoutRFC3339, p.Timestamp)
	if err == nil {
		return ts, nil
	}
	return time.Parse(timestampLayoutPlatform, p.Timestamp)
}

// CompetitorProfile is the public profile of a third-party account.
type CompetitorProfile struct {
	Username  string `json:"username"`
	Name      string `json:"name,omitempty"`
	Followers int    `json:"followers_count"`
}
