package models

import (
	"time"
)

// MediaType identifies the kind of media attached to a post.
// The platform reports it as an upper-case tag; Label translates
// to the lower-case names the dashboard shows.
type MediaType string

const (
	MediaTypeText     MediaType = "TEXT_POST"
	MediaTypeImage    MediaType = "IMAGE"
	MediaTypeVideo    MediaType = "VIDEO"
	MediaTypeCarousel MediaType = "CAROUSEL_ALBUM"
)

// Label returns the display name for a media type.
// Unrecognized tags pass through unchanged so new platform types
// still show up in reports instead of vanishing.
func (m MediaType) Label() string {
	switch m {
	case MediaTypeText:
		return "text"
	case MediaTypeImage:
		return "image"
	case MediaTypeVideo:
		return "video"
	case MediaTypeCarousel:
		return "carousel"
	default:
		return string(m)
	}
}

// Insights is the engagement snapshot the platform reports for a single post.
// All counts are cumulative and non-negative.
type Insights struct {
	Views   int `json:"views"`
	Likes   int `json:"likes"`
	Replies int `json:"replies"`
	Reposts int `json:"reposts"`
	Quotes  int `json:"quotes"`
	Shares  int `json:"shares"`
}

// Engagement returns the raw interaction count: likes + replies + reposts + quotes.
// Views and shares are deliberately excluded here; they feed the reach-side
// metrics instead.
func (i Insights) Engagement() int {
	return i.Likes + i.Replies + i.Reposts + i.Quotes
}

// Timestamp layouts accepted from the platform API.
// The platform sends offsets without a colon ("+0000"), which RFC3339
// rejects, so both layouts are tried.
const (
	timestampLayoutRFC3339  = time.RFC3339
	timestampLayoutPlatform = "2006-01-02T15:04:05-0700"
)

// Post represents a published post together with its insight snapshot.
// Posts are immutable inputs to the analytics engine; the engine never
// writes them back.
type Post struct {
	ID        string    `json:"id"`
	Text      string    `json:"text,omitempty"`
	Timestamp string    `json:"timestamp"`
	MediaType MediaType `json:"media_type"`
	IsQuote   bool      `json:"is_quote_post,omitempty"`
	Insights  Insights  `json:"insights"`
}

// PublishedAt parses the post's ISO-8601 timestamp.
func (p Post) PublishedAt() (time.Time, error) {
	ts, err := time.Parse(timestampLayoutRFC3339, p.Timestamp)
	if err == nil {
		return ts, nil
	}
	return time.Parse(timestampLayoutPlatform, p.Timestamp)
}

// Profile is the account the analyzed posts belong to.
type Profile struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Name      string `json:"name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Followers int    `json:"followers_count"`
}
