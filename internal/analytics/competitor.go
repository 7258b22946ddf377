package analytics

import (
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/threadpulse/backend/internal/models"
)

// ScoredCompetitorPost pairs a competitor post with its composite score.
// Competitor records carry no view or share counts, so the score is the
// interaction-only part of the weighting: likes*1 + replies*2 + reposts*3
// + quotes*4.
type ScoredCompetitorPost struct {
	Post  models.CompetitorPost `json:"post"`
	Score float64               `json:"score"`
}

// ContentStrategy summarizes how a competitor writes: average text length,
// how often they use emoji, and how often they quote instead of posting
// original content. Rates are percentages of their posts.
type ContentStrategy struct {
	AvgTextLength float64 `json:"avg_text_length"`
	EmojiRate     float64 `json:"emoji_rate"`
	QuoteRate     float64 `json:"quote_rate"`
}

// CompetitorComparison is the aggregate view of a third-party account,
// independent of the primary report.
type CompetitorComparison struct {
	Username      string                   `json:"username"`
	Profile       models.CompetitorProfile `json:"profile"`
	PostCount     int                      `json:"post_count"`
	AvgLikes      float64                  `json:"avg_likes"`
	AvgReplies    float64                  `json:"avg_replies"`
	AvgReposts    float64                  `json:"avg_reposts"`
	AvgQuotes     float64                  `json:"avg_quotes"`
	AvgEngagement float64                  `json:"avg_engagement"`
	PostsPerDay   float64                  `json:"posts_per_day"`
	TopPost       *ScoredCompetitorPost    `json:"top_post,omitempty"`
	Strategy      ContentStrategy          `json:"strategy"`
}

func competitorScore(p models.CompetitorPost) float64 {
	return float64(p.Likes) +
		float64(p.Replies)*2 +
		float64(p.Reposts)*3 +
		float64(p.Quotes)*4
}

// AnalyzeCompetitor aggregates a competitor's public posts into per-post
// averages, posting frequency, the single top post, and a content-strategy
// summary. An empty post list yields a zero comparison, not an error.
func (s *Service) AnalyzeCompetitor(username string, profile models.CompetitorProfile, posts []models.CompetitorPost) (*CompetitorComparison, error) {
	started := time.Now()

	cmp := &CompetitorComparison{
		Username: username,
		Profile:  profile,
	}
	if len(posts) == 0 {
		return cmp, nil
	}

	var (
		likes, replies, reposts, quotes int
		textLen, emojiCount, quoteCount int
		earliest, latest                time.Time
		top                             ScoredCompetitorPost
	)
	for i, p := range posts {
		ts, err := p.PublishedAt()
		if err != nil {
			return nil, &ParseError{PostID: p.ID, Timestamp: p.Timestamp, Err: err}
		}
		if s.loc != nil {
			ts = ts.In(s.loc)
		}
		if i == 0 || ts.Before(earliest) {
			earliest = ts
		}
		if i == 0 || ts.After(latest) {
			latest = ts
		}

		likes += p.Likes
		replies += p.Replies
		reposts += p.Reposts
		quotes += p.Quotes
		textLen += utf8.RuneCountInString(p.Text)
		if containsEmoji(p.Text) {
			emojiCount++
		}
		if p.IsQuote {
			quoteCount++
		}

		if score := competitorScore(p); i == 0 || score > top.Score {
			top = ScoredCompetitorPost{Post: p, Score: score}
		}
	}

	n := float64(len(posts))
	cmp.PostCount = len(posts)
	cmp.AvgLikes = float64(likes) / n
	cmp.AvgReplies = float64(replies) / n
	cmp.AvgReposts = float64(reposts) / n
	cmp.AvgQuotes = float64(quotes) / n
	cmp.AvgEngagement = float64(likes+replies+reposts+quotes) / n
	cmp.TopPost = &top
	cmp.Strategy = ContentStrategy{
		AvgTextLength: float64(textLen) / n,
		EmojiRate:     float64(emojiCount) / n * 100,
		QuoteRate:     float64(quoteCount) / n * 100,
	}

	days := int(latest.Sub(earliest).Hours() / 24)
	if days < 1 {
		days = 1
	}
	cmp.PostsPerDay = n / float64(days)

	s.metrics.ObserveAnalysis("competitor", len(posts), started)
	s.log.Debug("analyzed competitor",
		zap.String("username", username),
		zap.Int("posts", len(posts)),
	)
	return cmp, nil
}
