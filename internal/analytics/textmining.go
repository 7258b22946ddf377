package analytics

import (
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/threadpulse/backend/internal/models"
)

// emojiRanges are the Unicode blocks treated as emoji for the content
// analysis: miscellaneous symbols, dingbats, pictographs, emoticons,
// transport symbols, and supplemental pictographs. Kept as explicit
// code-point comparisons so behavior doesn't depend on any regex engine's
// Unicode tables.
var emojiRanges = [...]struct{ lo, hi rune }{
	{0x2600, 0x26FF},   // miscellaneous symbols
	{0x2700, 0x27BF},   // dingbats
	{0x1F300, 0x1F5FF}, // symbols and pictographs
	{0x1F600, 0x1F64F}, // emoticons
	{0x1F680, 0x1F6FF}, // transport and map symbols
	{0x1F900, 0x1F9FF}, // supplemental symbols and pictographs
}

// containsEmoji reports whether the text contains at least one emoji rune.
func containsEmoji(text string) bool {
	for _, r := range text {
		for _, er := range emojiRanges {
			if r >= er.lo && r <= er.hi {
				return true
			}
		}
	}
	return false
}

// hashtagPattern matches # followed by word characters plus Hiragana,
// Katakana, and the common Kanji block, so Japanese hashtags count too.
var (
	hashtagPattern = regexp.MustCompile(`#[\w\x{3040}-\x{309F}\x{30A0}-\x{30FF}\x{4E00}-\x{9FAF}]+`)
	urlPattern     = regexp.MustCompile(`https?://\S+`)
	mentionPattern = regexp.MustCompile(`@[\w.]+`)
)

// AnalyzeHashtags aggregates occurrence count, average raw engagement, and
// total views per unique hashtag, sorted descending by average engagement.
func (s *Service) AnalyzeHashtags(posts []models.Post) ([]HashtagStat, error) {
	started := time.Now()

	type tagAgg struct {
		count      int
		engagement int
		views      int
	}
	tags := make(map[string]*tagAgg)
	for _, p := range posts {
		if _, err := s.resolveTime(p); err != nil {
			return nil, err
		}
		for _, tag := range hashtagPattern.FindAllString(p.Text, -1) {
			agg, ok := tags[tag]
			if !ok {
				agg = &tagAgg{}
				tags[tag] = agg
			}
			agg.count++
			agg.engagement += p.Insights.Engagement()
			agg.views += p.Insights.Views
		}
	}

	out := make([]HashtagStat, 0, len(tags))
	for tag, agg := range tags {
		out = append(out, HashtagStat{
			Tag:           tag,
			Count:         agg.count,
			AvgEngagement: float64(agg.engagement) / float64(agg.count),
			TotalViews:    agg.views,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgEngagement != out[j].AvgEngagement {
			return out[i].AvgEngagement > out[j].AvgEngagement
		}
		return out[i].Tag < out[j].Tag
	})

	s.metrics.ObserveAnalysis("hashtags", len(posts), started)
	return out, nil
}

// keywordMinPosts is the noise floor for keyword mining: a keyword must
// appear in at least this many distinct posts to make the list.
const keywordMinPosts = 2

// AnalyzeKeywords mines recurring keywords from post text. Hashtags, URLs,
// and @mentions are stripped first, punctuation (including full-width
// Japanese punctuation) collapses to whitespace, and tokens shorter than
// two runes are dropped. A keyword repeated within one post counts once for
// that post, so a single wordy post can't skew the frequencies.
func (s *Service) AnalyzeKeywords(posts []models.Post) ([]KeywordStat, error) {
	started := time.Now()

	type kwAgg struct {
		postCount  int
		engagement int
	}
	keywords := make(map[string]*kwAgg)
	for _, p := range posts {
		if _, err := s.resolveTime(p); err != nil {
			return nil, err
		}
		seen := make(map[string]bool)
		for _, token := range tokenize(p.Text) {
			if seen[token] {
				continue
			}
			seen[token] = true
			agg, ok := keywords[token]
			if !ok {
				agg = &kwAgg{}
				keywords[token] = agg
			}
			agg.postCount++
			agg.engagement += p.Insights.Engagement()
		}
	}

	out := make([]KeywordStat, 0, len(keywords))
	for kw, agg := range keywords {
		if agg.postCount < keywordMinPosts {
			continue
		}
		out = append(out, KeywordStat{
			Keyword:       kw,
			PostCount:     agg.postCount,
			AvgEngagement: float64(agg.engagement) / float64(agg.postCount),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgEngagement != out[j].AvgEngagement {
			return out[i].AvgEngagement > out[j].AvgEngagement
		}
		return out[i].Keyword < out[j].Keyword
	})

	s.metrics.ObserveAnalysis("keywords", len(posts), started)
	return out, nil
}

// tokenize strips hashtags, URLs, and mentions, normalizes punctuation and
// symbols to whitespace, and returns lower-cased tokens of at least two
// runes. unicode.IsPunct covers the full-width CJK punctuation (、。！？)
// alongside ASCII, which keeps Japanese text splitting correctly.
func tokenize(text string) []string {
	text = urlPattern.ReplaceAllString(text, " ")
	text = hashtagPattern.ReplaceAllString(text, " ")
	text = mentionPattern.ReplaceAllString(text, " ")
	text = strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return ' '
		}
		return r
	}, text)

	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) < 2 {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
