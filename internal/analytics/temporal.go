package analytics

import (
	"sort"
	"time"

	"github.com/threadpulse/backend/internal/models"
)

// bestHours ranks hours of the day by average engagement, descending.
// Hours with no posts are omitted, not zero-filled; an empty slot carries
// no signal about when to post.
func bestHours(agg *aggregates) []HourPerformance {
	out := make([]HourPerformance, 0, len(agg.hours))
	for hour, b := range agg.hours {
		if b.count == 0 {
			continue
		}
		out = append(out, HourPerformance{
			Hour:          hour,
			PostCount:     b.count,
			AvgEngagement: b.avg(),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AvgEngagement > out[j].AvgEngagement
	})
	return out
}

// bestDays ranks days of the week by average engagement, descending.
func bestDays(agg *aggregates) []DayPerformance {
	out := make([]DayPerformance, 0, len(agg.days))
	for day, b := range agg.days {
		if b.count == 0 {
			continue
		}
		out = append(out, DayPerformance{
			Day:           time.Weekday(day).String(),
			PostCount:     b.count,
			AvgEngagement: b.avg(),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AvgEngagement > out[j].AvgEngagement
	})
	return out
}

// HeatmapData builds the 7x24 activity grid. Unlike the best-hour ranking it
// always returns exactly 168 cells, zero-filled where no posts landed,
// because the dashboard renders the full grid either way. Day 0 is Sunday.
func (s *Service) HeatmapData(posts []models.Post) ([]HeatmapCell, error) {
	started := time.Now()

	var grid [7][24]bucket
	for _, p := range posts {
		ts, err := s.resolveTime(p)
		if err != nil {
			return nil, err
		}
		cell := &grid[int(ts.Weekday())][ts.Hour()]
		cell.engagement += p.Insights.Engagement()
		cell.count++
	}

	cells := make([]HeatmapCell, 0, 7*24)
	for day := 0; day < 7; day++ {
		for hour := 0; hour < 24; hour++ {
			b := grid[day][hour]
			cells = append(cells, HeatmapCell{
				Day:   day,
				Hour:  hour,
				Count: b.count,
				Value: b.avg(),
			})
		}
	}

	s.metrics.ObserveAnalysis("heatmap", len(posts), started)
	return cells, nil
}

// DailyTrends groups posts by calendar date, summing post count, raw
// engagement, and views per date. Points come back sorted ascending by the
// YYYY-MM-DD date string.
func (s *Service) DailyTrends(posts []models.Post) ([]DailyTrendPoint, error) {
	started := time.Now()

	byDate := make(map[string]*DailyTrendPoint)
	for _, p := range posts {
		ts, err := s.resolveTime(p)
		if err != nil {
			return nil, err
		}
		date := ts.Format("2006-01-02")
		point, ok := byDate[date]
		if !ok {
			point = &DailyTrendPoint{Date: date}
			byDate[date] = point
		}
		point.PostCount++
		point.Engagement += p.Insights.Engagement()
		point.Views += p.Insights.Views
	}

	out := make([]DailyTrendPoint, 0, len(byDate))
	for _, point := range byDate {
		out = append(out, *point)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})

	s.metrics.ObserveAnalysis("daily_trends", len(posts), started)
	return out, nil
}
