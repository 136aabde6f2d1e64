package service

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"circuithub-backend/internal/domains/analytics/model"
)

// The aggregation functions below are pure: given the same event set they
// always produce the same result, so they are safe to recompute per request
// or cache upstream.

func TotalPageViews(events []model.PageViewEvent) int {
	return len(events)
}

// UniqueVisitors counts distinct session IDs.
func UniqueVisitors(events []model.PageViewEvent) int {
	sessions := make(map[string]struct{}, len(events))
	for _, e := range events {
		sessions[e.SessionID] = struct{}{}
	}
	return len(sessions)
}

// AverageSessionDuration returns the mean session length in seconds,
// rounded to two decimal places. A session's length is the span between its
// first and last event. Single-event sessions contribute a zero-length
// session and still count in the denominator, so a flood of short visits
// pulls the average down instead of vanishing from it.
func AverageSessionDuration(events []model.PageViewEvent) decimal.Decimal {
	type span struct {
		first time.Time
		last  time.Time
	}
	sessions := make(map[string]*span, len(events))
	for _, e := range events {
		s, ok := sessions[e.SessionID]
		if !ok {
			sessions[e.SessionID] = &span{first: e.Timestamp, last: e.Timestamp}
			continue
		}
		if e.Timestamp.Before(s.first) {
			s.first = e.Timestamp
		}
		if e.Timestamp.After(s.last) {
			s.last = e.Timestamp
		}
	}
	if len(sessions) == 0 {
		return decimal.Zero
	}

	var total float64
	for _, s := range sessions {
		total += s.last.Sub(s.first).Seconds()
	}

	return decimal.NewFromFloat(total).
		Div(decimal.NewFromInt(int64(len(sessions)))).
		Round(2)
}

// TopPages returns per-page view counts, highest first, capped at limit.
func TopPages(events []model.PageViewEvent, limit int) []model.BucketCount {
	buckets := countBuckets(events, func(e model.PageViewEvent) string {
		return e.Page
	})
	return truncate(buckets, limit)
}

// TopReferrers returns per-referrer counts, highest first, capped at limit.
// Hits without a referrer land in the "Direct" bucket rather than being
// dropped.
func TopReferrers(events []model.PageViewEvent, limit int) []model.BucketCount {
	buckets := countBuckets(events, func(e model.PageViewEvent) string {
		if e.Referrer == nil || *e.Referrer == "" {
			return model.DirectReferrer
		}
		return *e.Referrer
	})
	return truncate(buckets, limit)
}

// DeviceTypes returns the full device breakdown, highest count first.
func DeviceTypes(events []model.PageViewEvent) []model.BucketCount {
	return countBuckets(events, func(e model.PageViewEvent) string {
		return e.DeviceType
	})
}

// BrowserStats returns the full browser breakdown, highest count first.
func BrowserStats(events []model.PageViewEvent) []model.BucketCount {
	return countBuckets(events, func(e model.PageViewEvent) string {
		return e.Browser
	})
}

// DailyViews buckets events by UTC calendar date over the windowDays days
// ending on end's date. Every day appears exactly once, zero-filled, so the
// dashboard chart always gets a contiguous series.
func DailyViews(events []model.PageViewEvent, end time.Time, windowDays int) []model.DailyCount {
	if windowDays <= 0 {
		return []model.DailyCount{}
	}

	counts := make(map[string]int, len(events))
	for _, e := range events {
		counts[e.Timestamp.UTC().Format("2006-01-02")]++
	}

	endDay := end.UTC().Truncate(24 * time.Hour)
	daily := make([]model.DailyCount, 0, windowDays)
	for i := windowDays - 1; i >= 0; i-- {
		date := endDay.AddDate(0, 0, -i).Format("2006-01-02")
		daily = append(daily, model.DailyCount{Date: date, Count: counts[date]})
	}
	return daily
}

// countBuckets groups events by key and sorts counts descending, ties
// broken by lexical label order so the output is deterministic.
func countBuckets(events []model.PageViewEvent, key func(model.PageViewEvent) string) []model.BucketCount {
	counts := make(map[string]int, len(events))
	for _, e := range events {
		counts[key(e)]++
	}

	buckets := make([]model.BucketCount, 0, len(counts))
	for label, count := range counts {
		buckets = append(buckets, model.BucketCount{Label: label, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Count != buckets[j].Count {
			return buckets[i].Count > buckets[j].Count
		}
		return buckets[i].Label < buckets[j].Label
	})
	return buckets
}

func truncate(buckets []model.BucketCount, limit int) []model.BucketCount {
	if limit > 0 && len(buckets) > limit {
		return buckets[:limit]
	}
	return buckets
}
