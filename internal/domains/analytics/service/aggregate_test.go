package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"circuithub-backend/internal/domains/analytics/model"
)

func event(page, session string, ts time.Time) model.PageViewEvent {
	return model.PageViewEvent{
		Page:       page,
		SessionID:  session,
		DeviceType: "desktop",
		Browser:    "firefox",
		Timestamp:  ts,
	}
}

func withReferrer(e model.PageViewEvent, referrer string) model.PageViewEvent {
	e.Referrer = &referrer
	return e
}

func TestTotalPageViewsAndUniqueVisitors(t *testing.T) {
	now := time.Now().UTC()
	events := []model.PageViewEvent{
		event("/a", "s1", now),
		event("/b", "s1", now),
		event("/a", "s2", now),
	}

	assert.Equal(t, 3, TotalPageViews(events))
	assert.Equal(t, 2, UniqueVisitors(events))

	assert.Equal(t, 0, TotalPageViews(nil))
	assert.Equal(t, 0, UniqueVisitors(nil))
}

func TestAverageSessionDuration(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	// s1 spans 60s, s2 spans 30s, s3 has one event and counts as 0 in
	// both numerator and denominator: (60+30+0)/3 = 30.
	events := []model.PageViewEvent{
		event("/a", "s1", base),
		event("/b", "s1", base.Add(60*time.Second)),
		event("/a", "s2", base),
		event("/b", "s2", base.Add(30*time.Second)),
		event("/a", "s3", base),
	}

	avg := AverageSessionDuration(events)
	assert.Equal(t, "30", avg.String())
}

func TestAverageSessionDurationAllSingleEventSessions(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	events := []model.PageViewEvent{
		event("/a", "s1", base),
		event("/b", "s2", base),
		event("/c", "s3", base),
	}

	// Zero, not NaN and not an error.
	assert.True(t, AverageSessionDuration(events).IsZero())
	assert.True(t, AverageSessionDuration(nil).IsZero())
}

func TestAverageSessionDurationUnorderedEvents(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	// Last event arrives first in the slice; span is still 90s.
	events := []model.PageViewEvent{
		event("/c", "s1", base.Add(90*time.Second)),
		event("/a", "s1", base),
		event("/b", "s1", base.Add(10*time.Second)),
	}

	assert.Equal(t, "90", AverageSessionDuration(events).String())
}

func TestTopPagesSortAndTiebreak(t *testing.T) {
	now := time.Now().UTC()
	events := []model.PageViewEvent{
		event("/b", "s1", now),
		event("/b", "s2", now),
		event("/a", "s3", now),
		event("/a", "s4", now),
		event("/c", "s5", now),
		event("/c", "s6", now),
		event("/c", "s7", now),
	}

	got := TopPages(events, 10)
	require.Len(t, got, 3)
	assert.Equal(t, model.BucketCount{Label: "/c", Count: 3}, got[0])
	// Equal counts fall back to lexical order.
	assert.Equal(t, model.BucketCount{Label: "/a", Count: 2}, got[1])
	assert.Equal(t, model.BucketCount{Label: "/b", Count: 2}, got[2])
}

func TestTopPagesLimit(t *testing.T) {
	now := time.Now().UTC()
	events := []model.PageViewEvent{
		event("/a", "s1", now),
		event("/b", "s1", now),
		event("/c", "s1", now),
	}

	assert.Len(t, TopPages(events, 2), 2)
	assert.Len(t, TopPages(events, 0), 3)
}

func TestTopReferrersDirectBucket(t *testing.T) {
	now := time.Now().UTC()
	events := []model.PageViewEvent{
		withReferrer(event("/a", "s1", now), "https://news.ycombinator.com"),
		withReferrer(event("/a", "s2", now), ""),
		event("/a", "s3", now), // nil referrer
		event("/a", "s4", now), // nil referrer
	}

	got := TopReferrers(events, 10)
	require.Len(t, got, 2)
	assert.Equal(t, model.BucketCount{Label: model.DirectReferrer, Count: 3}, got[0])
	assert.Equal(t, model.BucketCount{Label: "https://news.ycombinator.com", Count: 1}, got[1])
}

func TestDeviceAndBrowserBreakdowns(t *testing.T) {
	now := time.Now().UTC()
	events := []model.PageViewEvent{
		{Page: "/a", SessionID: "s1", DeviceType: "mobile", Browser: "safari", Timestamp: now},
		{Page: "/a", SessionID: "s2", DeviceType: "mobile", Browser: "chrome", Timestamp: now},
		{Page: "/a", SessionID: "s3", DeviceType: "desktop", Browser: "chrome", Timestamp: now},
	}

	devices := DeviceTypes(events)
	require.Len(t, devices, 2)
	assert.Equal(t, model.BucketCount{Label: "mobile", Count: 2}, devices[0])

	browsers := BrowserStats(events)
	require.Len(t, browsers, 2)
	assert.Equal(t, model.BucketCount{Label: "chrome", Count: 2}, browsers[0])
}

func TestDailyViewsZeroFills(t *testing.T) {
	end := time.Date(2026, 8, 31, 15, 30, 0, 0, time.UTC)
	events := []model.PageViewEvent{
		event("/a", "s1", time.Date(2026, 8, 31, 1, 0, 0, 0, time.UTC)),
		event("/a", "s2", time.Date(2026, 8, 29, 23, 59, 59, 0, time.UTC)),
		event("/a", "s3", time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)),
	}

	got := DailyViews(events, end, 7)
	require.Len(t, got, 7)

	assert.Equal(t, "2026-08-25", got[0].Date)
	assert.Equal(t, "2026-08-31", got[6].Date)

	byDate := make(map[string]int)
	for _, d := range got {
		byDate[d.Date] = d.Count
	}
	assert.Equal(t, 1, byDate["2026-08-31"])
	assert.Equal(t, 2, byDate["2026-08-29"])
	assert.Equal(t, 0, byDate["2026-08-30"])
	assert.Equal(t, 0, byDate["2026-08-25"])
}

func TestDailyViewsEmptyEventSet(t *testing.T) {
	got := DailyViews(nil, time.Now().UTC(), 30)
	require.Len(t, got, 30)
	for _, d := range got {
		assert.Equal(t, 0, d.Count)
	}
}
