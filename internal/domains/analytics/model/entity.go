package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PageViewEvent is one raw tracking hit. Events are append-only and are
// never mutated after ingestion.
type PageViewEvent struct {
	ID         uuid.UUID  `json:"id"`
	Page       string     `json:"page"`
	TutorialID *uuid.UUID `json:"tutorial_id"`
	SessionID  string     `json:"session_id"`
	Referrer   *string    `json:"referrer"`
	DeviceType string     `json:"device_type"`
	Browser    string     `json:"browser"`
	Timestamp  time.Time  `json:"timestamp"`
}

// DirectReferrer is the bucket label for hits with no referrer.
const DirectReferrer = "Direct"

// Summary is the dashboard roll-up. It is derived on demand from the raw
// events and never persisted.
type Summary struct {
	WindowDays         int             `json:"window_days"`
	TotalPageViews     int             `json:"total_page_views"`
	UniqueVisitors     int             `json:"unique_visitors"`
	AvgSessionDuration decimal.Decimal `json:"avg_session_duration_seconds"`
	TopPages           []BucketCount   `json:"top_pages"`
	TopReferrers       []BucketCount   `json:"top_referrers"`
	DeviceTypes        []BucketCount   `json:"device_types"`
	BrowserStats       []BucketCount   `json:"browser_stats"`
	DailyViews         []DailyCount    `json:"daily_views"`
}

// BucketCount is one grouped-count row (a page, referrer, device or browser).
type BucketCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// DailyCount is one calendar-day bucket of the contiguous daily series.
type DailyCount struct {
	Date  string `json:"date"` // YYYY-MM-DD, UTC
	Count int    `json:"count"`
}
