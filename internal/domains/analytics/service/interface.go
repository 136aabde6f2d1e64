package service

import (
	"context"

	"github.com/xuri/excelize/v2"

	"circuithub-backend/internal/domains/analytics/model"
)

type ServiceInterface interface {
	// Summary computes the dashboard roll-up over the last windowDays
	// days. windowDays <= 0 selects the configured default window.
	Summary(ctx context.Context, windowDays int) (*model.Summary, error)
	// Track validates a beacon and hands it to the queue; the worker does
	// the actual writes so the public endpoint stays fast.
	Track(ctx context.Context, req model.TrackPageViewRequest) error
	// ExportReport renders the summary as a spreadsheet for download.
	ExportReport(ctx context.Context, windowDays int) (*excelize.File, error)
}

// Enqueuer is the slice of the task queue the tracking path needs.
type Enqueuer interface {
	EnqueueTrackPageView(ctx context.Context, payload model.TrackPageViewPayload) error
}
