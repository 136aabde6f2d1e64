package main

import (
	"github.com/hibiken/asynq"

	"circuithub-backend/internal/domains/analytics/job"
	"circuithub-backend/internal/shared"
	"circuithub-backend/pkg/container"
)

// HandlerRegistry collects every task handler the worker serves.
type HandlerRegistry struct {
	TrackPageView *job.TrackPageViewHandler
	PruneEvents   *job.PruneEventsHandler
}

func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		TrackPageView: job.NewTrackPageViewHandler(c.AnalyticsRepo, c.TutorialRepo),
		PruneEvents:   job.NewPruneEventsHandler(c.AnalyticsRepo, c.Config.Analytics.RetentionDays),
	}
}

func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.Handle(shared.TypeTrackPageView, h.TrackPageView)
	mux.Handle(shared.TypePruneOldEvents, h.PruneEvents)
}
