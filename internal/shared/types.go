package shared

// Asynq task types.
const (
	TypeTrackPageView  = "analytics:track_pageview"
	TypePruneOldEvents = "analytics:prune_old_events"
)

// Queue names.
const (
	QueueDefault   = "default"
	QueueAnalytics = "analytics"
)
