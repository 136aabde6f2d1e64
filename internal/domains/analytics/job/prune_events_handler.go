package job

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"circuithub-backend/internal/domains/analytics/repository"
)

// PruneEventsHandler drops raw events past the retention horizon. Runs on a
// schedule; the dashboard never looks back further than a year anyway.
type PruneEventsHandler struct {
	analyticsRepo repository.RepositoryInterface
	retentionDays int
}

func NewPruneEventsHandler(analyticsRepo repository.RepositoryInterface, retentionDays int) *PruneEventsHandler {
	if retentionDays <= 0 {
		retentionDays = 365
	}
	return &PruneEventsHandler{
		analyticsRepo: analyticsRepo,
		retentionDays: retentionDays,
	}
}

func (h *PruneEventsHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	cutoff := time.Now().UTC().AddDate(0, 0, -h.retentionDays)

	deleted, err := h.analyticsRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		log.Error().Err(err).Msg("Failed to prune page view events")
		return err
	}

	log.Info().
		Int64("deleted", deleted).
		Time("cutoff", cutoff).
		Msg("Pruned old page view events")

	return nil
}
