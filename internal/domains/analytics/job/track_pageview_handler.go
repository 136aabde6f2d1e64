package job

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"circuithub-backend/internal/domains/analytics/model"
	"circuithub-backend/internal/domains/analytics/repository"
	tutorialmodel "circuithub-backend/internal/domains/tutorial/model"
	tutorialrepo "circuithub-backend/internal/domains/tutorial/repository"
	"circuithub-backend/internal/shared/utils"
)

// TrackPageViewHandler persists one page-view beacon: append the raw event,
// then bump the tutorial view counter when the hit was a tutorial page.
type TrackPageViewHandler struct {
	analyticsRepo repository.RepositoryInterface
	tutorialRepo  tutorialrepo.RepositoryInterface
}

func NewTrackPageViewHandler(
	analyticsRepo repository.RepositoryInterface,
	tutorialRepo tutorialrepo.RepositoryInterface,
) *TrackPageViewHandler {
	return &TrackPageViewHandler{
		analyticsRepo: analyticsRepo,
		tutorialRepo:  tutorialRepo,
	}
}

func (h *TrackPageViewHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload model.TrackPageViewPayload
	if err := utils.UnmarshalTask(task, &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal TrackPageView payload")
		return err
	}

	referrer := &payload.Referrer
	if payload.Referrer == "" {
		referrer = nil
	}

	event := &model.PageViewEvent{
		ID:         uuid.New(),
		Page:       payload.Page,
		TutorialID: payload.TutorialID,
		SessionID:  payload.SessionID,
		Referrer:   referrer,
		DeviceType: payload.DeviceType,
		Browser:    payload.Browser,
		Timestamp:  payload.Timestamp,
	}

	if err := h.analyticsRepo.Append(ctx, event); err != nil {
		log.Error().
			Err(err).
			Str("page", payload.Page).
			Msg("Failed to append page view event")
		return fmt.Errorf("append event: %w", err)
	}

	if payload.TutorialID != nil {
		err := h.tutorialRepo.IncrementViewCount(ctx, *payload.TutorialID)
		if err != nil && err != tutorialmodel.ErrTutorialNotFound {
			log.Error().
				Err(err).
				Str("tutorial_id", payload.TutorialID.String()).
				Msg("Failed to increment tutorial view count")
			return fmt.Errorf("increment view count: %w", err)
		}
		// A tutorial deleted between enqueue and processing is fine; the
		// raw event already landed.
	}

	log.Debug().
		Str("page", payload.Page).
		Str("session_id", payload.SessionID).
		Msg("Page view recorded")

	return nil
}
