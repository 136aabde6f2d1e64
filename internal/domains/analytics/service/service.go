package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"circuithub-backend/internal/domains/analytics/model"
	"circuithub-backend/internal/domains/analytics/repository"
	tutorialmodel "circuithub-backend/internal/domains/tutorial/model"
	tutorialrepo "circuithub-backend/internal/domains/tutorial/repository"
)

const (
	topListLimit  = 10
	maxWindowDays = 365
)

type analyticsService struct {
	repo              repository.RepositoryInterface
	tutorialRepo      tutorialrepo.RepositoryInterface
	enqueuer          Enqueuer
	defaultWindowDays int
}

func NewAnalyticsService(
	repo repository.RepositoryInterface,
	tutorialRepo tutorialrepo.RepositoryInterface,
	enqueuer Enqueuer,
	defaultWindowDays int,
) ServiceInterface {
	if defaultWindowDays <= 0 {
		defaultWindowDays = 30
	}
	return &analyticsService{
		repo:              repo,
		tutorialRepo:      tutorialRepo,
		enqueuer:          enqueuer,
		defaultWindowDays: defaultWindowDays,
	}
}

func (s *analyticsService) Summary(ctx context.Context, windowDays int) (*model.Summary, error) {
	if windowDays <= 0 {
		windowDays = s.defaultWindowDays
	}
	if windowDays > maxWindowDays {
		return nil, model.NewInvalidWindowError(fmt.Sprintf("window must not exceed %d days", maxWindowDays))
	}

	now := time.Now().UTC()
	// The window starts at UTC midnight so it lines up with the daily
	// series buckets.
	since := now.Truncate(24 * time.Hour).AddDate(0, 0, -(windowDays - 1))

	events, err := s.repo.ListSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}

	return &model.Summary{
		WindowDays:         windowDays,
		TotalPageViews:     TotalPageViews(events),
		UniqueVisitors:     UniqueVisitors(events),
		AvgSessionDuration: AverageSessionDuration(events),
		TopPages:           TopPages(events, topListLimit),
		TopReferrers:       TopReferrers(events, topListLimit),
		DeviceTypes:        DeviceTypes(events),
		BrowserStats:       BrowserStats(events),
		DailyViews:         DailyViews(events, now, windowDays),
	}, nil
}

func (s *analyticsService) Track(ctx context.Context, req model.TrackPageViewRequest) error {
	if err := req.Validate(); err != nil {
		return model.NewInvalidInputError(err.Error())
	}

	payload := model.TrackPageViewPayload{
		Page:       strings.TrimSpace(req.Page),
		SessionID:  strings.TrimSpace(req.SessionID),
		Referrer:   strings.TrimSpace(req.Referrer),
		DeviceType: normalizeLabel(req.DeviceType),
		Browser:    normalizeLabel(req.Browser),
		Timestamp:  time.Now().UTC(),
	}

	// A hit on a tutorial page also bumps that tutorial's view counter.
	// An unknown slug is not an error; the page view still counts.
	if slug := strings.TrimSpace(strings.ToLower(req.TutorialSlug)); slug != "" {
		tutorial, err := s.tutorialRepo.GetBySlug(ctx, slug)
		if err != nil && err != tutorialmodel.ErrTutorialNotFound {
			return fmt.Errorf("failed to resolve tutorial: %w", err)
		}
		if tutorial != nil && tutorial.Published {
			payload.TutorialID = &tutorial.ID
		}
	}

	if err := s.enqueuer.EnqueueTrackPageView(ctx, payload); err != nil {
		return fmt.Errorf("failed to enqueue page view: %w", err)
	}

	return nil
}

func normalizeLabel(label string) string {
	label = strings.TrimSpace(strings.ToLower(label))
	if label == "" {
		return "unknown"
	}
	return label
}
