package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"circuithub-backend/internal/domains/analytics/model"
	"circuithub-backend/internal/domains/analytics/service"
	"circuithub-backend/internal/shared/response"
	"circuithub-backend/pkg/logger"
)

type AnalyticsHandler struct {
	analyticsService service.ServiceInterface
}

func NewAnalyticsHandler(analyticsService service.ServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Summary returns the dashboard roll-up
// GET /api/v1/admin/analytics?days=30
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	days, ok := h.parseDays(c)
	if !ok {
		return
	}

	summary, err := h.analyticsService.Summary(c.Request.Context(), days)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, summary)
}

// Export streams the roll-up as a spreadsheet
// GET /api/v1/admin/analytics/export?days=30
func (h *AnalyticsHandler) Export(c *gin.Context) {
	days, ok := h.parseDays(c)
	if !ok {
		return
	}

	report, err := h.analyticsService.ExportReport(c.Request.Context(), days)
	if err != nil {
		h.respondError(c, err)
		return
	}

	filename := fmt.Sprintf("analytics-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := report.Write(c.Writer); err != nil {
		logger.Error("failed to stream analytics export", err)
	}
}

// Track accepts a public page-view beacon
// POST /api/v1/track
func (h *AnalyticsHandler) Track(c *gin.Context) {
	var req model.TrackPageViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.analyticsService.Track(c.Request.Context(), req); err != nil {
		h.respondError(c, err)
		return
	}

	// Accepted, not created; the worker applies the writes.
	response.Success(c, http.StatusAccepted, gin.H{"tracked": true})
}

func (h *AnalyticsHandler) parseDays(c *gin.Context) (int, bool) {
	raw := c.Query("days")
	if raw == "" {
		return 0, true
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		response.BadRequest(c, "days must be a positive integer")
		return 0, false
	}
	return days, true
}

func (h *AnalyticsHandler) respondError(c *gin.Context, err error) {
	var anlErr *model.AnalyticsError
	if errors.As(err, &anlErr) {
		switch {
		case errors.Is(err, model.ErrInvalidWindow), errors.Is(err, model.ErrInvalidInput):
			response.ErrorResponse(c, http.StatusBadRequest, anlErr.Code, anlErr.Message)
		default:
			response.InternalServerError(c, "Internal server error")
		}
		return
	}

	response.InternalServerError(c, "Internal server error")
}
