package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const (
	MaxPageLength      = 500
	MaxSessionIDLength = 100
	MaxReferrerLength  = 500
	MaxLabelLength     = 100
)

// TrackPageViewRequest is the public tracking beacon payload.
type TrackPageViewRequest struct {
	Page         string `json:"page"`
	TutorialSlug string `json:"tutorial_slug"`
	SessionID    string `json:"session_id"`
	Referrer     string `json:"referrer"`
	DeviceType   string `json:"device_type"`
	Browser      string `json:"browser"`
}

func (r TrackPageViewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Page,
			validation.Required.Error("page is required"),
			validation.Length(1, MaxPageLength).Error("page must be 1-500 characters"),
		),
		validation.Field(&r.SessionID,
			validation.Required.Error("session_id is required"),
			validation.Length(1, MaxSessionIDLength).Error("session_id must be 1-100 characters"),
		),
		validation.Field(&r.Referrer,
			validation.Length(0, MaxReferrerLength).Error("referrer must not exceed 500 characters"),
		),
		validation.Field(&r.DeviceType,
			validation.Length(0, MaxLabelLength).Error("device_type must not exceed 100 characters"),
		),
		validation.Field(&r.Browser,
			validation.Length(0, MaxLabelLength).Error("browser must not exceed 100 characters"),
		),
	)
}

// TrackPageViewPayload is the queued task body. The API resolves the
// tutorial slug before enqueueing so the worker does one write per field.
type TrackPageViewPayload struct {
	Page       string     `json:"page"`
	TutorialID *uuid.UUID `json:"tutorial_id"`
	SessionID  string     `json:"session_id"`
	Referrer   string     `json:"referrer"`
	DeviceType string     `json:"device_type"`
	Browser    string     `json:"browser"`
	Timestamp  time.Time  `json:"timestamp"`
}
