package domain

import (
	"time"

	"github.com/google/uuid"
)

type DraftState string

const (
	DraftIdle       DraftState = "idle"
	DraftLocating   DraftState = "locating"
	DraftComposing  DraftState = "composing"
	DraftSubmitting DraftState = "submitting"
)

type OpenDraftRequest struct {
	Coords *Coordinates `json:"coords" validate:"omitempty"`
}

// DraftPatch carries the fields a client changes; nil fields stay as they are.
type DraftPatch struct {
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Location    *string `json:"location"`
	MediaURL    *string `json:"media_url"`
}

type LocationResult struct {
	Coords *Coordinates `json:"coords"`
	Error  string       `json:"error"`
}

type DraftView struct {
	ID          uuid.UUID     `json:"id"`
	State       DraftState    `json:"state"`
	Description string        `json:"description"`
	Status      TrafficStatus `json:"status"`
	Location    string        `json:"location"`
	MediaURL    string        `json:"media_url,omitempty"`
	MediaKind   MediaKind     `json:"media_kind,omitempty"`
	HasCoords   bool          `json:"has_coords"`
	OpenedAt    time.Time     `json:"opened_at"`
}

// ReportCreatedEvent is delivered to the configured webhook after a report lands in the feed.
type ReportCreatedEvent struct {
	ReportID  uuid.UUID     `json:"report_id"`
	Status    TrafficStatus `json:"status"`
	Location  string        `json:"location"`
	External  bool          `json:"external"`
	CreatedAt time.Time     `json:"created_at"`
}
