package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type MediaKind string

const (
	MediaNone  MediaKind = ""
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// MediaKindOf derives the kind from a media reference; an empty reference has no kind.
func MediaKindOf(ref string) MediaKind {
	if ref == "" {
		return MediaNone
	}
	if strings.Contains(strings.ToLower(ref), "video") {
		return MediaVideo
	}
	return MediaImage
}

type Coordinates struct {
	Lat float64 `json:"lat" validate:"lat"` // -90..90
	Lng float64 `json:"lng" validate:"lng"` // -180..180
}

func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

type Report struct {
	ID               uuid.UUID     `json:"id"`
	AuthorName       string        `json:"author_name"`
	AuthorAvatar     string        `json:"author_avatar"`
	CreatedAt        time.Time     `json:"created_at"`
	Location         string        `json:"location"`
	Description      string        `json:"description"`
	Status           TrafficStatus `json:"status"`
	MediaURL         string        `json:"media_url,omitempty"`
	MediaKind        MediaKind     `json:"media_kind,omitempty"`
	Coords           *Coordinates  `json:"coords,omitempty"`
	Likes            int           `json:"likes"`
	Comments         int           `json:"comments"`
	IsExternalSource bool          `json:"is_external_source,omitempty"`
}

// ReportDraft is the candidate a report is built from. The timestamp is supplied by the caller.
type ReportDraft struct {
	Description      string        `json:"description" validate:"notblank"`
	Location         string        `json:"location" validate:"notblank"`
	Status           TrafficStatus `json:"status" validate:"enum"`
	Coords           *Coordinates  `json:"coords" validate:"omitempty"`
	MediaURL         string        `json:"media_url"`
	CreatedAt        time.Time     `json:"created_at"`
	AuthorName       string        `json:"author_name"`
	AuthorAvatar     string        `json:"author_avatar"`
	IsExternalSource bool          `json:"is_external_source"`
}

const (
	SelfAuthorName   = "Tú"
	SelfAuthorAvatar = "https://picsum.photos/seed/user/100"
)
