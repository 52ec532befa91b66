package domain

import (
	"time"

	"github.com/google/uuid"
)

// Viewer is the capability a caller holds when reading the feed.
// Privileged is set only by the admin gate.
type Viewer struct {
	Privileged bool
}

var Anonymous = Viewer{}

type ViewReport struct {
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

// Project builds the display-safe view of r. Coordinates survive only for privileged viewers.
func Project(r *Report, viewer Viewer) ViewReport {
	v := ViewReport{
		ID:               r.ID,
		AuthorName:       r.AuthorName,
		AuthorAvatar:     r.AuthorAvatar,
		CreatedAt:        r.CreatedAt,
		Location:         r.Location,
		Description:      r.Description,
		Status:           r.Status,
		MediaURL:         r.MediaURL,
		MediaKind:        r.MediaKind,
		Likes:            r.Likes,
		Comments:         r.Comments,
		IsExternalSource: r.IsExternalSource,
	}
	if viewer.Privileged && r.Coords != nil {
		c := *r.Coords
		v.Coords = &c
	}
	return v
}

func ProjectAll(reports []*Report, viewer Viewer) []ViewReport {
	out := make([]ViewReport, 0, len(reports))
	for _, r := range reports {
		out = append(out, Project(r, viewer))
	}
	return out
}

type SessionRequest struct {
	Secret string `json:"secret" validate:"required"`
}

type SessionResponse struct {
	Token      string `json:"token"`
	Privileged bool   `json:"privileged"`
}
